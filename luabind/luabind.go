package luabind

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/katalvlaran/bytealg/align"
	"github.com/katalvlaran/bytealg/byteutil"
	"github.com/katalvlaran/bytealg/editdist"
	"github.com/katalvlaran/bytealg/pattern"
	"github.com/katalvlaran/bytealg/segment"
)

// matcherTypeName is the metatable key for compiled pattern userdata.
const matcherTypeName = "bytealg.matcher"

// Register builds the module table and installs it as the global
// "bytealg". Use Loader instead when the host prefers require().
func Register(L *lua.LState) {
	L.SetGlobal("bytealg", moduleTable(L))
}

// Loader is a gopher-lua module loader:
//
//	L.PreloadModule("bytealg", luabind.Loader)
func Loader(L *lua.LState) int {
	L.Push(moduleTable(L))

	return 1
}

// moduleTable registers the matcher metatable and binds every primitive.
func moduleTable(L *lua.LState) *lua.LTable {
	L.NewTypeMetatable(matcherTypeName)

	mod := L.NewTable()

	// Matcher constructors.
	L.SetField(mod, "literal", L.NewFunction(newLiteral))
	L.SetField(mod, "class", L.NewFunction(newClass))
	L.SetField(mod, "pattern", L.NewFunction(newPattern))

	// Approximate matching.
	L.SetField(mod, "levenshtein", L.NewFunction(levenshtein))
	L.SetField(mod, "levenshtein_bounded", L.NewFunction(levenshteinBounded))
	L.SetField(mod, "similarity", L.NewFunction(similarity))
	L.SetField(mod, "align", L.NewFunction(alignFn))

	// Segmentation and substitution.
	L.SetField(mod, "split", L.NewFunction(split))
	L.SetField(mod, "substitute", L.NewFunction(substitute))

	// Peripheral byte helpers.
	L.SetField(mod, "lower", L.NewFunction(lower))
	L.SetField(mod, "upper", L.NewFunction(upper))
	L.SetField(mod, "trim", L.NewFunction(trim))
	L.SetField(mod, "shell_quote", L.NewFunction(shellQuote))
	L.SetField(mod, "hex_dump", L.NewFunction(hexDump))
	L.SetField(mod, "join", L.NewFunction(join))
	L.SetField(mod, "sort", L.NewFunction(sortFn))

	return mod
}

// wrapMatcher boxes a pattern.Matcher as typed userdata.
func wrapMatcher(L *lua.LState, m pattern.Matcher) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = m
	L.SetMetatable(ud, L.GetTypeMetatable(matcherTypeName))

	return ud
}

// checkMatcher extracts a Matcher from argument idx: either pattern
// userdata or a string compiled as an anchored regexp.
func checkMatcher(L *lua.LState, idx int) pattern.Matcher {
	switch v := L.Get(idx).(type) {
	case *lua.LUserData:
		if m, ok := v.Value.(pattern.Matcher); ok {
			return m
		}
	case lua.LString:
		m, err := pattern.CompileRegexp(string(v))
		if err != nil {
			L.ArgError(idx, err.Error())

			return nil
		}

		return m
	}
	L.ArgError(idx, "pattern value or string expected")

	return nil
}

// literal(str) -> matcher
func newLiteral(L *lua.LState) int {
	m, err := pattern.NewLiteral([]byte(L.CheckString(1)))
	if err != nil {
		L.ArgError(1, err.Error())

		return 0
	}
	L.Push(wrapMatcher(L, m))

	return 1
}

// class(set) -> matcher matching a run of bytes drawn from set
func newClass(L *lua.LState) int {
	m, err := pattern.NewClass([]byte(L.CheckString(1)))
	if err != nil {
		L.ArgError(1, err.Error())

		return 0
	}
	L.Push(wrapMatcher(L, m))

	return 1
}

// pattern(expr) -> matcher from an anchored regular expression
func newPattern(L *lua.LState) int {
	m, err := pattern.CompileRegexp(L.CheckString(1))
	if err != nil {
		L.ArgError(1, err.Error())

		return 0
	}
	L.Push(wrapMatcher(L, m))

	return 1
}

// levenshtein(a, b) -> number
func levenshtein(L *lua.LState) int {
	a, b := L.CheckString(1), L.CheckString(2)
	L.Push(lua.LNumber(editdist.Distance([]byte(a), []byte(b))))

	return 1
}

// levenshtein_bounded(a, b, max) -> number (max+1 once the bound breaks)
func levenshteinBounded(L *lua.LState) int {
	a, b := L.CheckString(1), L.CheckString(2)
	max := L.CheckInt(3)
	L.Push(lua.LNumber(editdist.DistanceBounded([]byte(a), []byte(b), max)))

	return 1
}

// similarity(a, b) -> number in [0,1]
func similarity(L *lua.LState) int {
	a, b := L.CheckString(1), L.CheckString(2)
	L.Push(lua.LNumber(editdist.Similarity([]byte(a), []byte(b))))

	return 1
}

// align(a, b [, opts]) -> { {a_start, a_len, b_start, b_len, score}, … }
// opts: { min_length = n, variant = "basic"|"amino" }
// Offsets in the result are 1-based, Lua style.
func alignFn(L *lua.LState) int {
	a, b := L.CheckString(1), L.CheckString(2)

	opts := align.DefaultOptions()
	if L.GetTop() >= 3 {
		tbl := L.CheckTable(3)
		if v, ok := tbl.RawGetString("min_length").(lua.LNumber); ok {
			opts.MinLength = int(v)
		}
		if v, ok := tbl.RawGetString("variant").(lua.LString); ok {
			switch string(v) {
			case "basic":
				opts.Variant = align.Basic
			case "amino":
				opts.Variant = align.Amino
			default:
				L.ArgError(3, "unknown variant: "+string(v))

				return 0
			}
		}
	}

	matches, err := align.Locate([]byte(a), []byte(b), opts)
	if err != nil {
		L.RaiseError("%s", err.Error())

		return 0
	}

	out := L.NewTable()
	for i, m := range matches {
		entry := L.NewTable()
		entry.RawSetString("a_start", lua.LNumber(m.AStart+1))
		entry.RawSetString("a_len", lua.LNumber(m.ALen))
		entry.RawSetString("b_start", lua.LNumber(m.BStart+1))
		entry.RawSetString("b_len", lua.LNumber(m.BLen))
		entry.RawSetString("score", lua.LNumber(m.Score))
		out.RawSetInt(i+1, entry)
	}
	L.Push(out)

	return 1
}

// split(s, pat [, opts]) -> {parts}
// opts: { keep_separators = bool, max_splits = n }
func split(L *lua.LState) int {
	s := L.CheckString(1)
	m := checkMatcher(L, 2)

	var opts segment.SplitOptions
	if L.GetTop() >= 3 {
		tbl := L.CheckTable(3)
		if v, ok := tbl.RawGetString("keep_separators").(lua.LBool); ok {
			opts.KeepSeparators = bool(v)
		}
		if v, ok := tbl.RawGetString("max_splits").(lua.LNumber); ok {
			opts.MaxSplits = int(v)
		}
	}

	parts, err := segment.Split([]byte(s), m, opts)
	if err != nil {
		L.RaiseError("%s", err.Error())

		return 0
	}

	out := L.NewTable()
	for i, p := range parts {
		out.RawSetInt(i+1, lua.LString(p))
	}
	L.Push(out)

	return 1
}

// substitute(s, pat, repl [, all]) -> string; all defaults to false
func substitute(L *lua.LState) int {
	s := L.CheckString(1)
	m := checkMatcher(L, 2)
	repl := L.CheckString(3)
	all := L.OptBool(4, false)

	var (
		out []byte
		err error
	)
	if all {
		out, err = segment.ReplaceAll([]byte(s), m, []byte(repl))
	} else {
		out, err = segment.Replace([]byte(s), m, []byte(repl))
	}
	if err != nil {
		L.RaiseError("%s", err.Error())

		return 0
	}
	L.Push(lua.LString(out))

	return 1
}

// lower(s) -> string
func lower(L *lua.LState) int {
	L.Push(lua.LString(byteutil.ToLower([]byte(L.CheckString(1)))))

	return 1
}

// upper(s) -> string
func upper(L *lua.LState) int {
	L.Push(lua.LString(byteutil.ToUpper([]byte(L.CheckString(1)))))

	return 1
}

// trim(s [, cutset]) -> string; trims ASCII whitespace by default
func trim(L *lua.LState) int {
	s := []byte(L.CheckString(1))
	if L.GetTop() >= 2 {
		L.Push(lua.LString(byteutil.Trim(s, []byte(L.CheckString(2)))))
	} else {
		L.Push(lua.LString(byteutil.TrimSpace(s)))
	}

	return 1
}

// shell_quote(s) -> string
func shellQuote(L *lua.LState) int {
	L.Push(lua.LString(byteutil.ShellQuote([]byte(L.CheckString(1)))))

	return 1
}

// hex_dump(s) -> string
func hexDump(L *lua.LState) int {
	L.Push(lua.LString(byteutil.HexDump([]byte(L.CheckString(1)))))

	return 1
}

// join(t [, sep]) -> string
func join(L *lua.LState) int {
	parts := checkStringArray(L, 1)
	sep := []byte(L.OptString(2, ""))
	L.Push(lua.LString(byteutil.Join(parts, sep)))

	return 1
}

// sort(t) -> {sorted} (ascending lexicographic byte order)
func sortFn(L *lua.LState) int {
	parts := byteutil.SortCopies(checkStringArray(L, 1))
	out := L.NewTable()
	for i, p := range parts {
		out.RawSetInt(i+1, lua.LString(p))
	}
	L.Push(out)

	return 1
}

// checkStringArray reads a 1..N Lua array of strings from argument idx.
func checkStringArray(L *lua.LState, idx int) [][]byte {
	tbl := L.CheckTable(idx)
	out := make([][]byte, 0, tbl.Len())
	for i := 1; i <= tbl.Len(); i++ {
		v, ok := tbl.RawGetInt(i).(lua.LString)
		if !ok {
			L.ArgError(idx, "array of strings expected")

			return nil
		}
		out = append(out, []byte(v))
	}

	return out
}
