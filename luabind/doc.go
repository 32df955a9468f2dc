// Package luabind exposes the bytealg primitive surface to an embedded
// Lua interpreter (github.com/yuin/gopher-lua).
//
// 🚀 What is luabind?
//
//	The host-facing edge of the library: policy scripts running inside a
//	gopher-lua state call these primitives with plain Lua strings and
//	tables, and get strings, arrays and match tables back:
//	  • bytealg.levenshtein / levenshtein_bounded / similarity
//	  • bytealg.align — local alignments as an array of match tables
//	  • bytealg.split / substitute — driven by a compiled pattern value
//	  • bytealg.literal / class / pattern — matcher constructors
//	  • bytealg.lower / upper / trim / shell_quote / hex_dump / join / sort
//
// ⚙️ Usage:
//
//	L := lua.NewLState()
//	defer L.Close()
//	luabind.Register(L)
//	err := L.DoString(`parts = bytealg.split("a-b--cd", bytealg.class("-"))`)
//
// Conventions:
//   - Lua strings are byte strings: no encoding is assumed, matching the
//     engines underneath.
//   - Offsets returned to Lua are 1-based (a_start, b_start in align
//     results); lengths are plain byte counts.
//   - Go-side configuration errors surface as Lua errors raised at the
//     call site.
//
// Pattern values are userdata wrapping a pattern.Matcher; the split and
// substitute primitives also accept a plain string, which is compiled as
// an anchored regular expression on the fly.
package luabind
