package pattern

import (
	"bytes"
	"regexp"
)

// Literal matches a fixed byte sequence as a prefix of buf[pos:].
//
// Description:
//
//	The simplest Matcher: a match exists at pos iff buf[pos:] starts with
//	the literal bytes, and its length is always len(literal).
//
// Complexity: O(len(literal)) per probe.
type Literal struct {
	lit []byte
}

// NewLiteral builds a Literal matcher from lit. The bytes are copied, so the
// caller may reuse its buffer. An empty lit is rejected with ErrEmptyLiteral.
func NewLiteral(lit []byte) (*Literal, error) {
	if len(lit) == 0 {
		return nil, ErrEmptyLiteral
	}

	return &Literal{lit: append([]byte(nil), lit...)}, nil
}

// MatchAt reports len(lit) when buf[pos:] starts with the literal.
func (l *Literal) MatchAt(buf []byte, pos int) (int, bool) {
	if pos < 0 || pos > len(buf) {
		return 0, false
	}
	if bytes.HasPrefix(buf[pos:], l.lit) {
		return len(l.lit), true
	}

	return 0, false
}

// Class matches the longest non-empty run of bytes drawn from a fixed set,
// i.e. the byte-level analogue of the regexp /[set]+/.
//
// Complexity: O(n) per probe where n is the reported run length.
type Class struct {
	in [256]bool
}

// NewClass builds a Class matcher from the given set of member bytes.
// Duplicates are harmless. An empty set is rejected with ErrEmptyClass.
func NewClass(set []byte) (*Class, error) {
	if len(set) == 0 {
		return nil, ErrEmptyClass
	}
	c := &Class{}
	for _, b := range set {
		c.in[b] = true
	}

	return c, nil
}

// MatchAt reports the length of the run of member bytes starting at pos.
// A run of length zero is ok=false: a Class never matches zero-width.
func (c *Class) MatchAt(buf []byte, pos int) (int, bool) {
	if pos < 0 || pos > len(buf) {
		return 0, false
	}
	n := 0
	for pos+n < len(buf) && c.in[buf[pos+n]] {
		n++
	}

	return n, n > 0
}

// Regexp adapts a stdlib RE2 regexp to the anchored-prefix Matcher contract.
//
// Description:
//
//	The wrapped expression is compiled with a \A anchor and switched to
//	leftmost-longest semantics, so MatchAt reports the longest match that
//	begins exactly at pos — never a match found further along the buffer.
type Regexp struct {
	re *regexp.Regexp
}

// CompileRegexp compiles expr into an anchored, longest-match Matcher.
// Compilation errors from regexp are returned as-is.
func CompileRegexp(expr string) (*Regexp, error) {
	re, err := regexp.Compile(`\A(?:` + expr + `)`)
	if err != nil {
		return nil, err
	}
	re.Longest()

	return &Regexp{re: re}, nil
}

// MatchAt reports the length of the anchored match at pos, if any.
// Note a regexp such as `x*` can legally report a zero-width match; the
// segmentation engines treat zero-width as no-match to guarantee progress.
func (r *Regexp) MatchAt(buf []byte, pos int) (int, bool) {
	if pos < 0 || pos > len(buf) {
		return 0, false
	}
	loc := r.re.FindIndex(buf[pos:])
	if loc == nil {
		return 0, false
	}

	return loc[1], true
}
