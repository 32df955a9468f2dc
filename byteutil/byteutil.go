package byteutil

import (
	"bytes"
	"encoding/hex"
	"sort"
)

// ToLower returns a fresh copy of s with ASCII uppercase letters folded to
// lowercase. Bytes outside A–Z pass through untouched.
func ToLower(s []byte) []byte {
	out := append([]byte{}, s...)
	for i, b := range out {
		if 'A' <= b && b <= 'Z' {
			out[i] = b + ('a' - 'A')
		}
	}

	return out
}

// ToUpper returns a fresh copy of s with ASCII lowercase letters folded to
// uppercase.
func ToUpper(s []byte) []byte {
	out := append([]byte{}, s...)
	for i, b := range out {
		if 'a' <= b && b <= 'z' {
			out[i] = b - ('a' - 'A')
		}
	}

	return out
}

// asciiSpace marks the ASCII whitespace bytes trimmed by TrimSpace.
var asciiSpace = [256]bool{' ': true, '\t': true, '\n': true, '\r': true, '\v': true, '\f': true}

// TrimSpace returns a fresh copy of s with leading and trailing ASCII
// whitespace removed.
func TrimSpace(s []byte) []byte {
	lo, hi := 0, len(s)
	for lo < hi && asciiSpace[s[lo]] {
		lo++
	}
	for hi > lo && asciiSpace[s[hi-1]] {
		hi--
	}

	return append([]byte{}, s[lo:hi]...)
}

// Trim returns a fresh copy of s with leading and trailing bytes from
// cutset removed.
func Trim(s, cutset []byte) []byte {
	var in [256]bool
	for _, b := range cutset {
		in[b] = true
	}
	lo, hi := 0, len(s)
	for lo < hi && in[s[lo]] {
		lo++
	}
	for hi > lo && in[s[hi-1]] {
		hi--
	}

	return append([]byte{}, s[lo:hi]...)
}

// ShellQuote returns s quoted for a POSIX shell: the input is wrapped in
// single quotes, with embedded single quotes rendered as '\''. Inputs made
// entirely of unambiguous bytes are returned as a bare copy.
func ShellQuote(s []byte) []byte {
	if len(s) > 0 && !bytes.ContainsFunc(s, needsQuoting) {
		return append([]byte{}, s...)
	}

	out := make([]byte, 0, len(s)+2)
	out = append(out, '\'')
	for _, b := range s {
		if b == '\'' {
			out = append(out, '\'', '\\', '\'', '\'')

			continue
		}
		out = append(out, b)
	}

	return append(out, '\'')
}

// needsQuoting reports bytes outside the shell-safe set [A-Za-z0-9_./-].
func needsQuoting(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z', '0' <= r && r <= '9':
		return false
	case r == '_' || r == '.' || r == '/' || r == '-':
		return false
	}

	return true
}

// HexDump renders s in the canonical 16-bytes-per-line hex dump layout
// with an ASCII gutter.
func HexDump(s []byte) string {
	return hex.Dump(s)
}

// Join concatenates parts with sep between adjacent entries, into a fresh
// buffer.
func Join(parts [][]byte, sep []byte) []byte {
	return bytes.Join(parts, sep)
}

// Concat concatenates parts back to back, into a fresh buffer.
func Concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

// SortCopies returns the entries of parts in ascending lexicographic byte
// order. Both the returned slice and every entry are fresh copies; parts
// and its entries are left untouched.
func SortCopies(parts [][]byte) [][]byte {
	out := make([][]byte, len(parts))
	for i, p := range parts {
		out[i] = append([]byte{}, p...)
	}
	sort.Slice(out, func(i, j int) bool { return bytes.Compare(out[i], out[j]) < 0 })

	return out
}
