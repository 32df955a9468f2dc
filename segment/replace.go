package segment

import "github.com/katalvlaran/bytealg/pattern"

// Replace substitutes the first match of m in s with repl and copies the
// remainder verbatim. When nothing matches, the result is a fresh verbatim
// copy of s.
//
// Complexity: O(N) positions probed; O(N + len(repl)) output bytes.
//
// Errors: ErrNilMatcher, or a pattern sentinel when the matcher violates
// its contract (see Split).
func Replace(s []byte, m pattern.Matcher, repl []byte) ([]byte, error) {
	return substitute(s, m, repl, false)
}

// ReplaceAll substitutes every match of m in s with repl, scanning past
// each match so matched spans never overlap. The result length is
// len(s) − total matched bytes + len(repl) × match count.
//
// Complexity: O(N) positions probed; O(N + matches·len(repl)) output bytes.
//
// Errors: as for Replace.
func ReplaceAll(s []byte, m pattern.Matcher, repl []byte) ([]byte, error) {
	return substitute(s, m, repl, true)
}

// substitute accumulates cut points in one left-to-right scan, then
// assembles the result by copying every unmatched span verbatim and
// splicing repl at each cut.
func substitute(s []byte, m pattern.Matcher, repl []byte, all bool) ([]byte, error) {
	if m == nil {
		return nil, ErrNilMatcher
	}

	var (
		cuts []cut
		p    int
	)
	for p < len(s) {
		n, ok := m.MatchAt(s, p)
		if ok {
			if err := pattern.Check(s, p, n); err != nil {
				return nil, err
			}
		}
		// Zero-width matches are demoted to no-match, as in Split.
		if !ok || n == 0 {
			p++

			continue
		}

		cuts = append(cuts, cut{start: p, end: p + n})
		p += n

		if !all {
			break
		}
	}

	// Assemble: verbatim spans interleaved with repl at each cut point,
	// in original left-to-right order.
	size := len(s) + len(cuts)*len(repl)
	for _, c := range cuts {
		size -= c.end - c.start
	}
	out := make([]byte, 0, size)

	prev := 0
	for _, c := range cuts {
		out = append(out, s[prev:c.start]...)
		out = append(out, repl...)
		prev = c.end
	}
	out = append(out, s[prev:]...)

	return out, nil
}
