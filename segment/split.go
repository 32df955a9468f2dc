package segment

import "github.com/katalvlaran/bytealg/pattern"

// Split — pattern-driven segmentation.
//
// Description:
//
//	Split scans s left to right, probing m at each position. Every match
//	closes the current segment; the matched span is either dropped or,
//	with KeepSeparators, emitted as its own entry. Scanning resumes
//	immediately after the match.
//
// Algorithm Outline:
//  1. Validate inputs (nil matcher, negative MaxSplits).
//  2. For each position p from 0 while p < len(s): probe m.MatchAt(s, p).
//     No match, or a zero-width match, advances p by one byte into the
//     current segment.
//  3. On a match of n > 0 bytes: emit s[segStart:p], optionally emit
//     s[p:p+n], set p and segStart past the match. If the separator
//     count has reached MaxSplits (when nonzero), stop probing.
//  4. Emit the final segment s[segStart:]; a match ending exactly at
//     len(s) therefore yields a trailing empty segment, and an empty
//     input yields a single empty segment.
//
// Every emitted segment is freshly allocated and shares no storage with s.
//
// Complexity: O(N) positions probed; O(N) output bytes.
//
// Errors:
//   - ErrNilMatcher / ErrBadMaxSplits — malformed arguments.
//   - pattern.ErrMatchOverrun / pattern.ErrNegativeMatch — the matcher
//     violated its contract; the operation is aborted with no result.
func Split(s []byte, m pattern.Matcher, opts SplitOptions) ([][]byte, error) {
	if m == nil {
		return nil, ErrNilMatcher
	}
	if opts.MaxSplits < 0 {
		return nil, ErrBadMaxSplits
	}

	var (
		out      [][]byte
		segStart int
		p        int
		seps     int
	)
	for p < len(s) {
		n, ok := m.MatchAt(s, p)
		if ok {
			if err := pattern.Check(s, p, n); err != nil {
				return nil, err
			}
		}
		// Zero-width matches are demoted to no-match: the scan must
		// always make forward progress.
		if !ok || n == 0 {
			p++

			continue
		}

		out = append(out, clone(s[segStart:p]))
		if opts.KeepSeparators {
			out = append(out, clone(s[p:p+n]))
		}
		p += n
		segStart = p
		seps++

		if opts.MaxSplits > 0 && seps >= opts.MaxSplits {
			break
		}
	}

	out = append(out, clone(s[segStart:]))

	return out, nil
}

// clone returns a fresh copy of b; results must never alias the input.
func clone(b []byte) []byte {
	return append([]byte{}, b...)
}
