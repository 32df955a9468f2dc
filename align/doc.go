// Package align extracts locally similar substring pairs from two byte
// strings using Smith–Waterman local alignment.
//
// 🚀 What is local alignment?
//
//	Unlike edit distance (which aligns whole strings), local alignment
//	finds the best-scoring *substrings* of each input that resemble each
//	other. The floor-at-zero rule of the Smith–Waterman recurrence lets
//	an alignment start and end anywhere, which makes it ideal for:
//	  • Shared-fragment discovery between unrelated strings
//	  • Overlap detection (suffix of one input vs prefix of the other)
//	  • Motif search over small fixed alphabets
//
// ✨ Key features:
//   - Classical Smith–Waterman DP with floor at zero
//   - Multiple local maxima: every qualifying alignment endpoint is
//     tracebacked independently against an immutable score grid
//   - Scoring variants: Basic (match/mismatch/gap) and Amino (BLOSUM62)
//   - Deterministic output order: descending score, ties by earliest
//     offset in the first input
//
// ⚙️ Usage:
//
//	opts := align.DefaultOptions()
//	opts.MinLength = 4
//	matches, err := align.Locate(a, b, opts)
//
// Performance:
//
//   - Time:   O(N·M) for the grid + O(L) per reported alignment
//   - Memory: O(N·M) (the full grid is required for traceback)
//
// Degenerate inputs (either side empty) yield an empty result, not an
// error; only malformed Options are rejected.
package align
