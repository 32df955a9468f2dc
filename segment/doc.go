// Package segment splits and rewrites byte strings, driven by a
// pattern.Matcher probed one position at a time.
//
// 🚀 What is segment?
//
//	A linear prefix-advance scan: at every position the engine asks the
//	matcher "does a match start exactly here?" — it never searches ahead.
//	On top of that single strategy it builds two operations:
//	  • Split   — tokenize into segments, optionally keeping separators,
//	    optionally capping the number of separators consumed
//	  • Replace / ReplaceAll — excise matched spans and splice in a
//	    replacement, via an ordered cut-point list
//
// ✨ Key properties:
//   - Fresh outputs: no result ever aliases the input buffer
//   - Guaranteed progress: a zero-width match is treated as no match,
//     so the scan always advances at least one byte
//   - Contract checking: a matcher reporting an impossible length aborts
//     the operation with a pattern sentinel instead of corrupting output
//
// ⚙️ Usage:
//
//	m, _ := pattern.NewClass([]byte{'-'})
//	opts := segment.SplitOptions{KeepSeparators: true}
//	parts, err := segment.Split([]byte("a-b--cd"), m, opts)
//	// parts = ["a" "-" "b" "--" "cd"]
//
// Performance:
//
//   - Time:   O(N) scan positions plus the matcher's per-probe cost
//   - Memory: O(N) for the output
package segment
