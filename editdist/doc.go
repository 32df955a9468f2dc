// Package editdist computes the Levenshtein edit distance between byte
// strings, with bounded and normalized variants.
//
// 🚀 What is edit distance?
//
//	The minimum number of single-byte insertions, deletions and
//	substitutions that turn one string into the other. It is the
//	workhorse of approximate matching:
//	  • Fuzzy lookup & spell correction
//	  • Near-duplicate detection
//	  • Scoring candidate identifiers against a query
//
// ✨ Key features:
//   - Distance: exact Wagner–Fischer, single-row DP, O(min(N,M)) memory
//   - DistanceBounded: early exit once a threshold is provably exceeded
//   - Similarity: normalized to [0,1] (1 = identical)
//   - Total functions: no error conditions, empty inputs are well-defined
//
// ⚙️ Usage:
//
//	d := editdist.Distance([]byte("kitten"), []byte("sitting")) // 3
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(min(N,M))
//
// All operations are byte-oriented: multi-byte encodings are compared
// byte-by-byte with no decoding.
package editdist
