// Package pattern defines the prefix-matching capability consumed by the
// segmentation and substitution engines, plus a set of reference matchers.
//
// 🚀 What is pattern?
//
//	A Matcher answers exactly one question: "how long is the longest match
//	anchored at this position?" It is never asked to search — the engines
//	drive the scan themselves, one position at a time:
//	  • Literal  — fixed byte-sequence prefix match
//	  • Class    — greedy run of bytes drawn from a byte set (e.g. /-+/)
//	  • Regexp   — anchored, longest-match wrapper over regexp/syntax (RE2)
//	  • MatcherFunc — adapter for ad-hoc matchers
//
// ✨ Key properties:
//   - Stateless matching: MatchAt never mutates the matcher or the buffer
//   - Safe probe range: any pos from 0 to len(buf) inclusive is legal
//   - Contract checking: Check validates a reported length against bounds
//
// ⚙️ Usage:
//
//	m, err := pattern.CompileRegexp(`-+`)
//	if err != nil { … }
//	n, ok := m.MatchAt([]byte("a-b--cd"), 3) // ok=true, n=2
//
// Matching is O(k) per probe where k is the reported match length
// (Literal, Class) or the regexp engine's cost on the buffer tail (Regexp).
package pattern
