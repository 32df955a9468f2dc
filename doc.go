// Package bytealg is your in-memory toolbox for exact and approximate
// byte-string matching — from edit distance to local alignment and
// pattern-driven segmentation.
//
// 🚀 What is bytealg?
//
//	A small, deterministic library of byte-oriented string algorithms,
//	built to be embedded under a host scripting environment:
//		• Edit distance: Levenshtein (Wagner–Fischer), bounded & normalized forms
//		• Local alignment: Smith–Waterman with multi-maxima traceback
//		• Segmentation: pattern-driven split with separator capture & split caps
//		• Substitution: first-match and all-matches rewriting via cut points
//		• Peripheral helpers: case folding, trimming, shell quoting, hex dumps
//		• Lua surface: every primitive registered into a gopher-lua state
//
// ✨ Why choose bytealg?
//
//   - Byte-oriented – no encoding awareness, no hidden normalization
//   - Pure functions – no package state, every call owns its working buffers
//   - Strict sentinels – configuration errors are rejected before computing
//   - Embeddable – the luabind package exposes the whole surface to Lua
//
// Under the hood, everything is organized under six subpackages:
//
//	align/    — Smith–Waterman local alignment & substring extraction
//	byteutil/ — straight-line byte-scan helpers (fold, trim, quote, dump…)
//	editdist/ — Levenshtein edit distance (two-row DP, bounded, normalized)
//	luabind/  — gopher-lua bindings for the primitive surface
//	pattern/  — the prefix-matching Matcher capability + reference adapters
//	segment/  — split / substitute engines driven by a pattern.Matcher
//
// Quick ASCII example:
//
//	split("a-b--cd", /-+/, keep separators) → ["a" "-" "b" "--" "cd"]
//
// Dive into the per-package doc.go files for contracts, complexity notes
// and worked examples.
//
//	go get github.com/katalvlaran/bytealg
package bytealg
