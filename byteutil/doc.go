// Package byteutil collects the small byte-scan helpers that ride along
// with the matching engines: ASCII case folding, trimming, shell quoting,
// hex dumping, joining and sorting.
//
// Every function returns freshly allocated output and treats its input as
// immutable; none of them carries algorithmic state or invariants beyond
// plain bounds-checked scans.
package byteutil
