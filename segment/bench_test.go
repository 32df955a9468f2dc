package segment_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/bytealg/pattern"
	"github.com/katalvlaran/bytealg/segment"
)

// benchInput builds n repetitions of "field-" so every sixth position is a
// separator hit.
func benchInput(n int) []byte {
	return bytes.Repeat([]byte("field-"), n)
}

// BenchmarkSplit_Class benchmarks Split with the byte-class matcher.
func BenchmarkSplit_Class(b *testing.B) {
	m, err := pattern.NewClass([]byte{'-'})
	if err != nil {
		b.Fatalf("NewClass failed: %v", err)
	}
	in := benchInput(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = segment.Split(in, m, segment.SplitOptions{}); err != nil {
			b.Fatalf("Split failed: %v", err)
		}
	}
}

// BenchmarkSplit_Regexp benchmarks Split with the anchored regexp matcher;
// the gap versus BenchmarkSplit_Class is the regexp probe overhead.
func BenchmarkSplit_Regexp(b *testing.B) {
	m, err := pattern.CompileRegexp(`-+`)
	if err != nil {
		b.Fatalf("CompileRegexp failed: %v", err)
	}
	in := benchInput(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = segment.Split(in, m, segment.SplitOptions{}); err != nil {
			b.Fatalf("Split failed: %v", err)
		}
	}
}

// BenchmarkReplaceAll benchmarks whole-input substitution.
func BenchmarkReplaceAll(b *testing.B) {
	m, err := pattern.NewLiteral([]byte("-"))
	if err != nil {
		b.Fatalf("NewLiteral failed: %v", err)
	}
	in := benchInput(1000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = segment.ReplaceAll(in, m, []byte("_")); err != nil {
			b.Fatalf("ReplaceAll failed: %v", err)
		}
	}
}
