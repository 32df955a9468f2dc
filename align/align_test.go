package align_test

import (
	"testing"

	"github.com/katalvlaran/bytealg/align"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLocate_BadOptions rejects malformed Options before any computation.
func TestLocate_BadOptions(t *testing.T) {
	opts := align.DefaultOptions()
	opts.Variant = align.Variant(99)
	_, err := align.Locate([]byte("a"), []byte("a"), opts)
	assert.ErrorIs(t, err, align.ErrUnknownVariant, "unknown variant must be a configuration error")

	opts = align.DefaultOptions()
	opts.MinLength = -1
	_, err = align.Locate([]byte("a"), []byte("a"), opts)
	assert.ErrorIs(t, err, align.ErrBadMinLength, "negative MinLength must be a configuration error")
}

// TestLocate_EmptyInputs yields an empty result, not an error, when either
// side is empty.
func TestLocate_EmptyInputs(t *testing.T) {
	opts := align.DefaultOptions()

	out, err := align.Locate(nil, []byte("abc"), opts)
	assert.NoError(t, err)
	assert.Empty(t, out)

	out, err = align.Locate([]byte("abc"), nil, opts)
	assert.NoError(t, err)
	assert.Empty(t, out)
}

// TestLocate_SelfAlignment verifies that aligning a string with itself under
// default scoring reports a match spanning the entirety of the input.
func TestLocate_SelfAlignment(t *testing.T) {
	s := []byte("ABCD")
	out, err := align.Locate(s, s, align.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, out)

	top := out[0]
	assert.Equal(t, 0, top.AStart)
	assert.Equal(t, len(s), top.ALen, "self-alignment must span the whole input")
	assert.Equal(t, 0, top.BStart)
	assert.Equal(t, len(s), top.BLen)
	assert.Equal(t, 2*len(s), top.Score, "four matches at +2 each")
}

// TestLocate_NoSimilarity returns nothing when the inputs share no bytes.
func TestLocate_NoSimilarity(t *testing.T) {
	out, err := align.Locate([]byte("AAAA"), []byte("TTTT"), align.DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, out, "fully dissimilar inputs have no positive-scoring cell")
}

// TestLocate_SharedSubstring extracts an interior shared fragment with the
// correct spans in both inputs.
func TestLocate_SharedSubstring(t *testing.T) {
	a := []byte("XXABCDYY")
	b := []byte("QQABCDZZ")
	opts := align.DefaultOptions()
	opts.MinLength = 3

	out, err := align.Locate(a, b, opts)
	require.NoError(t, err)
	require.Len(t, out, 1, "exactly one qualifying fragment")

	m := out[0]
	assert.Equal(t, align.Match{AStart: 2, ALen: 4, BStart: 2, BLen: 4, Score: 8}, m)
	assert.Equal(t, "ABCD", string(a[m.AStart:m.AStart+m.ALen]))
	assert.Equal(t, "ABCD", string(b[m.BStart:m.BStart+m.BLen]))
}

// TestLocate_Overlap finds a suffix-of-a / prefix-of-b overlap, the classic
// read-overlap shape.
func TestLocate_Overlap(t *testing.T) {
	a := []byte("ABCDEF")
	b := []byte("DEFGHI")
	opts := align.DefaultOptions()
	opts.MinLength = 2

	out, err := align.Locate(a, b, opts)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, align.Match{AStart: 3, ALen: 3, BStart: 0, BLen: 3, Score: 6}, out[0])
}

// TestLocate_Ordering sorts results by descending score, ties broken by the
// earliest starting offset in the first input.
func TestLocate_Ordering(t *testing.T) {
	// Two independent shared fragments on different diagonals.
	a := []byte("ABCDEFuuuuXY")
	b := []byte("XYppppABCDEF")
	opts := align.DefaultOptions()
	opts.MinLength = 2

	out, err := align.Locate(a, b, opts)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, align.Match{AStart: 0, ALen: 6, BStart: 6, BLen: 6, Score: 12}, out[0],
		"highest score first")
	assert.Equal(t, align.Match{AStart: 10, ALen: 2, BStart: 0, BLen: 2, Score: 4}, out[1])
}

// TestLocate_TieBreak orders equal-score matches by AStart.
func TestLocate_TieBreak(t *testing.T) {
	a := []byte("ABCDuvwxQRST")
	b := []byte("QRSTmnopABCD")
	opts := align.DefaultOptions()
	opts.MinLength = 3

	out, err := align.Locate(a, b, opts)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, out[0].Score, out[1].Score, "both fragments score identically")
	assert.Equal(t, 0, out[0].AStart, "tie broken by earliest offset in a")
	assert.Equal(t, 8, out[1].AStart)
}

// TestLocate_MinLengthFilter drops alignments whose spans fall short of the
// configured minimum.
func TestLocate_MinLengthFilter(t *testing.T) {
	a := []byte("ABCDEFuuuuXY")
	b := []byte("XYppppABCDEF")
	opts := align.DefaultOptions()
	opts.MinLength = 3

	out, err := align.Locate(a, b, opts)
	require.NoError(t, err)
	require.Len(t, out, 1, "the two-byte fragment is filtered out")
	assert.Equal(t, 12, out[0].Score)
}

// TestLocate_AminoSelf verifies BLOSUM62 self-alignment: the score is the
// sum of the diagonal entries for each residue.
func TestLocate_AminoSelf(t *testing.T) {
	s := []byte("MKVL") // M=5, K=5, V=4, L=4 on the BLOSUM62 diagonal
	opts := align.DefaultOptions()
	opts.Variant = align.Amino

	out, err := align.Locate(s, s, opts)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, align.Match{AStart: 0, ALen: 4, BStart: 0, BLen: 4, Score: 18}, out[0])
}

// TestLocate_AminoLowercase folds lowercase residues before table lookup.
func TestLocate_AminoLowercase(t *testing.T) {
	opts := align.DefaultOptions()
	opts.Variant = align.Amino

	upper, err := align.Locate([]byte("MKVL"), []byte("MKVL"), opts)
	require.NoError(t, err)
	lower, err := align.Locate([]byte("mkvl"), []byte("mkvl"), opts)
	require.NoError(t, err)
	assert.Equal(t, upper, lower, "case must not affect amino scoring")
}

// TestLocate_AminoUnknownResidues scores unknown bytes as the X residue
// (−1 against everything), so non-residue input yields no alignment.
func TestLocate_AminoUnknownResidues(t *testing.T) {
	opts := align.DefaultOptions()
	opts.Variant = align.Amino

	out, err := align.Locate([]byte("1234"), []byte("1234"), opts)
	require.NoError(t, err)
	assert.Empty(t, out, "unknown residues never score positively, even against themselves")
}
