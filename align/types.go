package align

import "errors"

// ErrUnknownVariant is returned when Options.Variant is not one of the
// enumerated scoring variants. The configuration is rejected before any
// computation begins.
var ErrUnknownVariant = errors.New("align: unknown scoring variant")

// ErrBadMinLength is returned when Options.MinLength is negative.
var ErrBadMinLength = errors.New("align: MinLength must be non-negative")

// Variant selects the substitution scoring scheme used by Locate.
//
//   - Basic — uniform match/mismatch scores over the full byte alphabet;
//     the right default for arbitrary binary or text data.
//   - Amino — BLOSUM62 substitution scores over the 20-letter amino-acid
//     alphabet; bytes outside the alphabet are treated as the unknown
//     residue X.
type Variant int

const (
	// Basic scoring: match +2, mismatch −1, gap −1.
	Basic Variant = iota

	// Amino scoring: BLOSUM62 substitution table, gap −4.
	Amino
)

// Options configures Locate.
//
// Fields:
//   - MinLength — minimum span length (in either input) for an alignment
//     to be reported. 0 reports every positive-scoring alignment.
//   - Variant   — substitution scoring scheme; see Variant.
//
// The zero value is valid and equals DefaultOptions().
type Options struct {
	MinLength int
	Variant   Variant
}

// DefaultOptions returns the canonical defaults: Basic scoring, no
// minimum length.
func DefaultOptions() Options {
	return Options{MinLength: 0, Variant: Basic}
}

// validate rejects malformed Options with a sentinel before any
// computation. Complexity: O(1).
func (o Options) validate() error {
	if o.MinLength < 0 {
		return ErrBadMinLength
	}
	switch o.Variant {
	case Basic, Amino:
		// ok
	default:
		return ErrUnknownVariant
	}

	return nil
}

// Match is one locally aligned substring pair: a span into each input plus
// the Smith–Waterman score of the alignment connecting them.
//
// Spans are half-open in spirit: the aligned bytes of the first input are
// a[AStart : AStart+ALen], likewise for b.
type Match struct {
	AStart, ALen int
	BStart, BLen int
	Score        int
}
