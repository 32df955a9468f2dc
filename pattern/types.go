package pattern

import "errors"

// ErrEmptyLiteral is returned when constructing a Literal from zero bytes;
// a zero-width pattern can never make scan progress.
var ErrEmptyLiteral = errors.New("pattern: empty literal")

// ErrEmptyClass is returned when constructing a Class from an empty byte set.
var ErrEmptyClass = errors.New("pattern: empty byte class")

// ErrMatchOverrun reports a Matcher that claimed a match longer than the
// remaining buffer. It marks a broken collaborator, not a recoverable input
// condition: callers should abort the enclosing operation.
var ErrMatchOverrun = errors.New("pattern: reported match exceeds remaining buffer")

// ErrNegativeMatch reports a Matcher that claimed a negative match length.
var ErrNegativeMatch = errors.New("pattern: reported match length is negative")

// Matcher is the prefix-matching capability: given a buffer and a position,
// it reports the length of the longest match anchored exactly at that
// position, or ok=false when nothing matches there.
//
// Contract:
//   - pos may range from 0 to len(buf) inclusive; matchers must not read
//     outside buf[pos:].
//   - On ok=true, 0 ≤ n ≤ len(buf)-pos must hold.
//   - Matching is stateless: MatchAt mutates neither the matcher nor buf,
//     so a single Matcher may serve concurrent callers.
type Matcher interface {
	MatchAt(buf []byte, pos int) (n int, ok bool)
}

// MatcherFunc adapts a plain function to the Matcher interface.
type MatcherFunc func(buf []byte, pos int) (int, bool)

// MatchAt calls f.
func (f MatcherFunc) MatchAt(buf []byte, pos int) (int, bool) { return f(buf, pos) }

// Check validates a match report (n, at pos) against buf's bounds.
// It returns ErrNegativeMatch or ErrMatchOverrun on contract violations,
// nil otherwise.
//
// Complexity: O(1).
func Check(buf []byte, pos, n int) error {
	if n < 0 {
		return ErrNegativeMatch
	}
	if pos < 0 || pos > len(buf) || n > len(buf)-pos {
		return ErrMatchOverrun
	}

	return nil
}
