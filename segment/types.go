package segment

import "errors"

// ErrNilMatcher is returned when Split/Replace is invoked without a matcher.
var ErrNilMatcher = errors.New("segment: nil pattern matcher")

// ErrBadMaxSplits is returned when SplitOptions.MaxSplits is negative.
var ErrBadMaxSplits = errors.New("segment: MaxSplits must be non-negative")

// SplitOptions configures Split.
//
// Fields:
//   - KeepSeparators — when true, every matched separator is emitted as its
//     own entry between the segments it divides.
//   - MaxSplits — cap on the number of separators consumed; once reached,
//     the rest of the input becomes one final segment. 0 means unlimited.
//
// The zero value is valid: drop separators, no cap.
type SplitOptions struct {
	KeepSeparators bool
	MaxSplits      int
}

// cut is one span [start, end) of the subject slated for removal or
// replacement. Cut points are accumulated during a single left-to-right
// scan and consumed when the result is assembled.
type cut struct {
	start, end int
}
