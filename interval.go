package avl

import (
	"cmp"
	"fmt"

	"github.com/pkg/errors"
)

// Interval is a closed range [start, end] over an ordered type.
type Interval[T cmp.Ordered] struct {
	start T
	end   T
}

// NewInterval returns a new Interval or an error if end is before start.
func NewInterval[T cmp.Ordered](start, end T) (Interval[T], error) {
	if end < start {
		return Interval[T]{}, errors.Wrapf(ErrInvalidInterval, "[%v, %v]", start, end)
	}

	return Interval[T]{start: start, end: end}, nil
}

// Point returns the degenerate interval [v, v].
func Point[T cmp.Ordered](v T) Interval[T] {
	return Interval[T]{start: v, end: v}
}

// Start returns the lower bound of the interval.
func (i Interval[T]) Start() T {
	return i.start
}

// End returns the upper bound of the interval.
func (i Interval[T]) End() T {
	return i.end
}

// Compare orders intervals by start, then by end, so intervals sharing a
// start are ordered by length.
func (i Interval[T]) Compare(x Interval[T]) int {
	if c := cmp.Compare(i.start, x.start); c != 0 {
		return c
	}
	return cmp.Compare(i.end, x.end)
}

// Overlaps reports whether i and x share at least one point. Touching
// endpoints overlap.
func (i Interval[T]) Overlaps(x Interval[T]) bool {
	return !(i.end < x.start || x.end < i.start)
}

// Within reports whether i is contained in x.
func (i Interval[T]) Within(x Interval[T]) bool {
	return x.start <= i.start && i.end <= x.end
}

func (i Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v]", i.start, i.end)
}
