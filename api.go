package avl

import "cmp"

type Iterator[K any] interface {
	HasNext() bool
	Next() (*Node[K], error)
}

// New builds a tree of naturally ordered keys by inserting keys in order.
func New[K cmp.Ordered](keys ...K) *Tree[K] {
	return NewFunc(cmp.Compare[K], keys...)
}

// NewFunc builds a tree ordered by compare, which must be a total order
// returning a negative, zero or positive result.
func NewFunc[K any](compare func(a, b K) int, keys ...K) *Tree[K] {
	t := &Tree[K]{compare: compare}
	for _, k := range keys {
		t.Insert(k)
	}
	return t
}

// NewIntervalTree builds an interval tree by inserting ivs in order.
func NewIntervalTree[T cmp.Ordered](ivs ...Interval[T]) *IntervalTree[T] {
	t := &IntervalTree[T]{
		Tree: &Tree[Interval[T]]{
			compare: Interval[T].Compare,
			aug:     maxEnd[T]{},
		},
	}
	for _, iv := range ivs {
		t.Insert(iv)
	}
	return t
}
