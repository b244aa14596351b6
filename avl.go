package avl

import (
	"github.com/pkg/errors"
)

const (
	PreOrder Order = iota
	InOrder
	PostOrder
)

const (
	traverseStop traverseAction = iota
	traverseContinue
)

var (
	ErrNoMoreNodes = errors.New("There are no more nodes in the tree")

	// ErrInvalidInterval is returned when an interval ends before it starts.
	ErrInvalidInterval = errors.New("interval end before start")

	// ErrCorruptTree marks a broken structural invariant. It is only ever
	// raised through panic.
	ErrCorruptTree = errors.New("corrupt tree")
)

type (
	// Order selects the visiting order of a traversal.
	Order int

	Tree[K any] struct {
		size    int
		root    *Node[K]
		compare func(a, b K) int
		// nil for plain trees
		aug augmenter[K]
	}

	Node[K any] struct {
		key    K
		left   *Node[K]
		right  *Node[K]
		parent *Node[K]
		// 1 for a leaf, 0 for a missing child
		height int
		isRoot bool
		// augmentation payload, maintained by the tree's augmenter
		bound K
	}

	// augmenter refreshes a node's payload from its key and children.
	augmenter[K any] interface {
		refresh(n *Node[K])
	}

	// Callback returns false to stop a walk.
	Callback[K any] func(n *Node[K]) bool

	traverseAction int

	iterator[K any] struct {
		order Order
		next  *Node[K]
		stack []*Node[K]
	}
)

func (o Order) String() string {
	return []string{"PreOrder", "InOrder", "PostOrder"}[o]
}

func newLeaf[K any](key K, parent *Node[K]) *Node[K] {
	return &Node[K]{
		key:    key,
		parent: parent,
		height: 1,
		bound:  key,
	}
}

func corrupt(format string, args ...interface{}) {
	panic(errors.Wrapf(ErrCorruptTree, format, args...))
}
