package avl

import "cmp"

// IntervalTree is an AVL tree of intervals where every node also tracks the
// greatest end reachable in its subtree.
type IntervalTree[T cmp.Ordered] struct {
	*Tree[Interval[T]]
}

// maxEnd keeps a node's bound set to the interval with the greatest end
// among the node and its descendants.
type maxEnd[T cmp.Ordered] struct{}

func (maxEnd[T]) refresh(n *Node[Interval[T]]) {
	n.bound = n.key
	if l := n.left; l != nil && l.bound.end > n.bound.end {
		n.bound = l.bound
	}
	if r := n.right; r != nil && r.bound.end > n.bound.end {
		n.bound = r.bound
	}
}

// MaxEnd returns the greatest end among n's interval and its descendants.
func MaxEnd[T cmp.Ordered](n *Node[Interval[T]]) T {
	return n.bound.end
}

// Overlaps returns every stored interval that overlaps q, visiting a node
// before its left subtree and its left subtree before its right one.
func (t *IntervalTree[T]) Overlaps(q Interval[T]) []Interval[T] {
	return t.overlaps(t.Root(), q, nil)
}

func (t *IntervalTree[T]) overlaps(n *Node[Interval[T]], q Interval[T], res []Interval[T]) []Interval[T] {
	// nothing below ends late enough
	if n == nil || n.bound.end < q.start {
		return res
	}

	if n.key.Overlaps(q) {
		res = append(res, n.key)
	}
	res = t.overlaps(n.left, q, res)
	// right subtree starts at or after n
	if n.key.start <= q.end {
		res = t.overlaps(n.right, q, res)
	}
	return res
}

// Within returns every stored interval that contains q, in the same order
// as Overlaps.
func (t *IntervalTree[T]) Within(q Interval[T]) []Interval[T] {
	return t.within(t.Root(), q, nil)
}

func (t *IntervalTree[T]) within(n *Node[Interval[T]], q Interval[T], res []Interval[T]) []Interval[T] {
	if n == nil || n.bound.end < q.end {
		return res
	}

	if q.Within(n.key) {
		res = append(res, n.key)
	}
	res = t.within(n.left, q, res)
	if n.key.start <= q.start {
		res = t.within(n.right, q, res)
	}
	return res
}

// Stab returns every stored interval containing p.
func (t *IntervalTree[T]) Stab(p T) []Interval[T] {
	return t.Overlaps(Point(p))
}

// FirstOverlapping returns the smallest stored interval overlapping q.
func (t *IntervalTree[T]) FirstOverlapping(q Interval[T]) (Interval[T], bool) {
	if n := t.firstOverlapping(t.Root(), q); n != nil {
		return n.key, true
	}
	return Interval[T]{}, false
}

func (t *IntervalTree[T]) firstOverlapping(n *Node[Interval[T]], q Interval[T]) *Node[Interval[T]] {
	if n == nil || n.bound.end < q.start {
		return nil
	}

	if found := t.firstOverlapping(n.left, q); found != nil {
		return found
	}
	if n.key.Overlaps(q) {
		return n
	}
	if n.key.start <= q.end {
		return t.firstOverlapping(n.right, q)
	}
	return nil
}
