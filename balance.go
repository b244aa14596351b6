package avl

func (t *Tree[K]) refresh(n *Node[K]) {
	n.updateHeight()
	if t.aug != nil {
		t.aug.refresh(n)
	}
}

// refreshUp recomputes heights and payloads from n up to the root.
func (t *Tree[K]) refreshUp(n *Node[K]) {
	for ; n != nil; n = n.parent {
		t.refresh(n)
	}
}

// rebalance restores the AVL invariant after a structural change under site.
//
// Only ancestors of site, and later of nodes moved by a rotation, can be
// out of balance. The topmost of them is rotated first and the search is
// repeated until none is left.
func (t *Tree[K]) rebalance(site *Node[K]) {
	if site == nil {
		return
	}
	t.refreshUp(site)

	suspects := []*Node[K]{site}
	for {
		n := topmostUnbalanced(suspects)
		if n == nil {
			return
		}
		suspects = append(suspects, t.rotate(n)...)
	}
}

func topmostUnbalanced[K any](suspects []*Node[K]) *Node[K] {
	var (
		found      *Node[K]
		foundDepth int
		path       []*Node[K]
	)

	for _, s := range suspects {
		path = path[:0]
		for n := s; n != nil; n = n.parent {
			path = append(path, n)
		}

		// path ends at the root, depth 0
		for depth := 0; depth < len(path); depth++ {
			n := path[len(path)-1-depth]
			if b := n.Balance(); b >= 2 || b <= -2 {
				if found == nil || depth < foundDepth {
					found, foundDepth = n, depth
				}
				break
			}
		}
	}
	return found
}

// rotate fixes the unbalanced node n and returns every node it moved.
func (t *Tree[K]) rotate(n *Node[K]) []*Node[K] {
	var touched []*Node[K]

	if n.Balance() >= 2 {
		// left heavy
		if child := n.left; child.Balance() <= -1 {
			pivot := t.rotateLeft(child)
			touched = append(touched, child, pivot)
		}
		pivot := t.rotateRight(n)
		return append(touched, n, pivot)
	}

	// right heavy
	if child := n.right; child.Balance() >= 1 {
		pivot := t.rotateRight(child)
		touched = append(touched, child, pivot)
	}
	pivot := t.rotateLeft(n)
	return append(touched, n, pivot)
}

// rotateRight lifts n.left into n's place and returns it.
func (t *Tree[K]) rotateRight(n *Node[K]) *Node[K] {
	pivot := n.left
	if pivot == nil {
		corrupt("right rotation of %v without left child", n.key)
	}
	t.checkLinked(n)

	n.left = pivot.right
	if n.left != nil {
		n.left.parent = n
	}
	t.replace(n, pivot)
	pivot.right = n
	n.parent = pivot

	t.refresh(n)
	t.refreshUp(pivot)
	return pivot
}

// rotateLeft lifts n.right into n's place and returns it.
func (t *Tree[K]) rotateLeft(n *Node[K]) *Node[K] {
	pivot := n.right
	if pivot == nil {
		corrupt("left rotation of %v without right child", n.key)
	}
	t.checkLinked(n)

	n.right = pivot.left
	if n.right != nil {
		n.right.parent = n
	}
	t.replace(n, pivot)
	pivot.left = n
	n.parent = pivot

	t.refresh(n)
	t.refreshUp(pivot)
	return pivot
}

// replace puts n where old is, taking over the root when old was the root.
func (t *Tree[K]) replace(old, n *Node[K]) {
	n.parent = old.parent
	if old == t.root {
		old.isRoot = false
		n.isRoot = true
		t.root = n
		return
	}
	old.parent.replaceChild(old, n)
}

func (t *Tree[K]) checkLinked(n *Node[K]) {
	if n == t.root {
		if n.parent != nil || !n.isRoot {
			corrupt("root %v has a parent or lost its root flag", n.key)
		}
		return
	}
	if p := n.parent; p == nil || (p.left != n && p.right != n) {
		corrupt("node %v is not linked to its parent", n.key)
	}
}
