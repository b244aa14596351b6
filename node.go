package avl

// Key returns the key currently stored in the node. Deletion by value
// substitution may change it while the node stays in the tree.
func (n *Node[K]) Key() K {
	return n.key
}

func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

func (n *Node[K]) Parent() *Node[K] {
	if n == nil {
		return nil
	}
	return n.parent
}

// Height returns the cached height, 0 for a nil node.
func (n *Node[K]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *Node[K]) IsRoot() bool {
	return n != nil && n.isRoot
}

// Balance returns height(left) - height(right).
func (n *Node[K]) Balance() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}

func (n *Node[K]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// find the leftmost node under n
func (n *Node[K]) minimum() *Node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// find the rightmost node under n
func (n *Node[K]) maximum() *Node[K] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// next in-order node
func (n *Node[K]) successor() *Node[K] {
	if n.right != nil {
		return n.right.minimum()
	}
	p := n.parent
	for p != nil && n == p.right {
		n, p = p, p.parent
	}
	return p
}

// previous in-order node
func (n *Node[K]) predecessor() *Node[K] {
	if n.left != nil {
		return n.left.maximum()
	}
	p := n.parent
	for p != nil && n == p.left {
		n, p = p, p.parent
	}
	return p
}

func (n *Node[K]) updateHeight() {
	n.height = max(n.left.Height(), n.right.Height()) + 1
}

// replace the child slot of n that points to old
func (n *Node[K]) replaceChild(old, child *Node[K]) {
	switch old {
	case n.left:
		n.left = child
	case n.right:
		n.right = child
	default:
		corrupt("node %v is not a child of %v", old.key, n.key)
	}
}

// detach clears every link so the node can be collected.
func (n *Node[K]) detach() {
	n.left = nil
	n.right = nil
	n.parent = nil
	n.isRoot = false
	n.height = 0
}
