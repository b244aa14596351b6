package avl

// Len returns the number of keys stored in the tree.
func (t *Tree[K]) Len() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.size
}

func (t *Tree[K]) Root() *Node[K] {
	if t == nil {
		return nil
	}
	return t.root
}

// Height returns the height of the root, 0 for an empty tree.
func (t *Tree[K]) Height() int {
	return t.Root().Height()
}

// Insert adds key to the tree and returns its node. If an equal key is
// already stored its node is returned and the tree is left untouched.
func (t *Tree[K]) Insert(key K) *Node[K] {
	n, created := t.insert(key)
	if created {
		t.rebalance(n.parent)
	}
	return n
}

func (t *Tree[K]) insert(key K) (*Node[K], bool) {
	if t.root == nil {
		t.root = newLeaf(key, nil)
		t.root.isRoot = true
		t.size++
		return t.root, true
	}

	curr := t.root
	for {
		c := t.compare(key, curr.key)
		if c == 0 {
			return curr, false
		}

		next := &curr.right
		if c < 0 {
			next = &curr.left
		}
		if *next == nil {
			*next = newLeaf(key, curr)
			t.size++
			return *next, true
		}
		curr = *next
	}
}

// Search returns the node holding key, or nil.
func (t *Tree[K]) Search(key K) *Node[K] {
	curr := t.Root()
	for curr != nil {
		c := t.compare(key, curr.key)
		switch {
		case c == 0:
			return curr
		case c < 0:
			curr = curr.left
		default:
			curr = curr.right
		}
	}
	return nil
}

func (t *Tree[K]) Contains(key K) bool {
	return t.Search(key) != nil
}

// Minimum returns the node with the smallest key, or nil if the tree is empty.
func (t *Tree[K]) Minimum() *Node[K] {
	if t.Root() == nil {
		return nil
	}
	return t.root.minimum()
}

// Maximum returns the node with the largest key, or nil if the tree is empty.
func (t *Tree[K]) Maximum() *Node[K] {
	if t.Root() == nil {
		return nil
	}
	return t.root.maximum()
}

// Predecessor returns the largest stored key less than key. It reports
// false when key is not stored or has no predecessor.
func (t *Tree[K]) Predecessor(key K) (K, bool) {
	var zero K
	n := t.Search(key)
	if n == nil {
		return zero, false
	}
	if p := n.predecessor(); p != nil {
		return p.key, true
	}
	return zero, false
}

// Successor returns the smallest stored key greater than key. It reports
// false when key is not stored or has no successor.
func (t *Tree[K]) Successor(key K) (K, bool) {
	var zero K
	n := t.Search(key)
	if n == nil {
		return zero, false
	}
	if s := n.successor(); s != nil {
		return s.key, true
	}
	return zero, false
}

// Remove deletes key from the tree.
//
// A node with children is removed by value substitution: it takes the key
// of its in-order predecessor (or successor when it has no left child) and
// the donor node is unlinked instead. Remove returns the node that held key
// when it survives in the tree, now holding the donor's key. It returns nil
// when key is absent or its node was a leaf and has been detached.
func (t *Tree[K]) Remove(key K) *Node[K] {
	n := t.Search(key)
	if n == nil {
		return nil
	}

	survivor, site := t.deleteNode(n)
	t.rebalance(site)
	return survivor
}

// deleteNode removes n's key from the tree. It returns n if it is still
// linked, and the parent of the node actually unlinked.
func (t *Tree[K]) deleteNode(n *Node[K]) (survivor, site *Node[K]) {
	if n != t.root && n.parent == nil {
		corrupt("deleting detached node %v", n.key)
	}

	// the donor chain ends at the leaf that gets unlinked
	chain := []*Node[K]{n}
	for d := n; !d.isLeaf(); {
		if d.left != nil {
			d = d.left.maximum()
		} else {
			d = d.right.minimum()
		}
		chain = append(chain, d)
	}

	leaf := chain[len(chain)-1]
	if leaf != t.root {
		if p := leaf.parent; p == nil || (p.left != leaf && p.right != leaf) {
			corrupt("node %v is not linked to its parent", leaf.key)
		}
	}

	for i := 0; i < len(chain)-1; i++ {
		chain[i].key = chain[i+1].key
	}

	site = leaf.parent
	t.unlink(leaf)

	if leaf != n {
		survivor = n
	}
	return survivor, site
}

func (t *Tree[K]) unlink(leaf *Node[K]) {
	if leaf == t.root {
		t.root = nil
	} else {
		leaf.parent.replaceChild(leaf, nil)
	}
	leaf.detach()
	t.size--
}

// Get returns the stored key equal to key.
func (t *Tree[K]) Get(key K) (K, bool) {
	if n := t.Search(key); n != nil {
		return n.key, true
	}
	var zero K
	return zero, false
}

// Set replaces key with value. An equal value is written in place; a
// different one moves to its own position. A missing key inserts value.
func (t *Tree[K]) Set(key, value K) {
	n := t.Search(key)
	if n == nil {
		t.Insert(value)
		return
	}

	if t.compare(key, value) == 0 {
		n.key = value
		t.refreshUp(n)
		return
	}

	t.Remove(key)
	t.Insert(value)
}

// Delete removes key and reports whether it was stored.
func (t *Tree[K]) Delete(key K) bool {
	if !t.Contains(key) {
		return false
	}
	t.Remove(key)
	return true
}

// Walk calls callback for each node in the given order until it returns false.
func (t *Tree[K]) Walk(order Order, callback Callback[K]) {
	t.recursiveWalk(t.Root(), order, callback)
}

func (t *Tree[K]) recursiveWalk(curr *Node[K], order Order, callback Callback[K]) traverseAction {
	if curr == nil {
		return traverseContinue
	}

	if order == PreOrder && !callback(curr) {
		return traverseStop
	}
	if t.recursiveWalk(curr.left, order, callback) == traverseStop {
		return traverseStop
	}
	if order == InOrder && !callback(curr) {
		return traverseStop
	}
	if t.recursiveWalk(curr.right, order, callback) == traverseStop {
		return traverseStop
	}
	if order == PostOrder && !callback(curr) {
		return traverseStop
	}

	return traverseContinue
}

// Keys returns the stored keys in the given order.
func (t *Tree[K]) Keys(order Order) []K {
	keys := make([]K, 0, t.Len())
	t.Walk(order, func(n *Node[K]) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys
}

// Map replaces every key with transform(key), visiting keys in order, and
// returns the new keys. transform must preserve the relative order of keys.
func (t *Tree[K]) Map(transform func(K) K) []K {
	keys := make([]K, 0, t.Len())
	t.Walk(InOrder, func(n *Node[K]) bool {
		n.key = transform(n.key)
		keys = append(keys, n.key)
		return true
	})

	if t.aug != nil {
		t.Walk(PostOrder, func(n *Node[K]) bool {
			t.aug.refresh(n)
			return true
		})
	}
	return keys
}

// Iterator returns a lazy iterator over the nodes in the given order.
// Every call starts a fresh walk.
func (t *Tree[K]) Iterator(order Order) Iterator[K] {
	it := &iterator[K]{order: order}
	root := t.Root()

	switch order {
	case PreOrder:
		if root != nil {
			it.stack = append(it.stack, root)
		}
	case InOrder:
		it.pushLeft(root)
	case PostOrder:
		it.pushLeaf(root)
	}

	it.advance()
	return it
}

func (it *iterator[K]) HasNext() bool {
	return it != nil && it.next != nil
}

func (it *iterator[K]) Next() (*Node[K], error) {
	if !it.HasNext() {
		return nil, ErrNoMoreNodes
	}
	cur := it.next
	it.advance()
	return cur, nil
}

func (it *iterator[K]) pop() *Node[K] {
	n := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	return n
}

// push n and its chain of left children
func (it *iterator[K]) pushLeft(n *Node[K]) {
	for ; n != nil; n = n.left {
		it.stack = append(it.stack, n)
	}
}

// push the path from n to the first leaf of a post-order walk
func (it *iterator[K]) pushLeaf(n *Node[K]) {
	for n != nil {
		it.stack = append(it.stack, n)
		if n.left != nil {
			n = n.left
		} else {
			n = n.right
		}
	}
}

func (it *iterator[K]) advance() {
	if len(it.stack) == 0 {
		it.next = nil
		return
	}

	n := it.pop()
	switch it.order {
	case PreOrder:
		if n.right != nil {
			it.stack = append(it.stack, n.right)
		}
		if n.left != nil {
			it.stack = append(it.stack, n.left)
		}
	case InOrder:
		it.pushLeft(n.right)
	case PostOrder:
		if len(it.stack) > 0 {
			top := it.stack[len(it.stack)-1]
			if top.left == n {
				it.pushLeaf(top.right)
			}
		}
	}
	it.next = n
}
