package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBalanceRotations(t *testing.T) {
	dataSet := []struct {
		name string
		keys []int
	}{
		{"right rotation", []int{3, 2, 1}},
		{"left rotation", []int{1, 2, 3}},
		{"left-right rotation", []int{3, 1, 2}},
		{"right-left rotation", []int{1, 3, 2}},
	}

	for _, d := range dataSet {
		tree := New(d.keys...)
		requireValid(t, tree)

		root := tree.Root()
		assert.Equal(t, 2, root.Key(), d.name)
		assert.Equal(t, 1, root.Left().Key(), d.name)
		assert.Equal(t, 3, root.Right().Key(), d.name)
		assert.Equal(t, 2, tree.Height(), d.name)
		assert.True(t, root.IsRoot(), d.name)
		assert.False(t, root.Left().IsRoot(), d.name)
		assert.False(t, root.Right().IsRoot(), d.name)
	}
}

func TestBalanceAscendingInsert(t *testing.T) {
	tree := New(0, 1, 2, 3, 4)
	requireValid(t, tree)

	assert.Equal(t, 5, tree.Len())
	assert.Equal(t, 3, tree.Height())

	root := tree.Root()
	assert.Equal(t, 2, root.Key())
	assert.Equal(t, 1, root.Left().Key())
	assert.Equal(t, 2, root.Left().Height())
	assert.Equal(t, 0, root.Left().Left().Key())
	assert.Equal(t, 1, root.Left().Left().Height())
	assert.Equal(t, 3, root.Right().Key())
	assert.Equal(t, 2, root.Right().Height())
	assert.Equal(t, 4, root.Right().Right().Key())
	assert.Equal(t, 1, root.Right().Right().Height())
}

func TestBalanceRemoveRotatesRoot(t *testing.T) {
	tree := New(2, 1, 3, 4)
	oldRoot := tree.Root()

	tree.Remove(1)
	requireValid(t, tree)

	root := tree.Root()
	assert.Equal(t, 3, root.Key())
	assert.Equal(t, 2, root.Left().Key())
	assert.Equal(t, 4, root.Right().Key())
	assert.Nil(t, root.Parent())
	assert.False(t, oldRoot.IsRoot())
	assert.Same(t, root, oldRoot.Parent())
}

func TestBalanceRemoveDoubleRotation(t *testing.T) {
	tree := New(3, 2, 5, 4)

	tree.Remove(2)
	requireValid(t, tree)

	root := tree.Root()
	assert.Equal(t, 4, root.Key())
	assert.Equal(t, 3, root.Left().Key())
	assert.Equal(t, 5, root.Right().Key())
	assert.Equal(t, 2, tree.Height())
}

func TestBalanceDrainInOrder(t *testing.T) {
	keys := make([]int, 0, 128)
	for i := 0; i < 128; i++ {
		keys = append(keys, i)
	}
	tree := New(keys...)

	for i, k := range keys {
		require.NotNil(t, tree.Search(k))
		tree.Remove(k)
		requireValid(t, tree)
		require.Equal(t, len(keys)-i-1, tree.Len())
	}
	assert.Nil(t, tree.Root())
}

func TestBalanceFactor(t *testing.T) {
	var empty *Node[int]
	assert.Equal(t, 0, empty.Balance())
	assert.Equal(t, 0, empty.Height())

	tree := New(2, 1)
	assert.Equal(t, 1, tree.Root().Balance())
	assert.Equal(t, 0, tree.Root().Left().Balance())

	tree.Insert(3)
	assert.Equal(t, 0, tree.Root().Balance())
}
