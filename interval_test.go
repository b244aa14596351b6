package avl

import (
	"cmp"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInterval[T cmp.Ordered](t *testing.T, start, end T) Interval[T] {
	t.Helper()
	iv, err := NewInterval(start, end)
	require.NoError(t, err)
	return iv
}

func TestNewInterval(t *testing.T) {
	iv, err := NewInterval(1, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, iv.Start())
	assert.Equal(t, 5, iv.End())
	assert.Equal(t, "[1, 5]", iv.String())

	p, err := NewInterval(3, 3)
	require.NoError(t, err)
	assert.Equal(t, Point(3), p)

	_, err = NewInterval(5, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInterval)
	assert.Equal(t, ErrInvalidInterval, errors.Cause(err))
	assert.Contains(t, err.Error(), "[5, 1]")

	_, err = NewInterval("b", "a")
	assert.ErrorIs(t, err, ErrInvalidInterval)
}

func TestIntervalCompare(t *testing.T) {
	dataSet := []struct {
		a, b     Interval[int]
		expected int
	}{
		{mustInterval(t, 0, 1), mustInterval(t, 0, 1), 0},
		{mustInterval(t, 0, 1), mustInterval(t, 1, 2), -1},
		{mustInterval(t, 1, 2), mustInterval(t, 0, 9), 1},
		// same start, ordered by length
		{mustInterval(t, 0, 0), mustInterval(t, 0, 1), -1},
		{mustInterval(t, -7, 7), mustInterval(t, -7, -1), 1},
	}

	for _, d := range dataSet {
		assert.Equal(t, d.expected, d.a.Compare(d.b), "%v %v", d.a, d.b)
		assert.Equal(t, -d.expected, d.b.Compare(d.a), "%v %v", d.b, d.a)
	}
}

func TestIntervalOverlaps(t *testing.T) {
	dataSet := []struct {
		a, b     Interval[int]
		expected bool
	}{
		{mustInterval(t, 0, 5), mustInterval(t, 3, 9), true},
		{mustInterval(t, 0, 5), mustInterval(t, 5, 9), true},
		{mustInterval(t, 0, 5), mustInterval(t, 6, 9), false},
		{mustInterval(t, 2, 3), mustInterval(t, 0, 9), true},
		{Point(4), mustInterval(t, 4, 4), true},
		{Point(4), Point(5), false},
	}

	for _, d := range dataSet {
		assert.Equal(t, d.expected, d.a.Overlaps(d.b), "%v %v", d.a, d.b)
		assert.Equal(t, d.expected, d.b.Overlaps(d.a), "%v %v", d.b, d.a)
	}
}

func TestIntervalWithin(t *testing.T) {
	dataSet := []struct {
		a, b     Interval[int]
		expected bool
	}{
		{mustInterval(t, 2, 3), mustInterval(t, 0, 9), true},
		{mustInterval(t, 0, 9), mustInterval(t, 0, 9), true},
		{mustInterval(t, 0, 9), mustInterval(t, 2, 3), false},
		{mustInterval(t, 0, 5), mustInterval(t, 3, 9), false},
		{Point(9), mustInterval(t, 0, 9), true},
	}

	for _, d := range dataSet {
		assert.Equal(t, d.expected, d.a.Within(d.b), "%v %v", d.a, d.b)
	}
}
