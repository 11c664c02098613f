// File: view/view_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/memview/api"
	"github.com/momentics/memview/seq"
	"github.com/momentics/memview/view"
)

// mustPanicCode runs fn and requires it to panic with a structured error
// carrying the given code.
func mustPanicCode(t *testing.T, code api.ErrorCode, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(*api.Error)
		require.True(t, ok, "panic value %v is not *api.Error", r)
		require.Equal(t, code, err.Code)
	}()
	fn()
}

func TestNewSpansWholeVector(t *testing.T) {
	vec := seq.VectorOf(10, 20, 30)
	v, err := view.New(vec)
	require.NoError(t, err)
	assert.Equal(t, 3, v.Len())
	assert.False(t, v.IsEmpty())
	for i := 0; i < 3; i++ {
		assert.Same(t, vec.At(i), v.At(i), "element %d must alias the vector", i)
	}
}

func TestNewNilVector(t *testing.T) {
	_, err := view.New[int](nil)
	require.ErrorIs(t, err, api.ErrNilSequence)
}

func TestNewAtWindowAliases(t *testing.T) {
	vec := seq.VectorOf(10, 20, 30, 40, 50)
	v, err := view.NewAt(vec, 1, 3)
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
	assert.Equal(t, 20, v.Get(0))
	assert.Equal(t, 40, v.Get(2))
	for i := 0; i < 3; i++ {
		assert.Same(t, vec.At(1+i), v.At(i))
	}

	// Writes through the vector are visible: the view copies nothing.
	*vec.At(2) = 99
	assert.Equal(t, 99, v.Get(1))
}

func TestNewAtRejectsBadWindows(t *testing.T) {
	vec := seq.VectorOf(10, 20, 30, 40, 50)
	for _, c := range []struct{ start, length int }{
		{4, 2}, // 4+2 > 5
		{-1, 1},
		{0, 6},
		{6, 0},
		{2, -1},
	} {
		_, err := view.NewAt(vec, c.start, c.length)
		assert.ErrorIs(t, err, api.ErrOutOfRange, "NewAt(%d, %d)", c.start, c.length)
	}

	_, err := view.NewAt[int](nil, 0, 0)
	assert.ErrorIs(t, err, api.ErrNilSequence)

	// Full-length and empty-tail windows are valid.
	v, err := view.NewAt(vec, 0, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, v.Len())
	v, err = view.NewAt(vec, 5, 0)
	require.NoError(t, err)
	assert.True(t, v.IsEmpty())
}

func TestOfTreatsNilAsEmpty(t *testing.T) {
	v := view.Of[int](nil)
	assert.True(t, v.IsEmpty())
	assert.Equal(t, 0, v.Len())

	vec := seq.VectorOf(1, 2)
	assert.Equal(t, 2, view.Of(vec).Len())
}

func TestOfSegment(t *testing.T) {
	vec := seq.VectorOf(10, 20, 30, 40, 50)
	s, err := seq.NewSegment(vec, 1, 3)
	require.NoError(t, err)

	v := view.OfSegment(s)
	require.Equal(t, 3, v.Len())
	assert.Same(t, vec.At(1), v.At(0))

	// Zero segment converts to the canonical empty view.
	assert.True(t, view.OfSegment(seq.Segment[int]{}).IsEmpty())
}

func TestIndexingOutOfRangePanics(t *testing.T) {
	v := view.FromSlice([]int{1, 2, 3})
	mustPanicCode(t, api.ErrCodeIndexOutOfRange, func() { v.At(3) })
	mustPanicCode(t, api.ErrCodeIndexOutOfRange, func() { v.At(-1) })

	empty := view.FromSlice[int](nil)
	mustPanicCode(t, api.ErrCodeIndexOutOfRange, func() { empty.At(0) })
}

func TestSliceTail(t *testing.T) {
	vec := seq.VectorOf(10, 20, 30, 40, 50)
	v, err := view.NewAt(vec, 1, 3)
	require.NoError(t, err)

	tail := v.Slice(1)
	require.Equal(t, 2, tail.Len())
	assert.Equal(t, 30, tail.Get(0))
	assert.Equal(t, 40, tail.Get(1))
	assert.Same(t, v.At(1), tail.At(0), "slice must alias, not copy")

	// The receiver is untouched.
	assert.Equal(t, 3, v.Len())

	// start == Len() is the empty tail; beyond panics.
	assert.True(t, v.Slice(3).IsEmpty())
	mustPanicCode(t, api.ErrCodeOutOfRange, func() { v.Slice(4) })
	mustPanicCode(t, api.ErrCodeOutOfRange, func() { v.Slice(-1) })
}

func TestSliceRange(t *testing.T) {
	vec := seq.VectorOf(10, 20, 30, 40, 50)
	v, err := view.NewAt(vec, 1, 3)
	require.NoError(t, err)

	mid := v.SliceRange(1, 1)
	require.Equal(t, 1, mid.Len())
	assert.Equal(t, 30, mid.Get(0))

	mustPanicCode(t, api.ErrCodeOutOfRange, func() { v.SliceRange(2, 2) })
	mustPanicCode(t, api.ErrCodeOutOfRange, func() { v.SliceRange(0, -1) })
}

func TestSliceComposition(t *testing.T) {
	base := view.FromSlice([]int{0, 1, 2, 3, 4, 5, 6, 7})
	v := base.SliceRange(2, 5).Slice(1).SliceRange(0, 3)
	require.Equal(t, 3, v.Len())
	for i := 0; i < 3; i++ {
		assert.Equal(t, 3+i, v.Get(i))
		assert.Same(t, base.At(3+i), v.At(i))
	}
}

func TestEqualityIsIdentity(t *testing.T) {
	vec := seq.VectorOf(1, 2, 3, 4, 5)
	a, err := view.NewAt(vec, 1, 3)
	require.NoError(t, err)
	b, err := view.NewAt(vec, 1, 3)
	require.NoError(t, err)

	// Same origin element, same length.
	assert.True(t, a == b)

	// Same origin, different length.
	c, err := view.NewAt(vec, 1, 2)
	require.NoError(t, err)
	assert.True(t, a != c)

	// Distinct backing memory with identical contents stays unequal.
	other := seq.VectorOf(2, 3, 4)
	d, err := view.New(other)
	require.NoError(t, err)
	assert.True(t, a != d)

	// Empty views over nothing are identical values.
	assert.True(t, view.Of[int](nil) == view.FromSlice[int](nil))
}

func TestViewValueIsImmutable(t *testing.T) {
	vec := seq.VectorOf(1, 2, 3, 4)
	v, err := view.New(vec)
	require.NoError(t, err)

	before := v
	_ = v.Slice(2)
	_ = v.SliceRange(1, 1)
	_ = v.ToSlice()
	assert.True(t, v == before, "operations must not mutate the receiver")
}
