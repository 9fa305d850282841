package tensor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/textspan/column"
)

func newTestArray(t *testing.T) *Array {
	t.Helper()
	a, err := New([]float32{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
		10, 11, 12,
	}, []int{4, 3})
	require.NoError(t, err)
	return a
}

func TestNewValidation(t *testing.T) {
	_, err := New([]float32{1, 2, 3}, []int{2, 2})
	var shapeErr *ShapeMismatchError
	require.ErrorAs(t, err, &shapeErr)

	_, err = New([]float32{1}, nil)
	assert.Error(t, err, "missing row dimension")

	a, err := New(nil, []int{0, 3})
	require.NoError(t, err)
	assert.Equal(t, 0, a.Len())
}

func TestNewCopiesByDefault(t *testing.T) {
	block := []float32{1, 2, 3, 4}
	a, err := New(block, []int{2, 2})
	require.NoError(t, err)

	block[0] = 99
	assert.Equal(t, float32(1), a.Data()[0], "constructor copies the block")

	aliased, err := New(block, []int{2, 2}, WithoutCopy())
	require.NoError(t, err)
	assert.Equal(t, float32(99), aliased.Data()[0])
}

func TestNewFromRows(t *testing.T) {
	r0, err := NewTensor([]float32{1, 2, 3}, 3)
	require.NoError(t, err)
	r1, err := NewTensor([]float32{4, 5, 6}, 3)
	require.NoError(t, err)

	a, err := NewFromRows([]Tensor{r0, r1})
	require.NoError(t, err)
	require.Equal(t, 2, a.Len())

	got0, err := a.Row(0)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3}, got0.Data())
	got1, err := a.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []float32{4, 5, 6}, got1.Data())
}

func TestNewFromRowsShapeMismatch(t *testing.T) {
	r0, err := NewTensor([]float32{1, 2, 3}, 3)
	require.NoError(t, err)
	r1, err := NewTensor([]float32{4, 5, 6, 7}, 4)
	require.NoError(t, err)

	_, err = NewFromRows([]Tensor{r0, r1})
	var shapeErr *ShapeMismatchError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, []int{3}, shapeErr.Want)
	assert.Equal(t, []int{4}, shapeErr.Got)
}

func TestRow(t *testing.T) {
	a := newTestArray(t)

	row, err := a.Row(2)
	require.NoError(t, err)
	assert.Equal(t, []float32{7, 8, 9}, row.Data())
	assert.Equal(t, []int{3}, row.Shape())
	assert.Equal(t, float32(8), row.At(1))

	_, err = a.Row(4)
	var oor *column.IndexOutOfRangeError
	assert.ErrorAs(t, err, &oor)
}

func TestTensorAt(t *testing.T) {
	m, err := NewTensor([]float32{1, 2, 3, 4, 5, 6}, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, float32(6), m.At(1, 2))
	assert.Equal(t, float32(2), m.At(0, 1))
}

func TestSliceAndTake(t *testing.T) {
	a := newTestArray(t)

	got, err := a.Slice(column.Indices(3, 0))
	require.NoError(t, err)
	sub := got.(*Array)
	assert.Equal(t, []float32{10, 11, 12, 1, 2, 3}, sub.Data())
	assert.Equal(t, []int{2, 3}, sub.Shape())

	taken, err := a.Take([]int{-1, -4}, false)
	require.NoError(t, err)
	assert.Equal(t, []float32{10, 11, 12, 1, 2, 3}, taken.(*Array).Data())

	_, err = a.Take([]int{-1}, true)
	assert.ErrorIs(t, err, column.ErrUnsupportedFill)

	indices := []int{1, 1, 2}
	plain, err := a.Take(indices, false)
	require.NoError(t, err)
	filled, err := a.Take(indices, true)
	require.NoError(t, err)
	assert.Equal(t, plain.(*Array).Data(), filled.(*Array).Data())
}

func TestConcat(t *testing.T) {
	a := newTestArray(t)

	left, err := a.Slice(column.Range(0, 1))
	require.NoError(t, err)
	right, err := a.Slice(column.Range(1, 4))
	require.NoError(t, err)

	joined, err := left.Concat([]column.Column{right})
	require.NoError(t, err)
	assert.Equal(t, a.Data(), joined.(*Array).Data())

	other, err := New([]float32{1, 2}, []int{1, 2})
	require.NoError(t, err)
	_, err = a.Concat([]column.Column{other})
	var shapeErr *ShapeMismatchError
	assert.ErrorAs(t, err, &shapeErr)

	_, err = ConcatArrays(nil)
	assert.ErrorIs(t, err, column.ErrIncompatibleConcat)
}

func TestCompare(t *testing.T) {
	a, err := New([]float32{1, 5, 3, 4}, []int{2, 2})
	require.NoError(t, err)
	b, err := New([]float32{1, 2, 7, 4}, []int{2, 2})
	require.NoError(t, err)

	eq, err := a.Equal(b)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 0, 0, 1}, eq.Data())
	assert.Equal(t, a.Shape(), eq.Shape())

	lt, err := a.Less(b)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0, 1, 0}, lt.Data())

	ge, err := a.GreaterEqual(b)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 1, 0, 1}, ge.Data())

	narrow, err := New([]float32{1, 2}, []int{2, 1})
	require.NoError(t, err)
	var shapeErr *ShapeMismatchError
	_, err = a.Equal(narrow)
	assert.ErrorAs(t, err, &shapeErr)
	_, err = a.Greater(nil)
	assert.ErrorAs(t, err, &shapeErr)
}

func TestIsMissing(t *testing.T) {
	nan := float32(math.NaN())
	a, err := New([]float32{
		1, 2,
		nan, 4,
		5, nan,
		7, 8,
	}, []int{4, 2})
	require.NoError(t, err)

	assert.Equal(t, []bool{false, true, true, false}, a.IsMissing())
}

func TestUnsupportedOperations(t *testing.T) {
	a := newTestArray(t)

	row, err := NewTensor([]float32{0, 0, 0}, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, a.Set(0, row), column.ErrUnsupported)

	_, err = a.Sum()
	assert.ErrorIs(t, err, column.ErrUnsupported)
	_, err = a.Mean()
	assert.ErrorIs(t, err, column.ErrUnsupported)
}

func TestCopyIndependence(t *testing.T) {
	a := newTestArray(t)
	dup := a.Copy().(*Array)

	assert.Equal(t, a.Data(), dup.Data())
	dup.Data()[0] = 42
	assert.Equal(t, float32(1), a.Data()[0])
}

func TestValue(t *testing.T) {
	a := newTestArray(t)
	v, err := a.Value(1)
	require.NoError(t, err)
	row, ok := v.(Tensor)
	require.True(t, ok)
	assert.Equal(t, []float32{4, 5, 6}, row.Data())
}
