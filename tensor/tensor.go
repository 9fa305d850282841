package tensor

import (
	"errors"
	"fmt"
	"slices"

	"github.com/chewxy/math32"

	"github.com/hupe1980/textspan/column"
)

// ShapeMismatchError indicates tensors of differing shape combined in one
// operation (stacking rows, elementwise comparison, concat).
type ShapeMismatchError struct {
	Want []int
	Got  []int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("shape mismatch: want %v, got %v", e.Want, e.Got)
}

// Tensor is a single n-dimensional float32 tensor: one row of an Array.
// The zero value is an empty scalar-less tensor.
type Tensor struct {
	data  []float32
	shape []int
}

// NewTensor builds a tensor from flat row-major data and a shape.
// len(data) must equal the product of the shape dimensions.
func NewTensor(data []float32, shape ...int) (Tensor, error) {
	if n := numElems(shape); n != len(data) {
		return Tensor{}, &ShapeMismatchError{Want: shape, Got: []int{len(data)}}
	}
	return Tensor{data: data, shape: shape}, nil
}

// Shape returns the tensor's dimensions.
// The returned slice aliases internal memory; do not modify.
func (t Tensor) Shape() []int { return t.shape }

// Data returns the flat row-major elements.
// The returned slice aliases internal memory; do not modify.
func (t Tensor) Data() []float32 { return t.data }

// Len returns the total number of elements.
func (t Tensor) Len() int { return len(t.data) }

// At returns the element at the given n-dimensional index, row-major.
func (t Tensor) At(idx ...int) float32 {
	flat := 0
	for d, i := range idx {
		flat = flat*t.shape[d] + i
	}
	return t.data[flat]
}

func numElems(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// Array is a columnar store of fixed-shape tensors, one per row, backed by
// a single contiguous row-major block. All rows share the same per-row
// shape. The column is immutable after construction.
type Array struct {
	data  []float32 // contiguous block: row i = data[i*cell : (i+1)*cell]
	shape []int     // full shape: rows followed by the per-row shape
	cell  int       // elements per row
}

type options struct {
	alias bool
}

// Option configures Array construction.
type Option func(*options)

// WithoutCopy makes New alias the caller's block instead of copying it
// into a fresh contiguous slice. The caller must not modify the block
// afterwards; the column is assumed immutable.
func WithoutCopy() Option {
	return func(o *options) {
		o.alias = true
	}
}

// New builds a tensor column from a pre-stacked flat block and its full
// shape (row count first, then the per-row shape). len(data) must equal
// the product of the shape dimensions, else ShapeMismatchError. The block
// is copied unless WithoutCopy is given.
func New(data []float32, shape []int, opts ...Option) (*Array, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if len(shape) == 0 {
		return nil, errors.New("tensor: shape must include a row dimension")
	}
	if n := numElems(shape); n != len(data) {
		return nil, &ShapeMismatchError{Want: shape, Got: []int{len(data)}}
	}
	if !o.alias {
		data = slices.Clone(data)
	}
	return &Array{
		data:  data,
		shape: slices.Clone(shape),
		cell:  numElems(shape[1:]),
	}, nil
}

// NewFromRows stacks equal-shape tensors into a column.
// Rows of differing shape fail with ShapeMismatchError.
func NewFromRows(rows []Tensor) (*Array, error) {
	if len(rows) == 0 {
		return nil, errors.New("tensor: no rows to stack")
	}
	rowShape := rows[0].shape
	cell := numElems(rowShape)
	data := make([]float32, 0, len(rows)*cell)
	for _, r := range rows {
		if !slices.Equal(r.shape, rowShape) {
			return nil, &ShapeMismatchError{Want: rowShape, Got: r.shape}
		}
		data = append(data, r.data...)
	}
	shape := append([]int{len(rows)}, rowShape...)
	return &Array{data: data, shape: shape, cell: cell}, nil
}

// newArrayTrusted wraps a block whose length is already consistent with
// the shape. Used by slice/take/compare paths.
func newArrayTrusted(data []float32, shape []int, cell int) *Array {
	return &Array{data: data, shape: shape, cell: cell}
}

// Len returns the number of rows.
func (a *Array) Len() int { return a.shape[0] }

// Shape returns the full shape: row count followed by the per-row shape.
// The returned slice aliases internal memory; do not modify.
func (a *Array) Shape() []int { return a.shape }

// RowShape returns the shape shared by every row.
// The returned slice aliases internal memory; do not modify.
func (a *Array) RowShape() []int { return a.shape[1:] }

// Data returns the contiguous backing block.
// The returned slice aliases internal memory; do not modify.
func (a *Array) Data() []float32 { return a.data }

// Row returns the raw tensor at row i, not wrapped in a column.
// The returned tensor aliases the backing block.
func (a *Array) Row(i int) (Tensor, error) {
	if err := column.CheckIndex(i, a.Len()); err != nil {
		return Tensor{}, err
	}
	start := i * a.cell
	return Tensor{
		data:  a.data[start : start+a.cell : start+a.cell],
		shape: a.shape[1:],
	}, nil
}

// Value returns the row at i as a Tensor.
func (a *Array) Value(i int) (any, error) {
	return a.Row(i)
}

// Slice returns a new column containing the selected rows.
func (a *Array) Slice(sel column.Selection) (column.Column, error) {
	rows, err := sel.Resolve(a.Len())
	if err != nil {
		return nil, err
	}
	return a.gather(rows), nil
}

// Take gathers rows by position. See column.ResolveTake for index rules.
func (a *Array) Take(indices []int, allowFill bool) (column.Column, error) {
	rows, err := column.ResolveTake(indices, a.Len(), allowFill)
	if err != nil {
		return nil, err
	}
	return a.gather(rows), nil
}

// Copy deep-duplicates the backing block.
func (a *Array) Copy() column.Column {
	return newArrayTrusted(slices.Clone(a.data), slices.Clone(a.shape), a.cell)
}

// Concat appends other tensor columns of the identical per-row shape.
func (a *Array) Concat(others []column.Column) (column.Column, error) {
	arrs := make([]*Array, 0, len(others)+1)
	arrs = append(arrs, a)
	for _, c := range others {
		b, ok := c.(*Array)
		if !ok {
			return nil, fmt.Errorf("%w: %T is not a tensor column", column.ErrIncompatibleConcat, c)
		}
		arrs = append(arrs, b)
	}
	return ConcatArrays(arrs)
}

// ConcatArrays concatenates tensor columns in input order. All inputs must
// share the per-row shape, else ShapeMismatchError.
func ConcatArrays(arrs []*Array) (*Array, error) {
	if len(arrs) == 0 {
		return nil, fmt.Errorf("%w: no input columns", column.ErrIncompatibleConcat)
	}
	rowShape := arrs[0].RowShape()
	rows := 0
	for _, b := range arrs {
		if !slices.Equal(b.RowShape(), rowShape) {
			return nil, &ShapeMismatchError{Want: rowShape, Got: b.RowShape()}
		}
		rows += b.Len()
	}
	data := make([]float32, 0, rows*arrs[0].cell)
	for _, b := range arrs {
		data = append(data, b.data...)
	}
	shape := append([]int{rows}, rowShape...)
	return newArrayTrusted(data, shape, arrs[0].cell), nil
}

// IsMissing reports, per row, whether the row contains at least one NaN.
func (a *Array) IsMissing() []bool {
	out := make([]bool, a.Len())
	for i := range out {
		start := i * a.cell
		for _, v := range a.data[start : start+a.cell] {
			if math32.IsNaN(v) {
				out[i] = true
				break
			}
		}
	}
	return out
}

// Set is not supported: tensor columns are write-once after construction.
func (a *Array) Set(i int, v Tensor) error {
	return fmt.Errorf("%w: tensor columns are write-once", column.ErrUnsupported)
}

// Sum is not supported in this version.
func (a *Array) Sum() (Tensor, error) {
	return Tensor{}, fmt.Errorf("%w: reductions are not implemented", column.ErrUnsupported)
}

// Mean is not supported in this version.
func (a *Array) Mean() (Tensor, error) {
	return Tensor{}, fmt.Errorf("%w: reductions are not implemented", column.ErrUnsupported)
}

func (a *Array) gather(rows []int) *Array {
	data := make([]float32, 0, len(rows)*a.cell)
	for _, i := range rows {
		start := i * a.cell
		data = append(data, a.data[start:start+a.cell]...)
	}
	shape := append([]int{len(rows)}, a.shape[1:]...)
	return newArrayTrusted(data, shape, a.cell)
}

var _ column.Column = (*Array)(nil)
