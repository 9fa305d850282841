package column

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompatibleConcat is returned when concatenation inputs are empty,
	// of different container kinds, or reference different shared documents
	// or token tables.
	ErrIncompatibleConcat = errors.New("incompatible concat")

	// ErrUnsupportedFill is returned when Take is called with allowFill=true
	// and at least one negative index. Fill values are not implemented.
	ErrUnsupportedFill = errors.New("fill on take not supported")

	// ErrUnsupported is returned by operations that are intentionally absent
	// in this version (tensor mutation, reductions).
	ErrUnsupported = errors.New("operation not supported")
)

// IndexOutOfRangeError indicates a row index outside [0, Len).
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index out of range: %d (len %d)", e.Index, e.Len)
}

// Column is the capability set every columnar container implements.
//
// Containers are immutable after construction: every method either reads or
// returns a new container. A failed call leaves all existing containers
// unchanged. Callers should treat returned errors as programming errors to
// be fixed, not transient conditions to retry.
type Column interface {
	// Len returns the number of rows.
	Len() int

	// Value returns the row at i as the container's row type
	// (span.CharSpan, span.TokenSpan, tensor.Tensor).
	Value(i int) (any, error)

	// Slice returns a new column containing only the selected rows.
	// Shared document/token references are aliased, never copied.
	Slice(sel Selection) (Column, error)

	// Take gathers rows by position. Negative indices are end-relative when
	// allowFill is false; with allowFill true any negative index fails with
	// ErrUnsupportedFill, and an all-non-negative index list behaves
	// identically to allowFill=false.
	Take(indices []int, allowFill bool) (Column, error)

	// Copy deep-duplicates the column's own row storage. Shared document
	// and token references are aliased; they are immutable and safe to
	// share between copies.
	Copy() Column

	// Concat appends the given columns to this one, in order. All inputs
	// must be the same container kind and reference the identical shared
	// document/token object; otherwise ErrIncompatibleConcat.
	Concat(others []Column) (Column, error)

	// IsMissing reports, per row, whether the row is missing. Span columns
	// cannot represent missing rows and always return all-false; tensor
	// columns report rows containing NaN.
	IsMissing() []bool
}

// Concat concatenates same-kind columns in input order.
// An empty input fails with ErrIncompatibleConcat.
func Concat(cols []Column) (Column, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("%w: no input columns", ErrIncompatibleConcat)
	}
	return cols[0].Concat(cols[1:])
}

// CheckIndex validates a row index against a column length.
func CheckIndex(i, n int) error {
	if i < 0 || i >= n {
		return &IndexOutOfRangeError{Index: i, Len: n}
	}
	return nil
}

// ResolveTake normalizes take indices for a column of length n.
//
// With allowFill=false, negative indices are end-relative (-1 is the last
// row). With allowFill=true, negative indices would denote missing rows
// requiring a fill value, which is not implemented: any negative index
// fails with ErrUnsupportedFill, and an all-non-negative list passes
// through as a plain gather.
func ResolveTake(indices []int, n int, allowFill bool) ([]int, error) {
	out := make([]int, len(indices))
	for k, i := range indices {
		if i < 0 {
			if allowFill {
				return nil, fmt.Errorf("%w: negative index %d at position %d", ErrUnsupportedFill, i, k)
			}
			i += n
		}
		if i < 0 || i >= n {
			return nil, &IndexOutOfRangeError{Index: indices[k], Len: n}
		}
		out[k] = i
	}
	return out, nil
}
