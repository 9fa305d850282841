package column

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// SelectionError indicates a selection that cannot be applied to the column
// it was given (mask length mismatch, inverted range).
type SelectionError struct {
	Reason string
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("invalid selection: %s", e.Reason)
}

type selectionKind uint8

const (
	selectRange selectionKind = iota
	selectIndices
	selectMask
	selectBitmap
)

// Selection describes a set of rows to keep when slicing a column.
//
// A range selection preserves the relative order of the source rows; an
// index selection follows the order the indices were given in; mask and
// bitmap selections produce rows in ascending position order.
type Selection struct {
	kind    selectionKind
	start   int
	end     int
	indices []int
	mask    []bool
	bitmap  *roaring.Bitmap
}

// Range selects rows in [start, end).
func Range(start, end int) Selection {
	return Selection{kind: selectRange, start: start, end: end}
}

// Indices selects rows by explicit position, in the order given.
// Positions may repeat.
func Indices(indices ...int) Selection {
	return Selection{kind: selectIndices, indices: indices}
}

// Mask selects rows where mask[i] is true. The mask length must equal the
// column length.
func Mask(mask []bool) Selection {
	return Selection{kind: selectMask, mask: mask}
}

// Bitmap selects rows whose position is set in b. Positions at or beyond
// the column length are rejected at resolve time.
//
// This is the hand-off point for engine-side filters that already operate
// on roaring bitmaps.
func Bitmap(b *roaring.Bitmap) Selection {
	return Selection{kind: selectBitmap, bitmap: b}
}

// Resolve returns the selected row positions for a column of n rows.
func (s Selection) Resolve(n int) ([]int, error) {
	switch s.kind {
	case selectRange:
		if s.start > s.end {
			return nil, &SelectionError{Reason: fmt.Sprintf("inverted range [%d, %d)", s.start, s.end)}
		}
		if s.start < 0 || s.end > n {
			return nil, &SelectionError{Reason: fmt.Sprintf("range [%d, %d) outside column of %d rows", s.start, s.end, n)}
		}
		out := make([]int, s.end-s.start)
		for i := range out {
			out[i] = s.start + i
		}
		return out, nil

	case selectIndices:
		out := make([]int, len(s.indices))
		for k, i := range s.indices {
			if err := CheckIndex(i, n); err != nil {
				return nil, err
			}
			out[k] = i
		}
		return out, nil

	case selectMask:
		if len(s.mask) != n {
			return nil, &SelectionError{Reason: fmt.Sprintf("mask of %d entries for column of %d rows", len(s.mask), n)}
		}
		var out []int
		for i, keep := range s.mask {
			if keep {
				out = append(out, i)
			}
		}
		return out, nil

	case selectBitmap:
		if s.bitmap == nil {
			return []int{}, nil
		}
		if !s.bitmap.IsEmpty() && uint64(s.bitmap.Maximum()) >= uint64(n) {
			return nil, &IndexOutOfRangeError{Index: int(s.bitmap.Maximum()), Len: n}
		}
		out := make([]int, 0, s.bitmap.GetCardinality())
		it := s.bitmap.Iterator()
		for it.HasNext() {
			out = append(out, int(it.Next()))
		}
		return out, nil
	}
	return nil, &SelectionError{Reason: "unknown selection kind"}
}

// MissingBitmap converts a row-wise missing mask to a roaring bitmap of the
// missing positions, for engine-side filter composition.
func MissingBitmap(mask []bool) (*roaring.Bitmap, error) {
	b := roaring.New()
	for i, missing := range mask {
		if !missing {
			continue
		}
		if i > math.MaxUint32 {
			return nil, &IndexOutOfRangeError{Index: i, Len: math.MaxUint32}
		}
		b.Add(uint32(i))
	}
	return b, nil
}
