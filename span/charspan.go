package span

import (
	"fmt"
	"slices"

	"github.com/hupe1980/textspan/column"
)

// InvalidSpanError indicates character offsets that violate
// 0 <= begin <= end <= len(text).
type InvalidSpanError struct {
	Row     int
	Begin   int
	End     int
	TextLen int
}

func (e *InvalidSpanError) Error() string {
	return fmt.Sprintf("invalid span at row %d: [%d, %d) over text of %d chars", e.Row, e.Begin, e.End, e.TextLen)
}

// CharSpan is a single row of a CharSpanArray: a [begin, end) character
// interval over a shared document. A zero-length span (begin == end) is an
// insertion point.
type CharSpan struct {
	text  *Text
	begin int
	end   int
}

// NewCharSpan builds a single validated character span.
func NewCharSpan(text *Text, begin, end int) (CharSpan, error) {
	if begin < 0 || begin > end || end > text.Len() {
		return CharSpan{}, &InvalidSpanError{Begin: begin, End: end, TextLen: text.Len()}
	}
	return CharSpan{text: text, begin: begin, end: end}, nil
}

// Text returns the shared document.
func (s CharSpan) Text() *Text { return s.text }

// Begin returns the inclusive begin character offset.
func (s CharSpan) Begin() int { return s.begin }

// End returns the exclusive end character offset.
func (s CharSpan) End() int { return s.end }

// Covered returns the substring of the document the span covers.
func (s CharSpan) Covered() string { return s.text.Slice(s.begin, s.end) }

func (s CharSpan) String() string {
	return fmt.Sprintf("[%d, %d): %q", s.begin, s.end, s.Covered())
}

// CharSpanArray is a columnar store of character-offset intervals over one
// shared document. Rows need not be sorted and may overlap.
type CharSpanArray struct {
	text  *Text
	begin []int
	end   []int
}

// NewCharSpanArray builds a span column from parallel begin/end offset
// slices. The slices are copied. Every row must satisfy
// 0 <= begin[i] <= end[i] <= text.Len(), else InvalidSpanError.
func NewCharSpanArray(text *Text, begin, end []int) (*CharSpanArray, error) {
	if len(begin) != len(end) {
		return nil, fmt.Errorf("span: begin/end length mismatch: %d vs %d", len(begin), len(end))
	}
	for i := range begin {
		if begin[i] < 0 || begin[i] > end[i] || end[i] > text.Len() {
			return nil, &InvalidSpanError{Row: i, Begin: begin[i], End: end[i], TextLen: text.Len()}
		}
	}
	return &CharSpanArray{
		text:  text,
		begin: slices.Clone(begin),
		end:   slices.Clone(end),
	}, nil
}

// newCharSpanArrayTrusted wraps offsets already validated against text.
// Used by slice/take/concat paths, which only rearrange valid rows.
func newCharSpanArrayTrusted(text *Text, begin, end []int) *CharSpanArray {
	return &CharSpanArray{text: text, begin: begin, end: end}
}

// Len returns the number of rows.
func (a *CharSpanArray) Len() int { return len(a.begin) }

// Text returns the shared document.
func (a *CharSpanArray) Text() *Text { return a.text }

// Span returns the row at i as a CharSpan view.
func (a *CharSpanArray) Span(i int) (CharSpan, error) {
	if err := column.CheckIndex(i, a.Len()); err != nil {
		return CharSpan{}, err
	}
	return CharSpan{text: a.text, begin: a.begin[i], end: a.end[i]}, nil
}

// Begins returns the begin character offsets.
// The returned slice aliases internal memory; do not modify.
func (a *CharSpanArray) Begins() []int { return a.begin }

// Ends returns the end character offsets.
// The returned slice aliases internal memory; do not modify.
func (a *CharSpanArray) Ends() []int { return a.end }

// AsTuples returns (begin, end) character-offset pairs.
func (a *CharSpanArray) AsTuples() [][2]int {
	out := make([][2]int, a.Len())
	for i := range out {
		out[i] = [2]int{a.begin[i], a.end[i]}
	}
	return out
}

// CoveredText returns the covered substring for every row. The result is
// recomputed on every call.
func (a *CharSpanArray) CoveredText() []string {
	out := make([]string, a.Len())
	for i := range out {
		out[i] = a.text.Slice(a.begin[i], a.end[i])
	}
	return out
}

// Value returns the row at i as a CharSpan.
func (a *CharSpanArray) Value(i int) (any, error) {
	return a.Span(i)
}

// Slice returns a new column containing the selected rows, sharing the
// document.
func (a *CharSpanArray) Slice(sel column.Selection) (column.Column, error) {
	rows, err := sel.Resolve(a.Len())
	if err != nil {
		return nil, err
	}
	return a.gather(rows), nil
}

// Take gathers rows by position. See column.ResolveTake for index rules.
func (a *CharSpanArray) Take(indices []int, allowFill bool) (column.Column, error) {
	rows, err := column.ResolveTake(indices, a.Len(), allowFill)
	if err != nil {
		return nil, err
	}
	return a.gather(rows), nil
}

// Copy deep-duplicates the offset slices; the document is shared.
func (a *CharSpanArray) Copy() column.Column {
	return newCharSpanArrayTrusted(a.text, slices.Clone(a.begin), slices.Clone(a.end))
}

// Concat appends other char-span columns over the identical document.
func (a *CharSpanArray) Concat(others []column.Column) (column.Column, error) {
	arrs := make([]*CharSpanArray, 0, len(others)+1)
	arrs = append(arrs, a)
	for _, c := range others {
		b, ok := c.(*CharSpanArray)
		if !ok {
			return nil, fmt.Errorf("%w: %T is not a char-span column", column.ErrIncompatibleConcat, c)
		}
		arrs = append(arrs, b)
	}
	return ConcatCharSpanArrays(arrs)
}

// ConcatCharSpanArrays concatenates char-span columns in input order.
// All inputs must reference the identical *Text.
func ConcatCharSpanArrays(arrs []*CharSpanArray) (*CharSpanArray, error) {
	if len(arrs) == 0 {
		return nil, fmt.Errorf("%w: no input columns", column.ErrIncompatibleConcat)
	}
	text := arrs[0].text
	n := 0
	for _, b := range arrs {
		if b.text != text {
			return nil, fmt.Errorf("%w: spans reference different documents", column.ErrIncompatibleConcat)
		}
		n += b.Len()
	}
	begin := make([]int, 0, n)
	end := make([]int, 0, n)
	for _, b := range arrs {
		begin = append(begin, b.begin...)
		end = append(end, b.end...)
	}
	return newCharSpanArrayTrusted(text, begin, end), nil
}

// IsMissing always returns all-false: span columns cannot represent a
// missing row.
func (a *CharSpanArray) IsMissing() []bool {
	return make([]bool, a.Len())
}

func (a *CharSpanArray) gather(rows []int) *CharSpanArray {
	begin := make([]int, len(rows))
	end := make([]int, len(rows))
	for k, i := range rows {
		begin[k] = a.begin[i]
		end[k] = a.end[i]
	}
	return newCharSpanArrayTrusted(a.text, begin, end)
}

var _ column.Column = (*CharSpanArray)(nil)
