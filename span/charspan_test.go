package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/textspan/column"
)

const testDoc = "The quick brown fox jumps."

// testDoc token boundaries.
var (
	testBegins = []int{0, 4, 10, 16, 20, 25}
	testEnds   = []int{3, 9, 15, 19, 25, 26}
)

func newTestArray(t *testing.T) *CharSpanArray {
	t.Helper()
	a, err := NewCharSpanArray(NewText(testDoc), testBegins, testEnds)
	require.NoError(t, err)
	return a
}

func TestNewCharSpanArrayValidation(t *testing.T) {
	text := NewText("abcdef")

	tests := []struct {
		name       string
		begin, end []int
		wantRow    int
	}{
		{"begin negative", []int{-1}, []int{2}, 0},
		{"begin after end", []int{3}, []int{2}, 0},
		{"end past text", []int{0, 2}, []int{2, 7}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCharSpanArray(text, tt.begin, tt.end)
			var spanErr *InvalidSpanError
			require.ErrorAs(t, err, &spanErr)
			assert.Equal(t, tt.wantRow, spanErr.Row)
		})
	}

	_, err := NewCharSpanArray(text, []int{0}, []int{1, 2})
	assert.Error(t, err, "length mismatch")

	// Zero-length spans are insertion points, not errors.
	a, err := NewCharSpanArray(text, []int{3}, []int{3})
	require.NoError(t, err)
	s, err := a.Span(0)
	require.NoError(t, err)
	assert.Equal(t, "", s.Covered())
}

func TestCharSpanArrayInvariant(t *testing.T) {
	a := newTestArray(t)
	for i := 0; i < a.Len(); i++ {
		assert.GreaterOrEqual(t, a.Begins()[i], 0)
		assert.LessOrEqual(t, a.Begins()[i], a.Ends()[i])
		assert.LessOrEqual(t, a.Ends()[i], a.Text().Len())
	}
}

func TestCharSpanArraySpan(t *testing.T) {
	a := newTestArray(t)

	s, err := a.Span(1)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Begin())
	assert.Equal(t, 9, s.End())
	assert.Equal(t, "quick", s.Covered())
	assert.Same(t, a.Text(), s.Text())

	_, err = a.Span(6)
	var oor *column.IndexOutOfRangeError
	require.ErrorAs(t, err, &oor)
	assert.Equal(t, 6, oor.Index)

	_, err = a.Span(-1)
	assert.ErrorAs(t, err, &oor)
}

func TestCharSpanArrayCoveredText(t *testing.T) {
	a := newTestArray(t)
	assert.Equal(t, []string{"The", "quick", "brown", "fox", "jumps", "."}, a.CoveredText())
}

func TestCharSpanArraySlice(t *testing.T) {
	a := newTestArray(t)

	t.Run("range preserves relative order", func(t *testing.T) {
		got, err := a.Slice(column.Range(1, 4))
		require.NoError(t, err)
		sub := got.(*CharSpanArray)
		assert.Equal(t, []string{"quick", "brown", "fox"}, sub.CoveredText())
		assert.Same(t, a.Text(), sub.Text(), "document is shared, not copied")
	})

	t.Run("indices follow selection order", func(t *testing.T) {
		got, err := a.Slice(column.Indices(3, 1))
		require.NoError(t, err)
		assert.Equal(t, []string{"fox", "quick"}, got.(*CharSpanArray).CoveredText())
	})

	t.Run("mask", func(t *testing.T) {
		got, err := a.Slice(column.Mask([]bool{true, false, false, true, false, false}))
		require.NoError(t, err)
		assert.Equal(t, []string{"The", "fox"}, got.(*CharSpanArray).CoveredText())
	})
}

func TestCharSpanArrayTake(t *testing.T) {
	a := newTestArray(t)

	t.Run("end relative without fill", func(t *testing.T) {
		got, err := a.Take([]int{-1, 0}, false)
		require.NoError(t, err)
		assert.Equal(t, []string{".", "The"}, got.(*CharSpanArray).CoveredText())
	})

	t.Run("fill with all non-negative behaves like plain gather", func(t *testing.T) {
		indices := []int{2, 2, 4}
		plain, err := a.Take(indices, false)
		require.NoError(t, err)
		filled, err := a.Take(indices, true)
		require.NoError(t, err)
		assert.Equal(t, plain.(*CharSpanArray).CoveredText(), filled.(*CharSpanArray).CoveredText())
	})

	t.Run("fill with negative is unsupported", func(t *testing.T) {
		_, err := a.Take([]int{0, -1}, true)
		assert.ErrorIs(t, err, column.ErrUnsupportedFill)
	})
}

func TestCharSpanArrayConcat(t *testing.T) {
	a := newTestArray(t)

	left, err := a.Slice(column.Range(0, 2))
	require.NoError(t, err)
	right, err := a.Slice(column.Range(2, 6))
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		joined, err := left.Concat([]column.Column{right})
		require.NoError(t, err)
		require.Equal(t, a.Len(), joined.Len())

		head, err := joined.Slice(column.Range(0, left.Len()))
		require.NoError(t, err)
		assert.Equal(t, left.(*CharSpanArray).AsTuples(), head.(*CharSpanArray).AsTuples())

		tail, err := joined.Slice(column.Range(left.Len(), joined.Len()))
		require.NoError(t, err)
		assert.Equal(t, right.(*CharSpanArray).AsTuples(), tail.(*CharSpanArray).AsTuples())
	})

	t.Run("different document fails even with equal contents", func(t *testing.T) {
		other, err := NewCharSpanArray(NewText(testDoc), testBegins, testEnds)
		require.NoError(t, err)
		_, err = a.Concat([]column.Column{other})
		assert.ErrorIs(t, err, column.ErrIncompatibleConcat)
	})

	t.Run("empty input fails", func(t *testing.T) {
		_, err := ConcatCharSpanArrays(nil)
		assert.ErrorIs(t, err, column.ErrIncompatibleConcat)
	})
}

func TestCharSpanArrayCopy(t *testing.T) {
	a := newTestArray(t)
	dup := a.Copy().(*CharSpanArray)

	assert.Same(t, a.Text(), dup.Text(), "document is shared")
	assert.Equal(t, a.AsTuples(), dup.AsTuples())

	// The offset storage must be independent.
	dup.Begins()[0] = 1
	assert.Equal(t, 0, a.Begins()[0])
}

func TestCharSpanArrayIsMissing(t *testing.T) {
	a := newTestArray(t)
	mask := a.IsMissing()
	require.Len(t, mask, a.Len())
	for _, m := range mask {
		assert.False(t, m, "span columns cannot represent missing rows")
	}
}

func TestCharSpanArrayValue(t *testing.T) {
	a := newTestArray(t)
	v, err := a.Value(3)
	require.NoError(t, err)
	s, ok := v.(CharSpan)
	require.True(t, ok)
	assert.Equal(t, "fox", s.Covered())
}
