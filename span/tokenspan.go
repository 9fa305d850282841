package span

import (
	"fmt"
	"slices"
	"sync"

	"github.com/hupe1980/textspan/column"
)

// InvalidTokenRangeError indicates token offsets that violate
// 0 <= beginToken <= endToken <= len(tokens).
type InvalidTokenRangeError struct {
	Row        int
	BeginToken int
	EndToken   int
	NumTokens  int
}

func (e *InvalidTokenRangeError) Error() string {
	return fmt.Sprintf("invalid token range at row %d: [%d, %d) over %d tokens", e.Row, e.BeginToken, e.EndToken, e.NumTokens)
}

// TokenSpan is a single row of a TokenSpanArray. It embeds the derived
// character-offset view, so character-level information is available
// directly.
type TokenSpan struct {
	CharSpan
	tokens     *CharSpanArray
	beginToken int
	endToken   int
}

// NewTokenSpan builds a single validated token span over a tokenization.
func NewTokenSpan(tokens *CharSpanArray, beginToken, endToken int) (TokenSpan, error) {
	if beginToken < 0 || beginToken > endToken || endToken > tokens.Len() {
		return TokenSpan{}, &InvalidTokenRangeError{BeginToken: beginToken, EndToken: endToken, NumTokens: tokens.Len()}
	}
	begin, end := resolveCharOffsets(tokens, beginToken, endToken)
	return TokenSpan{
		CharSpan:   CharSpan{text: tokens.text, begin: begin, end: end},
		tokens:     tokens,
		beginToken: beginToken,
		endToken:   endToken,
	}, nil
}

// Tokens returns the shared tokenization.
func (s TokenSpan) Tokens() *CharSpanArray { return s.tokens }

// BeginToken returns the inclusive begin token offset.
func (s TokenSpan) BeginToken() int { return s.beginToken }

// EndToken returns the exclusive end token offset.
func (s TokenSpan) EndToken() int { return s.endToken }

func (s TokenSpan) String() string {
	return fmt.Sprintf("[%d, %d): %q", s.Begin(), s.End(), s.Covered())
}

// resolveCharOffsets maps a validated token range to character offsets.
// A zero-token span collapses to the begin token's start. A zero-token
// span sitting one past the last token has no begin token to anchor on;
// it resolves to the end of the final token (or 0 for an empty
// tokenization).
func resolveCharOffsets(tokens *CharSpanArray, beginToken, endToken int) (begin, end int) {
	switch {
	case beginToken < tokens.Len():
		begin = tokens.begin[beginToken]
	case tokens.Len() > 0:
		begin = tokens.end[tokens.Len()-1]
	}
	if endToken > beginToken {
		end = tokens.end[endToken-1]
	} else {
		end = begin
	}
	return begin, end
}

// TokenSpanArray is a columnar store of token-offset intervals, each
// resolved against a shared CharSpanArray of token boundaries.
//
// Character offsets are not stored: they are derived from the token table
// on first access and memoized for the instance's remaining lifetime.
// Construction is cheap; the first read of character offsets is O(n),
// subsequent reads O(1).
type TokenSpanArray struct {
	tokens     *CharSpanArray
	beginToken []int
	endToken   []int

	// derived character offsets, computed once
	deriveOnce sync.Once
	begin      []int
	end        []int
}

// NewTokenSpanArray builds a token-span column from parallel begin/end
// token-offset slices. The slices are copied. Every row must satisfy
// 0 <= beginToken[i] <= endToken[i] <= tokens.Len(), else
// InvalidTokenRangeError.
func NewTokenSpanArray(tokens *CharSpanArray, beginToken, endToken []int) (*TokenSpanArray, error) {
	if len(beginToken) != len(endToken) {
		return nil, fmt.Errorf("span: beginToken/endToken length mismatch: %d vs %d", len(beginToken), len(endToken))
	}
	for i := range beginToken {
		if beginToken[i] < 0 || beginToken[i] > endToken[i] || endToken[i] > tokens.Len() {
			return nil, &InvalidTokenRangeError{Row: i, BeginToken: beginToken[i], EndToken: endToken[i], NumTokens: tokens.Len()}
		}
	}
	return &TokenSpanArray{
		tokens:     tokens,
		beginToken: slices.Clone(beginToken),
		endToken:   slices.Clone(endToken),
	}, nil
}

// newTokenSpanArrayTrusted wraps token offsets already validated against
// tokens. Used by slice/take/concat paths.
func newTokenSpanArrayTrusted(tokens *CharSpanArray, beginToken, endToken []int) *TokenSpanArray {
	return &TokenSpanArray{tokens: tokens, beginToken: beginToken, endToken: endToken}
}

// FromCharOffsets builds the identity tokenization: token i becomes the
// token span [i, i+1). This is the usual bridge from a fresh token table
// to token-addressed downstream columns.
func FromCharOffsets(tokens *CharSpanArray) *TokenSpanArray {
	n := tokens.Len()
	begin := make([]int, n)
	end := make([]int, n)
	for i := range begin {
		begin[i] = i
		end[i] = i + 1
	}
	return newTokenSpanArrayTrusted(tokens, begin, end)
}

// Len returns the number of rows.
func (a *TokenSpanArray) Len() int { return len(a.beginToken) }

// Tokens returns the shared tokenization.
func (a *TokenSpanArray) Tokens() *CharSpanArray { return a.tokens }

// Text returns the shared document the tokenization covers.
func (a *TokenSpanArray) Text() *Text { return a.tokens.text }

// BeginTokens returns the begin token offsets.
// The returned slice aliases internal memory; do not modify.
func (a *TokenSpanArray) BeginTokens() []int { return a.beginToken }

// EndTokens returns the end token offsets.
// The returned slice aliases internal memory; do not modify.
func (a *TokenSpanArray) EndTokens() []int { return a.endToken }

// derive computes the character offsets from the token table exactly once.
// The inputs are immutable, so a redundant racing computation would be
// idempotent anyway; sync.Once keeps it single.
func (a *TokenSpanArray) derive() {
	a.deriveOnce.Do(func() {
		n := a.Len()
		begin := make([]int, n)
		end := make([]int, n)
		for i := 0; i < n; i++ {
			begin[i], end[i] = resolveCharOffsets(a.tokens, a.beginToken[i], a.endToken[i])
		}
		a.begin = begin
		a.end = end
	})
}

// Begins returns the derived begin character offsets.
// The returned slice aliases internal memory; do not modify.
func (a *TokenSpanArray) Begins() []int {
	a.derive()
	return a.begin
}

// Ends returns the derived end character offsets.
// The returned slice aliases internal memory; do not modify.
func (a *TokenSpanArray) Ends() []int {
	a.derive()
	return a.end
}

// AsTuples returns derived (begin, end) character-offset pairs.
func (a *TokenSpanArray) AsTuples() [][2]int {
	a.derive()
	out := make([][2]int, a.Len())
	for i := range out {
		out[i] = [2]int{a.begin[i], a.end[i]}
	}
	return out
}

// CoveredText returns the covered substring for every row, driven by the
// derived character offsets. The result is recomputed on every call.
func (a *TokenSpanArray) CoveredText() []string {
	a.derive()
	out := make([]string, a.Len())
	for i := range out {
		out[i] = a.tokens.text.Slice(a.begin[i], a.end[i])
	}
	return out
}

// TokenSpan returns the row at i as a TokenSpan view.
func (a *TokenSpanArray) TokenSpan(i int) (TokenSpan, error) {
	if err := column.CheckIndex(i, a.Len()); err != nil {
		return TokenSpan{}, err
	}
	begin, end := resolveCharOffsets(a.tokens, a.beginToken[i], a.endToken[i])
	return TokenSpan{
		CharSpan:   CharSpan{text: a.tokens.text, begin: begin, end: end},
		tokens:     a.tokens,
		beginToken: a.beginToken[i],
		endToken:   a.endToken[i],
	}, nil
}

// Value returns the row at i as a TokenSpan.
func (a *TokenSpanArray) Value(i int) (any, error) {
	return a.TokenSpan(i)
}

// Slice returns a new column containing the selected rows, sharing the
// tokenization.
func (a *TokenSpanArray) Slice(sel column.Selection) (column.Column, error) {
	rows, err := sel.Resolve(a.Len())
	if err != nil {
		return nil, err
	}
	return a.gather(rows), nil
}

// Take gathers rows by position. See column.ResolveTake for index rules.
func (a *TokenSpanArray) Take(indices []int, allowFill bool) (column.Column, error) {
	rows, err := column.ResolveTake(indices, a.Len(), allowFill)
	if err != nil {
		return nil, err
	}
	return a.gather(rows), nil
}

// Copy deep-duplicates the token-offset slices; the tokenization is
// shared. The derived-offset cache is not carried over; the copy
// recomputes on first access.
func (a *TokenSpanArray) Copy() column.Column {
	return newTokenSpanArrayTrusted(a.tokens, slices.Clone(a.beginToken), slices.Clone(a.endToken))
}

// Concat appends other token-span columns over the identical tokenization.
func (a *TokenSpanArray) Concat(others []column.Column) (column.Column, error) {
	arrs := make([]*TokenSpanArray, 0, len(others)+1)
	arrs = append(arrs, a)
	for _, c := range others {
		b, ok := c.(*TokenSpanArray)
		if !ok {
			return nil, fmt.Errorf("%w: %T is not a token-span column", column.ErrIncompatibleConcat, c)
		}
		arrs = append(arrs, b)
	}
	return ConcatTokenSpanArrays(arrs)
}

// ConcatTokenSpanArrays concatenates token-span columns in input order.
// All inputs must reference the identical *CharSpanArray of tokens;
// equal contents are not enough.
func ConcatTokenSpanArrays(arrs []*TokenSpanArray) (*TokenSpanArray, error) {
	if len(arrs) == 0 {
		return nil, fmt.Errorf("%w: no input columns", column.ErrIncompatibleConcat)
	}
	tokens := arrs[0].tokens
	n := 0
	for _, b := range arrs {
		if b.tokens != tokens {
			return nil, fmt.Errorf("%w: spans reference different token tables", column.ErrIncompatibleConcat)
		}
		n += b.Len()
	}
	beginToken := make([]int, 0, n)
	endToken := make([]int, 0, n)
	for _, b := range arrs {
		beginToken = append(beginToken, b.beginToken...)
		endToken = append(endToken, b.endToken...)
	}
	return newTokenSpanArrayTrusted(tokens, beginToken, endToken), nil
}

// IsMissing always returns all-false: span columns cannot represent a
// missing row.
func (a *TokenSpanArray) IsMissing() []bool {
	return make([]bool, a.Len())
}

func (a *TokenSpanArray) gather(rows []int) *TokenSpanArray {
	beginToken := make([]int, len(rows))
	endToken := make([]int, len(rows))
	for k, i := range rows {
		beginToken[k] = a.beginToken[i]
		endToken[k] = a.endToken[i]
	}
	return newTokenSpanArrayTrusted(a.tokens, beginToken, endToken)
}

var _ column.Column = (*TokenSpanArray)(nil)
