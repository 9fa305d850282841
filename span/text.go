package span

// Text is an immutable document string shared by reference by every span
// column over it.
//
// Wrap a document exactly once: concat compatibility between span columns
// is pointer identity of the *Text, not string equality. Two Texts built
// from equal strings are distinct documents.
type Text struct {
	s string
}

// NewText wraps a document string.
func NewText(s string) *Text {
	return &Text{s: s}
}

// String returns the document string.
func (t *Text) String() string { return t.s }

// Len returns the document length in bytes.
func (t *Text) Len() int { return len(t.s) }

// Slice returns the substring [begin, end). Offsets must satisfy
// 0 <= begin <= end <= Len; the caller is expected to hold validated span
// offsets.
func (t *Text) Slice(begin, end int) string { return t.s[begin:end] }
