// Package span provides columnar containers for text spans: half-open
// [begin, end) intervals over a shared document text, addressed either by
// character offset (CharSpanArray) or by token offset (TokenSpanArray).
//
// # Sharing Model
//
// A document is wrapped once in a Text value and shared by pointer; span
// columns never copy or own it. Two columns are compatible for
// concatenation only when they reference the identical *Text (or, for
// token spans, the identical *CharSpanArray of token boundaries). Identity
// means pointer equality, not value equality: the check must stay O(1)
// and must guarantee that downstream character-offset computations remain
// addressable into a single token table.
//
// # Immutability
//
// All containers are immutable after construction. Slicing, gathering, and
// concatenating produce new containers; token-span columns derive their
// character offsets lazily on first access and memoize them for the rest
// of the instance's lifetime. Unlimited concurrent readers are safe; no
// writer ever exists post-construction.
//
// # Missing Values
//
// Span columns cannot represent a missing row at all; IsMissing always
// returns all-false. This is a known limitation, asymmetric with tensor
// columns, and is preserved deliberately: downstream code may depend on
// spans never being null.
package span
