// Package textspan provides columnar, memory-efficient representations of
// text spans and fixed-shape tensors, designed to live as first-class
// columns inside a tabular data engine.
//
// # Containers
//
// Three container kinds share one extension-array contract (see the column
// subpackage), so a generic table engine can index, slice, concatenate,
// and gather over any of them uniformly:
//
//   - span.CharSpanArray: [begin, end) character intervals over one shared
//     document text.
//   - span.TokenSpanArray: [begin, end) token intervals resolved against a
//     shared tokenization; character offsets are derived lazily.
//   - tensor.Array: fixed-shape float32 tensors, one per row, contiguous
//     in memory.
//
// # Quick Start
//
// An external tokenizer supplies aligned begin/end offsets into the
// document; everything downstream hangs off the resulting token table:
//
//	tokens, _ := textspan.MakeTokens(text, begins, ends)
//	spans := span.FromCharOffsets(tokens)
//	words := spans.CoveredText()
//
// Per-token IOB tags decode into an entity table:
//
//	res, _ := iob.Decode(tokens, tags, entityTypes)
//	for i := 0; i < res.Spans.Len(); i++ {
//	    s, _ := res.Spans.TokenSpan(i)
//	    fmt.Println(s.Covered(), res.Types[i])
//	}
//
// Many documents decode concurrently:
//
//	results, _ := textspan.DecodeAll(ctx, docs, textspan.WithConcurrency(8))
//
// # Immutability
//
// Every container is immutable after construction; mutation-style needs
// are served by constructing a new container. Shared documents and token
// tables are read-only and may be aliased by unlimited concurrent readers.
// No operation blocks or performs I/O.
package textspan
