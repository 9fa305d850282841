// Package iob decodes per-token Inside-Outside-Beginning tag sequences
// into columns of entity spans.
//
// The decoder consumes one tag per token ("B" begins an entity, "I"
// continues one, "O" is outside any entity), plus the token table the tags
// are aligned with and an optional entity type per token. It emits a
// token-span column of [begin, end) entity ranges in reading order,
// carrying the entity type from each entity's "B" token.
//
// A lookahead past the end of the tag sequence is treated as "O": a
// trailing "I" run that never sees a closing tag is closed at the table
// boundary, and a "B" on the final token closes immediately as a
// one-token entity.
package iob
