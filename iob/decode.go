package iob

import (
	"fmt"
	"sort"

	"github.com/hupe1980/textspan/span"
)

// IOB tag values.
const (
	TagBegin   = "B"
	TagInside  = "I"
	TagOutside = "O"
)

// InvalidTagError indicates a tag outside the {B, I, O} alphabet.
type InvalidTagError struct {
	Row int
	Tag string
}

func (e *InvalidTagError) Error() string {
	return fmt.Sprintf("invalid IOB tag at row %d: %q", e.Row, e.Tag)
}

// Result is a decoded entity table: one row per entity, in reading order.
// Types is nil when no entity-type column was supplied.
type Result struct {
	Spans *span.TokenSpanArray
	Types []string
}

// prefix is an in-progress entity: tokens [begin, end) plus the entity
// type carried from its seeding "B" token.
type prefix struct {
	begin int
	end   int
	typ   string
}

// Decode converts a per-token IOB tag sequence into a column of entity
// spans over tokens. tags must have one entry per token; entityTypes, if
// non-nil, must be the same length and supplies the type carried by each
// entity's "B" token.
//
// Unknown tags fail with InvalidTagError before any decoding happens: the
// input alphabet is restricted to {B, I, O}, and silently treating a
// stray tag as a continuation would corrupt the output.
func Decode(tokens *span.CharSpanArray, tags []string, entityTypes []string) (Result, error) {
	if len(tags) != tokens.Len() {
		return Result{}, fmt.Errorf("iob: %d tags for %d tokens", len(tags), tokens.Len())
	}
	if entityTypes != nil && len(entityTypes) != len(tags) {
		return Result{}, fmt.Errorf("iob: %d entity types for %d tags", len(entityTypes), len(tags))
	}
	for i, tag := range tags {
		if tag != TagBegin && tag != TagInside && tag != TagOutside {
			return Result{}, &InvalidTagError{Row: i, Tag: tag}
		}
	}

	// Seed one-token prefixes at every "B".
	var active []prefix
	for i, tag := range tags {
		if tag == TagBegin {
			p := prefix{begin: i, end: i + 1}
			if entityTypes != nil {
				p.typ = entityTypes[i]
			}
			active = append(active, p)
		}
	}

	// Round-based widening: each round closes every prefix whose lookahead
	// is "O" or "B" (an out-of-range lookahead counts as "O") and extends
	// the rest by one token. Each round does O(live prefixes) work, so the
	// total is linear in the summed entity lengths.
	done := make([]prefix, 0, len(active))
	for len(active) > 0 {
		still := active[:0]
		for _, p := range active {
			next := TagOutside
			if p.end < len(tags) {
				next = tags[p.end]
			}
			if next == TagOutside || next == TagBegin {
				done = append(done, p)
			} else {
				p.end++
				still = append(still, p)
			}
		}
		active = still
	}

	// Reading order: by begin token, stable so discovery order breaks ties.
	sort.SliceStable(done, func(i, j int) bool { return done[i].begin < done[j].begin })

	begin := make([]int, len(done))
	end := make([]int, len(done))
	for i, p := range done {
		begin[i] = p.begin
		end[i] = p.end
	}
	spans, err := span.NewTokenSpanArray(tokens, begin, end)
	if err != nil {
		return Result{}, err
	}

	res := Result{Spans: spans}
	if entityTypes != nil {
		types := make([]string, len(done))
		for i, p := range done {
			types[i] = p.typ
		}
		res.Types = types
	}
	return res, nil
}
