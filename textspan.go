package textspan

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/textspan/iob"
	"github.com/hupe1980/textspan/span"
)

// MakeTokens wraps an external tokenizer's output as a token table: one
// character span per token, over a freshly wrapped document.
//
// begins and ends are aligned begin/end (exclusive) offsets into text, in
// left-to-right document order. The returned array's Text is the shared
// document reference for every downstream span column.
func MakeTokens(text string, begins, ends []int) (*span.CharSpanArray, error) {
	return span.NewCharSpanArray(span.NewText(text), begins, ends)
}

// Document is one per-document decoder input: a token table with an
// aligned IOB tag column and an optional entity-type column.
type Document struct {
	Tokens      *span.CharSpanArray
	Tags        []string
	EntityTypes []string
}

type options struct {
	concurrency int
	logger      *Logger
}

// Option configures batch operations.
type Option func(*options)

// WithConcurrency bounds the number of documents decoded in parallel.
// Defaults to GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithLogger sets the logger for batch progress. Defaults to no output.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// DecodeAll decodes the IOB tag tables of many documents concurrently.
// Results are positionally aligned with docs. The first failing document
// aborts the batch.
func DecodeAll(ctx context.Context, docs []Document, opts ...Option) ([]iob.Result, error) {
	o := options{
		concurrency: runtime.GOMAXPROCS(0),
		logger:      NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	results := make([]iob.Result, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, doc := range docs {
		i, doc := i, doc
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := iob.Decode(doc.Tokens, doc.Tags, doc.EntityTypes)
			if err != nil {
				return fmt.Errorf("document %d: %w", i, err)
			}
			results[i] = res
			o.logger.WithDocument(i).Debug("decoded entities", "count", res.Spans.Len())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
