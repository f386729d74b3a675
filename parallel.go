package rosettes

import (
	"context"

	"golang.org/x/sync/errgroup"

	"rosettes/token"
)

// smallBatch is the size below which the batch APIs run sequentially;
// goroutine overhead dominates for tiny inputs.
const smallBatch = 8

// Block is one unit of work for the batch APIs.
type Block struct {
	Code     string
	Language string
}

// HighlightMany highlights blocks concurrently and returns the
// results in input order. The first error cancels the remaining work.
func HighlightMany(ctx context.Context, blocks []Block, opts ...Option) ([]string, error) {
	if len(blocks) == 0 {
		return nil, nil
	}

	results := make([]string, len(blocks))

	if len(blocks) < smallBatch {
		for i, b := range blocks {
			out, err := HighlightString(b.Code, b.Language, opts...)
			if err != nil {
				return nil, err
			}
			results[i] = out
		}
		return results, nil
	}

	o := newOptions(opts)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.maxWorkers)

	for i, b := range blocks {
		i, b := i, b
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := HighlightString(b.Code, b.Language, opts...)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// TokenizeMany tokenizes blocks concurrently and returns the token
// streams in input order.
func TokenizeMany(ctx context.Context, blocks []Block, opts ...Option) ([][]token.Token, error) {
	if len(blocks) == 0 {
		return nil, nil
	}

	results := make([][]token.Token, len(blocks))

	if len(blocks) < smallBatch {
		for i, b := range blocks {
			tokens, err := Tokenize(b.Code, b.Language, opts...)
			if err != nil {
				return nil, err
			}
			results[i] = tokens
		}
		return results, nil
	}

	o := newOptions(opts)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.maxWorkers)

	for i, b := range blocks {
		i, b := i, b
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tokens, err := Tokenize(b.Code, b.Language, opts...)
			if err != nil {
				return err
			}
			results[i] = tokens
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
