package session

import (
	"context"

	"golang.org/x/sync/errgroup"

	"calclang/pkg/value"
)

// RunBatch runs every source in its own session, concurrently, with at most
// limit running at once (no limit when limit <= 0). Each session starts from
// a clone of base, so programs never see each other's assignments. Results
// are returned in the order of sources.
//
// base is only read; it must not be modified while RunBatch is running.
func RunBatch(ctx context.Context, base *value.Environment, sources []string, limit int, opts ...Option) ([]Result, error) {
	results := make([]Result, len(sources))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			env := value.NewEnvironment()
			if base != nil {
				env = base.Clone()
			}
			s := New(opts...)
			s.env = env
			results[i] = s.Run(src)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
