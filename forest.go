package arbor

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

// GenerateForest grows one tree per seed, using params for everything but
// the seed. Trees are independent, each with its own random source, so the
// result is the same as generating them one after another. workers <= 0
// means no limit.
func GenerateForest(ctx context.Context, params Params, seeds []int64, workers int, opts ...TreeOption) ([]*Tree, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	trees := make([]*Tree, len(seeds))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, seed := range seeds {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p := params
			p.Seed = seed
			// Each tree gets its own source; a shared one would interleave draws.
			treeOpts := append(slices.Clone(opts), WithRandomSource(NewSeededRandom(seed)))
			tree := NewTree(p, treeOpts...)
			if err := tree.Generate(); err != nil {
				return fmt.Errorf("forest tree %d: %w", i, err)
			}
			trees[i] = tree
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return trees, nil
}
