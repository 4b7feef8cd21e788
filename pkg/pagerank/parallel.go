package pagerank

import (
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/vertex-lab/pagerank/pkg/graph"
)

/*
SampleConcurrent splits the n samples across `walkers` independent random
walks, each running on its own goroutine with its own random source, and
merges the results by weighting each walk by its share of the total samples.

Walkers must not share a random stream (correlated walks bias the estimate),
so each one gets a source seeded with seed + its index. The merged result
only depends on the seed, not on how the goroutines are scheduled.
*/
func SampleConcurrent(g graph.Graph, dampingFactor float64, n, walkers int, seed int64) (PagerankMap, error) {
	if err := checkInputs(g, dampingFactor); err != nil {
		return nil, err
	}

	if n <= 0 {
		return nil, ErrInvalidSampleCount
	}

	if walkers <= 0 {
		return nil, ErrInvalidWalkers
	}

	// a walk of zero steps is pointless
	if walkers > n {
		walkers = n
	}

	steps := splitSamples(n, walkers)
	partials := make([]PagerankMap, walkers)

	var group errgroup.Group
	for i := 0; i < walkers; i++ {
		i := i
		group.Go(func() error {
			rng := rand.New(rand.NewSource(seed + int64(i)))

			ranks, err := SampleWithSource(g, dampingFactor, steps[i], rng)
			if err != nil {
				return err
			}

			partials[i] = ranks
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	merged := make(PagerankMap, g.Size())
	for _, page := range g.Pages() {
		merged[page] = 0
	}

	for i, partial := range partials {
		weight := float64(steps[i]) / float64(n)
		for page, rank := range partial {
			merged[page] += rank * weight
		}
	}

	return merged, nil
}

// splitSamples spreads n samples over `walkers` walks as evenly as possible.
// The returned lengths always sum to n.
func splitSamples(n, walkers int) []int {
	steps := make([]int, walkers)
	for i := range steps {
		steps[i] = n / walkers
		if i < n%walkers {
			steps[i]++
		}
	}
	return steps
}
