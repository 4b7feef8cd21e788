package pagerank

import (
	"math/rand"
	"time"

	"github.com/vertex-lab/pagerank/pkg/graph"
)

// Sample estimates pageranks with a single random walk of n steps, using a
// time-seeded random source. Use SampleWithSource for reproducible results.
func Sample(g graph.Graph, dampingFactor float64, n int) (PagerankMap, error) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return SampleWithSource(g, dampingFactor, n, rng)
}

/*
SampleWithSource simulates one long random walk driven by the transition
model, starting from a page chosen uniformly at random. Each of the n steps
adds 1/n to the rank of the current page, so the returned ranks sum to one
by construction. The walk is never restarted; a single trajectory is used.

It accepts a random number generator for reproducibility in tests: the same
seed always produces the same walk.
*/
func SampleWithSource(g graph.Graph, dampingFactor float64, n int, rng *rand.Rand) (PagerankMap, error) {
	if err := checkInputs(g, dampingFactor); err != nil {
		return nil, err
	}

	if n <= 0 {
		return nil, ErrInvalidSampleCount
	}

	// the fixed page order makes a seeded walk deterministic
	pages := g.Pages()
	current := pages[rng.Intn(len(pages))]

	ranks := make(PagerankMap, len(pages))
	for _, page := range pages {
		ranks[page] = 0
	}

	increment := 1.0 / float64(n)
	for i := 0; i < n; i++ {
		ranks[current] += increment

		dist, err := TransitionModel(g, current, dampingFactor)
		if err != nil {
			return nil, err
		}

		current, err = pickPage(dist, pages, rng)
		if err != nil {
			return nil, err
		}
	}

	return ranks, nil
}

// pickPage draws a page with probability proportional to its weight in dist.
// A non-positive total mass signals a bug in the transition model, so it
// fails loudly instead of returning an arbitrary page.
func pickPage(dist Distribution, pages []string, rng *rand.Rand) (string, error) {
	total := 0.0
	for _, page := range pages {
		total += dist[page]
	}

	if total <= 0 {
		return "", ErrInvalidDistribution
	}

	r := rng.Float64() * total
	for _, page := range pages {
		r -= dist[page]
		if r < 0 {
			return page, nil
		}
	}

	// rounding can leave r marginally above zero after the last weight
	return pages[len(pages)-1], nil
}
