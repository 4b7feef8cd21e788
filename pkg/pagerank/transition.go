package pagerank

import (
	"github.com/vertex-lab/pagerank/pkg/graph"
)

/*
TransitionModel returns the probability distribution over which page a
random surfer visits next, given the current page.

Every page of the graph gets the baseline probability (1-d)/N of being the
target of a random jump; each page linked by the current page additionally
gets d/L, where L is the number of outbound links. The two terms sum to
exactly one over the whole graph.

A dangling page (no outbound links) behaves as if it linked to every page:
the link term and the jump term collapse to exactly 1/N for each page.
*/
func TransitionModel(g graph.Graph, page string, dampingFactor float64) (Distribution, error) {
	if err := checkInputs(g, dampingFactor); err != nil {
		return nil, err
	}

	links, err := g.Links(page)
	if err != nil {
		return nil, err
	}

	N := float64(g.Size())
	dist := make(Distribution, g.Size())

	if links.Cardinality() == 0 {
		for p := range g {
			dist[p] = 1.0 / N
		}
		return dist, nil
	}

	baseline := (1.0 - dampingFactor) / N
	linkProb := dampingFactor / float64(links.Cardinality())

	for p := range g {
		dist[p] = baseline
		if links.Contains(p) {
			dist[p] += linkProb
		}
	}

	return dist, nil
}

// checkInputs returns the appropriate error if the graph is empty or the
// damping factor is out of range.
func checkInputs(g graph.Graph, dampingFactor float64) error {
	if g.Size() == 0 {
		return graph.ErrEmptyGraph
	}

	if dampingFactor <= 0 || dampingFactor >= 1 {
		return ErrInvalidDampingFactor
	}

	return nil
}
