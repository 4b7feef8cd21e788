package pagerank

import (
	"math"

	"github.com/vertex-lab/pagerank/pkg/graph"
	"github.com/vertex-lab/pagerank/pkg/utils/logger"
)

// ResidualMode selects how the change of a rank between two passes is
// compared against the convergence threshold.
type ResidualMode int

const (
	// ResidualAbsolute stops once |old - new| < epsilon for every page.
	ResidualAbsolute ResidualMode = iota

	// ResidualSigned stops once old - new < epsilon for every page: a rank
	// that increases, by any amount, counts as converged. Kept selectable
	// for parity with older estimators that compared the signed difference.
	ResidualSigned
)

// The configuration parameters for the iterative estimator.
type IterateConfig struct {
	DampingFactor float64

	// Epsilon is the per-page convergence threshold: iteration stops once
	// no rank changes by more than Epsilon between two passes.
	Epsilon float64

	// MaxIterations caps the number of passes. The recurrence alone does
	// not guarantee termination, so the cap must be positive.
	MaxIterations int

	Residual ResidualMode

	// RedistributeDangling spreads the rank held by dangling pages over the
	// whole corpus at each pass. Without it the mass held by a dangling page
	// is never passed on, and the ranks can sum to less than one.
	RedistributeDangling bool

	Log *logger.Aggregate
}

// NewIterateConfig returns an IterateConfig with default parameters.
func NewIterateConfig() IterateConfig {
	return IterateConfig{
		DampingFactor: 0.85,
		Epsilon:       0.001,
		MaxIterations: 100,
		Residual:      ResidualAbsolute,
	}
}

// IterateResult is the output of the iterative estimator.
type IterateResult struct {
	Ranks      PagerankMap
	Iterations int

	// Converged is false if MaxIterations was hit before every residual
	// fell below Epsilon. Ranks then holds the best estimate so far.
	Converged bool
}

/*
Iterate computes pageranks by repeatedly applying the recurrence

	rank[p] = (1-d)/N + d * Σ_i rank[i]/outDegree(i)

where i ranges over the pages that link to p. Every pass works from the
full snapshot of the previous one, never from partially updated values.
Iteration stops once every page passes the residual check (see
ResidualMode), or after cfg.MaxIterations passes.

Hitting the cap is not an error: the current estimate is returned with
Converged set to false.
*/
func Iterate(g graph.Graph, cfg IterateConfig) (*IterateResult, error) {
	if err := checkInputs(g, cfg.DampingFactor); err != nil {
		return nil, err
	}

	if cfg.Epsilon <= 0 {
		return nil, ErrInvalidEpsilon
	}

	if cfg.MaxIterations <= 0 {
		return nil, ErrInvalidMaxIterations
	}

	N := float64(g.Size())
	d := cfg.DampingFactor

	// build the reverse-link structure once: who links to p, everyone's
	// out-degree, and which pages are dangling
	inbound := make(map[string][]string, g.Size())
	outDegree := make(map[string]int, g.Size())
	dangling := []string{}

	for page, links := range g {
		outDegree[page] = links.Cardinality()
		if links.Cardinality() == 0 {
			dangling = append(dangling, page)
		}

		for link := range links.Iter() {
			inbound[link] = append(inbound[link], page)
		}
	}

	ranks := make(PagerankMap, g.Size())
	for page := range g {
		ranks[page] = 1.0 / N
	}

	for iteration := 1; iteration <= cfg.MaxIterations; iteration++ {
		baseline := (1.0 - d) / N
		if cfg.RedistributeDangling {
			danglingMass := 0.0
			for _, page := range dangling {
				danglingMass += ranks[page]
			}
			baseline += d * danglingMass / N
		}

		newRanks := make(PagerankMap, g.Size())
		converged := true

		for page := range g {
			sum := 0.0
			for _, in := range inbound[page] {
				sum += ranks[in] / float64(outDegree[in])
			}
			newRanks[page] = baseline + d*sum

			if !residualConverged(ranks[page]-newRanks[page], cfg.Epsilon, cfg.Residual) {
				converged = false
			}
		}

		ranks = newRanks
		if converged {
			if cfg.Log != nil {
				cfg.Log.Info("convergence after %d iterations", iteration)
			}
			return &IterateResult{Ranks: ranks, Iterations: iteration, Converged: true}, nil
		}
	}

	if cfg.Log != nil {
		cfg.Log.Warn("no convergence after %d iterations", cfg.MaxIterations)
	}
	return &IterateResult{Ranks: ranks, Iterations: cfg.MaxIterations, Converged: false}, nil
}

// residualConverged reports whether a single residual (old rank minus new
// rank) passes the convergence check under the given mode.
func residualConverged(residual, epsilon float64, mode ResidualMode) bool {
	if mode == ResidualSigned {
		return residual < epsilon
	}
	return math.Abs(residual) < epsilon
}
