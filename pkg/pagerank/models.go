// The pagerank package estimates the importance of every page in a link
// graph: the long-run probability that a random surfer, who follows an
// outbound link with probability dampingFactor and otherwise jumps to a
// uniformly random page, is on that page.
//
// Two independent estimators are provided: Sample approximates the
// stationary distribution with a Monte-Carlo random walk, Iterate computes
// it by applying the pagerank recurrence until the ranks stabilize.
package pagerank

import (
	"errors"
	"math"
)

// Distribution is the one-step probability of moving to each page of the
// graph, given the current page. It is produced by TransitionModel and its
// values sum to one.
type Distribution map[string]float64

// PagerankMap associates each page with its estimated pagerank value.
type PagerankMap map[string]float64

// Distance computes the L1 distance between two maps over the keys of map1;
// keys that only appear in map2 are ignored. If map1 is nil or empty, it
// returns 0.0.
func Distance(map1, map2 PagerankMap) float64 {
	distance := 0.0
	for key := range map1 {
		distance += math.Abs(map1[key] - map2[key])
	}
	return distance
}

//---------------------------------ERROR-CODES---------------------------------

var ErrInvalidDampingFactor = errors.New("the damping factor should be a number between 0 and 1 (excluded)")
var ErrInvalidSampleCount = errors.New("the number of samples should be greater than zero")
var ErrInvalidWalkers = errors.New("the number of walkers should be greater than zero")
var ErrInvalidEpsilon = errors.New("the convergence threshold should be greater than zero")
var ErrInvalidMaxIterations = errors.New("the maximum number of iterations should be greater than zero")
var ErrInvalidDistribution = errors.New("the distribution has non-positive total mass")
