package pagerank

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/vertex-lab/pagerank/pkg/graph"
)

func TestSampleConcurrentErrors(t *testing.T) {
	testCases := []struct {
		name          string
		graphType     string
		sampleCount   int
		walkers       int
		expectedError error
	}{
		{
			name:          "empty graph",
			graphType:     "empty",
			sampleCount:   100,
			walkers:       2,
			expectedError: graph.ErrEmptyGraph,
		},
		{
			name:          "invalid sample count",
			graphType:     "pair",
			sampleCount:   -1,
			walkers:       2,
			expectedError: ErrInvalidSampleCount,
		},
		{
			name:          "invalid walkers",
			graphType:     "pair",
			sampleCount:   100,
			walkers:       0,
			expectedError: ErrInvalidWalkers,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			_, err := SampleConcurrent(SetupGraph(test.graphType), 0.85, test.sampleCount, test.walkers, 42)
			if !errors.Is(err, test.expectedError) {
				t.Errorf("SampleConcurrent(): expected %v, got %v", test.expectedError, err)
			}
		})
	}
}

func TestSampleConcurrentReproducible(t *testing.T) {
	g := SetupGraph("corpus")

	ranks1, err := SampleConcurrent(g, 0.85, 1000, 4, 42)
	if err != nil {
		t.Fatalf("SampleConcurrent(): expected nil, got %v", err)
	}

	ranks2, err := SampleConcurrent(g, 0.85, 1000, 4, 42)
	if err != nil {
		t.Fatalf("SampleConcurrent(): expected nil, got %v", err)
	}

	if !reflect.DeepEqual(ranks1, ranks2) {
		t.Errorf("SampleConcurrent(): same seed, different ranks: %v; %v", ranks1, ranks2)
	}
}

func TestSampleConcurrentSumsToOne(t *testing.T) {
	testCases := []struct {
		name        string
		sampleCount int
		walkers     int
	}{
		{name: "even split", sampleCount: 1000, walkers: 4},
		{name: "uneven split", sampleCount: 1000, walkers: 3},
		{name: "more walkers than samples", sampleCount: 2, walkers: 8},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			ranks, err := SampleConcurrent(SetupGraph("corpus"), 0.85, test.sampleCount, test.walkers, 42)
			if err != nil {
				t.Fatalf("SampleConcurrent(): expected nil, got %v", err)
			}

			sum := 0.0
			for _, rank := range ranks {
				sum += rank
			}

			if math.Abs(sum-1.0) > 1e-9 {
				t.Errorf("SampleConcurrent(): ranks sum to %v", sum)
			}
		})
	}
}

func TestSampleConcurrentMutualPair(t *testing.T) {
	ranks, err := SampleConcurrent(SetupGraph("pair"), 0.85, 10000, 4, 42)
	if err != nil {
		t.Fatalf("SampleConcurrent(): expected nil, got %v", err)
	}

	for _, page := range []string{"a.html", "b.html"} {
		if math.Abs(ranks[page]-0.5) > 0.05 {
			t.Errorf("SampleConcurrent(): page %v: expected ~0.5, got %v", page, ranks[page])
		}
	}
}

func TestSplitSamples(t *testing.T) {
	testCases := []struct {
		name     string
		n        int
		walkers  int
		expected []int
	}{
		{name: "even", n: 100, walkers: 4, expected: []int{25, 25, 25, 25}},
		{name: "uneven", n: 10, walkers: 3, expected: []int{4, 3, 3}},
		{name: "single walker", n: 7, walkers: 1, expected: []int{7}},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			steps := splitSamples(test.n, test.walkers)
			if !reflect.DeepEqual(steps, test.expected) {
				t.Errorf("splitSamples(): expected %v, got %v", test.expected, steps)
			}
		})
	}
}
