package pagerank

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	testCases := []struct {
		name     string
		map1     PagerankMap
		map2     PagerankMap
		expected float64
	}{
		{
			name:     "nil map",
			map1:     nil,
			map2:     PagerankMap{"a.html": 1.0},
			expected: 0.0,
		},
		{
			name:     "identical maps",
			map1:     PagerankMap{"a.html": 0.5, "b.html": 0.5},
			map2:     PagerankMap{"a.html": 0.5, "b.html": 0.5},
			expected: 0.0,
		},
		{
			name:     "extra keys in map2 are ignored",
			map1:     PagerankMap{"a.html": 0.5},
			map2:     PagerankMap{"a.html": 0.5, "b.html": 0.5},
			expected: 0.0,
		},
		{
			name:     "known distance",
			map1:     PagerankMap{"a.html": 0.2, "b.html": 0.8},
			map2:     PagerankMap{"a.html": 0.5, "b.html": 0.5},
			expected: 0.6,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			if distance := Distance(test.map1, test.map2); math.Abs(distance-test.expected) > 1e-9 {
				t.Errorf("Distance(): expected %v, got %v", test.expected, distance)
			}
		})
	}
}
