// The graph package defines the link graph of a closed corpus: which page
// links to which other pages. The graph is built once by the corpus package
// and is read-only afterwards, so it can be shared by concurrent walkers
// without synchronization.
package graph

import (
	"errors"
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// A page is identified by an opaque string (e.g. its filename in the corpus).
// Graph associates each page with the set of pages it links to.
type Graph map[string]mapset.Set[string]

// New returns an empty Graph.
func New() Graph {
	return make(Graph)
}

// AddPage adds a page with no outbound links. It does nothing if the page
// is already present.
func (g Graph) AddPage(page string) {
	if _, exists := g[page]; !exists {
		g[page] = mapset.NewSet[string]()
	}
}

// AddLink adds a link from one page to another, adding both pages if missing.
func (g Graph) AddLink(from, to string) {
	g.AddPage(from)
	g.AddPage(to)
	g[from].Add(to)
}

// Contains returns whether page is part of the corpus.
func (g Graph) Contains(page string) bool {
	_, exists := g[page]
	return exists
}

// Size returns the number of pages in the graph.
func (g Graph) Size() int {
	return len(g)
}

// Pages returns all the pages in the graph, sorted in lexicographic order.
func (g Graph) Pages() []string {
	pages := make([]string, 0, len(g))
	for page := range g {
		pages = append(pages, page)
	}

	sort.Strings(pages)
	return pages
}

// Links returns the set of pages that page links to.
func (g Graph) Links(page string) (mapset.Set[string], error) {
	links, exists := g[page]
	if !exists {
		return nil, fmt.Errorf("%w: %v", ErrPageNotFound, page)
	}
	return links, nil
}

// Validate checks the graph invariants and returns the appropriate error:
// the graph must be non-empty, no page can link to itself, and every link
// target must itself be a page of the graph.
func (g Graph) Validate() error {
	if len(g) == 0 {
		return ErrEmptyGraph
	}

	for page, links := range g {
		for link := range links.Iter() {
			if link == page {
				return fmt.Errorf("%w: %v", ErrSelfLoop, page)
			}

			if _, exists := g[link]; !exists {
				return fmt.Errorf("%w: %v --> %v", ErrLinkOutsideCorpus, page, link)
			}
		}
	}

	return nil
}

//---------------------------------ERROR-CODES---------------------------------

var ErrEmptyGraph = errors.New("the graph contains no pages")
var ErrPageNotFound = errors.New("page not found in the graph")
var ErrSelfLoop = errors.New("page links to itself")
var ErrLinkOutsideCorpus = errors.New("link target outside the corpus")
