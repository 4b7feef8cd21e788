package pagerank

import (
	"fmt"
	"math/rand"

	"github.com/vertex-lab/pagerank/pkg/graph"
)

// SetupGraph returns a graph fixture based on the graphType.
func SetupGraph(graphType string) graph.Graph {
	switch graphType {

	case "empty":
		return graph.New()

	case "one-page":
		g := graph.New()
		g.AddPage("a.html")
		return g

	case "pair":
		g := graph.New()
		g.AddLink("a.html", "b.html")
		g.AddLink("b.html", "a.html")
		return g

	case "triangle":
		g := graph.New()
		g.AddLink("a.html", "b.html")
		g.AddLink("b.html", "c.html")
		g.AddLink("c.html", "a.html")
		return g

	// a.html links to two dangling pages
	case "dangling-neighbors":
		g := graph.New()
		g.AddLink("a.html", "b.html")
		g.AddLink("a.html", "c.html")
		return g

	// b.html is the most linked page
	case "hub":
		g := graph.New()
		g.AddLink("a.html", "b.html")
		g.AddLink("b.html", "a.html")
		g.AddLink("c.html", "b.html")
		return g

	case "corpus":
		g := graph.New()
		g.AddLink("1.html", "2.html")
		g.AddLink("2.html", "1.html")
		g.AddLink("2.html", "3.html")
		g.AddLink("3.html", "2.html")
		g.AddLink("3.html", "4.html")
		g.AddLink("4.html", "2.html")
		return g

	default:
		return nil
	}
}

// GenerateGraph returns a random graph with the specified number of pages,
// each linking to linksPerPage other pages. Used in benchmarks.
func GenerateGraph(pages, linksPerPage int, rng *rand.Rand) graph.Graph {
	g := graph.New()
	for i := 0; i < pages; i++ {
		g.AddPage(fmt.Sprintf("%d.html", i))
	}

	for i := 0; i < pages; i++ {
		for j := 0; j < linksPerPage; j++ {
			target := rng.Intn(pages)
			if target == i {
				continue
			}
			g.AddLink(fmt.Sprintf("%d.html", i), fmt.Sprintf("%d.html", target))
		}
	}

	return g
}
