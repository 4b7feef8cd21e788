// The corpus package builds the link graph of a closed corpus from a
// directory of HTML pages. A page is identified by its filename; only links
// between pages of the corpus survive the cleaning step.
package corpus

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/vertex-lab/pagerank/pkg/graph"
)

// Crawl parses every .html file in dir and returns the graph of links
// between the pages of the corpus. Anything that is not an .html file is
// ignored.
func Crawl(dir string) (graph.Graph, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read the corpus directory: %w", err)
	}

	raw := make(map[string][]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}

		file, err := os.Open(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to open %v: %w", entry.Name(), err)
		}

		links, err := ExtractLinks(file)
		file.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to parse %v: %w", entry.Name(), err)
		}

		raw[entry.Name()] = links
	}

	return Clean(raw), nil
}

// ExtractLinks returns the href target of every anchor element in the
// document, in document order.
func ExtractLinks(r io.Reader) ([]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	links := []string{}
	var visit func(n *html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href := attribute(n, "href"); href != "" {
				links = append(links, href)
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}

	visit(doc)
	return links, nil
}

// attribute returns the value of the named attribute of n, or "".
func attribute(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

/*
Clean turns the raw extracted links into a valid graph: references of a page
to itself and targets outside the corpus are dropped. It is a pure
transformation; the raw map is left untouched.

The returned graph satisfies graph.Validate by construction.
*/
func Clean(raw map[string][]string) graph.Graph {
	g := graph.New()
	for page := range raw {
		g.AddPage(page)
	}

	for page, links := range raw {
		for _, link := range links {
			if link == page || !g.Contains(link) {
				continue
			}
			g.AddLink(page, link)
		}
	}

	return g
}
