package corpus

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestExtractLinks(t *testing.T) {
	page := `<html><body>
	<h1>Page one</h1>
	<p>See <a href="2.html">page two</a> and <a href="3.html">page three</a>.</p>
	<div><a href="https://example.com/external">external</a></div>
	<a>no href</a>
	</body></html>`

	links, err := ExtractLinks(strings.NewReader(page))
	if err != nil {
		t.Fatalf("ExtractLinks(): expected nil, got %v", err)
	}

	expected := []string{"2.html", "3.html", "https://example.com/external"}
	if !reflect.DeepEqual(links, expected) {
		t.Errorf("ExtractLinks(): expected %v, got %v", expected, links)
	}
}

func TestClean(t *testing.T) {
	raw := map[string][]string{
		"1.html": {"2.html", "1.html", "https://example.com", "2.html"},
		"2.html": {"1.html"},
		"3.html": {},
	}

	g := Clean(raw)

	if err := g.Validate(); err != nil {
		t.Fatalf("Validate(): expected nil, got %v", err)
	}

	if g.Size() != 3 {
		t.Errorf("Clean(): expected 3 pages, got %d", g.Size())
	}

	// self reference and external target are dropped
	if !g["1.html"].Contains("2.html") || g["1.html"].Cardinality() != 1 {
		t.Errorf("Clean(): expected 1.html to link only to 2.html, got %v", g["1.html"])
	}

	if g["3.html"].Cardinality() != 0 {
		t.Errorf("Clean(): expected 3.html to be dangling, got %v", g["3.html"])
	}

	// Clean is a pure transformation
	if len(raw["1.html"]) != 4 {
		t.Errorf("Clean(): the raw links were mutated: %v", raw["1.html"])
	}
}

func TestCrawl(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"1.html":    `<html><body><a href="2.html">two</a><a href="1.html">self</a><a href="https://example.com">out</a></body></html>`,
		"2.html":    `<html><body><a href="1.html">one</a><a href="3.html">three</a></body></html>`,
		"3.html":    `<html><body>no links here</body></html>`,
		"notes.txt": `<a href="1.html">not part of the corpus</a>`,
	}

	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("WriteFile(): expected nil, got %v", err)
		}
	}

	g, err := Crawl(dir)
	if err != nil {
		t.Fatalf("Crawl(): expected nil, got %v", err)
	}

	if err := g.Validate(); err != nil {
		t.Fatalf("Validate(): expected nil, got %v", err)
	}

	expectedPages := []string{"1.html", "2.html", "3.html"}
	if pages := g.Pages(); !reflect.DeepEqual(pages, expectedPages) {
		t.Errorf("Crawl(): expected pages %v, got %v", expectedPages, pages)
	}

	if !g["1.html"].Contains("2.html") || g["1.html"].Cardinality() != 1 {
		t.Errorf("Crawl(): expected 1.html to link only to 2.html, got %v", g["1.html"])
	}

	if g["3.html"].Cardinality() != 0 {
		t.Errorf("Crawl(): expected 3.html to be dangling, got %v", g["3.html"])
	}
}

func TestCrawlMissingDirectory(t *testing.T) {
	if _, err := Crawl("does-not-exist"); err == nil {
		t.Errorf("Crawl(): expected an error, got nil")
	}
}
