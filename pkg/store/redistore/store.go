// The redistore package persists crawled graphs and computed pageranks to
// Redis, so other services can read the results of a ranking run without
// re-running the estimators.
package redistore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/vertex-lab/pagerank/pkg/graph"
	"github.com/vertex-lab/pagerank/pkg/pagerank"
	"github.com/vertex-lab/pagerank/pkg/utils/redisutils"
)

// RankStore writes and reads graphs and rank mappings using the provided
// Redis client.
type RankStore struct {
	client *redis.Client
	ctx    context.Context
}

// New creates a new instance of RankStore using the provided Redis client.
func New(ctx context.Context, cl *redis.Client) (*RankStore, error) {
	if cl == nil {
		return nil, ErrNilClientPointer
	}

	return &RankStore{client: cl, ctx: ctx}, nil
}

// KeyPages is the Redis key of the set of pages in the corpus.
func KeyPages() string {
	return "corpus:pages"
}

// KeyLinks returns the Redis key of the set of pages that page links to.
func KeyLinks(page string) string {
	return fmt.Sprintf("corpus:links:%s", page)
}

// KeyRanks returns the Redis key of the rank mapping stored under label
// (e.g. "sampling", "iteration").
func KeyRanks(label string) string {
	return fmt.Sprintf("pagerank:%s", label)
}

// SaveGraph stores the graph as one set of pages plus one set of links per
// page. The graph is validated first; an invalid graph is never stored.
func (s *RankStore) SaveGraph(g graph.Graph) error {
	if s == nil {
		return ErrNilRankStorePointer
	}

	if err := g.Validate(); err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	for page, links := range g {
		pipe.SAdd(s.ctx, KeyPages(), page)
		for link := range links.Iter() {
			pipe.SAdd(s.ctx, KeyLinks(page), link)
		}
	}

	_, err := pipe.Exec(s.ctx)
	return err
}

// LoadGraph rebuilds the graph stored by SaveGraph.
func (s *RankStore) LoadGraph() (graph.Graph, error) {
	if s == nil {
		return nil, ErrNilRankStorePointer
	}

	pages, err := s.client.SMembers(s.ctx, KeyPages()).Result()
	if err != nil {
		return nil, err
	}

	if len(pages) == 0 {
		return nil, graph.ErrEmptyGraph
	}

	g := graph.New()
	for _, page := range pages {
		g.AddPage(page)
	}

	for _, page := range pages {
		links, err := s.client.SMembers(s.ctx, KeyLinks(page)).Result()
		if err != nil {
			return nil, err
		}

		for _, link := range links {
			g.AddLink(page, link)
		}
	}

	return g, nil
}

// SaveRanks stores the rank mapping in a hash under the label.
func (s *RankStore) SaveRanks(label string, ranks pagerank.PagerankMap) error {
	if s == nil {
		return ErrNilRankStorePointer
	}

	if len(ranks) == 0 {
		return ErrEmptyRanks
	}

	fields := make(map[string]string, len(ranks))
	for page, rank := range ranks {
		fields[page] = redisutils.FormatRank(rank)
	}

	return s.client.HSet(s.ctx, KeyRanks(label), fields).Err()
}

// LoadRanks returns the rank mapping stored under the label.
func (s *RankStore) LoadRanks(label string) (pagerank.PagerankMap, error) {
	if s == nil {
		return nil, ErrNilRankStorePointer
	}

	fields, err := s.client.HGetAll(s.ctx, KeyRanks(label)).Result()
	if err != nil {
		return nil, err
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrRanksNotFound, label)
	}

	ranks := make(pagerank.PagerankMap, len(fields))
	for page, strRank := range fields {
		rank, err := redisutils.ParseRank(strRank)
		if err != nil {
			return nil, err
		}
		ranks[page] = rank
	}

	return ranks, nil
}

//---------------------------------ERROR-CODES---------------------------------

var ErrNilClientPointer = errors.New("nil redis client pointer")
var ErrNilRankStorePointer = errors.New("nil RankStore pointer")
var ErrEmptyRanks = errors.New("the rank mapping is empty")
var ErrRanksNotFound = errors.New("no ranks stored under this label")
