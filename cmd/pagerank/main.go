// Pagerank estimates the importance of every page in a directory of
// interlinked HTML documents, once with a Monte-Carlo random walk and once
// with power iteration, and prints both results.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/vertex-lab/pagerank/pkg/corpus"
	"github.com/vertex-lab/pagerank/pkg/graph"
	"github.com/vertex-lab/pagerank/pkg/pagerank"
	"github.com/vertex-lab/pagerank/pkg/store/redistore"
	"github.com/vertex-lab/pagerank/pkg/utils/redisutils"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: pagerank <corpus-directory>")
		os.Exit(1)
	}

	godotenv.Load()
	config, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}
	defer config.CloseLogs()

	if config.DisplayConfig {
		config.Print()
	}

	if err := run(config, os.Args[1]); err != nil {
		config.Log.Error("%v", err)
		os.Exit(1)
	}
}

func run(config *Config, dir string) error {
	g, err := corpus.Crawl(dir)
	if err != nil {
		return err
	}

	if err := g.Validate(); err != nil {
		return fmt.Errorf("invalid corpus graph: %w", err)
	}

	sampled, err := sampleRanks(config, g)
	if err != nil {
		return err
	}
	printRanks(fmt.Sprintf("PageRank Results from Sampling (n = %d)", config.SampleCount), g, sampled)

	result, err := iterateRanks(config, g)
	if err != nil {
		return err
	}
	printRanks("PageRank Results from Iteration", g, result.Ranks)

	if config.RedisAddress != "" {
		return storeResults(config, g, sampled, result.Ranks)
	}

	return nil
}

// sampleRanks runs the Monte-Carlo estimator, concurrently if more than one
// walker is configured.
func sampleRanks(config *Config, g graph.Graph) (pagerank.PagerankMap, error) {
	seed := config.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if config.Walkers > 1 {
		return pagerank.SampleConcurrent(g, config.DampingFactor, config.SampleCount, config.Walkers, seed)
	}

	rng := rand.New(rand.NewSource(seed))
	return pagerank.SampleWithSource(g, config.DampingFactor, config.SampleCount, rng)
}

func iterateRanks(config *Config, g graph.Graph) (*pagerank.IterateResult, error) {
	cfg := pagerank.NewIterateConfig()
	cfg.DampingFactor = config.DampingFactor
	cfg.Epsilon = config.Epsilon
	cfg.MaxIterations = config.MaxIterations
	cfg.RedistributeDangling = config.RedistributeDangling
	cfg.Log = config.Log

	if config.LegacyResidual {
		cfg.Residual = pagerank.ResidualSigned
	}

	result, err := pagerank.Iterate(g, cfg)
	if err != nil {
		return nil, err
	}

	if !result.Converged {
		config.Log.Warn("iteration stopped after %d passes without converging; printing the best estimate", result.Iterations)
	}

	return result, nil
}

// printRanks prints every page of the graph in lexicographic order with its
// rank rounded to 4 decimal places.
func printRanks(header string, g graph.Graph, ranks pagerank.PagerankMap) {
	fmt.Println(header)
	for _, page := range g.Pages() {
		fmt.Printf("  %s: %.4f\n", page, ranks[page])
	}
}

func storeResults(config *Config, g graph.Graph, sampled, iterated pagerank.PagerankMap) error {
	cl := redisutils.SetupClient(config.RedisAddress)
	defer cl.Close()

	store, err := redistore.New(context.Background(), cl)
	if err != nil {
		return err
	}

	if err := store.SaveGraph(g); err != nil {
		return err
	}

	if err := store.SaveRanks("sampling", sampled); err != nil {
		return err
	}

	if err := store.SaveRanks("iteration", iterated); err != nil {
		return err
	}

	config.Log.Info("graph and results stored in redis at %v", config.RedisAddress)
	return nil
}
