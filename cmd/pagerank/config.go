package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/vertex-lab/pagerank/pkg/utils/logger"
)

// The configuration parameters for a ranking run.
type Config struct {
	Log       *logger.Aggregate
	LogWriter io.Writer

	// DampingFactor is the probability that the surfer follows an outbound
	// link instead of jumping to a random page.
	DampingFactor float64

	// SampleCount is the number of steps of the Monte-Carlo walk.
	SampleCount int

	// Walkers is the number of concurrent walks the samples are split over.
	Walkers int

	// RandomSeed makes the sampling reproducible when non-zero; with the
	// zero value every run uses a fresh time-based seed.
	RandomSeed int64

	// Epsilon and MaxIterations bound the iterative estimator.
	Epsilon       float64
	MaxIterations int

	// LegacyResidual switches the convergence check to the signed
	// difference, for parity with older estimators.
	LegacyResidual bool

	// RedistributeDangling spreads the rank held by dangling pages over the
	// corpus at each pass, so the ranks keep summing to one.
	RedistributeDangling bool

	// RedisAddress enables storing the graph and the results in Redis.
	RedisAddress string

	// DisplayConfig prints the loaded configuration at startup.
	DisplayConfig bool
}

// NewConfig returns a config with default parameters.
func NewConfig() *Config {
	return &Config{
		Log:           logger.New(os.Stdout),
		LogWriter:     os.Stdout,
		DampingFactor: 0.85,
		SampleCount:   10000,
		Walkers:       1,
		Epsilon:       0.001,
		MaxIterations: 100,
	}
}

// LoadConfig reads the variables from the environment and parses them into
// a config struct.
func LoadConfig() (*Config, error) {
	var config = NewConfig()
	var err error

	for _, item := range os.Environ() {
		keyVal := strings.SplitN(item, "=", 2)
		key, val := keyVal[0], keyVal[1]

		switch key {
		case "LOGS":
			// LogWriter gets updated if a .log file is specified; otherwise it remains os.Stdout
			if strings.HasSuffix(val, ".log") {
				config.LogWriter, err = os.OpenFile(val, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
				if err != nil {
					return nil, fmt.Errorf("error opening file \"%v\": %v", val, err)
				}
			}

			config.Log = logger.New(config.LogWriter)

		case "DAMPING_FACTOR":
			config.DampingFactor, err = strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "SAMPLE_COUNT":
			config.SampleCount, err = strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "WALKERS":
			config.Walkers, err = strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "RANDOM_SEED":
			config.RandomSeed, err = strconv.ParseInt(val, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "CONVERGENCE_EPSILON":
			config.Epsilon, err = strconv.ParseFloat(val, 64)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "MAX_ITERATIONS":
			config.MaxIterations, err = strconv.Atoi(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "LEGACY_RESIDUAL":
			config.LegacyResidual, err = strconv.ParseBool(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "REDISTRIBUTE_DANGLING":
			config.RedistributeDangling, err = strconv.ParseBool(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}

		case "REDIS_ADDRESS":
			config.RedisAddress = val

		case "DISPLAY_CONFIG":
			config.DisplayConfig, err = strconv.ParseBool(val)
			if err != nil {
				return nil, fmt.Errorf("error parsing %v: %v", keyVal, err)
			}
		}
	}

	return config, nil
}

func (c *Config) Print() {
	fmt.Println("Config:")
	fmt.Printf("  LogWriter: %T\n", c.LogWriter)
	fmt.Printf("  DampingFactor: %f\n", c.DampingFactor)
	fmt.Printf("  SampleCount: %d\n", c.SampleCount)
	fmt.Printf("  Walkers: %d\n", c.Walkers)
	fmt.Printf("  RandomSeed: %d\n", c.RandomSeed)
	fmt.Printf("  Epsilon: %f\n", c.Epsilon)
	fmt.Printf("  MaxIterations: %d\n", c.MaxIterations)
	fmt.Printf("  LegacyResidual: %t\n", c.LegacyResidual)
	fmt.Printf("  RedistributeDangling: %t\n", c.RedistributeDangling)
	fmt.Printf("  RedisAddress: %v\n", c.RedisAddress)
	fmt.Printf("  DisplayConfig: %t\n", c.DisplayConfig)
}

// CloseLogs closes the config.LogWriter if that is a file.
func (c *Config) CloseLogs() {
	if file, ok := c.LogWriter.(*os.File); ok && file != os.Stdout {
		file.Close()
	}
}
