package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"tiles/game"
	"tiles/meta"
	"tiles/searcher"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	GridSize         int              `yaml:"grid_size"`
	SpawnProbability float64          `yaml:"spawn_probability"`
	Seed             uint64           `yaml:"seed"`
	Search           SearchConfig     `yaml:"search"`
	Evaluator        EvaluatorConfig  `yaml:"evaluator"`
	Experiment       ExperimentConfig `yaml:"experiment"`
}

type SearchConfig struct {
	Depth         int           `yaml:"depth"`
	CacheCapacity int           `yaml:"cache_capacity"` // 0 disables the cache
	Goroutines    int           `yaml:"goroutines"`
	TimeBudget    time.Duration `yaml:"time_budget"` // 0 means no budget
}

// EvaluatorConfig holds the weight of each heuristic term.
type EvaluatorConfig struct {
	EmptyCells   float64 `yaml:"empty_cells"`
	Monotonicity float64 `yaml:"monotonicity"`
	Smoothness   float64 `yaml:"smoothness"`
}

type ExperimentConfig struct {
	Games     int    `yaml:"games"`
	OutputDir string `yaml:"output_dir"`
	Replays   bool   `yaml:"replays"`
}

func Default() Config {
	return Config{
		GridSize:         meta.GRID_SIZE,
		SpawnProbability: meta.SPAWN_PROBABILITY,
		Seed:             1,
		Search: SearchConfig{
			Depth:         meta.SEARCH_DEPTH,
			CacheCapacity: meta.CACHE_CAPACITY,
			Goroutines:    meta.GO_ROUTINES,
		},
		Evaluator: EvaluatorConfig{
			EmptyCells:   1,
			Monotonicity: 1,
		},
		Experiment: ExperimentConfig{
			Games:     meta.GAMES,
			OutputDir: "experiments",
			Replays:   true,
		},
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	switch {
	case c.GridSize <= 0:
		return fmt.Errorf("grid_size %d must be positive: %w", c.GridSize, ErrInvalidConfig)
	case c.SpawnProbability < 0 || c.SpawnProbability > 1:
		return fmt.Errorf("spawn_probability %v must be within [0, 1]: %w", c.SpawnProbability, ErrInvalidConfig)
	case c.Search.Depth <= 0:
		return fmt.Errorf("search.depth %d must be positive: %w", c.Search.Depth, ErrInvalidConfig)
	case c.Search.CacheCapacity < 0:
		return fmt.Errorf("search.cache_capacity %d must not be negative: %w", c.Search.CacheCapacity, ErrInvalidConfig)
	case c.Search.Goroutines <= 0:
		return fmt.Errorf("search.goroutines %d must be positive: %w", c.Search.Goroutines, ErrInvalidConfig)
	case c.Search.TimeBudget < 0:
		return fmt.Errorf("search.time_budget %v must not be negative: %w", c.Search.TimeBudget, ErrInvalidConfig)
	case c.Evaluator.EmptyCells < 0 || c.Evaluator.Monotonicity < 0 || c.Evaluator.Smoothness < 0:
		return fmt.Errorf("evaluator weights must not be negative: %w", ErrInvalidConfig)
	case c.Experiment.Games <= 0:
		return fmt.Errorf("experiment.games %d must be positive: %w", c.Experiment.Games, ErrInvalidConfig)
	}
	return nil
}

// NewEvaluator builds the weighted evaluator for the configured weights.
func (c EvaluatorConfig) NewEvaluator() game.Evaluator {
	return game.NewWeightedEvaluator(
		game.Term{Evaluator: game.EmptyCellsEvaluator{}, Weight: c.EmptyCells},
		game.Term{Evaluator: game.MonotonicityEvaluator{}, Weight: c.Monotonicity},
		game.Term{Evaluator: game.SmoothnessEvaluator{}, Weight: c.Smoothness},
	)
}

// Options translates the search settings into expectimax options.
func (c SearchConfig) Options() []searcher.Option {
	options := []searcher.Option{
		searcher.WithDepth(c.Depth),
		searcher.WithGoroutines(c.Goroutines),
	}
	if c.CacheCapacity > 0 {
		options = append(options, searcher.WithCache(c.CacheCapacity))
	}
	if c.TimeBudget > 0 {
		options = append(options, searcher.WithTimeBudget(c.TimeBudget))
	}
	return options
}
