package experiments

import (
	"tiles/config"
	"tiles/experiments/metrics"
)

// Presets maps experiment names to the agents they compare.
var Presets = map[string]func(c config.Config) []metrics.AgentConfig{
	"play":      PlayConfigs,
	"baselines": BaselineConfigs,
	"depth":     DepthConfigs,
	"parallel":  ParallelConfigs,
	"cache":     CacheConfigs,
}

// PlayConfigs is the single expectimax agent described by c.
func PlayConfigs(c config.Config) []metrics.AgentConfig {
	return []metrics.AgentConfig{AgentConfigFrom(1, KindExpectimax, c)}
}

// BaselineConfigs pits the configured expectimax agent against the greedy and random baselines.
func BaselineConfigs(c config.Config) []metrics.AgentConfig {
	return []metrics.AgentConfig{
		AgentConfigFrom(1, KindExpectimax, c),
		AgentConfigFrom(2, KindGreedy, c),
		AgentConfigFrom(3, KindRandom, c),
	}
}

// DepthConfigs sweeps the search depth from 1 up to the configured depth.
func DepthConfigs(c config.Config) []metrics.AgentConfig {
	configs := []metrics.AgentConfig{}
	for depth := 1; depth <= c.Search.Depth; depth++ {
		ac := AgentConfigFrom(depth, KindExpectimax, c)
		ac.Depth = depth
		configs = append(configs, ac)
	}
	return configs
}

// ParallelConfigs doubles the root goroutines from 1 up to the configured count.
func ParallelConfigs(c config.Config) []metrics.AgentConfig {
	configs := []metrics.AgentConfig{}
	for id, goroutines := 1, 1; goroutines <= c.Search.Goroutines; id, goroutines = id+1, goroutines*2 {
		ac := AgentConfigFrom(id, KindExpectimax, c)
		ac.Goroutines = goroutines
		configs = append(configs, ac)
	}
	return configs
}

// CacheConfigs compares searching without a cache to the configured cache.
func CacheConfigs(c config.Config) []metrics.AgentConfig {
	uncached := AgentConfigFrom(1, KindExpectimax, c)
	uncached.CacheCapacity = 0
	return []metrics.AgentConfig{uncached, AgentConfigFrom(2, KindExpectimax, c)}
}
