package experiments

import (
	"errors"
	"fmt"

	"tiles/config"
	"tiles/engine"
	"tiles/experiments/metrics"
	"tiles/game"
	"tiles/searcher"
	"tiles/searcher/agent"

	"github.com/rs/zerolog/log"
)

const (
	KindExpectimax = "expectimax"
	KindGreedy     = "greedy"
	KindRandom     = "random"
)

var Kinds = []string{KindExpectimax, KindGreedy, KindRandom}

var ErrUnknownAgent = errors.New("unknown agent kind")

// Run plays c.Experiment.Games games per agent config on seeds c.Seed,
// c.Seed+1, ... and stores configs, game records, move records and
// optionally replays under c.Experiment.OutputDir/name.
func Run(name string, c config.Config, configs []metrics.AgentConfig) ([]Summary, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	rules := game.NewClassicRules()
	spawner, err := game.NewClassicSpawner(c.SpawnProbability)
	if err != nil {
		return nil, err
	}
	// Fail on a bad config before any game is played
	agents := make([]agent.Agent, len(configs))
	for i, ac := range configs {
		if agents[i], err = createAgent(ac, rules, spawner, c.Seed); err != nil {
			return nil, err
		}
	}

	writer, err := metrics.NewWriter(c.Experiment.OutputDir, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	summaries := make([]Summary, 0, len(configs))

	log.Info().Msgf("starting %s experiment...", name)

	for ci, ac := range configs {
		log.Info().Msgf("starting agent %d of %d: %+v...", ci+1, len(configs), ac)

		gameMetrics := make([]metrics.GameMetric, 0, c.Experiment.Games)
		for i := 0; i < c.Experiment.Games; i++ {
			seed := c.Seed + uint64(i)
			g, err := game.NewGame(c.GridSize, rules, spawner, seed)
			if err != nil {
				return nil, err
			}
			recorder := metrics.NewRecorder()
			e := engine.LocalEngine(g, agents[ci], recorder)

			gameMetric, moveMetrics, err := e.Run()
			if err != nil {
				return nil, err
			}
			count++
			gameMetrics = append(gameMetrics, gameMetric)
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent:      ac.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			if c.Experiment.Replays {
				if err := writer.WriteReplay(ac.ID, recorder.Replay()); err != nil {
					return nil, err
				}
			}
			log.Info().Msgf("completed agent %d game %d of %d with score %d", ac.ID, i+1, c.Experiment.Games, gameMetric.FinalScore)
		}

		summary := summarize(ac, gameMetrics)
		summaries = append(summaries, summary)
		log.Info().
			Int("agent", summary.Agent).
			Str("kind", summary.Kind).
			Float64("mean_score", summary.MeanScore).
			Float64("median_score", summary.MedianScore).
			Int("best_score", summary.BestScore).
			Float64("win_rate", summary.WinRate).
			Msg("completed agent")
	}

	log.Info().Msgf("completed %s experiment", name)

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return summaries, nil
}

// AgentConfigFrom describes an agent of the given kind using the search and
// evaluator settings of c.
func AgentConfigFrom(id int, kind string, c config.Config) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:            id,
		Kind:          kind,
		Depth:         c.Search.Depth,
		CacheCapacity: c.Search.CacheCapacity,
		Goroutines:    c.Search.Goroutines,
		TimeBudget:    c.Search.TimeBudget,
		EmptyCells:    c.Evaluator.EmptyCells,
		Monotonicity:  c.Evaluator.Monotonicity,
		Smoothness:    c.Evaluator.Smoothness,
	}
}

// createAgent builds the agent for ac. One expectimax agent plays all of its
// games, so its cache carries over from game to game.
func createAgent(ac metrics.AgentConfig, rules game.Rules, spawner game.Spawner, seed uint64) (agent.Agent, error) {
	switch ac.Kind {
	case KindExpectimax:
		search := config.SearchConfig{
			Depth:         ac.Depth,
			CacheCapacity: ac.CacheCapacity,
			Goroutines:    ac.Goroutines,
			TimeBudget:    ac.TimeBudget,
		}
		weights := config.EvaluatorConfig{
			EmptyCells:   ac.EmptyCells,
			Monotonicity: ac.Monotonicity,
			Smoothness:   ac.Smoothness,
		}
		options := append(search.Options(), searcher.WithMetrics())
		return agent.NewExpectimaxAgent(searcher.NewExpectimax(rules, spawner, weights.NewEvaluator(), options...)), nil
	case KindGreedy:
		return agent.NewGreedyAgent(rules), nil
	case KindRandom:
		return agent.NewRandomAgent(rules, seed+uint64(ac.ID)), nil
	default:
		return nil, fmt.Errorf("agent %d of kind %q: %w", ac.ID, ac.Kind, ErrUnknownAgent)
	}
}
