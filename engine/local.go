package engine

import (
	"fmt"
	"time"

	"tiles/experiments/metrics"
	"tiles/game"
	"tiles/meta"
	"tiles/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	Game      *game.Game
	Agent     agent.Agent
	listeners []Listener
	maxMoves  int
}

func LocalEngine(g *game.Game, a agent.Agent, listeners ...Listener) *Engine {
	if g == nil || a == nil {
		panic("engine needs a game and an agent")
	}
	return &Engine{
		Game:      g,
		Agent:     a,
		listeners: listeners,
		maxMoves:  MaxMoves,
	}
}

// WithMaxMoves caps the game at n moves.
func (e *Engine) WithMaxMoves(n int) *Engine {
	if n > 0 {
		e.maxMoves = n
	}
	return e
}

// Run spawns the starting tiles and plays until no move is left or the move
// cap is reached.
func (e *Engine) Run() (metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		Seed:       e.Game.Seed(),
		MoveCounts: make(map[string]int, len(game.Moves)),
		StartTime:  time.Now(),
	}

	if err := e.Game.Initialize(); err != nil {
		return gameMetric, nil, fmt.Errorf("initialize game %d: %w", e.Game.Seed(), err)
	}
	for _, l := range e.listeners {
		l.OnInit(e.Game.Board())
	}
	log.Debug().Msgf("game %d starting\n%s", e.Game.Seed(), e.Game.Board())

	var moveMetrics []metrics.MoveMetric
	step := 0
	for !e.Game.IsGameOver() && step < e.maxMoves {
		move, searchMetric := e.Agent.FindMove(e.Game.Board())
		if _, err := e.Game.Step(move); err != nil {
			return gameMetric, moveMetrics, fmt.Errorf("step %d of game %d: %w", step+1, e.Game.Seed(), err)
		}
		step++

		gameMetric.MoveCounts[move.String()]++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Move:         move.String(),
			Score:        e.Game.Score(),
			SearchMetric: searchMetric,
		})
		for _, l := range e.listeners {
			l.OnStep(step, move, e.Game.Board(), e.Game.Score())
		}
		log.Debug().
			Int("step", step).
			Str("move", move.String()).
			Int("score", e.Game.Score()).
			Dur("search", searchMetric.Duration).
			Msg("move played")
	}

	if !e.Game.IsGameOver() {
		log.Warn().Msgf("game %d stopped after %d moves without finishing", e.Game.Seed(), step)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.FinalScore = e.Game.Score()
	gameMetric.Steps = step
	gameMetric.MaxTile = e.Game.Board().MaxTile()
	gameMetric.Reached2048 = gameMetric.MaxTile >= meta.WINNING_TILE

	for _, l := range e.listeners {
		l.OnGameOver(gameMetric)
	}
	log.Info().Msgf("game %d over after %d moves: score %d, max tile %d", gameMetric.Seed, step, gameMetric.FinalScore, gameMetric.MaxTile)
	return gameMetric, moveMetrics, nil
}
