package agent

import (
	"time"

	"tiles/experiments/metrics"
	"tiles/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rules game.Rules
	rng   *rand.Rand
}

// NewRandomAgent returns an agent that plays a uniformly random legal move.
func NewRandomAgent(rules game.Rules, seed uint64) Agent {
	return &randomAgent{rules: rules, rng: game.NewRand(seed)}
}

func (a *randomAgent) FindMove(b *game.Board) (game.Move, metrics.SearchMetric) {
	start := time.Now()
	moves := a.rules.LegalMoves(b)
	if len(moves) == 0 {
		panic("board has no legal moves")
	}
	move := moves[a.rng.Intn(len(moves))]
	return move, metrics.SearchMetric{Duration: time.Since(start)}
}
