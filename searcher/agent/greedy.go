package agent

import (
	"time"

	"tiles/experiments/metrics"
	"tiles/game"
)

type greedyAgent struct {
	rules game.Rules
}

// NewGreedyAgent returns an agent that plays the move gaining the most score
// right away. Ties go to the earliest move in game.Moves.
func NewGreedyAgent(rules game.Rules) Agent {
	return greedyAgent{rules: rules}
}

func (a greedyAgent) FindMove(b *game.Board) (game.Move, metrics.SearchMetric) {
	start := time.Now()
	moves := a.rules.LegalMoves(b)
	if len(moves) == 0 {
		panic("board has no legal moves")
	}

	best, bestGain := moves[0], -1
	for _, move := range moves {
		if gain := a.rules.MakeMove(b, move).ScoreGained; gain > bestGain {
			best, bestGain = move, gain
		}
	}
	return best, metrics.SearchMetric{
		Depth:         1,
		DecisionNodes: 1,
		Evaluations:   len(moves),
		Duration:      time.Since(start),
	}
}
