package agent

import (
	"tiles/experiments/metrics"
	"tiles/game"
	"tiles/searcher"
)

type expectimaxAgent struct {
	expectimax *searcher.Expectimax
}

// NewExpectimaxAgent returns an agent that plays the move with the highest expected value.
func NewExpectimaxAgent(expectimax *searcher.Expectimax) Agent {
	return expectimaxAgent{expectimax: expectimax}
}

func (a expectimaxAgent) FindMove(b *game.Board) (game.Move, metrics.SearchMetric) {
	decision, metric := a.expectimax.Search(b)
	if !decision.Found {
		panic("board has no legal moves")
	}
	return decision.Move, metric
}
