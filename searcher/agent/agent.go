package agent

import (
	"tiles/experiments/metrics"
	"tiles/game"
)

type Agent interface {
	// FindMove returns a legal move for b and performance metrics (if collected) from the search.
	// The board must have a legal move.
	FindMove(b *game.Board) (game.Move, metrics.SearchMetric)
}
