package engine

import (
	"tiles/experiments/metrics"
	"tiles/game"
	"tiles/meta"
)

const MaxMoves = meta.MAX_MOVES

// Listener observes a game as the engine plays it.
type Listener interface {
	OnInit(b *game.Board)
	OnStep(step int, move game.Move, b *game.Board, score int)
	OnGameOver(gameMetric metrics.GameMetric)
}
