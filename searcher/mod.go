package searcher

import "tiles/game"

// Player picks the next move for a board. The board must have a legal move.
type Player interface {
	ChooseMove(b *game.Board) game.Move
}

const (
	DefaultDepth      = 3
	DefaultGoroutines = 1

	statsInterval = 20 // Decisions between cache statistics log lines
)
