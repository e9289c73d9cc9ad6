package game

import (
	"fmt"
	"strings"
)

// Move is a sliding direction.
type Move int

const (
	Left Move = iota
	Right
	Up
	Down
)

// Moves lists every move in the order search and legality checks visit them.
var Moves = [...]Move{Left, Right, Up, Down}

func (m Move) Opposite() Move {
	switch m {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	default:
		panic(fmt.Sprintf("unknown move %d", m))
	}
}

func (m Move) String() string {
	switch m {
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	case Up:
		return "UP"
	case Down:
		return "DOWN"
	default:
		return fmt.Sprintf("Move(%d)", int(m))
	}
}

// ParseMove accepts the names produced by String, case-insensitively, and the
// w/a/s/d keys.
func ParseMove(s string) (Move, error) {
	switch strings.ToLower(s) {
	case "left", "a":
		return Left, nil
	case "right", "d":
		return Right, nil
	case "up", "w":
		return Up, nil
	case "down", "s":
		return Down, nil
	}
	return 0, fmt.Errorf("unknown move %q", s)
}

// MoveResult is the board produced by a move and the score it earned.
type MoveResult struct {
	Board       *Board
	ScoreGained int
}
