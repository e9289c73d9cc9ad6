package game

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
)

var ErrIllegalMove = errors.New("illegal move")

// Game is a single live game: the current board, the accumulated score and the
// seeded random stream used for spawns.
type Game struct {
	rules   Rules
	spawner Spawner
	seed    uint64
	rng     *rand.Rand
	board   *Board
	score   int
}

// NewGame creates a game on an empty n×n board. Call Initialize before playing.
func NewGame(n int, rules Rules, spawner Spawner, seed uint64) (*Game, error) {
	board, err := NewBoard(n)
	if err != nil {
		return nil, err
	}
	return &Game{
		rules:   rules,
		spawner: spawner,
		seed:    seed,
		rng:     NewRand(seed),
		board:   board,
	}, nil
}

// Initialize spawns the two starting tiles.
func (g *Game) Initialize() error {
	for i := 0; i < 2; i++ {
		board, err := g.spawner.Spawn(g.board, g.rng)
		if err != nil {
			return fmt.Errorf("initialize game: %w", err)
		}
		g.board = board
	}
	return nil
}

// Step plays m and spawns the next tile. Moves that would not change the board
// are rejected with ErrIllegalMove and leave the game untouched.
func (g *Game) Step(m Move) (MoveResult, error) {
	if !g.rules.CanMove(g.board, m) {
		return MoveResult{}, fmt.Errorf("cannot play %s: %w", m, ErrIllegalMove)
	}
	result := g.rules.MakeMove(g.board, m)
	board, err := g.spawner.Spawn(result.Board, g.rng)
	if err != nil {
		return MoveResult{}, fmt.Errorf("step %s: %w", m, err)
	}
	g.board = board
	g.score += result.ScoreGained
	return result, nil
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Seed() uint64 {
	return g.seed
}

func (g *Game) IsGameOver() bool {
	return g.rules.IsGameOver(g.board)
}
