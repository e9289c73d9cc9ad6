package game

import "golang.org/x/exp/rand"

// Rules resolves moves on a board. Implementations must be stateless: every
// method is a pure function of its arguments.
type Rules interface {
	IsGameOver(b *Board) bool
	LegalMoves(b *Board) []Move
	CanMove(b *Board, m Move) bool
	MakeMove(b *Board, m Move) MoveResult
}

// Spawner models the random tile that appears after every move.
type Spawner interface {
	// Distribution enumerates every possible spawn with its probability.
	Distribution(b *Board) (SpawnDistribution, error)
	// Spawn samples a single spawn using r.
	Spawn(b *Board, r *rand.Rand) (*Board, error)
}

// Evaluator scores a board heuristically, higher is better.
type Evaluator interface {
	Evaluate(b *Board) float64
}

// EvaluatorFunc adapts a plain function to an Evaluator.
type EvaluatorFunc func(b *Board) float64

func (f EvaluatorFunc) Evaluate(b *Board) float64 {
	return f(b)
}

// NewRand returns a reproducible pseudo-random stream for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
