package game

import (
	"errors"
	"fmt"

	"golang.org/x/exp/rand"
)

var (
	ErrNoEmptyCells       = errors.New("board has no empty cells")
	ErrInvalidProbability = errors.New("spawn probability must be within [0, 1]")
)

// Outcome is one possible spawn and its probability.
type Outcome struct {
	Board       *Board
	Probability float64
}

// SpawnDistribution lists every possible spawn after a move.
type SpawnDistribution struct {
	Outcomes []Outcome
}

func (d SpawnDistribution) TotalProbability() float64 {
	total := 0.0
	for _, o := range d.Outcomes {
		total += o.Probability
	}
	return total
}

// ClassicSpawner places a 2 with probability p, otherwise a 4, on an empty cell
// chosen uniformly.
type ClassicSpawner struct {
	p float64
}

func NewClassicSpawner(p float64) (*ClassicSpawner, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("new spawner with p=%v: %w", p, ErrInvalidProbability)
	}
	return &ClassicSpawner{p: p}, nil
}

// ProbabilityOfTwo returns p.
func (s *ClassicSpawner) ProbabilityOfTwo() float64 {
	return s.p
}

// Distribution enumerates, for every empty cell in ascending order, the 2-spawn
// followed by the 4-spawn. Outcomes with zero probability are left out.
func (s *ClassicSpawner) Distribution(b *Board) (SpawnDistribution, error) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return SpawnDistribution{}, fmt.Errorf("spawn distribution: %w", ErrNoEmptyCells)
	}

	cellProbability := 1.0 / float64(len(empty))
	values := [2]struct {
		tile        int
		probability float64
	}{
		{tile: 2, probability: s.p},
		{tile: 4, probability: 1 - s.p},
	}

	outcomes := make([]Outcome, 0, 2*len(empty))
	for _, cell := range empty {
		for _, v := range values {
			if v.probability == 0 {
				continue
			}
			outcomes = append(outcomes, Outcome{
				Board:       b.placeAt(cell, v.tile),
				Probability: cellProbability * v.probability,
			})
		}
	}
	return SpawnDistribution{Outcomes: outcomes}, nil
}

// Spawn draws the tile value, then the cell.
func (s *ClassicSpawner) Spawn(b *Board, r *rand.Rand) (*Board, error) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return nil, fmt.Errorf("spawn: %w", ErrNoEmptyCells)
	}

	value := 4
	if r.Float64() < s.p {
		value = 2
	}
	cell := empty[r.Intn(len(empty))]
	return b.placeAt(cell, value), nil
}
