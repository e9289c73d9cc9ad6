package game

import (
	"math"
	"math/bits"

	"tiles/utils"
)

const (
	// DefaultEmptyCellsMax is the raw empty-cells score treated as a perfect board.
	DefaultEmptyCellsMax = 170.0
	// maxLogStep bounds the log2 difference counted for one pair of neighbours.
	maxLogStep = 11.0
)

// ZeroEvaluator scores every board as 0, turning search into a pure legality walk.
type ZeroEvaluator struct{}

func (ZeroEvaluator) Evaluate(*Board) float64 {
	return 0
}

// EmptyCellsEvaluator rewards free space and, as a tie-breaker, a large top tile.
// The raw score 10·|empty| + ln(maxTile) is divided by Max and clamped to [0, 1].
type EmptyCellsEvaluator struct {
	Max float64
}

func (e EmptyCellsEvaluator) Evaluate(b *Board) float64 {
	limit := e.Max
	if limit <= 0 {
		limit = DefaultEmptyCellsMax
	}
	raw := 10.0 * float64(len(b.EmptyCells()))
	if maxTile := b.MaxTile(); maxTile > 0 {
		raw += math.Log(float64(maxTile))
	}
	return utils.Clamp(raw/limit, 0, 1)
}

// MonotonicityEvaluator penalizes every neighbour pair, rows left to right and
// columns top to bottom, where the later tile is larger than the earlier one.
// The penalty is the log2 increase. The result is 1 for a perfectly decreasing
// board and falls to 0 at MaxPenalty.
type MonotonicityEvaluator struct {
	MaxPenalty float64
}

func (e MonotonicityEvaluator) Evaluate(b *Board) float64 {
	n := b.n
	limit := e.MaxPenalty
	if limit <= 0 {
		limit = defaultPairPenalty(n)
	}
	if limit == 0 {
		return 1
	}

	penalty := 0
	for i := 0; i < n; i++ {
		for j := 0; j < n-1; j++ {
			left := log2Tile(b.cells[i*n+j])
			right := log2Tile(b.cells[i*n+j+1])
			penalty += max(0, right-left)
		}
	}
	for j := 0; j < n; j++ {
		for i := 0; i < n-1; i++ {
			top := log2Tile(b.cells[i*n+j])
			bottom := log2Tile(b.cells[(i+1)*n+j])
			penalty += max(0, bottom-top)
		}
	}

	return utils.Clamp((limit-float64(penalty))/limit, 0, 1)
}

// SmoothnessEvaluator penalizes log2 differences between occupied neighbours,
// so boards whose neighbours are close in value (and easy to merge) score higher.
type SmoothnessEvaluator struct {
	MaxPenalty float64
}

func (e SmoothnessEvaluator) Evaluate(b *Board) float64 {
	n := b.n
	limit := e.MaxPenalty
	if limit <= 0 {
		limit = defaultPairPenalty(n)
	}
	if limit == 0 {
		return 1
	}

	penalty := 0
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := b.cells[r*n+c]
			if v == 0 {
				continue
			}
			if c < n-1 {
				if right := b.cells[r*n+c+1]; right != 0 {
					penalty += absInt(log2Tile(v) - log2Tile(right))
				}
			}
			if r < n-1 {
				if down := b.cells[(r+1)*n+c]; down != 0 {
					penalty += absInt(log2Tile(v) - log2Tile(down))
				}
			}
		}
	}

	return utils.Clamp((limit-float64(penalty))/limit, 0, 1)
}

// Term is one weighted component of a WeightedEvaluator.
type Term struct {
	Evaluator Evaluator
	Weight    float64
}

// WeightedEvaluator is the weighted average of its terms. Terms with zero
// weight are ignored; weights need not sum to 1.
type WeightedEvaluator struct {
	terms []Term
}

func NewWeightedEvaluator(terms ...Term) *WeightedEvaluator {
	return &WeightedEvaluator{terms: terms}
}

func (w *WeightedEvaluator) Evaluate(b *Board) float64 {
	score := 0.0
	totalWeight := 0.0
	for _, t := range w.terms {
		if t.Weight == 0 {
			continue
		}
		score += t.Weight * t.Evaluator.Evaluate(b)
		totalWeight += t.Weight
	}
	if totalWeight == 0 {
		return 0
	}
	return score / totalWeight
}

// defaultPairPenalty allows maxLogStep for each of the 2·n·(n−1) neighbour pairs.
func defaultPairPenalty(n int) float64 {
	return maxLogStep * float64(2*n*(n-1))
}

func log2Tile(v int) int {
	if v <= 0 {
		return 0
	}
	return bits.Len(uint(v)) - 1
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
