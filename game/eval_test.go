package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

type constEvaluator float64

func (c constEvaluator) Evaluate(*Board) float64 {
	return float64(c)
}

func TestWeightedEvaluator(t *testing.T) {
	b := MustBoard([][]int{{2}})

	t.Run("weighted average of terms", func(t *testing.T) {
		w := NewWeightedEvaluator(
			Term{Evaluator: constEvaluator(1.0), Weight: 2.0},
			Term{Evaluator: constEvaluator(0.0), Weight: 3.0},
		)
		require.InDelta(t, 0.4, w.Evaluate(b), 1e-12)
	})

	t.Run("zero weights are excluded", func(t *testing.T) {
		w := NewWeightedEvaluator(
			Term{Evaluator: constEvaluator(0.8), Weight: 1.0},
			Term{Evaluator: constEvaluator(100), Weight: 0},
		)
		require.InDelta(t, 0.8, w.Evaluate(b), 1e-12)
	})

	t.Run("no terms or only zero weights score zero", func(t *testing.T) {
		require.Equal(t, 0.0, NewWeightedEvaluator().Evaluate(b))
		require.Equal(t, 0.0, NewWeightedEvaluator(Term{Evaluator: constEvaluator(1), Weight: 0}).Evaluate(b))
	})

	t.Run("nested composition", func(t *testing.T) {
		inner := NewWeightedEvaluator(
			Term{Evaluator: constEvaluator(1.0), Weight: 1},
			Term{Evaluator: constEvaluator(0.0), Weight: 1},
		)
		outer := NewWeightedEvaluator(
			Term{Evaluator: inner, Weight: 1},
			Term{Evaluator: EvaluatorFunc(func(*Board) float64 { return 1 }), Weight: 1},
		)
		require.InDelta(t, 0.75, outer.Evaluate(b), 1e-12)
	})
}

func TestEmptyCellsEvaluator(t *testing.T) {
	e := EmptyCellsEvaluator{}

	t.Run("empty board counts only free cells", func(t *testing.T) {
		b, err := NewBoard(4)
		require.NoError(t, err)
		require.InDelta(t, 160.0/170.0, e.Evaluate(b), 1e-12)
	})

	t.Run("adds the log of the largest tile", func(t *testing.T) {
		b := MustBoard([][]int{{2, 0}, {0, 8}})
		want := (20 + math.Log(8)) / 170
		require.InDelta(t, want, e.Evaluate(b), 1e-12)
	})

	t.Run("clamps to one", func(t *testing.T) {
		b, err := NewBoard(5)
		require.NoError(t, err)
		require.Equal(t, 1.0, e.Evaluate(b))
	})
}

func TestMonotonicityEvaluator(t *testing.T) {
	e := MonotonicityEvaluator{}

	t.Run("decreasing board scores one", func(t *testing.T) {
		b := MustBoard([][]int{
			{64, 32, 16, 8},
			{32, 16, 8, 4},
			{16, 8, 4, 2},
			{8, 4, 2, 0},
		})
		require.Equal(t, 1.0, e.Evaluate(b))
	})

	t.Run("increasing pairs are penalized by log2 difference", func(t *testing.T) {
		b := MustBoard([][]int{{2, 8}, {0, 0}})
		// Only the top row rises, by two doublings.
		want := (22.0*2*1 - 2) / (22.0 * 2 * 1)
		require.InDelta(t, want, e.Evaluate(b), 1e-12)
	})

	t.Run("explicit maximum penalty", func(t *testing.T) {
		b := MustBoard([][]int{{2, 8}, {0, 0}})
		require.InDelta(t, 0.5, MonotonicityEvaluator{MaxPenalty: 4}.Evaluate(b), 1e-12)
		require.Equal(t, 0.0, MonotonicityEvaluator{MaxPenalty: 1}.Evaluate(b))
	})

	t.Run("single cell board", func(t *testing.T) {
		require.Equal(t, 1.0, e.Evaluate(MustBoard([][]int{{4}})))
	})
}

func TestSmoothnessEvaluator(t *testing.T) {
	e := SmoothnessEvaluator{MaxPenalty: 10}

	require.Equal(t, 1.0, e.Evaluate(MustBoard([][]int{{4, 4}, {4, 4}})))
	// 2|8 differs by 2, 2/32 by 4, 8 and 32 are not neighbours.
	require.InDelta(t, 0.4, e.Evaluate(MustBoard([][]int{{2, 8}, {32, 0}})), 1e-12)
	require.Equal(t, 0.0, ZeroEvaluator{}.Evaluate(MustBoard([][]int{{4, 4}, {4, 4}})))
}
