package agent

import (
	"testing"

	"tiles/game"
	"tiles/searcher"

	"github.com/stretchr/testify/require"
)

func TestGreedyAgent(t *testing.T) {
	rules := game.NewClassicRules()
	a := NewGreedyAgent(rules)

	t.Run("picks the biggest merge", func(t *testing.T) {
		b := game.MustBoard([][]int{
			{2, 4, 8, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{16, 16, 0, 0},
		})
		move, metric := a.FindMove(b)
		require.Equal(t, game.Left, move, "Left is the first move merging the 16s")
		require.Equal(t, 1, metric.Depth)
	})

	t.Run("no merge falls back to the first legal move", func(t *testing.T) {
		b := game.MustBoard([][]int{{2, 0}, {0, 0}})
		move, _ := a.FindMove(b)
		require.Equal(t, game.Right, move)
	})

	t.Run("terminal board panics", func(t *testing.T) {
		require.Panics(t, func() { a.FindMove(game.MustBoard([][]int{{2}})) })
	})
}

func TestRandomAgent(t *testing.T) {
	rules := game.NewClassicRules()
	b := game.MustBoard([][]int{{2, 0, 0}, {0, 4, 0}, {0, 0, 8}})

	t.Run("moves are legal and reproducible", func(t *testing.T) {
		a1, a2 := NewRandomAgent(rules, 5), NewRandomAgent(rules, 5)
		seen := make(map[game.Move]bool)
		for i := 0; i < 50; i++ {
			m1, _ := a1.FindMove(b)
			m2, _ := a2.FindMove(b)
			require.Equal(t, m1, m2)
			require.True(t, rules.CanMove(b, m1))
			seen[m1] = true
		}
		require.Len(t, seen, len(rules.LegalMoves(b)), "Every legal move should come up eventually")
	})

	t.Run("terminal board panics", func(t *testing.T) {
		require.Panics(t, func() { NewRandomAgent(rules, 1).FindMove(game.MustBoard([][]int{{2, 4}, {4, 2}})) })
	})
}

func TestExpectimaxAgent(t *testing.T) {
	rules := game.NewClassicRules()
	spawner, err := game.NewClassicSpawner(0.9)
	require.NoError(t, err)
	e := searcher.NewExpectimax(rules, spawner, game.EmptyCellsEvaluator{}, searcher.WithDepth(1), searcher.WithMetrics())
	a := NewExpectimaxAgent(e)

	b := game.MustBoard([][]int{{2, 2}, {0, 0}})
	move, metric := a.FindMove(b)
	require.Equal(t, e.ChooseMove(b), move)
	require.True(t, rules.CanMove(b, move))
	require.Equal(t, 1, metric.Depth)
	require.Positive(t, metric.DecisionNodes)

	require.Panics(t, func() { a.FindMove(game.MustBoard([][]int{{2, 4}, {4, 2}})) })
}
