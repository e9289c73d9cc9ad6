package searcher

import (
	"testing"
	"time"

	"tiles/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newSpawner(t *testing.T) game.Spawner {
	t.Helper()
	spawner, err := game.NewClassicSpawner(0.9)
	require.NoError(t, err)
	return spawner
}

// topRow weighs the top right cell ten times the top left one.
var topRow = game.EvaluatorFunc(func(b *game.Board) float64 {
	return float64(b.Get(0, 0)) + 10*float64(b.Get(0, 1))
})

func randomBoard(r *rand.Rand, n int) *game.Board {
	cells := make([]int, n*n)
	for i := range cells {
		if r.Intn(3) > 0 {
			cells[i] = 1 << (1 + r.Intn(5))
		}
	}
	return game.WrapTrustedCells(n, cells)
}

func TestSearch(t *testing.T) {
	rules := game.NewClassicRules()

	t.Run("hand computed tree", func(t *testing.T) {
		e := NewExpectimax(rules, newSpawner(t), topRow, WithDepth(1))
		b := game.MustBoard([][]int{{2, 0}, {0, 0}})

		got, _ := e.Search(b)

		// Right keeps the 2 top right and leaves the top left cell to the spawn.
		require.True(t, got.Found)
		require.Equal(t, game.Right, got.Move)
		require.InDelta(t, 20+2*0.3+4*0.1/3, got.Value, 1e-9)
	})

	t.Run("ties keep the first legal move", func(t *testing.T) {
		corner := game.EvaluatorFunc(func(b *game.Board) float64 { return float64(b.Get(0, 0)) })
		e := NewExpectimax(rules, newSpawner(t), corner, WithDepth(1))
		got, _ := e.Search(game.MustBoard([][]int{{2, 0}, {0, 0}}))
		require.Equal(t, game.Right, got.Move, "Right and Down are worth the same")
	})

	t.Run("terminal board has no move", func(t *testing.T) {
		e := NewExpectimax(rules, newSpawner(t), topRow)
		b := game.MustBoard([][]int{{2, 4}, {4, 2}})

		got, _ := e.Search(b)
		require.False(t, got.Found)
		require.Equal(t, topRow.Evaluate(b), got.Value)
		require.Panics(t, func() { e.ChooseMove(b) })
	})

	t.Run("chosen move is always legal", func(t *testing.T) {
		e := NewExpectimax(rules, newSpawner(t), game.EmptyCellsEvaluator{}, WithDepth(2), WithCache(10000))
		r := game.NewRand(11)
		for i := 0; i < 20; i++ {
			b := randomBoard(r, 3)
			if rules.IsGameOver(b) {
				continue
			}
			require.True(t, rules.CanMove(b, e.ChooseMove(b)), "on\n%s", b)
		}
	})
}

func TestChancePassThrough(t *testing.T) {
	rules := game.NewClassicRules()
	corner := game.EvaluatorFunc(func(b *game.Board) float64 { return float64(b.Get(0, 0)) })
	e := NewExpectimax(rules, newSpawner(t), corner, WithDepth(1))
	full := game.MustBoard([][]int{{2, 2}, {4, 8}})

	// Left is worth 4 after any spawn. Consuming depth would score the board itself.
	got, exact := e.newSearch().chance(full, 1)
	require.True(t, exact)
	require.InDelta(t, 4.0, got, 1e-9)
}

func TestCacheTransparency(t *testing.T) {
	rules := game.NewClassicRules()
	evaluator := game.NewWeightedEvaluator(
		game.Term{Evaluator: game.EmptyCellsEvaluator{}, Weight: 1},
		game.Term{Evaluator: game.MonotonicityEvaluator{}, Weight: 1},
	)
	plain := NewExpectimax(rules, newSpawner(t), evaluator, WithDepth(2))
	cached := NewExpectimax(rules, newSpawner(t), evaluator, WithDepth(2), WithCache(5000))
	parallel := NewExpectimax(rules, newSpawner(t), evaluator, WithDepth(2), WithCache(5000), WithGoroutines(4))

	r := game.NewRand(17)
	for i := 0; i < 15; i++ {
		b := randomBoard(r, 3+r.Intn(2))
		want, _ := plain.Search(b)
		got, _ := cached.Search(b)
		require.Equal(t, want, got, "cached search on\n%s", b)
		got, _ = parallel.Search(b)
		require.Equal(t, want, got, "parallel search on\n%s", b)
	}
	require.Positive(t, cached.CacheLen())
	require.LessOrEqual(t, cached.CacheLen(), 5000)
}

func TestSearchMetrics(t *testing.T) {
	rules := game.NewClassicRules()
	b := game.MustBoard([][]int{{2, 0}, {0, 0}})

	t.Run("counts every node without a cache", func(t *testing.T) {
		e := NewExpectimax(rules, newSpawner(t), topRow, WithDepth(1), WithMetrics())
		_, metric := e.Search(b)

		// Right and Down each spawn 2 or 4 on three cells.
		require.Equal(t, 1, metric.Depth)
		require.Equal(t, 13, metric.DecisionNodes)
		require.Equal(t, 2, metric.ChanceNodes)
		require.Equal(t, 12, metric.Evaluations)
		require.Equal(t, 0, metric.CacheLookups)
		require.False(t, metric.IsTruncated)
	})

	t.Run("transpositions hit the cache", func(t *testing.T) {
		e := NewExpectimax(rules, newSpawner(t), topRow, WithDepth(1), WithCache(100), WithMetrics())
		_, metric := e.Search(b)

		// Right then a 2 bottom left equals Down then a 2 top right.
		require.Equal(t, 14, metric.CacheLookups)
		require.Equal(t, 1, metric.CacheHits)
		require.Equal(t, 12, metric.DecisionNodes)
		require.Equal(t, 11, metric.Evaluations)
		require.Equal(t, 100, metric.CacheCapacity)
	})

	t.Run("cache persists across searches", func(t *testing.T) {
		e := NewExpectimax(rules, newSpawner(t), topRow, WithDepth(1), WithCache(100), WithMetrics())
		first, _ := e.Search(b)
		second, metric := e.Search(b)

		require.Equal(t, first, second)
		require.Equal(t, 2, metric.CacheLookups)
		require.Equal(t, 2, metric.CacheHits)
		require.Equal(t, 1, metric.DecisionNodes)
		require.Equal(t, 0, metric.Evaluations)
	})
}

func TestTimeBudget(t *testing.T) {
	rules := game.NewClassicRules()
	e := NewExpectimax(rules, newSpawner(t), game.EmptyCellsEvaluator{},
		WithDepth(3), WithCache(1000), WithTimeBudget(time.Nanosecond), WithMetrics())
	b := game.MustBoard([][]int{{2, 0, 0}, {0, 4, 0}, {0, 0, 0}})

	got, metric := e.Search(b)

	require.True(t, got.Found)
	require.True(t, rules.CanMove(b, got.Move))
	require.True(t, metric.IsTruncated)
	require.Equal(t, 0, e.CacheLen(), "Truncated values should not be cached")
}

func TestOptions(t *testing.T) {
	rules := game.NewClassicRules()
	e := NewExpectimax(rules, newSpawner(t), topRow, WithDepth(0), WithCache(-1), WithGoroutines(0))
	require.Equal(t, DefaultDepth, e.Depth())
	require.Equal(t, 0, e.CacheLen())
	require.Equal(t, DefaultGoroutines, e.goroutines)

	require.Panics(t, func() { NewExpectimax(nil, newSpawner(t), topRow) })
}
