package searcher

import (
	"sync/atomic"
	"time"

	"tiles/experiments/metrics"
	"tiles/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option func(e *Expectimax)

var _ Player = (*Expectimax)(nil)

// Decision is the result of a root search. Found is false when the board has
// no legal move, in which case Value is the board's static evaluation.
type Decision struct {
	Move  game.Move
	Value float64
	Found bool
}

// Expectimax searches alternating player (decision) and spawn (chance) layers
// to a fixed depth, scoring the frontier with an evaluator.
type Expectimax struct {
	rules      game.Rules
	spawner    game.Spawner
	evaluator  game.Evaluator
	depth      int
	goroutines int
	budget     time.Duration
	cache      *Cache[cacheKey, float64]
	metrics    metrics.Collector

	decisions int
	lookups   atomic.Int64
	hits      atomic.Int64
}

func WithDepth(depth int) Option {
	return func(e *Expectimax) {
		if depth > 0 {
			e.depth = depth
		}
	}
}

// WithCache memoises node values in an LRU cache of the given capacity that
// lives as long as the searcher.
func WithCache(capacity int) Option {
	return func(e *Expectimax) {
		if capacity <= 0 {
			return
		}
		cache, err := NewCache[cacheKey, float64](capacity)
		if err != nil {
			panic(err)
		}
		e.cache = cache
	}
}

// WithGoroutines evaluates the root's moves on up to n goroutines.
func WithGoroutines(n int) Option {
	return func(e *Expectimax) {
		if n > 0 {
			e.goroutines = n
		}
	}
}

func WithTimeBudget(budget time.Duration) Option {
	return func(e *Expectimax) {
		if budget > 0 {
			e.budget = budget
		}
	}
}

func WithMetrics() Option {
	return func(e *Expectimax) {
		e.metrics = metrics.NewCollector()
	}
}

func NewExpectimax(rules game.Rules, spawner game.Spawner, evaluator game.Evaluator, options ...Option) *Expectimax {
	if rules == nil || spawner == nil || evaluator == nil {
		panic("expectimax needs rules, a spawner and an evaluator")
	}
	e := &Expectimax{ // Default values
		rules:      rules,
		spawner:    spawner,
		evaluator:  evaluator,
		depth:      DefaultDepth,
		goroutines: DefaultGoroutines,
		metrics:    metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Expectimax) Depth() int {
	return e.depth
}

// CacheLen is the number of memoised node values, 0 without a cache.
func (e *Expectimax) CacheLen() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.Len()
}

func (e *Expectimax) cacheCapacity() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.Capacity()
}

// ChooseMove returns the move with the highest expected value. It panics if
// the board has no legal move.
func (e *Expectimax) ChooseMove(b *game.Board) game.Move {
	decision, _ := e.Search(b)
	if !decision.Found {
		panic("board has no legal moves")
	}
	return decision.Move
}

// Search evaluates every legal move of b as a chance node one level down and
// returns the best one along with the work it took.
func (e *Expectimax) Search(b *game.Board) (Decision, metrics.SearchMetric) {
	e.metrics.Start(e.depth, e.goroutines, e.cacheCapacity())
	s := e.newSearch()

	s.nodes.AddDecisionNode()
	moves := e.rules.LegalMoves(b)
	if len(moves) == 0 {
		return Decision{Value: s.evaluate(b)}, e.metrics.Complete()
	}

	values := make([]float64, len(moves))
	if e.goroutines > 1 && len(moves) > 1 {
		var g errgroup.Group
		g.SetLimit(e.goroutines)
		for i, move := range moves {
			g.Go(func() error {
				after := e.rules.MakeMove(b, move).Board
				values[i], _ = s.value(after, false, e.depth-1)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i, move := range moves {
			after := e.rules.MakeMove(b, move).Board
			values[i], _ = s.value(after, false, e.depth-1)
		}
	}

	best := Decision{Move: moves[0], Value: values[0], Found: true}
	for i, v := range values[1:] {
		if v > best.Value {
			best.Value = v
			best.Move = moves[i+1]
		}
	}

	e.decisions++
	if e.cache != nil && e.decisions%statsInterval == 0 {
		e.logCacheStats()
	}
	return best, e.metrics.Complete()
}

func (e *Expectimax) logCacheStats() {
	lookups, hits := e.lookups.Swap(0), e.hits.Swap(0)
	rate := 0.0
	if lookups > 0 {
		rate = float64(hits) / float64(lookups)
	}
	log.Debug().
		Int64("lookups", lookups).
		Int64("hits", hits).
		Float64("hit_rate", rate).
		Int("entries", e.cache.Len()).
		Msgf("Cache statistics after %d decisions", e.decisions)
}
