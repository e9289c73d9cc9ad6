package searcher

import (
	"time"

	"tiles/experiments/metrics"
	"tiles/game"
)

// cacheKey identifies a node value: the same board is worth different amounts
// to the player and to the spawner, and at different remaining depths.
type cacheKey struct {
	board string
	max   bool
	depth int
}

// search holds the state of one root search.
type search struct {
	*Expectimax
	nodes    metrics.Collector
	deadline time.Time
}

func (e *Expectimax) newSearch() *search {
	s := &search{Expectimax: e, nodes: e.metrics}
	if e.budget > 0 {
		s.deadline = time.Now().Add(e.budget)
	}
	return s
}

func (s *search) expired() bool {
	return !s.deadline.IsZero() && time.Now().After(s.deadline)
}

func (s *search) evaluate(b *game.Board) float64 {
	s.nodes.AddEvaluation()
	return s.evaluator.Evaluate(b)
}

// value returns the expectimax value of b as a decision (max) or chance node
// with depth player moves left, and whether the value is exact. Values cut
// short by the time budget are not exact and are never cached.
func (s *search) value(b *game.Board, isMax bool, depth int) (float64, bool) {
	if s.cache == nil {
		return s.compute(b, isMax, depth)
	}

	key := cacheKey{board: b.Key(), max: isMax, depth: depth}
	v, hit := s.cache.Get(key)
	s.nodes.AddCacheLookup(hit)
	s.lookups.Add(1)
	if hit {
		s.hits.Add(1)
		return v, true
	}

	v, exact := s.compute(b, isMax, depth)
	if exact {
		s.cache.Add(key, v)
	}
	return v, exact
}

func (s *search) compute(b *game.Board, isMax bool, depth int) (float64, bool) {
	if isMax {
		return s.decision(b, depth)
	}
	return s.chance(b, depth)
}
