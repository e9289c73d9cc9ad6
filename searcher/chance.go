package searcher

import (
	"errors"

	"tiles/game"
)

// chance is the spawner's node: the probability-weighted value of every
// possible spawn. A full board has nothing to spawn and passes through to a
// decision node without consuming depth.
func (s *search) chance(b *game.Board, depth int) (float64, bool) {
	dist, err := s.spawner.Distribution(b)
	if errors.Is(err, game.ErrNoEmptyCells) {
		return s.value(b, true, depth)
	}
	if err != nil {
		panic(err)
	}
	s.nodes.AddChanceNode()

	exact := true
	expected := 0.0
	for _, outcome := range dist.Outcomes {
		v, ok := s.value(outcome.Board, true, depth)
		exact = exact && ok
		expected += outcome.Probability * v
	}
	return expected, exact
}
