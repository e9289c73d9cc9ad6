package searcher

import "tiles/game"

// decision is the player's node: the best expected value over the legal moves,
// each followed by a spawn.
func (s *search) decision(b *game.Board, depth int) (float64, bool) {
	s.nodes.AddDecisionNode()

	if s.expired() {
		s.nodes.SetTruncated()
		return s.evaluate(b), false
	}
	if depth == 0 {
		return s.evaluate(b), true
	}
	moves := s.rules.LegalMoves(b)
	if len(moves) == 0 { // Terminal node
		return s.evaluate(b), true
	}

	exact := true
	best := 0.0
	for i, move := range moves {
		v, ok := s.value(s.rules.MakeMove(b, move).Board, false, depth-1)
		exact = exact && ok
		if i == 0 || v > best {
			best = v
		}
	}
	return best, exact
}
