package game

// ClassicRules implements the standard 2048 sliding rules on boards of any
// dimension. Every move is resolved as a slide to the left on a reoriented view
// of the board.
type ClassicRules struct{}

func NewClassicRules() *ClassicRules {
	return &ClassicRules{}
}

// leftSpaceIndex maps cell j of row i in the left-sliding view of move m to its
// flat index on the real board.
func leftSpaceIndex(n int, m Move, i, j int) int {
	switch m {
	case Left:
		return i*n + j
	case Right:
		return i*n + (n - 1 - j)
	case Up:
		return j*n + i
	default: // Down
		return (n-1-j)*n + i
	}
}

func (r *ClassicRules) IsGameOver(b *Board) bool {
	for _, m := range Moves {
		if r.CanMove(b, m) {
			return false
		}
	}
	return true
}

func (r *ClassicRules) LegalMoves(b *Board) []Move {
	moves := make([]Move, 0, len(Moves))
	for _, m := range Moves {
		if r.CanMove(b, m) {
			moves = append(moves, m)
		}
	}
	return moves
}

// CanMove reports whether m changes the board, without building the result.
// A row can slide when a tile is not yet packed against the left edge or when
// two tiles that would end up adjacent are equal.
func (r *ClassicRules) CanMove(b *Board, m Move) bool {
	n := b.n
	for i := 0; i < n; i++ {
		last := 0
		packed := 0
		for j := 0; j < n; j++ {
			v := b.cells[leftSpaceIndex(n, m, i, j)]
			if v == 0 {
				continue
			}
			if j != packed {
				return true
			}
			if v == last {
				return true
			}
			last = v
			packed++
		}
	}
	return false
}

// MakeMove slides and merges every row. In a run of equal tiles merges happen
// greedily from the leading edge and a merged tile never merges again in the
// same move. An illegal move yields an equal board and no score.
func (r *ClassicRules) MakeMove(b *Board, m Move) MoveResult {
	n := b.n
	out := make([]int, n*n)
	row := make([]int, n)
	score := 0

	for i := 0; i < n; i++ {
		clear(row)
		write := 0
		lastMerged := -1

		for j := 0; j < n; j++ {
			v := b.cells[leftSpaceIndex(n, m, i, j)]
			if v == 0 {
				continue
			}
			switch {
			case row[write] == 0:
				row[write] = v
			case row[write] == v && lastMerged != write:
				row[write] = v * 2
				score += row[write]
				lastMerged = write
				write++
			default:
				write++
				row[write] = v
			}
		}

		for j, v := range row {
			if v != 0 {
				out[leftSpaceIndex(n, m, i, j)] = v
			}
		}
	}

	return MoveResult{Board: WrapTrustedCells(n, out), ScoreGained: score}
}
