package game

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"sync"
)

var (
	ErrInvalidDimension = errors.New("board dimension must be positive")
	ErrNonSquareGrid    = errors.New("grid is not square")
	ErrOutOfRange       = errors.New("coordinate out of range")
)

// Board is an immutable n×n grid of tiles stored row-major in a flat slice.
// A zero cell is empty. Boards are never modified after construction; every
// operation that changes a cell returns a new Board.
type Board struct {
	n     int
	cells []int

	hashOnce sync.Once
	hash     uint64
	keyOnce  sync.Once
	key      string
}

// NewBoard returns an empty board of the given dimension.
func NewBoard(n int) (*Board, error) {
	if n <= 0 {
		return nil, fmt.Errorf("new board of dimension %d: %w", n, ErrInvalidDimension)
	}
	return &Board{n: n, cells: make([]int, n*n)}, nil
}

// NewBoardFromGrid copies grid into a new board.
func NewBoardFromGrid(grid [][]int) (*Board, error) {
	n := len(grid)
	if n == 0 {
		return nil, fmt.Errorf("new board from empty grid: %w", ErrInvalidDimension)
	}
	cells := make([]int, 0, n*n)
	for r, row := range grid {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), n, ErrNonSquareGrid)
		}
		cells = append(cells, row...)
	}
	return &Board{n: n, cells: cells}, nil
}

// WrapTrustedCells takes ownership of a row-major cell slice without copying it.
// The caller must never modify cells afterwards.
func WrapTrustedCells(n int, cells []int) *Board {
	if n <= 0 || len(cells) != n*n {
		panic(fmt.Sprintf("cannot wrap %d cells as a %dx%d board", len(cells), n, n))
	}
	return &Board{n: n, cells: cells}
}

// MustBoard builds a board from a literal grid and panics on invalid input.
func MustBoard(grid [][]int) *Board {
	b, err := NewBoardFromGrid(grid)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Board) Dimension() int {
	return b.n
}

// Get returns the tile at row r, column c. It panics on an out-of-range index.
func (b *Board) Get(r, c int) int {
	if r < 0 || r >= b.n || c < 0 || c >= b.n {
		panic(fmt.Sprintf("get (%d,%d) on %dx%d board: %v", r, c, b.n, b.n, ErrOutOfRange))
	}
	return b.cells[r*b.n+c]
}

// At returns the tile at the flat row-major index i.
func (b *Board) At(i int) int {
	return b.cells[i]
}

// Grid returns a deep copy of the tiles as rows.
func (b *Board) Grid() [][]int {
	grid := make([][]int, b.n)
	for r := range grid {
		grid[r] = make([]int, b.n)
		copy(grid[r], b.cells[r*b.n:(r+1)*b.n])
	}
	return grid
}

// EmptyCells returns the flat indices (r*n+c) of empty cells in ascending order.
func (b *Board) EmptyCells() []int {
	count := 0
	for _, v := range b.cells {
		if v == 0 {
			count++
		}
	}
	empty := make([]int, 0, count)
	for i, v := range b.cells {
		if v == 0 {
			empty = append(empty, i)
		}
	}
	return empty
}

func (b *Board) MaxTile() int {
	maxTile := 0
	for _, v := range b.cells {
		if v > maxTile {
			maxTile = v
		}
	}
	return maxTile
}

// PlaceTile returns a copy of the board with (r, c) set to value. A value of 0
// clears the cell.
func (b *Board) PlaceTile(r, c, value int) (*Board, error) {
	if r < 0 || r >= b.n || c < 0 || c >= b.n {
		return nil, fmt.Errorf("place tile at (%d,%d) on %dx%d board: %w", r, c, b.n, b.n, ErrOutOfRange)
	}
	return b.placeAt(r*b.n+c, value), nil
}

func (b *Board) placeAt(i, value int) *Board {
	cells := make([]int, len(b.cells))
	copy(cells, b.cells)
	cells[i] = value
	return &Board{n: b.n, cells: cells}
}

// Transpose mirrors the board along its main diagonal.
func (b *Board) Transpose() *Board {
	n := b.n
	cells := make([]int, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cells[c*n+r] = b.cells[r*n+c]
		}
	}
	return &Board{n: n, cells: cells}
}

// ReverseRows mirrors every row left to right.
func (b *Board) ReverseRows() *Board {
	n := b.n
	cells := make([]int, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			cells[r*n+(n-1-c)] = b.cells[r*n+c]
		}
	}
	return &Board{n: n, cells: cells}
}

// ApplyTransformation orients the board so that sliding in direction m becomes
// sliding left.
func (b *Board) ApplyTransformation(m Move) *Board {
	switch m {
	case Left:
		return b
	case Right:
		return b.ReverseRows()
	case Up:
		return b.Transpose()
	case Down:
		return b.Transpose().ReverseRows()
	default:
		panic(fmt.Sprintf("unknown move %d", m))
	}
}

// ApplyInverseTransformation undoes ApplyTransformation for the same move.
func (b *Board) ApplyInverseTransformation(m Move) *Board {
	switch m {
	case Left:
		return b
	case Right:
		return b.ReverseRows()
	case Up:
		return b.Transpose()
	case Down:
		return b.ReverseRows().Transpose()
	default:
		panic(fmt.Sprintf("unknown move %d", m))
	}
}

// Equal reports whether both boards have the same dimension and tiles.
func (b *Board) Equal(other *Board) bool {
	if b == other {
		return true
	}
	if other == nil || b.n != other.n {
		return false
	}
	for i, v := range b.cells {
		if other.cells[i] != v {
			return false
		}
	}
	return true
}

// Hash returns an FNV-1a hash of the tiles. It is computed once per board.
func (b *Board) Hash() uint64 {
	b.hashOnce.Do(func() {
		hasher := fnv.New64a()
		hasher.Write([]byte(b.Key()))
		b.hash = hasher.Sum64()
	})
	return b.hash
}

// Key returns an exact encoding of the tiles, suitable as a map key.
func (b *Board) Key() string {
	b.keyOnce.Do(func() {
		buf := make([]byte, 0, len(b.cells)*binary.MaxVarintLen64)
		for _, v := range b.cells {
			buf = binary.AppendUvarint(buf, uint64(v))
		}
		b.key = string(buf)
	})
	return b.key
}

func (b *Board) String() string {
	width := len(strconv.Itoa(b.MaxTile()))
	var sb strings.Builder
	for r := 0; r < b.n; r++ {
		for c := 0; c < b.n; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			v := b.cells[r*b.n+c]
			cell := "."
			if v != 0 {
				cell = strconv.Itoa(v)
			}
			sb.WriteString(strings.Repeat(" ", width-len(cell)))
			sb.WriteString(cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
