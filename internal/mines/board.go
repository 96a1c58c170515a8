package mines

import "iter"

// Cell is a single square of the mine field.
type Cell struct {
	Row, Col      int
	HasMine       bool
	AdjacentMines int
	IsEmpty       bool /* no mine and no mined neighbours */
	IsRevealed    bool
	IsFlagged     bool
}

// Board is a Size x Size grid of cells indexed as Cells[row][col].
type Board struct {
	Size  int
	Cells [][]Cell
}

var offsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// NewBoard allocates an empty board. size is validated by the caller.
func NewBoard(size int) *Board {
	cells := make([][]Cell, size)
	for row := range size {
		cells[row] = make([]Cell, size)
		for col := range size {
			cells[row][col] = Cell{Row: row, Col: col}
		}
	}
	return &Board{Size: size, Cells: cells}
}

func (b *Board) InBounds(row, col int) bool {
	return 0 <= row && row < b.Size && 0 <= col && col < b.Size
}

func (b *Board) At(row, col int) *Cell {
	return &b.Cells[row][col]
}

// Neighbors yields the existing 8-neighbours of (row, col), clipped at the
// edges and corners of the board.
func (b *Board) Neighbors(row, col int) iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for _, d := range offsets {
			r, c := row+d[0], col+d[1]
			if !b.InBounds(r, c) {
				continue
			}
			if !yield(&b.Cells[r][c]) {
				return
			}
		}
	}
}

// All yields every cell in row-major order.
func (b *Board) All() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for row := range b.Size {
			for col := range b.Size {
				if !yield(&b.Cells[row][col]) {
					return
				}
			}
		}
	}
}

func (b *Board) countMinesAround(row, col int) int {
	n := 0
	for c := range b.Neighbors(row, col) {
		if c.HasMine {
			n++
		}
	}
	return n
}

// CountNeighbors fills AdjacentMines and IsEmpty for every mine-free cell.
// Mine cells keep a zero count.
func (b *Board) CountNeighbors() {
	for cell := range b.All() {
		if cell.HasMine {
			cell.AdjacentMines = 0
			cell.IsEmpty = false
			continue
		}
		cell.AdjacentMines = b.countMinesAround(cell.Row, cell.Col)
		cell.IsEmpty = cell.AdjacentMines == 0
	}
}

func (b *Board) MineCount() int {
	n := 0
	for cell := range b.All() {
		if cell.HasMine {
			n++
		}
	}
	return n
}

// Unrevealed returns the number of cells that are still covered.
func (b *Board) Unrevealed() int {
	n := 0
	for cell := range b.All() {
		if !cell.IsRevealed {
			n++
		}
	}
	return n
}

func (b *Board) Flagged() int {
	n := 0
	for cell := range b.All() {
		if cell.IsFlagged {
			n++
		}
	}
	return n
}

// verify checks the invariants a freshly generated board must hold.
func (b *Board) verify(mineCount int) error {
	if n := b.MineCount(); n != mineCount {
		return AssertionError{"placed mines do not match mine count"}
	}
	for cell := range b.All() {
		if cell.HasMine {
			continue
		}
		if cell.AdjacentMines != b.countMinesAround(cell.Row, cell.Col) {
			return AssertionError{"stale adjacent mine count"}
		}
		if cell.IsEmpty != (cell.AdjacentMines == 0) {
			return AssertionError{"empty flag out of sync"}
		}
	}
	return nil
}
