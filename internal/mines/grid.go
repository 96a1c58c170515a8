package mines

import (
	"strconv"
	"strings"
)

// CellState is what the player sees on a square.
type CellState int8

const (
	/*
	 * 	- 0 means the square is open and blank.
	 *
	 * 	- 1 to 8 mean the square is open and shows its surrounding
	 * 	  mine count.
	 */
	Blank   CellState = 0
	Flagged CellState = -1
	Hidden  CellState = -2
	Mine    CellState = 64
)

func (s CellState) String() string {
	switch {
	case s == Hidden:
		return "#"
	case s == Flagged:
		return "F"
	case s == Mine:
		return "*"
	case s == Blank:
		return "."
	case 1 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

func (s CellState) Count() (n int, ok bool) {
	if 1 <= s && s <= 8 {
		return int(s), true
	}
	return 0, false
}

func stateOf(c *Cell) CellState {
	switch {
	case !c.IsRevealed && c.IsFlagged:
		return Flagged
	case !c.IsRevealed:
		return Hidden
	case c.HasMine:
		return Mine
	default:
		return CellState(c.AdjacentMines)
	}
}

// Grid is a row-major snapshot of the player's view.
type Grid []CellState

func (b *Board) Grid() Grid {
	g := make(Grid, 0, b.Size*b.Size)
	for cell := range b.All() {
		g = append(g, stateOf(cell))
	}
	return g
}

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(g[y*width+x].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
