package mines

// RevealCell uncovers (row, col) and reports whether it held a mine. An
// already revealed cell is left alone. A safe empty cell starts a flood fill.
func (b *Board) RevealCell(row, col int) (mine bool) {
	cell := b.At(row, col)
	if cell.IsRevealed {
		return false
	}
	cell.IsFlagged = false
	cell.IsRevealed = true
	if cell.HasMine {
		return true
	}
	if cell.IsEmpty {
		b.FloodFill(row, col)
	}
	return false
}

// FloodFill exposes the connected region of empty cells around (row, col)
// together with its numbered border. Flagged cells are never opened and stop
// the spread; the IsRevealed flag doubles as the visited set.
func (b *Board) FloodFill(row, col int) {
	var todo celltodo
	todo.push(Point{row, col})

	for {
		p, ok := todo.pop()
		if !ok {
			break
		}
		for n := range b.Neighbors(p.Row, p.Col) {
			if n.IsFlagged || n.IsRevealed || n.HasMine {
				continue
			}
			n.IsRevealed = true
			if n.IsEmpty {
				todo.push(Point{n.Row, n.Col})
			}
		}
	}
}

// ToggleFlag flips the flag on a covered cell. Revealed cells are ignored.
func (b *Board) ToggleFlag(row, col int) {
	cell := b.At(row, col)
	if cell.IsRevealed {
		return
	}
	cell.IsFlagged = !cell.IsFlagged
}

// RevealAll uncovers the whole field once the game is over.
func (b *Board) RevealAll() {
	for cell := range b.All() {
		cell.IsRevealed = true
		cell.IsFlagged = false
	}
}
