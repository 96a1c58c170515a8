package mines

import "math/rand/v2"

// PlaceMines scatters count mines uniformly over the board without
// repetition. count is validated by the caller and must be below Size*Size.
func (b *Board) PlaceMines(count int, r *rand.Rand) {
	/*
	 * Write down the list of possible mine locations.
	 */
	candidates := make([]int, 0, b.Size*b.Size)
	for row := range b.Size {
		for col := range b.Size {
			candidates = append(candidates, row*b.Size+col)
		}
	}

	/*
	 * Now pick count off the list at random, swapping each pick past
	 * the end of the live range.
	 */
	k := len(candidates)
	for range count {
		i := r.IntN(k)
		k--
		candidates[i], candidates[k] = candidates[k], candidates[i]
		b.Cells[candidates[k]/b.Size][candidates[k]%b.Size].HasMine = true
	}
}

// PlaceMinesAt puts mines on exactly the given cells. Points outside the
// board are ignored.
func (b *Board) PlaceMinesAt(points ...Point) {
	for _, p := range points {
		if b.InBounds(p.Row, p.Col) {
			b.Cells[p.Row][p.Col].HasMine = true
		}
	}
}
