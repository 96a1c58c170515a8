package mines

import "fmt"

// MaxSize bounds the side of the square grid.
const MaxSize = 100

type GameParams struct {
	Size      int `mapstructure:"size"`
	MineCount int `mapstructure:"mines"`
}

func (p GameParams) Unpack() (size int, mineCount int) {
	return p.Size, p.MineCount
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Size, p.Size, p.MineCount)
}

// Validate rejects dimensions outside [1, MaxSize] and mine counts outside
// [0, Size*Size).
func (p GameParams) Validate() error {
	if p.Size < 1 || p.Size > MaxSize {
		return fmt.Errorf("%w: size %d not in [1, %d]", ErrInvalidDimension, p.Size, MaxSize)
	}
	if p.MineCount < 0 || p.MineCount >= p.Size*p.Size {
		return fmt.Errorf(
			"%w: %d not in [0, %d)", ErrInvalidMineCount, p.MineCount, p.Size*p.Size,
		)
	}
	return nil
}

func (p GameParams) ValidatePosition(row, col int) error {
	if row < 0 || row >= p.Size || col < 0 || col >= p.Size {
		return fmt.Errorf("%w: %d:%d on a %dx%d grid", ErrOutOfBounds, row, col, p.Size, p.Size)
	}
	return nil
}
