package mines

import "errors"

var (
	ErrInvalidDimension  = errors.New("invalid dimension")
	ErrInvalidMineCount  = errors.New("invalid mine count")
	ErrOutOfBounds       = errors.New("position out of bounds")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
)

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}
