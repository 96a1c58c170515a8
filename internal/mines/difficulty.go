package mines

import (
	"fmt"
	"strings"
)

type Difficulty uint8

const (
	Moderate Difficulty = iota
	Easy
	Hard
	Custom
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Moderate:
		return "moderate"
	case Hard:
		return "hard"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("Difficulty(%d)", uint8(d))
	}
}

var presets = map[Difficulty]GameParams{
	Easy:     {Size: 4, MineCount: 1},
	Moderate: {Size: 9, MineCount: 10},
	Hard:     {Size: 12, MineCount: 15},
}

// Params returns the grid size and mine count of a fixed preset. Custom has
// no fixed parameters and reports ok == false.
func (d Difficulty) Params() (params GameParams, ok bool) {
	params, ok = presets[d]
	return
}

// ParseDifficulty accepts a preset name, optionally followed by a
// description such as "Easy (4x4, 1 mine)". An empty string selects Moderate.
func ParseDifficulty(s string) (Difficulty, error) {
	name, _, _ := strings.Cut(strings.TrimSpace(s), " ")
	switch strings.ToLower(name) {
	case "", "moderate":
		return Moderate, nil
	case "easy":
		return Easy, nil
	case "hard":
		return Hard, nil
	case "custom":
		return Custom, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
	}
}
