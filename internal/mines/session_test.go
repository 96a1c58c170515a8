package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		input string
		want  Difficulty
		err   error
	}{
		{"", Moderate, nil},
		{"Easy", Easy, nil},
		{"easy (4x4, 1 mine)", Easy, nil},
		{"Moderate (9x9, 10 mines)", Moderate, nil},
		{"HARD", Hard, nil},
		{" custom ", Custom, nil},
		{"expert", 0, ErrUnknownDifficulty},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			d, err := ParseDifficulty(test.input)
			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, d)
		})
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		size       int
		mineCount  int
	}{
		{Easy, 4, 1},
		{Moderate, 9, 10},
		{Hard, 12, 15},
	}

	s := NewSession(rand.New(rand.NewPCG(1, 2)), GameParams{})
	defer s.Close()

	for _, test := range tests {
		t.Run(test.difficulty.String(), func(t *testing.T) {
			g, err := s.Reset(test.difficulty)
			require.NoError(t, err)
			assert.Equal(t, test.size, g.Size)
			assert.Len(t, g.Board.Cells, test.size)
			assert.Len(t, g.Board.Cells[0], test.size)
			assert.Equal(t, test.mineCount, g.MineCount)
			assert.Equal(t, test.mineCount, g.Board.MineCount())
			assert.Equal(t, test.size*test.size, g.Board.Unrevealed())
			assert.Equal(t, test.difficulty, s.Difficulty())
			assert.Same(t, g, s.Game())
		})
	}
}

func TestSessionCustom(t *testing.T) {
	s := NewSession(rand.New(rand.NewPCG(1, 2)), GameParams{Size: 5, MineCount: 3})
	defer s.Close()

	g, err := s.Reset(Custom)
	require.NoError(t, err)
	assert.Equal(t, GameParams{Size: 5, MineCount: 3}, g.GameParams)

	g, err = s.Custom(GameParams{Size: 6, MineCount: 7})
	require.NoError(t, err)
	assert.Equal(t, 7, g.Board.MineCount())
	assert.Equal(t, GameParams{Size: 6, MineCount: 7}, s.CustomParams())

	_, err = s.Custom(GameParams{Size: 2, MineCount: 4})
	assert.ErrorIs(t, err, ErrInvalidMineCount)
	assert.Same(t, g, s.Game(), "invalid params must not replace the game")
	assert.Equal(t, GameParams{Size: 6, MineCount: 7}, s.CustomParams())
}

func TestSessionCustomWithoutParams(t *testing.T) {
	s := NewSession(rand.New(rand.NewPCG(1, 2)), GameParams{})
	_, err := s.Reset(Custom)
	assert.ErrorIs(t, err, ErrInvalidDimension)
	assert.Nil(t, s.Game())

	_, err = s.Reset(Difficulty(42))
	assert.ErrorIs(t, err, ErrUnknownDifficulty)
}

func TestSessionResetStopsPreviousTimer(t *testing.T) {
	s := NewSession(rand.New(rand.NewPCG(1, 2)), GameParams{})
	defer s.Close()

	first, err := s.Reset(Easy)
	require.NoError(t, err)
	require.NoError(t, first.ToggleFlag(0, 0))
	require.True(t, first.TimerRunning())

	second, err := s.Reset(Hard)
	require.NoError(t, err)
	assert.False(t, first.TimerRunning())
	assert.False(t, second.TimerRunning())
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, InProgress, second.Status)
}
