package mines

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
)

// Session owns the single active game. Starting a new game always stops the
// previous game's stopwatch first.
type Session struct {
	rnd        *rand.Rand
	custom     GameParams
	difficulty Difficulty
	game       *GameState
	opts       []Option
}

// NewSession creates a session without a game. custom is used by the Custom
// preset until replaced through [Session.Custom].
func NewSession(r *rand.Rand, custom GameParams, opts ...Option) *Session {
	return &Session{
		rnd:    r,
		custom: custom,
		opts:   opts,
	}
}

func (s *Session) Game() *GameState {
	return s.game
}

func (s *Session) Difficulty() Difficulty {
	return s.difficulty
}

func (s *Session) CustomParams() GameParams {
	return s.custom
}

// Reset starts a fresh game of the given preset.
func (s *Session) Reset(d Difficulty) (*GameState, error) {
	params, ok := d.Params()
	if !ok {
		if d != Custom {
			return nil, fmt.Errorf("%w: %s", ErrUnknownDifficulty, d)
		}
		params = s.custom
	}
	return s.start(d, params)
}

// Custom stores params as the custom preset and starts a game with them.
// Invalid params leave the current game untouched.
func (s *Session) Custom(params GameParams) (*GameState, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	s.custom = params
	return s.start(Custom, params)
}

func (s *Session) start(d Difficulty, params GameParams) (*GameState, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	if s.game != nil {
		s.game.Close()
	}

	game, err := NewGame(params, s.rnd, s.opts...)
	if err != nil {
		return nil, err
	}

	Log.Debug("session reset",
		slog.String("difficulty", d.String()),
		slog.String("game_id", game.ID.String()),
	)

	s.game = game
	s.difficulty = d
	return game, nil
}

// Close stops the active game's stopwatch.
func (s *Session) Close() {
	if s.game != nil {
		s.game.Close()
	}
}
