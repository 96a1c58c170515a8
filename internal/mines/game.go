package mines

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/vancomm/minesweeper/internal/timer"
)

var Log *slog.Logger = slog.Default()

type Status uint8

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

type GameState struct {
	ID     uuid.UUID
	Board  *Board
	Status Status
	GameParams

	timer     *timer.Stopwatch
	timerOpts []timer.Option
	log       *slog.Logger
}

type Option func(*GameState)

// WithTimerOptions configures the stopwatch every new game gets.
func WithTimerOptions(opts ...timer.Option) Option {
	return func(g *GameState) {
		g.timerOpts = append(g.timerOpts, opts...)
	}
}

// NewGame builds a board of the given parameters: an empty grid, mines
// scattered by r, then adjacency counts.
func NewGame(params GameParams, r *rand.Rand, opts ...Option) (*GameState, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	board := NewBoard(params.Size)
	board.PlaceMines(params.MineCount, r)
	board.CountNeighbors()

	return newGameState(params, board, opts...)
}

// NewGameWithMines builds a game on a fixed mine field. Duplicate points
// count once.
func NewGameWithMines(size int, mines []Point, opts ...Option) (*GameState, error) {
	params := GameParams{Size: size}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	board := NewBoard(size)
	for _, p := range mines {
		if err := params.ValidatePosition(p.Row, p.Col); err != nil {
			return nil, err
		}
		board.PlaceMinesAt(p)
	}
	params.MineCount = board.MineCount()
	if err := params.Validate(); err != nil {
		return nil, err
	}
	board.CountNeighbors()

	return newGameState(params, board, opts...)
}

func newGameState(params GameParams, board *Board, opts ...Option) (*GameState, error) {
	if err := board.verify(params.MineCount); err != nil {
		return nil, err
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, fmt.Errorf("unable to generate game id: %w", err)
	}

	logger := Log.With(slog.String("game_id", id.String()))
	g := &GameState{
		ID:         id,
		Board:      board,
		Status:     InProgress,
		GameParams: params,
		log:        logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.timer = timer.New(
		append([]timer.Option{timer.WithLogger(logger)}, g.timerOpts...)...,
	)

	logger.Info("game created", slog.String("params", params.String()))
	return g, nil
}

func (g *GameState) Over() bool {
	return g.Status != InProgress
}

// Reveal opens (row, col). Revealing a mine loses the game; revealing the
// last safe cell wins it. Revealed or flagged cells, and any move after the
// game has ended, are ignored.
func (g *GameState) Reveal(row, col int) error {
	if err := g.ValidatePosition(row, col); err != nil {
		return err
	}
	if g.Over() {
		return nil
	}

	cell := g.Board.At(row, col)
	if cell.IsRevealed || cell.IsFlagged {
		return nil
	}

	g.timer.Start()
	g.open(row, col)
	return nil
}

func (g *GameState) open(row, col int) {
	/* The cell is marked revealed before the outcome is decided. */
	if g.Board.RevealCell(row, col) {
		g.log.Info("mine revealed", slog.Int("row", row), slog.Int("col", col))
		g.finish(Lost)
		return
	}

	/*
	 * Scan the grid and see if exactly as many squares are still
	 * covered as there are mines. Flood fill never uncovers a mine,
	 * so only a safe reveal can get here.
	 */
	if g.Board.Unrevealed() == g.MineCount {
		g.finish(Won)
	}
}

func (g *GameState) finish(status Status) {
	g.Status = status
	g.timer.Stop()
	g.Board.RevealAll()
	g.log.Info("game over",
		slog.String("status", status.String()),
		slog.Duration("elapsed", g.timer.Elapsed()),
	)
}

// ToggleFlag flips the flag on a covered cell.
func (g *GameState) ToggleFlag(row, col int) error {
	if err := g.ValidatePosition(row, col); err != nil {
		return err
	}
	if g.Over() || g.Board.At(row, col).IsRevealed {
		return nil
	}

	g.timer.Start()
	g.Board.ToggleFlag(row, col)
	return nil
}

// Chord opens every covered, unflagged neighbour of a revealed numbered cell
// once the player has placed as many flags around it as its number.
func (g *GameState) Chord(row, col int) error {
	if err := g.ValidatePosition(row, col); err != nil {
		return err
	}
	if g.Over() {
		return nil
	}

	cell := g.Board.At(row, col)
	if !cell.IsRevealed || cell.HasMine || cell.AdjacentMines == 0 {
		return nil
	}

	flags := 0
	targets := make([]Point, 0, 8)
	for n := range g.Board.Neighbors(row, col) {
		if n.IsFlagged {
			flags++
		} else if !n.IsRevealed {
			targets = append(targets, Point{n.Row, n.Col})
		}
	}
	if flags != cell.AdjacentMines {
		return nil
	}

	g.timer.Start()
	for _, p := range targets {
		g.open(p.Row, p.Col)
		if g.Over() {
			break
		}
	}
	return nil
}

// Forfeit gives up a game in progress.
func (g *GameState) Forfeit() {
	if g.Over() {
		return
	}
	g.log.Info("game forfeited")
	g.finish(Lost)
}

// Close stops the elapsed time counter.
func (g *GameState) Close() {
	g.timer.Stop()
}

func (g *GameState) CellAt(row, col int) (CellState, error) {
	if err := g.ValidatePosition(row, col); err != nil {
		return Hidden, err
	}
	return stateOf(g.Board.At(row, col)), nil
}

func (g *GameState) Grid() Grid {
	return g.Board.Grid()
}

func (g *GameState) String() string {
	return g.Grid().ToString(g.Size)
}

// MinesRemaining is the mine count minus placed flags. It goes negative
// when the player over-flags.
func (g *GameState) MinesRemaining() int {
	return g.MineCount - g.Board.Flagged()
}

func (g *GameState) Elapsed() time.Duration {
	return g.timer.Elapsed()
}

func (g *GameState) Clock() (minutes, seconds int) {
	return g.timer.Clock()
}

func (g *GameState) TimerRunning() bool {
	return g.timer.Running()
}
