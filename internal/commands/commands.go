// Package commands implements the text protocol players use to drive a
// [mines.Session]: one command per piece, pieces separated by ';'.
package commands

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgCount       = errors.New("invalid number of arguments")
	ErrBadArgument    = errors.New("invalid argument")
	ErrNoGame         = errors.New("no game in progress")
)

// Effect tells the caller what to do after a command ran.
type Effect uint8

const (
	Render Effect = iota
	Help
	Quit
)

const variadic = -1

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"o":       2,
	"open":    2,
	"f":       2,
	"flag":    2,
	"c":       2,
	"chord":   2,
	"new":     variadic,
	"custom":  2,
	"forfeit": 0,
	"show":    0,
	"help":    0,
	"quit":    0,
}

const Usage = `commands:
  o|open ROW COL      reveal a cell
  f|flag ROW COL      toggle a flag
  c|chord ROW COL     reveal around a satisfied number
  new [PRESET]        easy, moderate, hard or custom
  custom size=N mines=M
  forfeit             give up the current game
  show                redraw the board
  help                print this message
  quit                leave
several commands may be joined with ';'`

type Command struct {
	Name string
	Args []string
}

func Parse(s string) (Command, error) {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return Command{Name: "show"}, nil
	}
	name := strings.ToLower(parts[0])
	nargs, ok := commandNargs[name]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, parts[0])
	}
	if nargs != variadic && nargs != len(parts)-1 {
		return Command{}, fmt.Errorf(
			"%w: %s takes %d, got %d", ErrArgCount, name, nargs, len(parts)-1,
		)
	}
	return Command{Name: name, Args: parts[1:]}, nil
}

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = fmt.Errorf("%w: row must be an int", ErrBadArgument)
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = fmt.Errorf("%w: col must be an int", ErrBadArgument)
		return
	}
	return
}

type customDTO struct {
	Size      int `schema:"size,required"`
	MineCount int `schema:"mines,required"`
}

var decoder = schema.NewDecoder()

func parseCustom(args []string) (mines.GameParams, error) {
	src, err := url.ParseQuery(strings.Join(args, "&"))
	if err != nil {
		return mines.GameParams{}, fmt.Errorf("%w: %w", ErrBadArgument, err)
	}
	var dto customDTO
	if err := decoder.Decode(&dto, src); err != nil {
		return mines.GameParams{}, fmt.Errorf("%w: %w", ErrBadArgument, err)
	}
	return mines.GameParams(dto), nil
}

// Execute runs c against the session's current game.
func Execute(s *mines.Session, c Command) (Effect, error) {
	switch c.Name {
	case "help":
		return Help, nil
	case "quit":
		return Quit, nil
	case "show":
		return Render, nil
	case "new":
		d, err := mines.ParseDifficulty(strings.Join(c.Args, " "))
		if err != nil {
			return Render, err
		}
		_, err = s.Reset(d)
		return Render, err
	case "custom":
		params, err := parseCustom(c.Args)
		if err != nil {
			return Render, err
		}
		_, err = s.Custom(params)
		return Render, err
	}

	game := s.Game()
	if game == nil {
		return Render, ErrNoGame
	}

	switch c.Name {
	case "forfeit":
		game.Forfeit()
		return Render, nil
	case "o", "open", "f", "flag", "c", "chord":
		row, col, err := parseRowCol(c.Args)
		if err != nil {
			return Render, err
		}
		switch c.Name {
		case "o", "open":
			return Render, game.Reveal(row, col)
		case "f", "flag":
			return Render, game.ToggleFlag(row, col)
		default:
			return Render, game.Chord(row, col)
		}
	}

	return Render, fmt.Errorf("%w: %q", ErrUnknownCommand, c.Name)
}

// ExecuteLine runs every ';'-separated command of line in order and stops
// at the first error or at a command that is not a plain Render.
func ExecuteLine(s *mines.Session, line string) (Effect, error) {
	effect := Render
	for _, piece := range byPiece(line, ";") {
		if strings.TrimSpace(piece) == "" {
			continue
		}
		c, err := Parse(piece)
		if err != nil {
			return Render, err
		}
		effect, err = Execute(s, c)
		if err != nil || effect != Render {
			return effect, err
		}
	}
	return effect, nil
}
