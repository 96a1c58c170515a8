// Package render draws the player's view of a game to a terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/minesweeper/internal/mines"
)

// Colours for the numbers 1 through 8.
var numColors = [8]lipgloss.Color{
	lipgloss.Color("196"), // red
	lipgloss.Color("93"),  // purple
	lipgloss.Color("34"),  // green
	lipgloss.Color("226"), // yellow
	lipgloss.Color("208"), // orange
	lipgloss.Color("16"),  // black
	lipgloss.Color("21"),  // blue
	lipgloss.Color("213"), // pink
}

type Renderer struct {
	w io.Writer
	r *lipgloss.Renderer

	numStyles   [8]lipgloss.Style
	hiddenStyle lipgloss.Style
	flagStyle   lipgloss.Style
	mineStyle   lipgloss.Style
	blankStyle  lipgloss.Style
	indexStyle  lipgloss.Style
	boardStyle  lipgloss.Style
	labelStyle  lipgloss.Style
	valueStyle  lipgloss.Style
	wonStyle    lipgloss.Style
	lostStyle   lipgloss.Style
	errStyle    lipgloss.Style
}

func New(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	rd := &Renderer{
		w:           w,
		r:           r,
		hiddenStyle: r.NewStyle().Foreground(lipgloss.Color("248")),
		flagStyle:   r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		mineStyle:   r.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		blankStyle:  r.NewStyle().Foreground(lipgloss.Color("240")),
		indexStyle:  r.NewStyle().Foreground(lipgloss.Color("243")),
		boardStyle:  r.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("248")).Padding(0, 1),
		labelStyle:  r.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")).Bold(true).Padding(0, 1),
		valueStyle:  r.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")).Padding(0, 1),
		wonStyle:    r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		lostStyle:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		errStyle:    r.NewStyle().Foreground(lipgloss.Color("9")),
	}
	for i, c := range numColors {
		rd.numStyles[i] = r.NewStyle().Foreground(c)
	}
	return rd
}

func (rd *Renderer) cell(state mines.CellState) string {
	if n, ok := state.Count(); ok {
		return rd.numStyles[n-1].Render(state.String())
	}
	switch state {
	case mines.Hidden:
		return rd.hiddenStyle.Render(state.String())
	case mines.Flagged:
		return rd.flagStyle.Render(state.String())
	case mines.Mine:
		return rd.mineStyle.Render(state.String())
	default:
		return rd.blankStyle.Render(state.String())
	}
}

// Board returns the grid with row and column indices.
func (rd *Renderer) Board(g *mines.GameState) string {
	width := len(fmt.Sprint(g.Size - 1))
	pad := func(i int) string {
		return fmt.Sprintf("%*d", width, i)
	}

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", width))
	for col := range g.Size {
		sb.WriteByte(' ')
		sb.WriteString(rd.indexStyle.Render(pad(col)))
	}

	grid := g.Grid()
	for row := range g.Size {
		sb.WriteByte('\n')
		sb.WriteString(rd.indexStyle.Render(pad(row)))
		for col := range g.Size {
			sb.WriteByte(' ')
			sb.WriteString(strings.Repeat(" ", width-1))
			sb.WriteString(rd.cell(grid[row*g.Size+col]))
		}
	}
	return rd.boardStyle.Render(sb.String())
}

// Status returns the one-line summary: outcome, mines left and clock.
func (rd *Renderer) Status(g *mines.GameState) string {
	minutes, seconds := g.Clock()
	status := strings.ToUpper(g.Status.String())
	switch g.Status {
	case mines.Won:
		status = rd.wonStyle.Render(status)
	case mines.Lost:
		status = rd.lostStyle.Render(status)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		rd.labelStyle.Render("MINES"),
		rd.valueStyle.Render(fmt.Sprintf("%02d", g.MinesRemaining())),
		" ",
		rd.labelStyle.Render("TIME"),
		rd.valueStyle.Render(fmt.Sprintf("%02d:%02d", minutes, seconds)),
		" ",
		status,
	)
}

func (rd *Renderer) Game(g *mines.GameState) error {
	_, err := fmt.Fprintln(rd.w, lipgloss.JoinVertical(lipgloss.Left,
		rd.Board(g),
		rd.Status(g),
	))
	return err
}

func (rd *Renderer) Message(msg string) error {
	_, err := fmt.Fprintln(rd.w, msg)
	return err
}

func (rd *Renderer) Error(err error) error {
	_, werr := fmt.Fprintln(rd.w, rd.errStyle.Render("error: "+err.Error()))
	return werr
}
