package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/commands"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/render"
)

var errQuit = errors.New("quit")

const prompt = "> "

type App struct {
	logger  *slog.Logger
	cfg     *config.Config
	in      io.Reader
	out     io.Writer
	render  *render.Renderer
	session *mines.Session
}

func New(logger *slog.Logger, cfg *config.Config, in io.Reader, out io.Writer) *App {
	return &App{
		logger: logger,
		cfg:    cfg,
		in:     in,
		out:    out,
		render: render.New(out),
	}
}

// Start plays games until the player quits, the input ends or ctx is
// cancelled.
func (a *App) Start(ctx context.Context) error {
	d, err := a.cfg.Preset()
	if err != nil {
		return err
	}

	a.session = mines.NewSession(createRand(a.cfg.Seed), a.cfg.Custom)
	defer a.session.Close()

	if _, err := a.session.Reset(d); err != nil {
		return fmt.Errorf("unable to start game: %w", err)
	}
	a.logger.Info("session started", slog.String("difficulty", d.String()))

	if err := a.render.Game(a.session.Game()); err != nil {
		return err
	}

	lines := make(chan string)

	g, gCtx := errgroup.WithContext(ctx)
	go a.pump(gCtx, lines)
	g.Go(func() error {
		return a.loop(gCtx, lines)
	})
	g.Go(func() error {
		<-gCtx.Done()
		if c, ok := a.in.(io.Closer); ok {
			return c.Close()
		}
		return nil
	})

	err = g.Wait()
	if errors.Is(err, errQuit) || errors.Is(err, context.Canceled) {
		a.logger.Info("session ended", slog.String("reason", err.Error()))
		return nil
	}
	return err
}

// pump feeds input lines to the command loop. A blocked read never holds up
// shutdown because nothing waits for pump to return.
func (a *App) pump(ctx context.Context, lines chan<- string) {
	defer close(lines)

	scanner := bufio.NewScanner(a.in)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil && ctx.Err() == nil {
		a.logger.Warn("unable to read input", slog.Any("error", err))
	}
}

func (a *App) loop(ctx context.Context, lines <-chan string) error {
	for {
		if _, err := io.WriteString(a.out, prompt); err != nil {
			return err
		}

		var line string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l, ok := <-lines:
			if !ok {
				return errQuit
			}
			line = l
		}

		effect, err := commands.ExecuteLine(a.session, line)
		if err != nil {
			a.logger.Debug("command failed",
				slog.String("line", line), slog.Any("error", err),
			)
			if err := a.render.Error(err); err != nil {
				return err
			}
			continue
		}

		switch effect {
		case commands.Quit:
			return errQuit
		case commands.Help:
			err = a.render.Message(commands.Usage)
		default:
			err = a.render.Game(a.session.Game())
		}
		if err != nil {
			return err
		}
	}
}
