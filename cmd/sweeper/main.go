package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/vancomm/minesweeper/internal/app"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/logging"
	"github.com/vancomm/minesweeper/internal/mines"
)

func main() {
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)

	code := run(ctx)
	cancel()
	os.Exit(code)
}

func run(ctx context.Context) int {
	bootstrap := logging.Bootstrap()

	fs := config.NewFlagSet(os.Args[0])
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(fs)
	if err != nil {
		bootstrap.Error("unable to load config", slog.Any("error", err))
		return 1
	}

	logger, closer, err := logging.New(cfg, os.Stderr)
	if err != nil {
		bootstrap.Error("unable to set up logging", slog.Any("error", err))
		return 1
	}
	defer closer.Close()

	mines.Log = logger
	logger.Debug("config", slog.Any("config", cfg))

	a := app.New(logger, cfg, os.Stdin, os.Stdout)
	if err := a.Start(ctx); err != nil {
		logger.Error("failed to run game", slog.Any("error", err))
		return 1
	}
	return 0
}
