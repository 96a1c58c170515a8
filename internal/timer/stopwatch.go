// Package timer implements the per-game elapsed time counter.
package timer

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Ticker is the subset of [time.Ticker] the stopwatch needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type TickerFunc func(d time.Duration) Ticker

type timeTicker struct {
	*time.Ticker
}

func (t timeTicker) C() <-chan time.Time {
	return t.Ticker.C
}

func NewTicker(d time.Duration) Ticker {
	return timeTicker{time.NewTicker(d)}
}

// Stopwatch counts whole seconds while running. Start and Stop are
// idempotent, and at most one tick loop exists at any time.
type Stopwatch struct {
	mu      sync.Mutex
	seconds int
	running bool
	cancel  context.CancelFunc
	done    chan struct{}

	interval  time.Duration
	newTicker TickerFunc
	onTick    func(elapsed time.Duration)
	logger    *slog.Logger
}

type Option func(*Stopwatch)

func WithTicker(f TickerFunc) Option {
	return func(s *Stopwatch) {
		s.newTicker = f
	}
}

// WithOnTick registers a callback run after every counted second, outside
// the stopwatch lock.
func WithOnTick(fn func(elapsed time.Duration)) Option {
	return func(s *Stopwatch) {
		s.onTick = fn
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Stopwatch) {
		s.logger = logger
	}
}

func New(opts ...Option) *Stopwatch {
	s := &Stopwatch{
		interval:  time.Second,
		newTicker: NewTicker,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches the tick loop. It reports false if the stopwatch was
// already running.
func (s *Stopwatch) Start() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s.running = true
	s.cancel = cancel
	s.done = done

	go s.tickLoop(ctx, s.newTicker(s.interval), done)

	s.logger.Debug("stopwatch started", slog.Int("seconds", s.seconds))
	return true
}

func (s *Stopwatch) tickLoop(ctx context.Context, ticker Ticker, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C():
			s.mu.Lock()
			if ctx.Err() != nil {
				s.mu.Unlock()
				return
			}
			s.seconds++
			elapsed := time.Duration(s.seconds) * time.Second
			onTick := s.onTick
			s.mu.Unlock()

			if onTick != nil {
				onTick(elapsed)
			}
		}
	}
}

// Stop cancels the tick loop and waits for it to exit. It reports false if
// the stopwatch was not running. Stop must not be called from an OnTick
// callback.
func (s *Stopwatch) Stop() bool {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return false
	}
	s.running = false
	s.cancel()
	done := s.done
	s.mu.Unlock()

	<-done

	s.logger.Debug("stopwatch stopped", slog.Int("seconds", s.Seconds()))
	return true
}

// Reset stops the stopwatch and zeroes the count.
func (s *Stopwatch) Reset() {
	s.Stop()
	s.mu.Lock()
	s.seconds = 0
	s.mu.Unlock()
}

func (s *Stopwatch) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *Stopwatch) Seconds() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seconds
}

func (s *Stopwatch) Elapsed() time.Duration {
	return time.Duration(s.Seconds()) * time.Second
}

// Clock splits the elapsed time into minutes and seconds.
func (s *Stopwatch) Clock() (minutes, seconds int) {
	n := s.Seconds()
	return n / 60, n % 60
}
