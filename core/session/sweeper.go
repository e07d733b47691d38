package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/mongosession/core/logger"
)

// Sweeper calls Handler.GC on a fixed interval.
// It is meant for deployments where nothing else triggers garbage collection,
// e.g. a maintenance process next to the application.
type Sweeper struct {
	handler     Handler
	interval    time.Duration
	maxLifetime time.Duration
	timeout     time.Duration
	logger      *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	running  atomic.Bool
	sweeps   atomic.Int64
	removed  atomic.Int64
	failures atomic.Int64
}

// SweeperStats provides observability metrics for monitoring and debugging.
type SweeperStats struct {
	Sweeps    int64 // Total number of GC calls
	Removed   int64 // Total number of sessions removed
	Failures  int64 // Number of GC calls that returned an error
	IsRunning bool  // Whether the sweep loop is active
}

// NewSweeper creates a sweeper for the given handler.
func NewSweeper(h Handler, opts ...SweeperOption) (*Sweeper, error) {
	if h == nil {
		return nil, ErrHandlerNil
	}

	defaults := DefaultSweeperConfig()
	options := &sweeperOptions{
		interval:    defaults.Interval,
		maxLifetime: defaults.MaxLifetime,
		timeout:     defaults.Timeout,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(options)
	}

	return &Sweeper{
		handler:     h,
		interval:    options.interval,
		maxLifetime: options.maxLifetime,
		timeout:     options.timeout,
		logger:      options.logger,
	}, nil
}

// NewSweeperFromConfig creates a Sweeper from configuration.
// Additional options override config values.
func NewSweeperFromConfig(cfg SweeperConfig, h Handler, opts ...SweeperOption) (*Sweeper, error) {
	allOpts := append([]SweeperOption{
		WithSweepInterval(cfg.Interval),
		WithMaxLifetime(cfg.MaxLifetime),
		WithSweepTimeout(cfg.Timeout),
	}, opts...)

	return NewSweeper(h, allOpts...)
}

// Start sweeps once and then on every interval tick. It blocks until ctx is
// cancelled or Stop is called and returns the context error.
func (s *Sweeper) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.done != nil {
		s.mu.Unlock()
		return ErrSweeperAlreadyStarted
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel, s.done = cancel, done
	s.mu.Unlock()

	s.running.Store(true)

	defer func() {
		cancel()
		s.running.Store(false)
		s.mu.Lock()
		s.cancel, s.done = nil, nil
		s.mu.Unlock()
		close(done)
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.InfoContext(ctx, "session sweeper started",
		slog.Duration("interval", s.interval),
		slog.Duration("max_lifetime", s.maxLifetime))

	s.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			s.logger.InfoContext(context.WithoutCancel(ctx), "session sweeper stopped")
			return ctx.Err()
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// Stop cancels a running sweep loop and waits for it to exit.
func (s *Sweeper) Stop() error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if done == nil {
		return ErrSweeperNotStarted
	}

	cancel()
	<-done
	return nil
}

// Run provides errgroup compatibility for coordinated lifecycle management.
// Cancellation of ctx is treated as a normal shutdown.
func (s *Sweeper) Run(ctx context.Context) func() error {
	return func() error {
		err := s.Start(ctx)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		return err
	}
}

// SweepOnce performs a single GC call bounded by the sweep timeout.
func (s *Sweeper) SweepOnce(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	n, err := s.handler.GC(ctx, s.maxLifetime)
	s.sweeps.Add(1)
	if err != nil {
		s.failures.Add(1)
		s.logger.ErrorContext(ctx, "session sweep failed",
			logger.Error(err),
			logger.Duration(time.Since(start)))
		return 0, err
	}

	s.removed.Add(n)
	s.logger.DebugContext(ctx, "session sweep completed",
		logger.Count("removed", int(n)),
		logger.Duration(time.Since(start)))

	return n, nil
}

// Stats returns a snapshot of sweeper counters.
func (s *Sweeper) Stats() SweeperStats {
	return SweeperStats{
		Sweeps:    s.sweeps.Load(),
		Removed:   s.removed.Load(),
		Failures:  s.failures.Load(),
		IsRunning: s.running.Load(),
	}
}

// sweep lets an in-flight GC call finish even when the loop is being stopped.
func (s *Sweeper) sweep(ctx context.Context) {
	_, _ = s.SweepOnce(context.WithoutCancel(ctx))
}
