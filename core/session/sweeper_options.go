package session

import (
	"log/slog"
	"time"
)

// SweeperOption is a functional option for configuring a sweeper.
type SweeperOption func(*sweeperOptions)

type sweeperOptions struct {
	interval    time.Duration
	maxLifetime time.Duration
	timeout     time.Duration
	logger      *slog.Logger
}

// WithSweepInterval configures how often the sweeper calls GC.
func WithSweepInterval(d time.Duration) SweeperOption {
	return func(o *sweeperOptions) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithMaxLifetime sets the lifetime passed to Handler.GC.
func WithMaxLifetime(d time.Duration) SweeperOption {
	return func(o *sweeperOptions) {
		if d > 0 {
			o.maxLifetime = d
		}
	}
}

// WithSweepTimeout bounds a single GC call.
func WithSweepTimeout(d time.Duration) SweeperOption {
	return func(o *sweeperOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithSweeperLogger configures structured logging for sweeper operations.
// Use slog.New(slog.NewTextHandler(io.Discard, nil)) to disable logging.
func WithSweeperLogger(logger *slog.Logger) SweeperOption {
	return func(o *sweeperOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
