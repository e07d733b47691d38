package mongostore

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring the store.
type Option func(*Store)

// WithLogger sets the logger used for debug output.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.logger = log
		}
	}
}

// WithClock overrides the time source used for write and expiry timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}
