package session

import (
	"time"
)

// DefaultMaxLifetime is the conventional session lifetime of 1440 seconds.
const DefaultMaxLifetime = 1440 * time.Second

// SweeperConfig holds sweeper configuration.
// Designed for environment-based configuration using caarlos0/env.
type SweeperConfig struct {
	Interval    time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"10m"`
	MaxLifetime time.Duration `env:"SESSION_MAX_LIFETIME" envDefault:"24m"`
	Timeout     time.Duration `env:"SESSION_SWEEP_TIMEOUT" envDefault:"30s"`
}

// DefaultSweeperConfig returns the defaults used when no option overrides them.
func DefaultSweeperConfig() SweeperConfig {
	return SweeperConfig{
		Interval:    10 * time.Minute,
		MaxLifetime: DefaultMaxLifetime,
		Timeout:     30 * time.Second,
	}
}
