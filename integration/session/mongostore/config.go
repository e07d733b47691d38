package mongostore

import (
	"time"

	"github.com/dmitrymomot/mongosession/core/session"
)

// Default document field names.
const (
	DefaultIDField   = "_id"
	DefaultDataField = "data"
	DefaultTimeField = "time"
)

// Config describes where sessions live and how their documents are shaped.
// Empty field names fall back to the defaults; Database and Collection are required.
type Config struct {
	Database   string `env:"SESSION_MONGO_DATABASE,required"`
	Collection string `env:"SESSION_MONGO_COLLECTION,required"`

	IDField   string `env:"SESSION_MONGO_ID_FIELD" envDefault:"_id"`
	DataField string `env:"SESSION_MONGO_DATA_FIELD" envDefault:"data"`
	TimeField string `env:"SESSION_MONGO_TIME_FIELD" envDefault:"time"`

	// ExpiryField enables expiry-field mode when set. Every write stores
	// now+MaxLifetime in this field for a TTL index to act on, and GC
	// becomes a no-op.
	ExpiryField string `env:"SESSION_MONGO_EXPIRY_FIELD"`

	// MaxLifetime is only used for expiry timestamps. It is independent of
	// the lifetime passed to GC, so keep both in sync when switching modes.
	MaxLifetime time.Duration `env:"SESSION_MAX_LIFETIME" envDefault:"24m"`
}

// withDefaults merges defaults under caller-supplied values.
func (c Config) withDefaults() Config {
	if c.IDField == "" {
		c.IDField = DefaultIDField
	}
	if c.DataField == "" {
		c.DataField = DefaultDataField
	}
	if c.TimeField == "" {
		c.TimeField = DefaultTimeField
	}
	if c.MaxLifetime <= 0 {
		c.MaxLifetime = session.DefaultMaxLifetime
	}
	return c
}

func (c Config) validate() error {
	if c.Database == "" {
		return ErrMissingDatabase
	}
	if c.Collection == "" {
		return ErrMissingCollection
	}

	seen := map[string]struct{}{}
	for _, f := range []string{c.IDField, c.DataField, c.TimeField, c.ExpiryField} {
		if f == "" {
			continue
		}
		if _, ok := seen[f]; ok {
			return ErrDuplicateField
		}
		seen[f] = struct{}{}
	}

	return nil
}

// ExpiryMode reports whether expiry is delegated to a TTL index.
func (c Config) ExpiryMode() bool {
	return c.ExpiryField != ""
}
