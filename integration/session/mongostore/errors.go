package mongostore

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/mongosession/core/session"
)

var (
	// ErrMissingDatabase is returned when Config.Database is empty.
	ErrMissingDatabase = fmt.Errorf("%w: database name is required", session.ErrInvalidConfig)
	// ErrMissingCollection is returned when Config.Collection is empty.
	ErrMissingCollection = fmt.Errorf("%w: collection name is required", session.ErrInvalidConfig)
	// ErrDuplicateField is returned when two configured field names collide.
	ErrDuplicateField = fmt.Errorf("%w: session field names must be distinct", session.ErrInvalidConfig)
	// ErrNilClient is returned when no client is supplied.
	ErrNilClient = fmt.Errorf("%w: mongodb client is nil", session.ErrInvalidClient)

	// ErrReadSession is returned when looking up a session fails.
	ErrReadSession = errors.New("failed to read session")
	// ErrWriteSession is returned when upserting a session fails.
	ErrWriteSession = errors.New("failed to write session")
	// ErrDestroySession is returned when deleting a session fails.
	ErrDestroySession = errors.New("failed to destroy session")
	// ErrCollectGarbage is returned when the expiry sweep fails.
	ErrCollectGarbage = errors.New("failed to collect expired sessions")
)
