package session

import "errors"

var (
	// ErrInvalidConfig is returned when a handler is constructed with incomplete configuration.
	ErrInvalidConfig = errors.New("invalid session handler configuration")
	// ErrInvalidClient is returned when a handler is constructed without a usable database client.
	ErrInvalidClient = errors.New("invalid session storage client")
	// ErrHandlerNil is returned when a sweeper is created without a handler.
	ErrHandlerNil = errors.New("session handler is nil")
	// ErrSweeperAlreadyStarted is returned when Start is called on a running sweeper.
	ErrSweeperAlreadyStarted = errors.New("session sweeper already started")
	// ErrSweeperNotStarted is returned when Stop is called on a sweeper that is not running.
	ErrSweeperNotStarted = errors.New("session sweeper not started")
)
