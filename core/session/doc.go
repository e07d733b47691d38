// Package session defines the save-handler contract used to persist HTTP
// session payloads and a sweeper that garbage-collects stale sessions.
//
// # Handler
//
// Handler mirrors the classic save-handler lifecycle: Open, Close, Read,
// Write, Destroy and GC. Payloads are opaque byte slices; the handler never
// interprets them. Reading an unknown session returns an empty slice rather
// than an error, and destroying an unknown session succeeds.
//
// Concrete implementations live outside this package, for example
// integration/session/mongostore:
//
//	store, err := mongostore.New(mongostore.WrapClient(client), mongostore.Config{
//		Database:   "app",
//		Collection: "sessions",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	var h session.Handler = store
//	payload, err := h.Read(ctx, sessionID)
//
// # Sweeper
//
// Sweeper calls Handler.GC on a fixed interval. It follows the
// Start/Stop/Run convention so it can be managed by an errgroup:
//
//	sweeper, err := session.NewSweeper(store,
//		session.WithSweepInterval(10*time.Minute),
//		session.WithMaxLifetime(24*time.Minute),
//		session.WithSweeperLogger(log),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(sweeper.Run(ctx))
//
// A failing GC call is logged and counted in Stats; the loop keeps running.
//
// # Configuration
//
// SweeperConfig can be loaded from the environment:
//
//	SESSION_SWEEP_INTERVAL  (default: 10m)
//	SESSION_MAX_LIFETIME    (default: 24m)
//	SESSION_SWEEP_TIMEOUT   (default: 30s)
//
// # Error Handling
//
//	ErrInvalidConfig          - handler constructed with incomplete configuration
//	ErrInvalidClient          - handler constructed without a usable client
//	ErrHandlerNil             - NewSweeper called with a nil handler
//	ErrSweeperAlreadyStarted  - Start called twice
//	ErrSweeperNotStarted      - Stop called on an idle sweeper
package session
