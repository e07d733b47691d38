// Command sessiongc removes stale sessions from a MongoDB session collection.
//
// It reads its configuration from the environment (and an optional .env file),
// connects to MongoDB and either sweeps once (SESSION_GC_ONCE=true) or keeps
// sweeping on SESSION_SWEEP_INTERVAL until interrupted.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/mongosession/core/config"
	"github.com/dmitrymomot/mongosession/core/logger"
	"github.com/dmitrymomot/mongosession/core/session"
	"github.com/dmitrymomot/mongosession/integration/database/mongo"
	"github.com/dmitrymomot/mongosession/integration/session/mongostore"
)

// Config is the full process configuration.
type Config struct {
	Mongo   mongo.Config
	Store   mongostore.Config
	Sweeper session.SweeperConfig

	Once                bool          `env:"SESSION_GC_ONCE" envDefault:"false"`
	HealthcheckInterval time.Duration `env:"SESSION_GC_HEALTHCHECK_INTERVAL" envDefault:"1m"`
	LogLevel            slog.Level    `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LOG_FORMAT" envDefault:"json"`
}

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		logger.New(logger.WithOutput(os.Stderr)).Error("failed to load configuration", logger.Error(err))
		os.Exit(1)
	}

	log := newLogger(cfg, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("sessiongc failed", logger.Error(err))
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	client, err := mongo.New(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.WithoutCancel(ctx)); err != nil {
			log.Warn("failed to disconnect from mongodb", logger.Error(err))
		}
	}()

	store, err := mongostore.NewFromConfig(cfg.Store, mongostore.WrapClient(client), mongostore.WithLogger(log))
	if err != nil {
		return err
	}

	sweeper, err := session.NewSweeperFromConfig(cfg.Sweeper, store, session.WithSweeperLogger(log))
	if err != nil {
		return err
	}

	log.Info("sessiongc starting",
		logger.Database(cfg.Store.Database),
		logger.Collection(cfg.Store.Collection),
		slog.Bool("expiry_mode", store.Config().ExpiryMode()),
		slog.Bool("once", cfg.Once))

	if cfg.Once {
		start := time.Now()
		n, err := sweeper.SweepOnce(ctx)
		if err != nil {
			return err
		}
		log.Info("sweep completed", logger.Count("removed", int(n)), logger.Elapsed(start))
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(sweeper.Run(ctx))
	g.Go(watchHealth(ctx, mongo.Healthcheck(client), cfg.HealthcheckInterval, log))

	if err := g.Wait(); err != nil {
		return err
	}

	stats := sweeper.Stats()
	log.Info("sessiongc stopped",
		slog.Int64("sweeps", stats.Sweeps),
		slog.Int64("removed", stats.Removed),
		slog.Int64("failures", stats.Failures))
	return nil
}

// watchHealth logs connectivity loss; it never fails the group, the sweeper
// keeps retrying on its own schedule.
func watchHealth(ctx context.Context, check func(context.Context) error, interval time.Duration, log *slog.Logger) func() error {
	return func() error {
		if interval <= 0 {
			return nil
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		healthy := true
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
				err := check(ctx)
				switch {
				case err != nil && healthy:
					log.WarnContext(ctx, "mongodb unhealthy", logger.Error(err))
				case err == nil && !healthy:
					log.InfoContext(ctx, "mongodb healthy again")
				}
				healthy = err == nil
			}
		}
	}
}

func newLogger(cfg Config, w io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithOutput(w),
		logger.WithLevel(cfg.LogLevel),
		logger.WithAttr(logger.Component("sessiongc")),
	}
	if cfg.LogFormat == "text" {
		opts = append(opts, logger.WithTextFormatter())
	} else {
		opts = append(opts, logger.WithJSONFormatter())
	}
	return logger.New(opts...)
}
