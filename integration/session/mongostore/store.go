package mongostore

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/mongosession/core/logger"
	"github.com/dmitrymomot/mongosession/core/session"
)

var _ session.Handler = (*Store)(nil)

// Store persists session payloads in a single MongoDB collection,
// one document per session id.
type Store struct {
	client Client
	cfg    Config
	now    func() time.Time
	logger *slog.Logger

	collOnce sync.Once
	coll     Collection
}

// New creates a store. The collection handle is resolved on first use.
func New(client Client, cfg Config, opts ...Option) (*Store, error) {
	if client == nil {
		return nil, ErrNilClient
	}

	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	s := &Store{
		client: client,
		cfg:    cfg,
		now:    time.Now,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// NewFromConfig is New for a Config loaded from the environment.
func NewFromConfig(cfg Config, client Client, opts ...Option) (*Store, error) {
	return New(client, cfg, opts...)
}

// Config returns the effective configuration with defaults applied.
func (s *Store) Config() Config {
	return s.cfg
}

// Open is a no-op; the collection needs no per-session handshake.
func (s *Store) Open(context.Context, string, string) error {
	return nil
}

// Close is a no-op; the client connection is owned by the caller.
func (s *Store) Close(context.Context) error {
	return nil
}

// Read returns the payload for id, or an empty slice when no session exists.
func (s *Store) Read(ctx context.Context, id string) ([]byte, error) {
	raw, err := s.collection().FindOne(ctx, s.idFilter(id),
		options.FindOne().SetProjection(bson.D{{Key: s.cfg.DataField, Value: 1}}),
	).Raw()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []byte{}, nil
	}
	if err != nil {
		return nil, errors.Join(ErrReadSession, err)
	}

	return payload(raw.Lookup(s.cfg.DataField)), nil
}

// Write upserts the payload for id and refreshes its write time.
// In expiry-field mode the expiry timestamp is refreshed as well.
func (s *Store) Write(ctx context.Context, id string, data []byte) error {
	now := s.now()

	set := bson.D{
		{Key: s.cfg.DataField, Value: bson.Binary{Subtype: bson.TypeBinaryGeneric, Data: data}},
		{Key: s.cfg.TimeField, Value: now},
	}
	if s.cfg.ExpiryMode() {
		set = append(set, bson.E{Key: s.cfg.ExpiryField, Value: now.Add(s.cfg.MaxLifetime)})
	}

	_, err := s.collection().UpdateOne(ctx, s.idFilter(id),
		bson.D{{Key: "$set", Value: set}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return errors.Join(ErrWriteSession, err)
	}

	return nil
}

// Destroy deletes the session. Deleting an unknown id succeeds.
func (s *Store) Destroy(ctx context.Context, id string) error {
	if _, err := s.collection().DeleteOne(ctx, s.idFilter(id)); err != nil {
		return errors.Join(ErrDestroySession, err)
	}
	return nil
}

// GC deletes every session whose write time is older than now-maxLifetime.
// In expiry-field mode it does nothing; the TTL index owns expiry.
func (s *Store) GC(ctx context.Context, maxLifetime time.Duration) (int64, error) {
	if s.cfg.ExpiryMode() {
		return 0, nil
	}

	cutoff := s.now().Add(-maxLifetime)
	res, err := s.collection().DeleteMany(ctx, bson.D{
		{Key: s.cfg.TimeField, Value: bson.D{{Key: "$lt", Value: cutoff}}},
	})
	if err != nil {
		return 0, errors.Join(ErrCollectGarbage, err)
	}

	s.logger.DebugContext(ctx, "expired sessions removed",
		logger.Collection(s.cfg.Collection),
		logger.Count("removed", int(res.DeletedCount)),
		slog.Time("cutoff", cutoff))

	return res.DeletedCount, nil
}

func (s *Store) collection() Collection {
	s.collOnce.Do(func() {
		s.coll = s.client.Collection(s.cfg.Database, s.cfg.Collection)
	})
	return s.coll
}

func (s *Store) idFilter(id string) bson.D {
	return bson.D{{Key: s.cfg.IDField, Value: id}}
}

// payload copies the stored bytes out of the result buffer. String values
// written by other clients are accepted as raw bytes.
func payload(v bson.RawValue) []byte {
	if _, data, ok := v.BinaryOK(); ok {
		out := make([]byte, len(data))
		copy(out, data)
		return out
	}
	if str, ok := v.StringValueOK(); ok {
		return []byte(str)
	}
	return []byte{}
}
