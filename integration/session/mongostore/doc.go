// Package mongostore implements session.Handler on top of a MongoDB collection.
//
// Each session is one document keyed by the session id:
//
//	{ "_id": "abc123", "data": BinData(0, ...), "time": ISODate(...) }
//
// Field names are configurable. Write is a single-document upsert, Read is a
// findOne projected to the data field, Destroy is deleteOne and GC is a
// deleteMany over the time field. Database errors are returned wrapped in
// ErrReadSession, ErrWriteSession, ErrDestroySession or ErrCollectGarbage;
// the driver error stays reachable through errors.Is and errors.As. Nothing
// is retried.
//
// # Usage
//
//	client, err := mongo.New(ctx, mongoCfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	store, err := mongostore.New(mongostore.WrapClient(client), mongostore.Config{
//		Database:   "app",
//		Collection: "sessions",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	_ = store.Write(ctx, "abc123", []byte{0x01, 0x02})
//	data, _ := store.Read(ctx, "abc123") // []byte{0x01, 0x02}
//	_ = store.Destroy(ctx, "abc123")
//	data, _ = store.Read(ctx, "abc123") // []byte{}
//
// # Expiry-field mode
//
// Setting Config.ExpiryField makes every write store now+MaxLifetime in that
// field and turns GC into a no-op. Pair it with a TTL index, created outside
// this package:
//
//	db.sessions.createIndex({ expires_at: 1 }, { expireAfterSeconds: 0 })
//
// MaxLifetime is configured on the store; the lifetime passed to GC is not
// used in this mode.
//
// # Configuration
//
//	SESSION_MONGO_DATABASE      (required)
//	SESSION_MONGO_COLLECTION    (required)
//	SESSION_MONGO_ID_FIELD      (default: _id)
//	SESSION_MONGO_DATA_FIELD    (default: data)
//	SESSION_MONGO_TIME_FIELD    (default: time)
//	SESSION_MONGO_EXPIRY_FIELD  (default: empty, disabled)
//	SESSION_MAX_LIFETIME        (default: 24m)
//
// # Concurrency
//
// A Store is safe for concurrent use. The collection handle is resolved once,
// on first use. Concurrent writes to the same id are last-write-wins.
package mongostore
