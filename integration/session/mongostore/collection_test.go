package mongostore_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/mongosession/integration/session/mongostore"
)

// memCollection is an in-memory mongostore.Collection that understands the
// filter and update shapes the store sends.
type memCollection struct {
	mu      sync.Mutex
	idField string
	docs    map[string]bson.D

	findErr   error
	updateErr error
	deleteErr error

	deleteManyCalls atomic.Int32
	lastUpsert      *bool
}

func newMemCollection(idField string) *memCollection {
	return &memCollection{
		idField: idField,
		docs:    make(map[string]bson.D),
	}
}

func (c *memCollection) FindOne(_ context.Context, filter any, _ ...options.Lister[options.FindOneOptions]) *mongo.SingleResult {
	if c.findErr != nil {
		return mongo.NewSingleResultFromDocument(bson.D{}, c.findErr, nil)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	doc, ok := c.docs[c.filterID(filter)]
	if !ok {
		return mongo.NewSingleResultFromDocument(bson.D{}, mongo.ErrNoDocuments, nil)
	}
	return mongo.NewSingleResultFromDocument(doc, nil, nil)
}

func (c *memCollection) UpdateOne(_ context.Context, filter, update any, opts ...options.Lister[options.UpdateOneOptions]) (*mongo.UpdateResult, error) {
	if c.updateErr != nil {
		return nil, c.updateErr
	}

	var args options.UpdateOneOptions
	for _, o := range opts {
		for _, fn := range o.List() {
			if err := fn(&args); err != nil {
				return nil, err
			}
		}
	}

	set, err := setFields(update)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastUpsert = args.Upsert
	id := c.filterID(filter)

	doc, ok := c.docs[id]
	if !ok {
		if args.Upsert == nil || !*args.Upsert {
			return &mongo.UpdateResult{}, nil
		}
		c.docs[id] = append(bson.D{{Key: c.idField, Value: id}}, set...)
		return &mongo.UpdateResult{UpsertedCount: 1, UpsertedID: id}, nil
	}

	for _, e := range set {
		doc = setField(doc, e)
	}
	c.docs[id] = doc
	return &mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (c *memCollection) DeleteOne(_ context.Context, filter any, _ ...options.Lister[options.DeleteOneOptions]) (*mongo.DeleteResult, error) {
	if c.deleteErr != nil {
		return nil, c.deleteErr
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.filterID(filter)
	if _, ok := c.docs[id]; !ok {
		return &mongo.DeleteResult{}, nil
	}
	delete(c.docs, id)
	return &mongo.DeleteResult{DeletedCount: 1}, nil
}

func (c *memCollection) DeleteMany(_ context.Context, filter any, _ ...options.Lister[options.DeleteManyOptions]) (*mongo.DeleteResult, error) {
	c.deleteManyCalls.Add(1)
	if c.deleteErr != nil {
		return nil, c.deleteErr
	}

	f := filter.(bson.D)
	field := f[0].Key
	cond := f[0].Value.(bson.D)
	if cond[0].Key != "$lt" {
		return nil, fmt.Errorf("unsupported operator %q", cond[0].Key)
	}
	cutoff := cond[0].Value.(time.Time)

	c.mu.Lock()
	defer c.mu.Unlock()

	var n int64
	for id, doc := range c.docs {
		ts, ok := lookup(doc, field).(time.Time)
		if ok && ts.Before(cutoff) {
			delete(c.docs, id)
			n++
		}
	}
	return &mongo.DeleteResult{DeletedCount: n}, nil
}

func (c *memCollection) doc(id string) (bson.D, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	doc, ok := c.docs[id]
	return doc, ok
}

func (c *memCollection) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.docs)
}

func (c *memCollection) put(id string, doc bson.D) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs[id] = doc
}

func (c *memCollection) filterID(filter any) string {
	f := filter.(bson.D)
	if len(f) != 1 || f[0].Key != c.idField {
		panic(fmt.Sprintf("unexpected filter %v", f))
	}
	return f[0].Value.(string)
}

func setFields(update any) (bson.D, error) {
	u, ok := update.(bson.D)
	if !ok || len(u) != 1 || u[0].Key != "$set" {
		return nil, fmt.Errorf("unsupported update %v", update)
	}
	return u[0].Value.(bson.D), nil
}

func setField(doc bson.D, e bson.E) bson.D {
	for i := range doc {
		if doc[i].Key == e.Key {
			doc[i].Value = e.Value
			return doc
		}
	}
	return append(doc, e)
}

func lookup(doc bson.D, key string) any {
	for _, e := range doc {
		if e.Key == key {
			return e.Value
		}
	}
	return nil
}

// memClient hands out a single collection and records how it was resolved.
type memClient struct {
	coll  *memCollection
	calls atomic.Int32

	mu         sync.Mutex
	database   string
	collection string
}

func (c *memClient) Collection(database, name string) mongostore.Collection {
	c.calls.Add(1)
	c.mu.Lock()
	c.database, c.collection = database, name
	c.mu.Unlock()
	return c.coll
}

func fields(doc bson.D) map[string]any {
	m := make(map[string]any, len(doc))
	for _, e := range doc {
		m[e.Key] = e.Value
	}
	return m
}
