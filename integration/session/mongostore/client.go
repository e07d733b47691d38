package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Client resolves collection handles. Any driver handle that can select a
// collection by database and name qualifies; use WrapClient for *mongo.Client.
type Client interface {
	Collection(database, name string) Collection
}

// Collection is the subset of *mongo.Collection the store uses.
type Collection interface {
	FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult
	UpdateOne(ctx context.Context, filter, update any, opts ...options.Lister[options.UpdateOneOptions]) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter any, opts ...options.Lister[options.DeleteOneOptions]) (*mongo.DeleteResult, error)
	DeleteMany(ctx context.Context, filter any, opts ...options.Lister[options.DeleteManyOptions]) (*mongo.DeleteResult, error)
}

var _ Collection = (*mongo.Collection)(nil)

type driverClient struct {
	client *mongo.Client
}

// WrapClient adapts a connected driver client. A nil client yields a nil Client.
func WrapClient(client *mongo.Client) Client {
	if client == nil {
		return nil
	}
	return driverClient{client: client}
}

func (c driverClient) Collection(database, name string) Collection {
	return c.client.Database(database).Collection(name)
}
