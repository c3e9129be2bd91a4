// Package mongo implements the domain service interfaces over a MongoDB
// document store. Collections are logically keyed by an application-level
// "id" field independent of Mongo's own _id; ids in stored documents may
// be numbers, strings, or native object ids, so every lookup goes through
// the candidate-expansion filter in ids.go.
package mongo

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/amanabooks/storefront/internal/domain"
)

// Config carries the connection settings for the document store.
type Config struct {
	URI               string
	Database          string
	BooksCollection   string
	ReviewsCollection string
	CartCollection    string
}

// Client is a lazily connected, memoized handle to the document store.
// The underlying connection is established at most once per process even
// under concurrent first use: all racing callers share the single
// initialization guarded by the sync.Once.
type Client struct {
	cfg Config

	once   sync.Once
	client *mongo.Client
	err    error
}

// NewClient creates a client. No network activity happens until the
// first operation.
func NewClient(cfg Config) *Client {
	return &Client{cfg: cfg}
}

// connect establishes the shared connection on first use.
func (c *Client) connect(ctx context.Context) (*mongo.Client, error) {
	c.once.Do(func() {
		opts := options.Client().
			ApplyURI(c.cfg.URI).
			SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1).
				SetStrict(true).
				SetDeprecationErrors(true))

		c.client, c.err = mongo.Connect(ctx, opts)
	})
	if c.err != nil {
		return nil, domain.Unavailable(c.err, "mongo.connect", "failed to connect to document store")
	}
	return c.client, nil
}

// Ping verifies the store is reachable. Used at startup so a configured
// but unreachable store fails loudly instead of being silently masked.
func (c *Client) Ping(ctx context.Context) error {
	client, err := c.connect(ctx)
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return domain.Unavailable(err, "mongo.ping", "document store unreachable")
	}
	return nil
}

// Close releases the underlying connection, if one was ever established.
func (c *Client) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}

func (c *Client) collection(ctx context.Context, name string) (*mongo.Collection, error) {
	client, err := c.connect(ctx)
	if err != nil {
		return nil, err
	}
	return client.Database(c.cfg.Database).Collection(name), nil
}

func (c *Client) books(ctx context.Context) (*mongo.Collection, error) {
	return c.collection(ctx, c.cfg.BooksCollection)
}

func (c *Client) reviews(ctx context.Context) (*mongo.Collection, error) {
	return c.collection(ctx, c.cfg.ReviewsCollection)
}

func (c *Client) cart(ctx context.Context) (*mongo.Collection, error) {
	return c.collection(ctx, c.cfg.CartCollection)
}
