package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// defaultTimeout bounds every repository call in this package as well as the
// initial connection handshake.
const defaultTimeout = 10 * time.Second

// Config holds the connection settings for the document store.
type Config struct {
	URI      string
	Database string
	// Timeout applies to the connect-and-ping handshake. Zero means
	// defaultTimeout.
	Timeout time.Duration
}

// Connect dials MongoDB and pings it before handing anything back, so a bad
// URI fails at startup rather than on the first request. The client is
// returned alongside the database because callers own the disconnect.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(dialCtx, nil); err != nil {
		_ = client.Disconnect(dialCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
