package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNoURL is returned by Connect when no connection string is configured.
var ErrNoURL = errors.New("DATABASE_URL not set")

// Conn is the process-wide MongoDB connection, created once at start and
// shared by every request.
type Conn struct {
	Client *mongo.Client
	DB     *mongo.Database
}

// Connect creates a client for url and selects dbName. The driver connects
// lazily, so an unreachable server does not fail here; the first operation
// (or the /test probe) reports it.
func Connect(ctx context.Context, url, dbName string) (*Conn, error) {
	if url == "" {
		return nil, ErrNoURL
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	return &Conn{
		Client: client,
		DB:     client.Database(dbName),
	}, nil
}

// Close disconnects the client.
func (c *Conn) Close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.Client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}
	return nil
}
