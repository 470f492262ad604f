// Copyright (c) 2026 Noveria. All rights reserved.

// Package mongodb provides the managed MongoDB connection and the generic
// document gateway for the Noveria application.
//
// # Architecture
//
// This package is part of the Infrastructure layer. It owns the single
// long-lived client connection (created at process start, closed at
// shutdown) and exposes collection-parametrized create/read primitives
// that the domain repositories build on. The driver's client is safe for
// concurrent use, so in-flight operations share it without external
// synchronization.
package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Opinionated client settings for the Noveria workload.
const (
	// connectTimeout is the maximum time allowed to establish the connection.
	connectTimeout = 5 * time.Second
	// pingTimeout is the maximum duration for a health check ping.
	pingTimeout = 2 * time.Second
	// maxPoolSize caps the driver's internal connection pool.
	maxPoolSize = 25
)

// Store wraps the MongoDB client and a database handle.
//
// It is constructed once in main.go and injected into every repository.
type Store struct {
	client   *mongo.Client
	database *mongo.Database
	log      *slog.Logger
}

// Connect creates and validates a new MongoDB connection.
//
// # Parameters
//   - ctx: Context for the initial connection attempt.
//   - uri: A mongodb:// connection string.
//   - name: The logical database holding the catalog collections.
//   - logger: Structured logger for store-level events.
func Connect(ctx context.Context, uri, name string, logger *slog.Logger) (*Store, error) {
	clientOptions := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(connectTimeout).
		SetMaxPoolSize(maxPoolSize)

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("mongodb: failed to connect: %w", err)
	}

	store := &Store{
		client:   client,
		database: client.Database(name),
		log:      logger,
	}

	// Validate that we can actually reach the store.
	if err := store.Ping(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	logger.Info("mongodb connected", slog.String("database", name))

	return store, nil
}

// Ping verifies that the MongoDB connection is healthy.
func (s *Store) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := s.client.Ping(pingCtx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb: ping failed: %w", err)
	}

	return nil
}

// Close disconnects the underlying client. Called once at shutdown.
func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("mongodb: disconnect failed: %w", err)
	}
	return nil
}

// collection returns the handle for a named catalog collection.
func (s *Store) collection(name string) *mongo.Collection {
	return s.database.Collection(name)
}
