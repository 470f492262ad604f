// Copyright (c) 2026 Noveria. All rights reserved.

package book

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository is the data-access contract for the book catalog.
type Repository interface {
	// Insert persists a new book and returns its generated identifier.
	Insert(ctx context.Context, b *Book) (primitive.ObjectID, error)

	// List returns up to limit books matching the filter.
	List(ctx context.Context, filter Filter, limit int) ([]*Book, error)

	// FindByID returns a single book or a not-found error.
	FindByID(ctx context.Context, id primitive.ObjectID) (*Book, error)

	// FindByIDs returns the books whose identifiers are in ids, in one
	// batched lookup. Missing identifiers are simply absent from the result.
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*Book, error)

	// Touch bumps a book's updated_at timestamp. Touching a book that does
	// not exist is a no-op.
	Touch(ctx context.Context, id primitive.ObjectID, at time.Time) error
}
