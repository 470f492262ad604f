// Copyright (c) 2026 Noveria. All rights reserved.

package chapter

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository is the data-access contract for chapters.
type Repository interface {
	// Insert persists a new chapter and returns its generated identifier.
	Insert(ctx context.Context, c *Chapter) (primitive.ObjectID, error)

	// CountByBook returns the number of chapters referencing a book.
	CountByBook(ctx context.Context, bookID string) (int64, error)

	// ListByBook returns a book's chapters sorted by chapter_number ascending.
	ListByBook(ctx context.Context, bookID string) ([]*Chapter, error)

	// FindByID returns a single chapter or a not-found error.
	FindByID(ctx context.Context, id primitive.ObjectID) (*Chapter, error)
}
