// Copyright (c) 2026 Noveria. All rights reserved.

package comment

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository is the data-access contract for comments.
type Repository interface {
	// Insert persists a new comment and returns its generated identifier.
	Insert(ctx context.Context, c *Comment) (primitive.ObjectID, error)

	// ListByBook returns a book's comments sorted newest first.
	ListByBook(ctx context.Context, bookID string) ([]*Comment, error)
}
