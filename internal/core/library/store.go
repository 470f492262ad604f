// Copyright (c) 2026 Noveria. All rights reserved.

package library

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository is the data-access contract for library items.
type Repository interface {
	// Insert persists a new item and returns its generated identifier.
	Insert(ctx context.Context, item *Item) (primitive.ObjectID, error)

	// FindByUserAndBook returns the item for a (user, book) pair, or a
	// not-found error when the pair has never been saved.
	FindByUserAndBook(ctx context.Context, userID, bookID string) (*Item, error)

	// ListByUser returns every item a user saved, in save order
	// (identifier ascending — ObjectIDs are insertion-ordered).
	ListByUser(ctx context.Context, userID string) ([]*Item, error)
}
