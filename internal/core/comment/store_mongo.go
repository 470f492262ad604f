// Copyright (c) 2026 Noveria. All rights reserved.

package comment

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noveria/noveria/internal/platform/constants"
	"github.com/noveria/noveria/internal/platform/mongodb"
)

// # MongoDB Repository

// commentRepository implements [Repository] against the comment collection.
type commentRepository struct {
	store *mongodb.Store
}

// NewRepository constructs a MongoDB backed comment store.
func NewRepository(store *mongodb.Store) Repository {
	return &commentRepository{store: store}
}

func (repository *commentRepository) Insert(ctx context.Context, c *Comment) (primitive.ObjectID, error) {
	return repository.store.Insert(ctx, constants.CollectionComment, c)
}

func (repository *commentRepository) ListByBook(ctx context.Context, bookID string) ([]*Comment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var comments []*Comment
	if err := repository.store.Find(ctx, constants.CollectionComment, bson.M{"book_id": bookID}, &comments, findOptions); err != nil {
		return nil, err
	}

	if comments == nil {
		comments = []*Comment{}
	}

	return comments, nil
}
