// Copyright (c) 2026 Noveria. All rights reserved.

package book

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noveria/noveria/internal/platform/constants"
	"github.com/noveria/noveria/internal/platform/mongodb"
)

// # MongoDB Repository

// bookRepository implements [Repository] against the book collection.
type bookRepository struct {
	store *mongodb.Store
}

// NewRepository constructs a MongoDB backed book store.
func NewRepository(store *mongodb.Store) Repository {
	return &bookRepository{store: store}
}

func (repository *bookRepository) Insert(ctx context.Context, b *Book) (primitive.ObjectID, error) {
	return repository.store.Insert(ctx, constants.CollectionBook, b)
}

func (repository *bookRepository) List(ctx context.Context, filter Filter, limit int) ([]*Book, error) {
	findOptions := options.Find().SetLimit(int64(limit))

	books := make([]*Book, 0, limit)
	if err := repository.store.Find(ctx, constants.CollectionBook, filter.Document(), &books, findOptions); err != nil {
		return nil, err
	}

	return books, nil
}

func (repository *bookRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Book, error) {
	var b Book
	if err := repository.store.FindOne(ctx, constants.CollectionBook, "Book", bson.M{"_id": id}, &b); err != nil {
		return nil, err
	}

	return &b, nil
}

func (repository *bookRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*Book, error) {
	books := make([]*Book, 0, len(ids))
	if len(ids) == 0 {
		return books, nil
	}

	filter := bson.M{"_id": bson.M{"$in": ids}}
	if err := repository.store.Find(ctx, constants.CollectionBook, filter, &books); err != nil {
		return nil, err
	}

	return books, nil
}

func (repository *bookRepository) Touch(ctx context.Context, id primitive.ObjectID, at time.Time) error {
	return repository.store.UpdateOne(ctx, constants.CollectionBook,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"updated_at": at}},
	)
}
