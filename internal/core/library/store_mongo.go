// Copyright (c) 2026 Noveria. All rights reserved.

package library

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noveria/noveria/internal/platform/constants"
	"github.com/noveria/noveria/internal/platform/mongodb"
)

// # MongoDB Repository

// libraryRepository implements [Repository] against the libraryitem collection.
type libraryRepository struct {
	store *mongodb.Store
}

// NewRepository constructs a MongoDB backed library store.
func NewRepository(store *mongodb.Store) Repository {
	return &libraryRepository{store: store}
}

func (repository *libraryRepository) Insert(ctx context.Context, item *Item) (primitive.ObjectID, error) {
	return repository.store.Insert(ctx, constants.CollectionLibraryItem, item)
}

func (repository *libraryRepository) FindByUserAndBook(ctx context.Context, userID, bookID string) (*Item, error) {
	var item Item
	filter := bson.M{"user_id": userID, "book_id": bookID}
	if err := repository.store.FindOne(ctx, constants.CollectionLibraryItem, "Library item", filter, &item); err != nil {
		return nil, err
	}

	return &item, nil
}

func (repository *libraryRepository) ListByUser(ctx context.Context, userID string) ([]*Item, error) {
	// Sorting by _id makes save order explicit instead of relying on the
	// store's natural order.
	findOptions := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	var items []*Item
	if err := repository.store.Find(ctx, constants.CollectionLibraryItem, bson.M{"user_id": userID}, &items, findOptions); err != nil {
		return nil, err
	}

	return items, nil
}
