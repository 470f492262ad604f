// Copyright (c) 2026 Noveria. All rights reserved.

package chapter

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noveria/noveria/internal/platform/constants"
	"github.com/noveria/noveria/internal/platform/mongodb"
)

// # MongoDB Repository

// chapterRepository implements [Repository] against the chapter collection.
type chapterRepository struct {
	store *mongodb.Store
}

// NewRepository constructs a MongoDB backed chapter store.
func NewRepository(store *mongodb.Store) Repository {
	return &chapterRepository{store: store}
}

func (repository *chapterRepository) Insert(ctx context.Context, c *Chapter) (primitive.ObjectID, error) {
	return repository.store.Insert(ctx, constants.CollectionChapter, c)
}

func (repository *chapterRepository) CountByBook(ctx context.Context, bookID string) (int64, error) {
	return repository.store.Count(ctx, constants.CollectionChapter, bson.M{"book_id": bookID})
}

func (repository *chapterRepository) ListByBook(ctx context.Context, bookID string) ([]*Chapter, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "chapter_number", Value: 1}})

	var chapters []*Chapter
	if err := repository.store.Find(ctx, constants.CollectionChapter, bson.M{"book_id": bookID}, &chapters, findOptions); err != nil {
		return nil, err
	}

	if chapters == nil {
		chapters = []*Chapter{}
	}

	return chapters, nil
}

func (repository *chapterRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*Chapter, error) {
	var c Chapter
	if err := repository.store.FindOne(ctx, constants.CollectionChapter, "Chapter", bson.M{"_id": id}, &c); err != nil {
		return nil, err
	}

	return &c, nil
}
