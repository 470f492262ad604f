// Copyright (c) 2026 Noveria. All rights reserved.

package discover

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/noveria/noveria/internal/core/book"
	"github.com/noveria/noveria/internal/platform/constants"
	"github.com/noveria/noveria/internal/platform/mongodb"
)

// # MongoDB Repository

// discoverRepository implements [Repository] with a store-side aggregation.
type discoverRepository struct {
	store *mongodb.Store
}

// NewRepository constructs a MongoDB backed discovery store.
func NewRepository(store *mongodb.Store) Repository {
	return &discoverRepository{store: store}
}

func (repository *discoverRepository) Trending(ctx context.Context, limit int) ([]*book.Book, error) {
	books := make([]*book.Book, 0, limit)
	if err := repository.store.Aggregate(ctx, constants.CollectionBook, trendingPipeline(limit), &books); err != nil {
		return nil, err
	}

	return books, nil
}

// trendingPipeline builds the ranking aggregation.
//
// Chapters reference books by identifier string, so the left join matches
// chapter.book_id against the stringified book _id. Every book passes
// through the join — zero-chapter books carry an empty array and rank with
// count 0. The trailing _id sort key makes the ordering fully deterministic
// when both chapter count and updated_at tie.
func trendingPipeline(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: constants.CollectionChapter},
			{Key: "let", Value: bson.D{{Key: "bookID", Value: bson.D{{Key: "$toString", Value: "$_id"}}}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{
					{Key: "$expr", Value: bson.D{{Key: "$eq", Value: bson.A{"$book_id", "$$bookID"}}}},
				}}},
			}},
			{Key: "as", Value: "chapters"},
		}}},
		{{Key: "$addFields", Value: bson.D{
			{Key: "chapters_count", Value: bson.D{{Key: "$size", Value: "$chapters"}}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "chapters_count", Value: -1},
			{Key: "updated_at", Value: -1},
			{Key: "_id", Value: -1},
		}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$project", Value: bson.D{
			{Key: "chapters", Value: 0},
			{Key: "chapters_count", Value: 0},
		}}},
	}
}
