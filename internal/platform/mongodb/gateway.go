// Copyright (c) 2026 Noveria. All rights reserved.

package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/noveria/noveria/internal/platform/apperr"
)

// # Generic Document Gateway
//
// The repositories in internal/core build on these collection-parametrized
// primitives instead of touching mongo.Collection directly. Failures are
// already classified ([apperr.NotFound] / [apperr.StoreUnavailable]) when
// they leave this package.

// Insert writes a single document and returns its generated ObjectID.
//
// No validation is performed here; callers validate before persisting.
// Single-document writes carry whatever durability the deployment's write
// concern provides — there is no cross-document transaction.
func (s *Store) Insert(ctx context.Context, collection string, document any) (primitive.ObjectID, error) {
	result, err := s.collection(collection).InsertOne(ctx, document)
	if err != nil {
		return primitive.NilObjectID, WrapErr(err, collection)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, apperr.Internal(fmt.Errorf("mongodb: unexpected inserted id type %T", result.InsertedID))
	}

	return id, nil
}

// Find runs a filtered query and decodes every match into results
// (a pointer to a slice). Sorting and the result-count cap are supplied
// through the driver's find options.
func (s *Store) Find(ctx context.Context, collection string, filter any, results any, opts ...*options.FindOptions) error {
	cursor, err := s.collection(collection).Find(ctx, filter, opts...)
	if err != nil {
		return WrapErr(err, collection)
	}

	if err := cursor.All(ctx, results); err != nil {
		return WrapErr(err, collection)
	}

	return nil
}

// FindOne decodes the first matching document into result.
// A miss surfaces as [apperr.NotFound] for the named resource.
func (s *Store) FindOne(ctx context.Context, collection, resource string, filter any, result any) error {
	if err := s.collection(collection).FindOne(ctx, filter).Decode(result); err != nil {
		return WrapErr(err, resource)
	}
	return nil
}

// Count returns the number of documents matching filter.
func (s *Store) Count(ctx context.Context, collection string, filter any) (int64, error) {
	count, err := s.collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, WrapErr(err, collection)
	}
	return count, nil
}

// Aggregate runs a multi-stage pipeline and decodes the output documents
// into results (a pointer to a slice).
func (s *Store) Aggregate(ctx context.Context, collection string, pipeline mongo.Pipeline, results any) error {
	cursor, err := s.collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return WrapErr(err, collection)
	}

	if err := cursor.All(ctx, results); err != nil {
		return WrapErr(err, collection)
	}

	return nil
}

// UpdateOne applies update to the first document matching filter.
// Matching nothing is not an error; the update is simply a no-op.
func (s *Store) UpdateOne(ctx context.Context, collection string, filter, update any) error {
	if _, err := s.collection(collection).UpdateOne(ctx, filter, update); err != nil {
		return WrapErr(err, collection)
	}
	return nil
}

// # Error Bridging

// WrapErr inspects a driver error and wraps it into a meaningful
// [apperr.AppError], the store-side counterpart of the HTTP error mapping.
//
// A missing document is the only client-facing condition; every other
// driver failure (connectivity, server-side, decode) is operational and
// becomes [apperr.StoreUnavailable]. No retry happens at this layer.
func WrapErr(err error, resource string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound(resource)
	}

	return apperr.StoreUnavailable(err)
}
