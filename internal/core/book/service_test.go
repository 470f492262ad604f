// Copyright (c) 2026 Noveria. All rights reserved.

package book_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/noveria/noveria/internal/core/book"
	"github.com/noveria/noveria/internal/platform/apperr"
	"github.com/noveria/noveria/pkg/objectid"
)

// fakeRepository is an in-memory Repository double.
type fakeRepository struct {
	inserted []*book.Book
	byID     map[primitive.ObjectID]*book.Book
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: make(map[primitive.ObjectID]*book.Book)}
}

func (f *fakeRepository) Insert(_ context.Context, b *book.Book) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	b.ID = id
	f.inserted = append(f.inserted, b)
	f.byID[id] = b
	return id, nil
}

func (f *fakeRepository) List(_ context.Context, _ book.Filter, _ int) ([]*book.Book, error) {
	return f.inserted, nil
}

func (f *fakeRepository) FindByID(_ context.Context, id primitive.ObjectID) (*book.Book, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, apperr.NotFound("book")
	}
	return b, nil
}

func (f *fakeRepository) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]*book.Book, error) {
	found := make([]*book.Book, 0, len(ids))
	for _, id := range ids {
		if b, ok := f.byID[id]; ok {
			found = append(found, b)
		}
	}
	return found, nil
}

func (f *fakeRepository) Touch(_ context.Context, id primitive.ObjectID, at time.Time) error {
	if b, ok := f.byID[id]; ok {
		b.UpdatedAt = at
	}
	return nil
}

func newTestService(repo book.Repository) *book.Service {
	return book.NewService(repo, slog.Default())
}

/*
TestService_Create_Defaults verifies omitted status defaults to ongoing and
that timestamps and empty sets are populated.
*/
func TestService_Create_Defaults(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	id, err := service.Create(context.Background(), &book.Book{
		Title:      "The Silent Garden",
		AuthorName: "M. Aoki",
	})

	require.NoError(t, err)
	assert.True(t, objectid.IsValid(id))

	require.Len(t, repo.inserted, 1)
	stored := repo.inserted[0]
	assert.Equal(t, book.StatusOngoing, stored.Status)
	assert.NotNil(t, stored.Tags)
	assert.NotNil(t, stored.Categories)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, stored.CreatedAt, stored.UpdatedAt)
}

/*
TestService_Create_Validation covers the rejection paths for missing and
malformed attributes.
*/
func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *book.Book
		field string
	}{
		{"missing_title", &book.Book{AuthorName: "A. Writer"}, "title"},
		{"missing_author", &book.Book{Title: "Untitled"}, "author_name"},
		{"unknown_status", &book.Book{Title: "T", AuthorName: "A", Status: "cancelled"}, "status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			service := newTestService(repo)

			_, err := service.Create(context.Background(), tt.input)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			require.NotEmpty(t, ae.Details)
			assert.Equal(t, tt.field, ae.Details[0].Field)
			assert.Empty(t, repo.inserted)
		})
	}
}

/*
TestService_Get_IDDecoding verifies the identifier boundary: malformed
identifiers are INVALID_ID, well-formed but absent ones are NOT_FOUND.
*/
func TestService_Get_IDDecoding(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	_, err := service.Get(context.Background(), "not-a-hex-id")
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "INVALID_ID", ae.Code)

	_, err = service.Get(context.Background(), objectid.Encode(primitive.NewObjectID()))
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestService_Get_RoundTrip verifies a created book is retrievable by the
identifier Create returned.
*/
func TestService_Get_RoundTrip(t *testing.T) {
	repo := newFakeRepository()
	service := newTestService(repo)

	id, err := service.Create(context.Background(), &book.Book{
		Title:      "River of Ink",
		AuthorName: "J. Ferreira",
		Status:     book.StatusCompleted,
	})
	require.NoError(t, err)

	found, err := service.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "River of Ink", found.Title)
	assert.Equal(t, id, objectid.Encode(found.ID))
}
