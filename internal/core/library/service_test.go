// Copyright (c) 2026 Noveria. All rights reserved.

package library_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/noveria/noveria/internal/core/book"
	"github.com/noveria/noveria/internal/core/library"
	"github.com/noveria/noveria/internal/platform/apperr"
	"github.com/noveria/noveria/pkg/objectid"
)

// fakeRepository is an in-memory Repository double. Items are appended, so
// iteration order is save order.
type fakeRepository struct {
	items []*library.Item
}

func (f *fakeRepository) Insert(_ context.Context, item *library.Item) (primitive.ObjectID, error) {
	item.ID = primitive.NewObjectID()
	f.items = append(f.items, item)
	return item.ID, nil
}

func (f *fakeRepository) FindByUserAndBook(_ context.Context, userID, bookID string) (*library.Item, error) {
	for _, item := range f.items {
		if item.UserID == userID && item.BookID == bookID {
			return item, nil
		}
	}
	return nil, apperr.NotFound("library item")
}

func (f *fakeRepository) ListByUser(_ context.Context, userID string) ([]*library.Item, error) {
	matched := make([]*library.Item, 0)
	for _, item := range f.items {
		if item.UserID == userID {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// fakeBookFinder serves a fixed catalog, deliberately returning results in
// an order unrelated to the requested identifiers.
type fakeBookFinder struct {
	catalog map[primitive.ObjectID]*book.Book
}

func (f *fakeBookFinder) FindByIDs(_ context.Context, ids []primitive.ObjectID) ([]*book.Book, error) {
	found := make([]*book.Book, 0, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		if b, ok := f.catalog[ids[i]]; ok {
			found = append(found, b)
		}
	}
	return found, nil
}

func newCatalogBook(title string) *book.Book {
	return &book.Book{ID: primitive.NewObjectID(), Title: title}
}

/*
TestService_Add_Idempotent verifies saving the same pair twice returns the
same identifier and keeps a single record.
*/
func TestService_Add_Idempotent(t *testing.T) {
	repo := &fakeRepository{}
	service := library.NewService(repo, &fakeBookFinder{}, slog.Default())

	bookID := objectid.Encode(primitive.NewObjectID())

	first, err := service.Add(context.Background(), "user-1", bookID)
	require.NoError(t, err)

	second, err := service.Add(context.Background(), "user-1", bookID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, repo.items, 1)
}

/*
TestService_Add_DistinctPairs verifies distinct (user, book) pairs produce
distinct records.
*/
func TestService_Add_DistinctPairs(t *testing.T) {
	repo := &fakeRepository{}
	service := library.NewService(repo, &fakeBookFinder{}, slog.Default())

	bookID := objectid.Encode(primitive.NewObjectID())

	_, err := service.Add(context.Background(), "user-1", bookID)
	require.NoError(t, err)
	_, err = service.Add(context.Background(), "user-2", bookID)
	require.NoError(t, err)

	assert.Len(t, repo.items, 2)
}

/*
TestService_Add_Validation verifies blank identifiers are rejected before
any store access.
*/
func TestService_Add_Validation(t *testing.T) {
	repo := &fakeRepository{}
	service := library.NewService(repo, &fakeBookFinder{}, slog.Default())

	_, err := service.Add(context.Background(), "", "some-book")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Empty(t, repo.items)
}

/*
TestService_GetLibrary_PreservesSaveOrder verifies books come back in the
order their items were saved, regardless of the batched lookup's ordering.
*/
func TestService_GetLibrary_PreservesSaveOrder(t *testing.T) {
	bookA := newCatalogBook("Alpha")
	bookB := newCatalogBook("Beta")
	bookC := newCatalogBook("Gamma")

	repo := &fakeRepository{}
	finder := &fakeBookFinder{catalog: map[primitive.ObjectID]*book.Book{
		bookA.ID: bookA,
		bookB.ID: bookB,
		bookC.ID: bookC,
	}}
	service := library.NewService(repo, finder, slog.Default())

	for _, b := range []*book.Book{bookB, bookA, bookC} {
		_, err := service.Add(context.Background(), "user-1", objectid.Encode(b.ID))
		require.NoError(t, err)
	}

	books, err := service.GetLibrary(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, books, 3)
	assert.Equal(t, "Beta", books[0].Title)
	assert.Equal(t, "Alpha", books[1].Title)
	assert.Equal(t, "Gamma", books[2].Title)
}

/*
TestService_GetLibrary_DropsMissingBooks verifies a saved book that no
longer exists is omitted without leaving a gap or failing the request.
*/
func TestService_GetLibrary_DropsMissingBooks(t *testing.T) {
	bookA := newCatalogBook("Alpha")
	bookC := newCatalogBook("Gamma")
	deletedID := primitive.NewObjectID()

	repo := &fakeRepository{}
	finder := &fakeBookFinder{catalog: map[primitive.ObjectID]*book.Book{
		bookA.ID: bookA,
		bookC.ID: bookC,
	}}
	service := library.NewService(repo, finder, slog.Default())

	for _, id := range []primitive.ObjectID{bookA.ID, deletedID, bookC.ID} {
		_, err := service.Add(context.Background(), "user-1", objectid.Encode(id))
		require.NoError(t, err)
	}

	books, err := service.GetLibrary(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, books, 2)
	assert.Equal(t, "Alpha", books[0].Title)
	assert.Equal(t, "Gamma", books[1].Title)
}

/*
TestService_GetLibrary_SkipsMalformedReferences verifies an item holding an
undecodable book reference is skipped rather than failing the assembly.
*/
func TestService_GetLibrary_SkipsMalformedReferences(t *testing.T) {
	bookA := newCatalogBook("Alpha")

	repo := &fakeRepository{items: []*library.Item{
		{ID: primitive.NewObjectID(), UserID: "user-1", BookID: "corrupt!"},
		{ID: primitive.NewObjectID(), UserID: "user-1", BookID: objectid.Encode(bookA.ID)},
	}}
	finder := &fakeBookFinder{catalog: map[primitive.ObjectID]*book.Book{bookA.ID: bookA}}
	service := library.NewService(repo, finder, slog.Default())

	books, err := service.GetLibrary(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, books, 1)
	assert.Equal(t, "Alpha", books[0].Title)
}

/*
TestService_GetLibrary_EmptyLibrary verifies a user with nothing saved gets
an empty sequence, not an error and not nil.
*/
func TestService_GetLibrary_EmptyLibrary(t *testing.T) {
	service := library.NewService(&fakeRepository{}, &fakeBookFinder{}, slog.Default())

	books, err := service.GetLibrary(context.Background(), "user-without-items")

	require.NoError(t, err)
	require.NotNil(t, books)
	assert.Empty(t, books)
}
