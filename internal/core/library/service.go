// Copyright (c) 2026 Noveria. All rights reserved.

package library

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/noveria/noveria/internal/core/book"
	"github.com/noveria/noveria/internal/platform/apperr"
	"github.com/noveria/noveria/internal/platform/validate"
	"github.com/noveria/noveria/pkg/objectid"
)

// BookFinder is the batched book lookup the assembler depends on.
// Satisfied by the book repository; declared here to keep the dependency
// surface minimal.
type BookFinder interface {
	FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*book.Book, error)
}

// # Service Layer

// Service orchestrates saving books and assembling the user's library.
type Service struct {
	repo   Repository
	books  BookFinder
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, books BookFinder, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		books:  books,
		logger: logger,
	}
}

// Add saves a book to a user's library and returns the item's encoded
// identifier.
//
// Adding an already-saved pair returns the existing item's identifier, so
// sequential duplicate calls are idempotent. The lookup-before-insert is a
// check-then-act race: two concurrent calls for the same pair may both
// insert. Accepted and documented — fixing it requires a store-level
// unique index, which would change the original semantics.
func (service *Service) Add(ctx context.Context, userID, bookID string) (string, error) {

	// Business attribute validation
	validator := &validate.Validator{}
	validator.Required(FieldUserID, userID)
	validator.Required(FieldBookID, bookID)

	if err := validator.Err(); err != nil {
		return "", err
	}

	existing, err := service.repo.FindByUserAndBook(ctx, userID, bookID)
	if err == nil {
		return objectid.Encode(existing.ID), nil
	}
	if !apperr.IsNotFound(err) {
		return "", err
	}

	item := &Item{
		UserID:    userID,
		BookID:    bookID,
		CreatedAt: time.Now().UTC(),
	}

	id, err := service.repo.Insert(ctx, item)
	if err != nil {
		return "", err
	}

	service.logger.InfoContext(ctx, "library_item_added",
		slog.String("user_id", userID),
		slog.String("book_id", bookID),
	)

	return objectid.Encode(id), nil
}

// GetLibrary assembles a user's saved books, preserving save order.
//
// # Algorithm
//
//  1. Fetch the user's items in save order — the central invariant.
//  2. Decode each item's book reference; malformed references are
//     silently skipped, not errors.
//  3. Fetch all referenced books in one batched lookup (no N+1 queries).
//  4. Re-associate books to the original item order; a decoded reference
//     with no matching book (e.g. a book since deleted) is silently
//     dropped from the output, not reported as a gap.
//
// A user with zero saved items gets an empty sequence, never an error.
func (service *Service) GetLibrary(ctx context.Context, userID string) ([]*book.Book, error) {
	items, err := service.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Decode references, keeping save order.
	orderedIDs := make([]primitive.ObjectID, 0, len(items))
	for _, item := range items {
		id, decodeErr := objectid.Decode(item.BookID)
		if decodeErr != nil {
			service.logger.WarnContext(ctx, "library_item_invalid_book_id",
				slog.String("user_id", userID),
				slog.String("book_id", item.BookID),
			)
			continue
		}
		orderedIDs = append(orderedIDs, id)
	}

	if len(orderedIDs) == 0 {
		return []*book.Book{}, nil
	}

	fetched, err := service.books.FindByIDs(ctx, orderedIDs)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]*book.Book, len(fetched))
	for _, b := range fetched {
		byID[b.ID] = b
	}

	books := make([]*book.Book, 0, len(orderedIDs))
	for _, id := range orderedIDs {
		if b, found := byID[id]; found {
			books = append(books, b)
		}
	}

	return books, nil
}
