// Copyright (c) 2026 Noveria. All rights reserved.

package book

import (
	"context"
	"log/slog"
	"time"

	"github.com/noveria/noveria/internal/platform/apperr"
	"github.com/noveria/noveria/internal/platform/validate"
	"github.com/noveria/noveria/pkg/objectid"
)

// # Service Layer

// Service orchestrates the business logic for the book catalog.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its required repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Book Lookups

// List retrieves a filtered collection of books, capped at limit.
//
// The [1,100] bound on limit is enforced by the transport layer before
// this call; the value is passed through to the store as-is.
func (service *Service) List(ctx context.Context, filter Filter, limit int) ([]*Book, error) {
	return service.repo.List(ctx, filter, limit)
}

// Get fetches a single book by its encoded identifier string.
//
// A malformed identifier is a client error (INVALID_ID), distinct from a
// well-formed identifier with no matching document (NOT_FOUND).
func (service *Service) Get(ctx context.Context, id string) (*Book, error) {
	nativeID, err := objectid.Decode(id)
	if err != nil {
		return nil, apperr.InvalidID(err)
	}

	return service.repo.FindByID(ctx, nativeID)
}

// # Book Management

// Create validates and persists a new book, returning its encoded identifier.
func (service *Service) Create(ctx context.Context, b *Book) (string, error) {

	// Status defaults to ongoing when the caller omits it.
	if b.Status == "" {
		b.Status = StatusOngoing
	}

	// Business attribute validation
	validator := &validate.Validator{}
	validator.Required(FieldTitle, b.Title).MaxLen(FieldTitle, b.Title, 500)
	validator.Required(FieldAuthorName, b.AuthorName)
	validator.Custom(FieldStatus, !b.Status.IsValid(), "Must be one of: ongoing, completed, hiatus")

	if err := validator.Err(); err != nil {
		return "", err
	}

	// Tag/category sets default to empty, never null.
	if b.Tags == nil {
		b.Tags = []string{}
	}
	if b.Categories == nil {
		b.Categories = []string{}
	}

	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	id, err := service.repo.Insert(ctx, b)
	if err != nil {
		return "", err
	}

	service.logger.InfoContext(ctx, "book_created", slog.String("book_id", objectid.Encode(id)))

	return objectid.Encode(id), nil
}
