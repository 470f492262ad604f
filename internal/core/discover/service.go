// Copyright (c) 2026 Noveria. All rights reserved.

package discover

import (
	"context"
	"log/slog"

	"github.com/noveria/noveria/internal/core/book"
	"github.com/noveria/noveria/internal/platform/validate"
)

// BookLister is the filtered catalog listing the browse endpoints reuse.
// Satisfied by the book service.
type BookLister interface {
	List(ctx context.Context, filter book.Filter, limit int) ([]*book.Book, error)
}

// # Service Layer

// Service orchestrates the discovery queries.
type Service struct {
	repo   Repository
	books  BookLister
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, books BookLister, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		books:  books,
		logger: logger,
	}
}

// Trending returns the ranked discovery list, capped at limit.
func (service *Service) Trending(ctx context.Context, limit int) ([]*book.Book, error) {
	if limit < 1 {
		limit = DefaultTrendingLimit
	}

	return service.repo.Trending(ctx, limit)
}

// BrowseByTag lists books carrying an exact tag.
func (service *Service) BrowseByTag(ctx context.Context, tag string, limit int) ([]*book.Book, error) {
	validator := &validate.Validator{}
	if err := validator.Required("tag", tag).Err(); err != nil {
		return nil, err
	}

	return service.books.List(ctx, book.Filter{Tag: tag}, limit)
}

// BrowseByCategory lists books carrying an exact category.
func (service *Service) BrowseByCategory(ctx context.Context, category string, limit int) ([]*book.Book, error) {
	validator := &validate.Validator{}
	if err := validator.Required("category", category).Err(); err != nil {
		return nil, err
	}

	return service.books.List(ctx, book.Filter{Category: category}, limit)
}
