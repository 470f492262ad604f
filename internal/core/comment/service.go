// Copyright (c) 2026 Noveria. All rights reserved.

package comment

import (
	"context"
	"log/slog"
	"time"

	"github.com/noveria/noveria/internal/platform/validate"
	"github.com/noveria/noveria/pkg/objectid"
)

// # Service Layer

// Service orchestrates comment creation and listing.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Create validates and persists a new comment, returning its encoded identifier.
func (service *Service) Create(ctx context.Context, c *Comment) (string, error) {

	// Business attribute validation
	validator := &validate.Validator{}
	validator.Required(FieldBookID, c.BookID)
	validator.Required(FieldUserName, c.UserName)
	validator.Required(FieldContent, c.Content).MaxLen(FieldContent, c.Content, 5000)

	if err := validator.Err(); err != nil {
		return "", err
	}

	c.CreatedAt = time.Now().UTC()

	id, err := service.repo.Insert(ctx, c)
	if err != nil {
		return "", err
	}

	return objectid.Encode(id), nil
}

// ListByBook returns a book's comments, newest first.
func (service *Service) ListByBook(ctx context.Context, bookID string) ([]*Comment, error) {
	return service.repo.ListByBook(ctx, bookID)
}
