// Copyright (c) 2026 Noveria. All rights reserved.

package chapter

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/noveria/noveria/internal/platform/apperr"
	"github.com/noveria/noveria/internal/platform/validate"
	"github.com/noveria/noveria/pkg/objectid"
)

// BookToucher bumps a book's recency timestamp when its chapters change.
// Satisfied by the book repository; declared here to keep the dependency
// one-directional.
type BookToucher interface {
	Touch(ctx context.Context, id primitive.ObjectID, at time.Time) error
}

// # Service Layer

// Service orchestrates chapter creation and lookups, including the
// sequential auto-numbering rule.
type Service struct {
	repo   Repository
	books  BookToucher
	logger *slog.Logger
}

// NewService constructs a new [Service].
func NewService(repo Repository, books BookToucher, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		books:  books,
		logger: logger,
	}
}

// Create validates and persists a new chapter, returning its encoded
// identifier.
//
// # Auto-Numbering
//
// When the caller omits chapter_number it is computed as one plus the
// book's current chapter count, evaluated at creation time. Two concurrent
// unnumbered creations for the same book may compute the same number —
// a documented best-effort invariant, not a guarantee. Explicit numbers
// are stored as given with no uniqueness or contiguity check.
func (service *Service) Create(ctx context.Context, c *Chapter) (string, error) {

	// Business attribute validation
	validator := &validate.Validator{}
	validator.Required(FieldBookID, c.BookID)
	validator.Required(FieldTitle, c.Title)
	validator.Required(FieldContent, c.Content)
	validator.Custom(FieldChapterNumber, c.ChapterNumber != nil && *c.ChapterNumber < 1, "Must be positive")

	if err := validator.Err(); err != nil {
		return "", err
	}

	if c.ChapterNumber == nil {
		count, err := service.repo.CountByBook(ctx, c.BookID)
		if err != nil {
			return "", err
		}

		number := int(count) + 1
		c.ChapterNumber = &number
	}

	now := time.Now().UTC()
	c.CreatedAt = now

	id, err := service.repo.Insert(ctx, c)
	if err != nil {
		return "", err
	}

	// Best-effort recency bump on the parent book for trending. A dangling
	// or malformed book_id is tolerated: the reference is weak.
	if bookID, decodeErr := objectid.Decode(c.BookID); decodeErr == nil {
		if touchErr := service.books.Touch(ctx, bookID, now); touchErr != nil {
			service.logger.WarnContext(ctx, "book_touch_failed",
				slog.String("book_id", c.BookID),
				slog.Any("error", touchErr),
			)
		}
	}

	service.logger.InfoContext(ctx, "chapter_created",
		slog.String("chapter_id", objectid.Encode(id)),
		slog.String("book_id", c.BookID),
		slog.Int("chapter_number", *c.ChapterNumber),
	)

	return objectid.Encode(id), nil
}

// ListByBook returns a book's chapters in reading order.
func (service *Service) ListByBook(ctx context.Context, bookID string) ([]*Chapter, error) {
	return service.repo.ListByBook(ctx, bookID)
}

// Get fetches a single chapter by its encoded identifier string.
func (service *Service) Get(ctx context.Context, id string) (*Chapter, error) {
	nativeID, err := objectid.Decode(id)
	if err != nil {
		return nil, apperr.InvalidID(err)
	}

	return service.repo.FindByID(ctx, nativeID)
}
