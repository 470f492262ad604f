// Copyright (c) 2026 Noveria. All rights reserved.

package discover

import (
	"context"

	"github.com/noveria/noveria/internal/core/book"
)

// Repository is the data-access contract for the trending aggregation.
type Repository interface {
	// Trending returns up to limit books ranked by attached chapter count
	// descending, ties broken by most recent updated_at. Books with zero
	// chapters rank with count 0 — they are not excluded.
	Trending(ctx context.Context, limit int) ([]*book.Book, error)
}
