// Copyright (c) 2026 Noveria. All rights reserved.

package discover_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noveria/noveria/internal/core/book"
	"github.com/noveria/noveria/internal/core/discover"
	"github.com/noveria/noveria/internal/platform/apperr"
)

// fakeRepository records the limit the ranking was asked for.
type fakeRepository struct {
	requestedLimit int
}

func (f *fakeRepository) Trending(_ context.Context, limit int) ([]*book.Book, error) {
	f.requestedLimit = limit
	return []*book.Book{}, nil
}

// fakeLister records the filter the browse call produced.
type fakeLister struct {
	filter book.Filter
	limit  int
}

func (f *fakeLister) List(_ context.Context, filter book.Filter, limit int) ([]*book.Book, error) {
	f.filter = filter
	f.limit = limit
	return []*book.Book{}, nil
}

/*
TestService_Trending_LimitDefaulting verifies non-positive limits fall back
to the default while explicit limits pass through.
*/
func TestService_Trending_LimitDefaulting(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{"zero_uses_default", 0, discover.DefaultTrendingLimit},
		{"negative_uses_default", -3, discover.DefaultTrendingLimit},
		{"explicit_passes_through", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			service := discover.NewService(repo, &fakeLister{}, slog.Default())

			_, err := service.Trending(context.Background(), tt.limit)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, repo.requestedLimit)
		})
	}
}

/*
TestService_BrowseByTag verifies the tag browse delegates to the catalog
with an exact-tag filter, and rejects a blank tag.
*/
func TestService_BrowseByTag(t *testing.T) {
	lister := &fakeLister{}
	service := discover.NewService(&fakeRepository{}, lister, slog.Default())

	_, err := service.BrowseByTag(context.Background(), "isekai", 24)
	require.NoError(t, err)
	assert.Equal(t, book.Filter{Tag: "isekai"}, lister.filter)
	assert.Equal(t, 24, lister.limit)

	_, err = service.BrowseByTag(context.Background(), "", 24)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}

/*
TestService_BrowseByCategory verifies the category browse delegates with an
exact-category filter, and rejects a blank category.
*/
func TestService_BrowseByCategory(t *testing.T) {
	lister := &fakeLister{}
	service := discover.NewService(&fakeRepository{}, lister, slog.Default())

	_, err := service.BrowseByCategory(context.Background(), "fantasy", 24)
	require.NoError(t, err)
	assert.Equal(t, book.Filter{Category: "fantasy"}, lister.filter)

	_, err = service.BrowseByCategory(context.Background(), "", 24)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}
