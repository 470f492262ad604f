// Copyright (c) 2026 Noveria. All rights reserved.

package comment_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/noveria/noveria/internal/core/comment"
	"github.com/noveria/noveria/internal/platform/apperr"
	"github.com/noveria/noveria/pkg/objectid"
)

// fakeRepository is an in-memory Repository double.
type fakeRepository struct {
	inserted []*comment.Comment
}

func (f *fakeRepository) Insert(_ context.Context, c *comment.Comment) (primitive.ObjectID, error) {
	c.ID = primitive.NewObjectID()
	f.inserted = append(f.inserted, c)
	return c.ID, nil
}

func (f *fakeRepository) ListByBook(_ context.Context, bookID string) ([]*comment.Comment, error) {
	matched := make([]*comment.Comment, 0)
	for _, c := range f.inserted {
		if c.BookID == bookID {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

/*
TestService_Create verifies a valid comment is stamped and persisted, and
the returned identifier round-trips.
*/
func TestService_Create(t *testing.T) {
	repo := &fakeRepository{}
	service := comment.NewService(repo, slog.Default())

	id, err := service.Create(context.Background(), &comment.Comment{
		BookID:   objectid.Encode(primitive.NewObjectID()),
		UserName: "reader01",
		Content:  "Loved the pacing in this one.",
	})

	require.NoError(t, err)
	assert.True(t, objectid.IsValid(id))
	require.Len(t, repo.inserted, 1)
	assert.False(t, repo.inserted[0].CreatedAt.IsZero())
}

/*
TestService_Create_Validation covers rejection of incomplete and oversized
comments.
*/
func TestService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *comment.Comment
		field string
	}{
		{"missing_book_id", &comment.Comment{UserName: "u", Content: "c"}, "book_id"},
		{"missing_user_name", &comment.Comment{BookID: "x", Content: "c"}, "user_name"},
		{"missing_content", &comment.Comment{BookID: "x", UserName: "u"}, "content"},
		{"oversized_content", &comment.Comment{BookID: "x", UserName: "u", Content: strings.Repeat("a", 5001)}, "content"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepository{}
			service := comment.NewService(repo, slog.Default())

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
