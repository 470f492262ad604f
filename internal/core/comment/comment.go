// Copyright (c) 2026 Noveria. All rights reserved.

// Package comment manages reader comments attached to catalog books.
//
// Comments are append-only: no update or delete exists. Listings are
// ordered by creation time descending (newest first).
package comment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// # Field Identifiers

const (
	FieldBookID   = "book_id"
	FieldUserName = "user_name"
	FieldContent  = "content"
)

// Comment is a reader comment on a book. The book reference is weak and
// the commenter's name is an opaque caller-supplied string (no accounts).
type Comment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BookID    string             `bson:"book_id" json:"book_id"`
	UserName  string             `bson:"user_name" json:"user_name"`
	Content   string             `bson:"content" json:"content"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
