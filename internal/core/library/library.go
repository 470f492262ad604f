// Copyright (c) 2026 Noveria. All rights reserved.

/*
Package library manages per-user saved-book records and assembles the
user's library view.

Core Responsibility:

  - Save: idempotent "add book to library" keyed on (user_id, book_id).
  - Assemble: join saved items with book documents, preserving save order.

The (user_id, book_id) uniqueness is enforced by a lookup-before-insert,
not a store-level constraint, so it is best-effort under concurrency.
*/
package library

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// # Field Identifiers

const (
	FieldUserID = "user_id"
	FieldBookID = "book_id"
)

// Item records one user saving one book.
//
// The user is an opaque caller-supplied string (no accounts) and the book
// reference is weak. Save order is the insertion order of these records.
type Item struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	BookID    string             `bson:"book_id" json:"book_id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
