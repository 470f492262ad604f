// Copyright (c) 2026 Noveria. All rights reserved.

// Package chapter manages the chapters attached to catalog books.
//
// Chapters reference their parent book by identifier string only — a weak
// reference with no enforced existence guarantee. Within a book they are
// ordered by chapter_number ascending.
package chapter

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// # Field Identifiers

const (
	FieldBookID        = "book_id"
	FieldTitle         = "title"
	FieldContent       = "content"
	FieldChapterNumber = "chapter_number"
)

// Chapter is a single installment of a book.
type Chapter struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	BookID string             `bson:"book_id" json:"book_id"`
	Title  string             `bson:"title" json:"title"`

	// Content is arbitrary-length markdown or plain text.
	Content string `bson:"content" json:"content"`

	// ChapterNumber is optional at creation; when omitted it is assigned
	// sequentially from the book's existing chapter count.
	ChapterNumber *int `bson:"chapter_number,omitempty" json:"chapter_number,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
