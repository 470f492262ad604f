// Copyright (c) 2026 Noveria. All rights reserved.

/*
Package book defines the core domain entities for the Noveria catalog.

It manages the lifecycle of shared novels: metadata, discovery attributes
(tags, categories, genre), and publication status.

Core Responsibility:

  - Catalog: Defines publication statuses (Ongoing, Completed, Hiatus).
  - Discovery: Title search and tag/category/genre filtering.
  - Boundary: Documents leave this package with string-encoded identifiers.

This package acts as the source of truth for all book-related data models.
*/
package book

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// # Domain Enums

// Status represents the publication status of a book.
type Status string

const (
	// StatusOngoing indicates the book is actively updating.
	StatusOngoing Status = "ongoing"

	// StatusCompleted indicates no further chapters are expected.
	StatusCompleted Status = "completed"

	// StatusHiatus indicates the book is paused indefinitely.
	StatusHiatus Status = "hiatus"
)

// IsValid reports whether s is a recognised [Status] value.
func (s Status) IsValid() bool {
	switch s {
	case StatusOngoing, StatusCompleted, StatusHiatus:
		return true
	}
	return false
}

// # Field Identifiers

const (
	FieldTitle      = "title"
	FieldAuthorName = "author_name"
	FieldStatus     = "status"
)

// # Entities

// Book is a shared novel in the catalog.
//
// Documents are schemaless in the store; this struct is the validated,
// typed shape they must conform to at the boundary. The ID marshals to its
// 24-character hex string in JSON, so the native form never reaches clients.
type Book struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	AuthorName  string             `bson:"author_name" json:"author_name"`
	CoverURL    string             `bson:"cover_url,omitempty" json:"cover_url,omitempty"`
	Tags        []string           `bson:"tags" json:"tags"`
	Categories  []string           `bson:"categories" json:"categories"`
	Genre       string             `bson:"genre,omitempty" json:"genre,omitempty"`
	Status      Status             `bson:"status" json:"status"`

	// CreatedAt is set once at insertion.
	CreatedAt time.Time `bson:"created_at" json:"created_at"`

	// UpdatedAt is bumped whenever the book or one of its chapters changes.
	// The trending ranking uses it as the recency tie-break.
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
