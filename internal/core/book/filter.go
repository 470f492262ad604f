// Copyright (c) 2026 Noveria. All rights reserved.

package book

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
)

// Filter holds the optional discovery criteria for book listings.
//
// All present fields are conjunctive (AND); absent fields contribute no
// constraint, so the zero Filter matches every document.
type Filter struct {
	// Query is a case-insensitive substring match against the title.
	Query string

	// Tag must be an exact element of the book's tags set.
	Tag string

	// Category must be an exact element of the book's categories set.
	Category string

	// Genre is an exact equality match.
	Genre string
}

// Document renders the filter as a store filter expression.
//
// It is pure — no I/O — so filter construction is testable without a store.
// The title query is escaped with [regexp.QuoteMeta]: callers get substring
// semantics, never a user-supplied pattern.
func (f Filter) Document() bson.M {
	filter := bson.M{}

	if f.Query != "" {
		filter["title"] = bson.M{
			"$regex":   regexp.QuoteMeta(f.Query),
			"$options": "i",
		}
	}

	// Matching a scalar against an array field tests set membership, so a
	// plain equality here means "tags contains exactly this value".
	if f.Tag != "" {
		filter["tags"] = f.Tag
	}

	if f.Category != "" {
		filter["categories"] = f.Category
	}

	if f.Genre != "" {
		filter["genre"] = f.Genre
	}

	return filter
}
