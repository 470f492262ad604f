// Copyright (c) 2026 Noveria. All rights reserved.

package book_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/noveria/noveria/internal/core/book"
)

/*
TestFilter_Document_Empty verifies the zero filter renders an empty match-all
document.
*/
func TestFilter_Document_Empty(t *testing.T) {
	doc := book.Filter{}.Document()
	assert.Empty(t, doc)
}

/*
TestFilter_Document_TitleQuery checks the title query becomes a
case-insensitive regex with metacharacters escaped.
*/
func TestFilter_Document_TitleQuery(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		expectedRegex string
	}{
		{"plain_text", "dragon", "dragon"},
		{"regex_metachars_escaped", "c++ (vol. 2)", `c\+\+ \(vol\. 2\)`},
		{"dot_escaped", "a.b", `a\.b`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := book.Filter{Query: tt.query}.Document()

			clause, ok := doc["title"].(bson.M)
			require.True(t, ok, "title clause must be a sub-document")
			assert.Equal(t, tt.expectedRegex, clause["$regex"])
			assert.Equal(t, "i", clause["$options"])
		})
	}
}

/*
TestFilter_Document_ExactMatches verifies tag, category, and genre render as
plain equality clauses.
*/
func TestFilter_Document_ExactMatches(t *testing.T) {
	doc := book.Filter{Tag: "isekai", Category: "fantasy", Genre: "action"}.Document()

	assert.Equal(t, "isekai", doc["tags"])
	assert.Equal(t, "fantasy", doc["categories"])
	assert.Equal(t, "action", doc["genre"])
}

/*
TestFilter_Document_Conjunctive verifies combining criteria yields one clause
per present field and nothing else.
*/
func TestFilter_Document_Conjunctive(t *testing.T) {
	doc := book.Filter{Query: "sword", Tag: "isekai"}.Document()

	assert.Len(t, doc, 2)
	assert.Contains(t, doc, "title")
	assert.Contains(t, doc, "tags")
	assert.NotContains(t, doc, "categories")
	assert.NotContains(t, doc, "genre")
}
