// Copyright (c) 2026 Noveria. All rights reserved.

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noveria/noveria/pkg/pagination"
)

/*
TestLimitFromRequest verifies parsing and clamping of the limit parameter.
*/
func TestLimitFromRequest(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		fallback int
		want     int
	}{
		{"missing_uses_fallback", "/api/v1/books", 50, 50},
		{"explicit_valid", "/api/v1/books?limit=25", 50, 25},
		{"minimum", "/api/v1/books?limit=1", 50, 1},
		{"maximum", "/api/v1/books?limit=100", 50, 100},
		{"over_max_uses_fallback", "/api/v1/books?limit=101", 50, 50},
		{"zero_uses_fallback", "/api/v1/books?limit=0", 50, 50},
		{"negative_uses_fallback", "/api/v1/books?limit=-3", 50, 50},
		{"garbage_uses_fallback", "/api/v1/books?limit=abc", 12, 12},
		{"fallback_itself_clamped", "/api/v1/books", 500, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", tt.url, nil)
			assert.Equal(t, tt.want, pagination.LimitFromRequest(request, tt.fallback))
		})
	}
}

/*
TestClamp verifies the standalone clamp helper.
*/
func TestClamp(t *testing.T) {
	assert.Equal(t, pagination.DefaultLimit, pagination.Clamp(0))
	assert.Equal(t, pagination.DefaultLimit, pagination.Clamp(-1))
	assert.Equal(t, 1, pagination.Clamp(1))
	assert.Equal(t, 100, pagination.Clamp(100))
	assert.Equal(t, pagination.MaxLimit, pagination.Clamp(9999))
}
