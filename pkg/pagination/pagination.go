// Copyright (c) 2026 Noveria. All rights reserved.

// Package pagination provides the shared result-count cap for API list endpoints.
//
// # Overview
//
// Noveria deliberately has no page/offset navigation — list endpoints accept
// a single "limit" query parameter bounded to [1, MaxLimit]. This package
// standardizes how that cap is parsed and clamped before it reaches the
// catalog layer.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the number of items returned if no limit is specified.
	DefaultLimit = 50
	// MaxLimit is the hard upper bound for items per response to prevent system abuse.
	MaxLimit = 100
)

// LimitFromRequest parses the "limit" query parameter from an HTTP request.
//
// # Clamping
//
// Invalid, missing, non-positive, or excessive values fall back to the
// endpoint-specific fallback (itself clamped to [1, MaxLimit]).
func LimitFromRequest(r *http.Request, fallback int) int {
	fallback = Clamp(fallback)

	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return fallback
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > MaxLimit {
		return fallback
	}

	return n
}

// Clamp forces limit into the [1, MaxLimit] range, substituting
// [DefaultLimit] for non-positive values.
func Clamp(limit int) int {
	if limit < 1 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}
