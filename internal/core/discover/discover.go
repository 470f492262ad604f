// Copyright (c) 2026 Noveria. All rights reserved.

/*
Package discover provides the catalog's discovery surface: the trending
ranking and tag/category browsing.

Trending ranks every book by the number of chapters attached to it, with
recency (updated_at) as the tie-break. It is a full-collection aggregation
with no incremental index — fine at the platform's current scale, and a
documented limit beyond it.
*/
package discover

// Default result caps for the discovery endpoints.
const (
	// DefaultTrendingLimit is the trending list size when unspecified.
	DefaultTrendingLimit = 12

	// DefaultBrowseLimit is the tag/category browse size when unspecified.
	DefaultBrowseLimit = 24
)
