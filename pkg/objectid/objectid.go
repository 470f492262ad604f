// Copyright (c) 2026 Noveria. All rights reserved.

/*
Package objectid is the codec between client-facing identifier strings and
the document store's native ObjectID type.

Every identifier that crosses the API boundary is a 24-character lowercase
hex string; every identifier used as a store lookup key is a native 12-byte
ObjectID. This package is the only place where the two representations meet —
native IDs never leak to clients, and client strings never reach the store
unvalidated.
*/
package objectid

import (
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned by [Decode] for any string that is not a
// well-formed identifier. Callers surface it as a client error.
var ErrInvalidID = errors.New("objectid: must be a 24-character lowercase hex string")

// hexRegex matches the canonical encoded form. The driver's own parser also
// accepts uppercase hex, which would break the Decode/Encode round-trip, so
// the format is pinned here instead.
var hexRegex = regexp.MustCompile(`^[0-9a-f]{24}$`)

// Decode parses an identifier string into a native ObjectID.
func Decode(s string) (primitive.ObjectID, error) {
	if !hexRegex.MatchString(s) {
		return primitive.NilObjectID, ErrInvalidID
	}

	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}

	return id, nil
}

// Encode renders a native ObjectID in its canonical string form.
// It is the exact inverse of [Decode] and never fails.
func Encode(id primitive.ObjectID) string {
	return id.Hex()
}

// IsValid reports whether s is a well-formed identifier string.
func IsValid(s string) bool {
	return hexRegex.MatchString(s)
}
