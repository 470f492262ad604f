// Copyright (c) 2026 Noveria. All rights reserved.

package objectid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/noveria/noveria/pkg/objectid"
)

/*
TestDecode_Encode_RoundTrip verifies that Decode followed by Encode is the
identity function for every well-formed identifier string.
*/
func TestDecode_Encode_RoundTrip(t *testing.T) {
	inputs := []string{
		"5f1d7f3e2c9a4b0012345678",
		"000000000000000000000000",
		"ffffffffffffffffffffffff",
		"65a1b2c3d4e5f60718293a4b",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			decoded, err := objectid.Decode(input)
			require.NoError(t, err)
			assert.Equal(t, input, objectid.Encode(decoded))
		})
	}
}

/*
TestDecode_Generated verifies that freshly generated native IDs survive the
Encode/Decode round-trip unchanged.
*/
func TestDecode_Generated(t *testing.T) {
	native := primitive.NewObjectID()

	decoded, err := objectid.Decode(objectid.Encode(native))
	require.NoError(t, err)
	assert.Equal(t, native, decoded)
}

/*
TestDecode_Invalid verifies that every malformed string fails with ErrInvalidID.
*/
func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too_short", "5f1d7f3e2c9a4b00123456"},
		{"too_long", "5f1d7f3e2c9a4b001234567890"},
		{"non_hex_chars", "5f1d7f3e2c9a4b001234567z"},
		{"uppercase_hex", "5F1D7F3E2C9A4B0012345678"},
		{"whitespace", " 5f1d7f3e2c9a4b0012345678"},
		{"arbitrary_text", "not-an-identifier"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := objectid.Decode(tt.input)
			assert.ErrorIs(t, err, objectid.ErrInvalidID)
			assert.False(t, objectid.IsValid(tt.input))
		})
	}
}
