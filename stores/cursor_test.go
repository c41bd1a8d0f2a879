package stores

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	original := Cursor{
		Popularity: 42,
		CreatedAt:  time.Date(2025, 7, 1, 10, 30, 0, 500000000, time.UTC),
		ID:         9001,
	}

	decoded, err := DecodeCursor(original.Encode())
	require.NoError(t, err)

	assert.Equal(t, original.Popularity, decoded.Popularity)
	assert.Equal(t, original.ID, decoded.ID)
	assert.True(t, original.CreatedAt.Equal(decoded.CreatedAt), "created_at should survive the round trip")
}

func TestCursorRoundTripZeroValues(t *testing.T) {
	original := Cursor{Popularity: 0, CreatedAt: time.Unix(0, 0).UTC(), ID: 1}

	decoded, err := DecodeCursor(original.Encode())
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodeCursorRejectsMalformedTokens(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"not base64", "!!!not-base64!!!"},
		{"wrong part count", encode("1:2")},
		{"too many parts", encode("1:2:3:4")},
		{"non-numeric popularity", encode("x:2:3")},
		{"non-numeric timestamp", encode("1:x:3")},
		{"non-numeric id", encode("1:2:x")},
		{"negative id", encode("1:2:-3")},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCursor(tt.token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument), "expected ErrInvalidArgument, got %v", err)
		})
	}
}

func encode(raw string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}
