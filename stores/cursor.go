package stores

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Cursor pins a resume position in the ranked comment order. It carries the
// full sort key of the last row handed out, so the position stays well-defined
// even if that row is re-ranked or soft-deleted between page requests.
type Cursor struct {
	Popularity int64
	CreatedAt  time.Time
	ID         uint64
}

// Encode renders the cursor as an opaque base64url token.
func (c Cursor) Encode() string {
	raw := fmt.Sprintf("%d:%d:%d", c.Popularity, c.CreatedAt.UnixMicro(), c.ID)
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// DecodeCursor parses a token previously produced by Encode. Anything else is
// rejected as ErrInvalidArgument.
func DecodeCursor(token string) (Cursor, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: malformed cursor", ErrInvalidArgument)
	}
	parts := strings.Split(string(raw), ":")
	if len(parts) != 3 {
		return Cursor{}, fmt.Errorf("%w: malformed cursor", ErrInvalidArgument)
	}
	popularity, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: malformed cursor", ErrInvalidArgument)
	}
	micros, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: malformed cursor", ErrInvalidArgument)
	}
	id, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return Cursor{}, fmt.Errorf("%w: malformed cursor", ErrInvalidArgument)
	}
	return Cursor{
		Popularity: popularity,
		CreatedAt:  time.UnixMicro(micros).UTC(),
		ID:         id,
	}, nil
}
