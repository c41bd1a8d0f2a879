package utils

import (
	"fmt"
	"net/url"
	"strconv"
)

// DefaultPageSize is used when a list request doesn't ask for a limit.
const DefaultPageSize = 20

// ParseLimit reads the "limit" query parameter. Absent means DefaultPageSize;
// present-but-not-a-positive-integer is an error the handler surfaces as 400.
func ParseLimit(query url.Values) (int, error) {
	raw := query.Get("limit")
	if raw == "" {
		return DefaultPageSize, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid limit %q", raw)
	}
	return limit, nil
}

// ParseID parses a decimal comment id from a path variable.
func ParseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}
