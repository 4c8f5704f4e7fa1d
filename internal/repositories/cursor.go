package repositories

import (
	"encoding/base64"
	"errors"
)

var ErrInvalidCursor = errors.New("invalid page cursor")

// EncodeCursor wraps the last seen primary key so callers treat it as opaque.
func EncodeCursor(lastID string) string {
	if lastID == "" {
		return ""
	}
	return base64.RawURLEncoding.EncodeToString([]byte(lastID))
}

func DecodeCursor(cursor string) (string, error) {
	if cursor == "" {
		return "", nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil || len(raw) == 0 {
		return "", ErrInvalidCursor
	}
	return string(raw), nil
}
