// Package pathutil provides helpers for working with URL paths:
// ID extraction for prefix-routed handlers and path normalization
// for low-cardinality metric labels.
package pathutil

import (
	"errors"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is invalid.
var ErrInvalidID = errors.New("invalid id")

// maxIDLength bounds the accepted ID length. Generated IDs are UUIDs
// (36 characters); anything much longer is garbage input.
const maxIDLength = 64

// ExtractID extracts an opaque string ID from a URL path.
// It removes the specified prefix and validates the remainder: the ID must be
// non-empty, contain no further path separators, and stay within maxIDLength.
//
// Example:
//
//	id, err := ExtractID("/articles/0b3c6a42-...", "/articles/")
func ExtractID(path, prefix string) (string, error) {
	id := strings.TrimPrefix(path, prefix)
	if id == "" || len(id) > maxIDLength || strings.Contains(id, "/") {
		return "", ErrInvalidID
	}
	return id, nil
}
