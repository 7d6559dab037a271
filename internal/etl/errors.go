package etl

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned when the input file does not exist.
	ErrFileNotFound = errors.New("input file not found")
	// ErrMalformedRow marks a line whose field count does not match the schema.
	ErrMalformedRow = errors.New("malformed row")
	// ErrEmptyKey is returned when a card has no FINESS number to be stored under.
	ErrEmptyKey = errors.New("empty document key")
)

// PublishError reports a store write rejected by the backend.
type PublishError struct {
	Key    string
	Status int
	Body   string
}

func (e *PublishError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("store returned status %d: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("store returned status %d for %s: %s", e.Status, e.Key, e.Body)
}
