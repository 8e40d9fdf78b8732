package store

import "github.com/google/uuid"

// NewID returns an opaque unique identifier for a new entity.
func NewID() string {
	return uuid.NewString()
}
