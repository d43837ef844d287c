package models

import "github.com/google/uuid"

// NewID returns a generator-assigned entity id with a type prefix, used
// when the caller does not supply one. Id uniqueness is the store's
// enforcement point; prefixed UUIDs keep generated ids unambiguous.
func NewID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
