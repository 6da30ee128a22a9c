package store

import "github.com/google/uuid"

// newID returns a fresh opaque identifier for a domain entity. Ids only need
// to be unique; callers never parse them.
func newID() string {
	return uuid.NewString()
}
