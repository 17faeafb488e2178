package domain

import "github.com/google/uuid"

// NewID returns a fresh entity id. The prefix keeps document dumps readable
// ("skill-", "sub-", "session-"); uniqueness comes from the UUID, so two
// creations within the same clock tick can never collide.
func NewID(prefix string) string {
	if prefix == "" {
		return uuid.NewString()
	}
	return prefix + "-" + uuid.NewString()
}
