package auth

import "github.com/google/uuid"

// NewSessionID mints the opaque token that is persisted on the user row and
// handed back in the sessionId cookie. It carries no claims; the database
// row it matches is the whole proof.
func NewSessionID() string {
	return uuid.NewString()
}
