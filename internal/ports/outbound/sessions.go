package outbound

import (
	"context"

	"github.com/google/uuid"
)

// SessionStore defines the interface for login session persistence
type SessionStore interface {
	// Create opens a session for the user and returns its opaque token
	Create(ctx context.Context, userID uuid.UUID) (string, error)

	// Resolve maps a token back to the user it was issued for. Returns
	// shared.ErrSessionNotFound for unknown or expired tokens.
	Resolve(ctx context.Context, token string) (uuid.UUID, error)

	// Delete ends the session identified by token
	Delete(ctx context.Context, token string) error
}
