package memstore

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
	"time"

	"lotline-auction-service/internal/domain/shared"

	"github.com/google/uuid"
)

// SessionStore is a concurrency-safe in-memory session store
type SessionStore struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]sessionRecord // key: token -> value: record
}

type sessionRecord struct {
	userID    uuid.UUID
	expiresAt time.Time
}

// NewSessionStore creates a session store with the given lifetime
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]sessionRecord),
	}
}

// Create opens a session for the user and returns its opaque token
func (s *SessionStore) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	token := hex.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[token] = sessionRecord{
		userID:    userID,
		expiresAt: time.Now().Add(s.ttl),
	}
	return token, nil
}

// Resolve maps a token back to the user it was issued for. Expired
// sessions are dropped lazily on lookup.
func (s *SessionStore) Resolve(ctx context.Context, token string) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.sessions[token]
	if !ok {
		return uuid.Nil, shared.ErrSessionNotFound
	}

	if time.Now().After(record.expiresAt) {
		delete(s.sessions, token)
		return uuid.Nil, shared.ErrSessionNotFound
	}

	return record.userID, nil
}

// Delete ends the session identified by token
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
	return nil
}
