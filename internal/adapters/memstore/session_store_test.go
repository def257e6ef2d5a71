package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"lotline-auction-service/internal/domain/shared"
)

// Tests the session lifecycle
func TestSessionStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	store := NewSessionStore(time.Hour)
	userID := uuid.New()

	token, err := store.Create(ctx, userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	t.Run("resolve_known_token", func(t *testing.T) {
		got, err := store.Resolve(ctx, token)
		require.NoError(t, err)
		require.Equal(t, userID, got)
	})

	t.Run("resolve_unknown_token", func(t *testing.T) {
		_, err := store.Resolve(ctx, "no-such-token")
		require.ErrorIs(t, err, shared.ErrSessionNotFound)
	})

	t.Run("tokens_are_unique", func(t *testing.T) {
		other, err := store.Create(ctx, userID)
		require.NoError(t, err)
		require.NotEqual(t, token, other)
	})

	t.Run("delete_ends_session", func(t *testing.T) {
		doomed, err := store.Create(ctx, userID)
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, doomed))

		_, err = store.Resolve(ctx, doomed)
		require.ErrorIs(t, err, shared.ErrSessionNotFound)
	})

	t.Run("deleting_twice_is_harmless", func(t *testing.T) {
		doomed, err := store.Create(ctx, userID)
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, doomed))
		require.NoError(t, store.Delete(ctx, doomed))
	})
}

// Expired sessions are dropped on lookup
func TestSessionStore_Expiry(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	store := NewSessionStore(time.Millisecond)
	token, err := store.Create(ctx, uuid.New())
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = store.Resolve(ctx, token)
	require.ErrorIs(t, err, shared.ErrSessionNotFound)

	// The lazy delete removed the record
	store.mu.RLock()
	_, stillThere := store.sessions[token]
	store.mu.RUnlock()
	require.False(t, stillThere)
}
