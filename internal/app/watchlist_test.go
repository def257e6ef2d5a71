package app

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"lotline-auction-service/internal/domain/shared"
)

// Tests Watch and Unwatch
func TestWatchlistService_WatchUnwatch(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.seedUser(t, "owner")
	watcher := env.seedUser(t, "watcher")
	l := env.seedListing(t, owner.ID, "10.00")

	t.Run("cannot_watch_a_missing_listing", func(t *testing.T) {
		err := env.watchlist.Watch(ctx, watcher.ID, uuid.New())
		require.ErrorIs(t, err, shared.ErrListingNotFound)
	})

	t.Run("watch_then_unwatch", func(t *testing.T) {
		require.NoError(t, env.watchlist.Watch(ctx, watcher.ID, l.ID))

		watched, err := env.repos.Watchlist.IsWatched(ctx, watcher.ID, l.ID)
		require.NoError(t, err)
		require.True(t, watched)

		require.NoError(t, env.watchlist.Unwatch(ctx, watcher.ID, l.ID))

		watched, err = env.repos.Watchlist.IsWatched(ctx, watcher.ID, l.ID)
		require.NoError(t, err)
		require.False(t, watched)
	})

	t.Run("watching_twice_reports_already_watched", func(t *testing.T) {
		require.NoError(t, env.watchlist.Watch(ctx, watcher.ID, l.ID))
		require.ErrorIs(t, env.watchlist.Watch(ctx, watcher.ID, l.ID), shared.ErrAlreadyWatched)
	})

	t.Run("unwatching_an_unwatched_listing", func(t *testing.T) {
		other := env.seedListing(t, owner.ID, "10.00")
		require.ErrorIs(t, env.watchlist.Unwatch(ctx, watcher.ID, other.ID), shared.ErrNotWatched)
	})
}

// Tests Watchlist summaries
func TestWatchlistService_Watchlist(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.seedUser(t, "owner")
	watcher := env.seedUser(t, "watcher")
	bidder := env.seedUser(t, "bidder")

	quiet := env.seedListing(t, owner.ID, "25.00")
	busy := env.seedListing(t, owner.ID, "10.00")
	env.placeBid(t, busy.ID, bidder.ID, "18.00")

	require.NoError(t, env.watchlist.Watch(ctx, watcher.ID, quiet.ID))
	require.NoError(t, env.watchlist.Watch(ctx, watcher.ID, busy.ID))

	summaries, err := env.watchlist.Watchlist(ctx, watcher.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	prices := make(map[uuid.UUID]string)
	for _, s := range summaries {
		prices[s.Listing.ID] = s.CurrentPrice.StringFixed(2)
	}
	require.Equal(t, "25.00", prices[quiet.ID])
	require.Equal(t, "18.00", prices[busy.ID])

	t.Run("empty_watchlist", func(t *testing.T) {
		empty, err := env.watchlist.Watchlist(ctx, owner.ID)
		require.NoError(t, err)
		require.Empty(t, empty)
	})
}
