package listing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Helper to create an open listing
func newOpenListing(ownerID uuid.UUID) *Listing {
	return &Listing{
		ID:         uuid.New(),
		Title:      "Vintage camera",
		Price:      decimal.NewFromFloat(50.00),
		IsActive:   true,
		CategoryID: uuid.New(),
		OwnerID:    ownerID,
		CreatedAt:  time.Now(),
	}
}

// Tests Close
func TestListing_Close(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	winner := uuid.New()

	l := newOpenListing(owner)
	require.True(t, l.IsOpen())
	require.True(t, l.CanBid())
	require.Nil(t, l.WinnerID)

	l.Close(winner)

	require.False(t, l.IsOpen())
	require.False(t, l.CanBid())
	require.NotNil(t, l.WinnerID)
	require.Equal(t, winner, *l.WinnerID)
}

// Closing twice keeps the listing closed and records the last winner
func TestListing_CloseTwice(t *testing.T) {
	t.Parallel()

	l := newOpenListing(uuid.New())

	first := uuid.New()
	second := uuid.New()

	l.Close(first)
	l.Close(second)

	require.False(t, l.IsOpen())
	require.Equal(t, second, *l.WinnerID)
}

// Tests OwnedBy
func TestListing_OwnedBy(t *testing.T) {
	t.Parallel()

	owner := uuid.New()
	l := newOpenListing(owner)

	require.True(t, l.OwnedBy(owner))
	require.False(t, l.OwnedBy(uuid.New()))
}
