package shared

import (
	"errors"
	"fmt"
)

// Domain-specific errors
var (
	// Bid errors. ErrBidNotAboveLatest and ErrBidBelowStartingPrice both
	// wrap ErrInvalidBid so callers can match the whole class with errors.Is.
	ErrInvalidBid            = errors.New("invalid bid")
	ErrBidNotAboveLatest     = fmt.Errorf("%w: value must exceed the latest bid", ErrInvalidBid)
	ErrBidBelowStartingPrice = fmt.Errorf("%w: value must meet the starting price", ErrInvalidBid)
	ErrBidConflict           = errors.New("bid rejected by a concurrent update")
	ErrNoBids                = errors.New("no bids placed on listing")

	// Listing errors
	ErrListingNotFound = errors.New("listing not found")
	ErrListingClosed   = errors.New("listing is no longer active")
	ErrNotOwner        = errors.New("only the listing owner may do that")
	ErrInvalidPrice    = errors.New("invalid price value")

	// Account errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrPasswordMismatch   = errors.New("passwords must match")
	ErrInvalidCredentials = errors.New("invalid username and/or password")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Category errors
	ErrCategoryNotFound = errors.New("category not found")

	// Comment errors
	ErrCommentNotFound = errors.New("comment not found")

	// Watchlist errors
	ErrAlreadyWatched = errors.New("listing already on watchlist")
	ErrNotWatched     = errors.New("listing not on watchlist")
)
