package bid

import (
	"github.com/shopspring/decimal"

	"lotline-auction-service/internal/domain/shared"
)

// Evaluate applies the bid acceptance rule. It is pure: the decision
// depends only on the three inputs and performs no I/O.
//
// With an existing latest bid the proposed value must strictly exceed
// it; equal values are rejected. With no bids yet, the proposed value
// must meet or exceed the starting price, so the first bid may match
// it exactly.
//
// A nil return means accept; otherwise the error wraps
// shared.ErrInvalidBid with the specific reason.
func Evaluate(startingPrice, proposed decimal.Decimal, latest *decimal.Decimal) error {
	if latest != nil {
		if proposed.GreaterThan(*latest) {
			return nil
		}
		return shared.ErrBidNotAboveLatest
	}

	if proposed.GreaterThanOrEqual(startingPrice) {
		return nil
	}
	return shared.ErrBidBelowStartingPrice
}
