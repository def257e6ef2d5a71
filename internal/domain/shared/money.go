package shared

import (
	"github.com/shopspring/decimal"
)

// ValidMoney reports whether v is a usable money amount: non-negative
// with at most two decimal places.
func ValidMoney(v decimal.Decimal) bool {
	return !v.IsNegative() && v.Exponent() >= -2
}
