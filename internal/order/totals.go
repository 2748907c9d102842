package order

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ComputeTotal sums price*quantity over an already-materialized collection of
// line items using exact decimal arithmetic. A negative result means an
// upstream validation hole and is rejected, never clamped.
func ComputeTotal(items []LineItem) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, it := range items {
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			return decimal.Zero, fmt.Errorf("line item %s: bad price %q: %w", it.ID, it.Price, err)
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	if total.IsNegative() {
		return decimal.Zero, fmt.Errorf("negative order total %s", total.String())
	}
	return total, nil
}
