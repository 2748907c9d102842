package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// We store prices as strings to avoid rounding errors (NUMERIC in Postgres)
	InitialPrice   string    `json:"initial_price"`
	DiscountAmount string    `json:"discount_amount"`
	Stock          int       `json:"stock"`
	SellerID       *string   `json:"seller_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ComputedPrice is the current unit price: initial price minus discount,
// floored at zero.
func (p *Product) ComputedPrice() (string, error) {
	initial, err := decimal.NewFromString(p.InitialPrice)
	if err != nil {
		return "", err
	}
	discount := decimal.Zero
	if p.DiscountAmount != "" {
		discount, err = decimal.NewFromString(p.DiscountAmount)
		if err != nil {
			return "", err
		}
	}
	price := initial.Sub(discount)
	if price.IsNegative() {
		price = decimal.Zero
	}
	return price.StringFixed(2), nil
}

// SnapshotResponse is what the catalog serves to the checkout: the computed
// price, not the raw initial/discount pair.
// swagger:model SnapshotResponse
type SnapshotResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       string  `json:"price" example:"199.90"`
	Stock       int     `json:"stock"`
	SellerID    *string `json:"seller_id,omitempty"`
}
