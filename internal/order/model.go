package order

import "time"

type PaymentType string

const (
	PaymentCash   PaymentType = "cash"
	PaymentCard   PaymentType = "card"
	PaymentMobile PaymentType = "mobile"
)

func ValidPaymentType(s string) bool {
	switch PaymentType(s) {
	case PaymentCash, PaymentCard, PaymentMobile:
		return true
	}
	return false
}

type DeliveryStatus string

const (
	DeliveryPending   DeliveryStatus = "PENDING"
	DeliveryShipped   DeliveryStatus = "SHIPPED"
	DeliveryDelivered DeliveryStatus = "DELIVERED"
	DeliveryReturn    DeliveryStatus = "RETURN"
)

func ValidDeliveryStatus(s string) bool {
	switch DeliveryStatus(s) {
	case DeliveryPending, DeliveryShipped, DeliveryDelivered, DeliveryReturn:
		return true
	}
	return false
}

type Order struct {
	ID               string         `json:"id"`
	BuyerID          string         `json:"buyer_id"`
	Code             string         `json:"code"`
	PaymentType      PaymentType    `json:"payment_type"`
	PaymentStatus    bool           `json:"payment_status"`
	DeliveryStatus   DeliveryStatus `json:"delivery_status"`
	DeliveryDate     *time.Time     `json:"delivery_date,omitempty"`
	DeliveryLocation string         `json:"delivery_location"`
	Landmark         string         `json:"landmark"`
	// NUMERIC -> string; derived from the line items, never client-supplied
	TotalAmount string    `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LineItem is one purchase belonging to exactly one order. Price and
// ProductName are snapshots taken at order time; they do not track later
// catalog edits. SellerID is a weak reference and becomes nil when the seller
// account is removed.
type LineItem struct {
	ID          string  `json:"id"`
	OrderID     string  `json:"order_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	SellerID    *string `json:"seller_id,omitempty"`
	Price       string  `json:"price"`
	Quantity    int     `json:"quantity"`
}
