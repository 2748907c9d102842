package order

// PurchaseInput is one requested line item.
// swagger:model PurchaseInput
type PurchaseInput struct {
	ProductID string `json:"product_id" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	// Optional price override; product's current computed price when omitted.
	Price    string `json:"price,omitempty" example:"199.90"`
	Quantity int    `json:"quantity" example:"2"`
}

// CreateOrderRequest is the checkout payload. Buyer identity is injected by
// the authenticating edge, not taken from the body.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	PaymentType      string          `json:"payment_type" example:"cash"`
	DeliveryLocation string          `json:"delivery_location" example:"Westlands, Nairobi"`
	Landmark         string          `json:"landmark" example:"Opposite Sarit Centre"`
	Purchases        []PurchaseInput `json:"purchases"`
}

// CreateOrderResponse is the committed order plus its resolved line items.
// swagger:model CreateOrderResponse
type CreateOrderResponse struct {
	Order Order      `json:"order"`
	Items []LineItem `json:"items"`
}

// UpdateStatusRequest mutates fulfillment state post-commit.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	DeliveryStatus string  `json:"delivery_status" example:"SHIPPED"`
	DeliveryDate   *string `json:"delivery_date,omitempty" example:"2026-09-02T10:00:00Z"`
	PaymentStatus  *bool   `json:"payment_status,omitempty"`
}
