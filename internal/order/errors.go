package order

import "errors"

var (
	ErrNotFound = errors.New("order not found")

	// ErrEmptyOrder rejects a checkout with no purchases.
	ErrEmptyOrder = errors.New("order has no line items")

	// ErrProductNotFound aborts the whole checkout when any line item fails
	// to resolve; no partial orders.
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidQuantity rejects line items with quantity < 1.
	ErrInvalidQuantity = errors.New("quantity must be >= 1")

	// ErrInvalidPayment rejects unknown payment types.
	ErrInvalidPayment = errors.New("invalid payment type")

	// ErrSequenceContention surfaces after the code-assignment retries are
	// exhausted. Transient: the caller may resubmit, no code was assigned.
	ErrSequenceContention = errors.New("order code reservation exhausted retries")
)
