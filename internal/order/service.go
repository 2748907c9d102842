package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductSnapshot is what the checkout captures from the catalog at order
// time: name, current computed price and the product's seller, if any.
type ProductSnapshot struct {
	ID       string
	Name     string
	Price    string
	Stock    int
	SellerID *string
}

// ProductSource resolves product ids to snapshots. Returning
// ErrProductNotFound (wrapped or bare) aborts the whole checkout.
type ProductSource interface {
	Snapshot(ctx context.Context, id string) (*ProductSnapshot, error)
}

// Service orchestrates the checkout: validate, resolve snapshots, compute the
// total and hand the assembled order to the repository, which owns the
// transaction boundary (sequence reservation + inserts + invoice job).
type Service struct {
	repo     Repository
	products ProductSource
}

func NewService(repo Repository, products ProductSource) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) Checkout(ctx context.Context, buyerID string, req CreateOrderRequest) (*Order, []LineItem, error) {
	if len(req.Purchases) == 0 {
		return nil, nil, ErrEmptyOrder
	}
	if !ValidPaymentType(req.PaymentType) {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidPayment, req.PaymentType)
	}

	items := make([]LineItem, 0, len(req.Purchases))
	for _, p := range req.Purchases {
		if p.Quantity < 1 {
			return nil, nil, fmt.Errorf("%w: product %s", ErrInvalidQuantity, p.ProductID)
		}
		snap, err := s.products.Snapshot(ctx, p.ProductID)
		if err != nil {
			if errors.Is(err, ErrProductNotFound) {
				return nil, nil, fmt.Errorf("%w: %s", ErrProductNotFound, p.ProductID)
			}
			// collaborator failure stays a service error, never a user error
			return nil, nil, fmt.Errorf("product lookup %s: %w", p.ProductID, err)
		}
		items = append(items, LineItem{
			ID:          uuid.NewString(),
			ProductID:   snap.ID,
			ProductName: snap.Name,
			SellerID:    snap.SellerID,
			Price:       effectivePrice(p.Price, snap.Price),
			Quantity:    p.Quantity,
		})
	}

	total, err := ComputeTotal(items)
	if err != nil {
		return nil, nil, err
	}

	o := &Order{
		ID:               uuid.NewString(),
		BuyerID:          buyerID,
		PaymentType:      PaymentType(req.PaymentType),
		PaymentStatus:    false,
		DeliveryStatus:   DeliveryPending,
		DeliveryLocation: req.DeliveryLocation,
		Landmark:         req.Landmark,
		TotalAmount:      total.String(),
	}
	if err := s.repo.Create(ctx, o, items); err != nil {
		return nil, nil, err
	}
	return o, items, nil
}

// effectivePrice prefers the requested price when it is supplied and
// non-negative, otherwise the product's current computed price. The snapshot
// is normalized to 2 decimal places so the total computed here and the
// NUMERIC(10,2) rows persisted later agree exactly.
func effectivePrice(requested, current string) string {
	if requested == "" {
		return current
	}
	d, err := decimal.NewFromString(requested)
	if err != nil || d.IsNegative() {
		return current
	}
	return d.StringFixed(2)
}
