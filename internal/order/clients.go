package order

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ProductDTO is the catalog's wire shape; price is the computed unit price
// (initial price minus discount, floored at zero) formatted by the catalog.
type ProductDTO struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       string  `json:"price"`
	Stock       int     `json:"stock"`
	SellerID    *string `json:"seller_id,omitempty"`
}

type BuyerDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Ext bundles the HTTP collaborators the checkout consumes: the product
// catalog (snapshot source) and the buyer directory (contact lookup).
type Ext struct {
	HTTP           *http.Client
	ProductBaseURL string
	BuyerBaseURL   string
}

func NewExt(productBaseURL, buyerBaseURL string) *Ext {
	return &Ext{
		HTTP:           &http.Client{Timeout: 5 * time.Second},
		ProductBaseURL: productBaseURL,
		BuyerBaseURL:   buyerBaseURL,
	}
}

func (e *Ext) FetchProduct(ctx context.Context, id string) (*ProductDTO, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/products/%s", e.ProductBaseURL, id), nil)
	res, err := e.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusNotFound {
		return nil, ErrProductNotFound
	}
	if res.StatusCode != http.StatusOK {
		// catalog trouble, not an unresolvable product
		return nil, fmt.Errorf("product lookup %s: unexpected status %s", id, res.Status)
	}
	var p ProductDTO
	if err := json.NewDecoder(res.Body).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Snapshot implements ProductSource.
func (e *Ext) Snapshot(ctx context.Context, id string) (*ProductSnapshot, error) {
	p, err := e.FetchProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ProductSnapshot{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Stock:    p.Stock,
		SellerID: p.SellerID,
	}, nil
}

func (e *Ext) FetchBuyer(ctx context.Context, id string) (*BuyerDTO, error) {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/buyers/%s", e.BuyerBaseURL, id), nil)
	res, err := e.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("buyer not found")
	}
	var b BuyerDTO
	if err := json.NewDecoder(res.Body).Decode(&b); err != nil {
		return nil, err
	}
	return &b, nil
}
