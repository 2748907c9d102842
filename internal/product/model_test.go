package product

import "testing"

func TestComputedPrice(t *testing.T) {
	p := &Product{InitialPrice: "199.90", DiscountAmount: "50.00"}
	got, err := p.ComputedPrice()
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if got != "149.90" {
		t.Fatalf("price=%q", got)
	}
}

func TestComputedPrice_FlooredAtZero(t *testing.T) {
	p := &Product{InitialPrice: "10.00", DiscountAmount: "25.00"}
	got, err := p.ComputedPrice()
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if got != "0.00" {
		t.Fatalf("price=%q, expected floor at zero", got)
	}
}

func TestComputedPrice_NoDiscount(t *testing.T) {
	p := &Product{InitialPrice: "42.00", DiscountAmount: ""}
	got, err := p.ComputedPrice()
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if got != "42.00" {
		t.Fatalf("price=%q", got)
	}
}

func TestComputedPrice_BadData(t *testing.T) {
	p := &Product{InitialPrice: "free"}
	if _, err := p.ComputedPrice(); err == nil {
		t.Fatal("expected error for malformed price")
	}
}
