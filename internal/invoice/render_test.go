package invoice

import (
	"bytes"
	"reflect"
	"testing"
	"time"

	ord "github.com/nexmart/checkout/internal/order"
)

func sampleOrder() (*ord.Order, []ord.LineItem) {
	s1 := "S1"
	o := &ord.Order{
		ID:               "o-1",
		BuyerID:          "B1",
		Code:             "NEXM-20260830-B1/001",
		PaymentType:      ord.PaymentCash,
		DeliveryStatus:   ord.DeliveryPending,
		DeliveryLocation: "Westlands",
		Landmark:         "Sarit Centre",
		TotalAmount:      "25.5",
		CreatedAt:        time.Date(2026, 8, 30, 14, 7, 33, 0, time.UTC),
	}
	items := []ord.LineItem{
		{ID: "li-1", OrderID: "o-1", ProductID: "P1", ProductName: "Keyboard", SellerID: &s1, Price: "10", Quantity: 2},
		{ID: "li-2", OrderID: "o-1", ProductID: "P2", ProductName: "Mouse", SellerID: nil, Price: "5.50", Quantity: 1},
	}
	return o, items
}

func TestBuildDocument_Content(t *testing.T) {
	o, items := sampleOrder()
	doc := BuildDocument(o, items, map[string]string{"S1": "Acme Traders"})

	if doc.Code != o.Code {
		t.Fatalf("code=%q", doc.Code)
	}
	// minute precision, seconds dropped
	if doc.OrderDate != "2026-08-30 14:07" {
		t.Fatalf("date=%q", doc.OrderDate)
	}
	if doc.Total != "25.50" {
		t.Fatalf("total=%q, expected 2dp formatting", doc.Total)
	}
	if len(doc.Rows) != 2 {
		t.Fatalf("rows=%d", len(doc.Rows))
	}
	if doc.Rows[0].UnitPrice != "10.00" || doc.Rows[0].Seller != "Acme Traders" {
		t.Fatalf("row0=%+v", doc.Rows[0])
	}
	if doc.Rows[1].Seller != NoSellerPlaceholder {
		t.Fatalf("row1 seller=%q, expected %q", doc.Rows[1].Seller, NoSellerPlaceholder)
	}
}

func TestBuildDocument_RerenderIdentical(t *testing.T) {
	o, items := sampleOrder()
	names := map[string]string{"S1": "Acme Traders"}

	first := BuildDocument(o, items, names)
	second := BuildDocument(o, items, names)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("re-render diverged:\n%+v\n%+v", first, second)
	}
}

func TestBuildDocument_DeletedSellerFallsBack(t *testing.T) {
	o, items := sampleOrder()
	// seller id still referenced but the account is gone from the directory
	doc := BuildDocument(o, items, map[string]string{})
	if doc.Rows[0].Seller != NoSellerPlaceholder {
		t.Fatalf("seller=%q, expected %q", doc.Rows[0].Seller, NoSellerPlaceholder)
	}
	if doc.Rows[0].Quantity != 2 || doc.Rows[0].UnitPrice != "10.00" {
		t.Fatalf("line item data lost with seller: %+v", doc.Rows[0])
	}
}

func TestRender_ProducesPDF(t *testing.T) {
	o, items := sampleOrder()
	pdf, err := Render(o, items, map[string]string{"S1": "Acme Traders"})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF (len=%d)", len(pdf))
	}
}
