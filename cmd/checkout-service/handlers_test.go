package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"path"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	ord "github.com/nexmart/checkout/internal/order"
)

//
// ---------- STUBS & FAKES ----------
//

// stubRepo implements ord.Repository in memory. Create assigns the code the
// way the real repo does so handlers see committed-looking orders.
type stubRepo struct {
	seq       int
	lastOrder *ord.Order
	lastItems []ord.LineItem
}

func (s *stubRepo) Create(ctx context.Context, o *ord.Order, items []ord.LineItem) error {
	s.seq++
	o.Code = ord.FormatCode(time.Now().UTC(), o.BuyerID, s.seq)
	o.CreatedAt = time.Now().UTC()
	o.UpdatedAt = o.CreatedAt
	cp := *o
	s.lastOrder = &cp
	s.lastItems = append([]ord.LineItem(nil), items...)
	return nil
}

func (s *stubRepo) GetByID(ctx context.Context, id string) (*ord.Order, []ord.LineItem, error) {
	if s.lastOrder == nil || s.lastOrder.ID != id {
		return nil, nil, ord.ErrNotFound
	}
	return s.lastOrder, s.lastItems, nil
}

func (s *stubRepo) GetItems(ctx context.Context, orderID string) ([]ord.LineItem, error) {
	if s.lastOrder == nil || s.lastOrder.ID != orderID {
		return nil, ord.ErrNotFound
	}
	return s.lastItems, nil
}

func (s *stubRepo) ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]ord.Order, error) {
	if s.lastOrder != nil && s.lastOrder.BuyerID == buyerID {
		return []ord.Order{*s.lastOrder}, nil
	}
	return []ord.Order{}, nil
}

func (s *stubRepo) UpdateFulfillment(ctx context.Context, id string, status ord.DeliveryStatus, deliveryDate *time.Time, paymentStatus *bool) error {
	if s.lastOrder == nil || s.lastOrder.ID != id {
		return ord.ErrNotFound
	}
	s.lastOrder.DeliveryStatus = status
	if deliveryDate != nil {
		s.lastOrder.DeliveryDate = deliveryDate
	}
	if paymentStatus != nil {
		s.lastOrder.PaymentStatus = *paymentStatus
	}
	return nil
}

// newProductServer serves GET /products/:id from a fixed snapshot.
func newProductServer(t *testing.T, snap ord.ProductDTO) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		if path.Base(r.URL.Path) != snap.ID {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(snap)
	})
	return httptest.NewServer(mux)
}

func newCheckoutRouter(repo ord.Repository, productBaseURL string) *gin.Engine {
	ext := &ord.Ext{
		HTTP:           &http.Client{Timeout: 2 * time.Second},
		ProductBaseURL: strings.TrimRight(productBaseURL, "/"),
	}
	svc := ord.NewService(repo, ext)

	r := gin.New()
	r.POST("/orders", createOrderHandler(svc))
	r.GET("/orders/:id", getOrderHandler(repo))
	r.GET("/orders/:id/items", getOrderItemsHandler(repo))
	r.PUT("/orders/:id/status", updateOrderStatusHandler(repo))
	return r
}

//
// ---------- TESTS ----------
//

func TestCreateOrder_HappyPath(t *testing.T) {
	t.Parallel()

	prodID := uuid.NewString()
	seller := uuid.NewString()
	psrv := newProductServer(t, ord.ProductDTO{
		ID: prodID, Name: "Mechanical Keyboard", Price: "15.00", Stock: 5, SellerID: &seller,
	})
	defer psrv.Close()

	repo := &stubRepo{}
	r := newCheckoutRouter(repo, psrv.URL)

	body := fmt.Sprintf(`{"payment_type":"cash","delivery_location":"Westlands","landmark":"Sarit","purchases":[{"product_id":%q,"quantity":2}]}`, prodID)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Buyer-ID", "B1")

	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if repo.lastOrder == nil || len(repo.lastItems) != 1 {
		t.Fatalf("order/items not persisted")
	}
	if repo.lastOrder.TotalAmount != "30.00" {
		t.Fatalf("total=%q, expected 30.00", repo.lastOrder.TotalAmount)
	}
	if !strings.HasSuffix(repo.lastOrder.Code, "/001") {
		t.Fatalf("code=%q, expected /001 suffix", repo.lastOrder.Code)
	}

	var resp ord.CreateOrderResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Order.Code != repo.lastOrder.Code || resp.Order.DeliveryStatus != ord.DeliveryPending {
		t.Fatalf("response order=%+v", resp.Order)
	}
	if resp.Order.PaymentStatus {
		t.Fatalf("payment_status must start false")
	}
}

func TestCreateOrder_MissingBuyerIdentity(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{}
	r := newCheckoutRouter(repo, "http://unused")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d body=%s (expected 401)", w.Code, w.Body.String())
	}
}

func TestCreateOrder_EmptyPurchases(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{}
	r := newCheckoutRouter(repo, "http://unused")

	body := `{"payment_type":"cash","purchases":[]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Buyer-ID", "B1")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s (expected 400)", w.Code, w.Body.String())
	}
	if repo.lastOrder != nil {
		t.Fatalf("order persisted despite empty purchases")
	}
}

func TestCreateOrder_UnknownProductRejectsAll(t *testing.T) {
	t.Parallel()

	prodID := uuid.NewString()
	psrv := newProductServer(t, ord.ProductDTO{ID: prodID, Name: "Good", Price: "10.00", Stock: 3})
	defer psrv.Close()

	repo := &stubRepo{}
	r := newCheckoutRouter(repo, psrv.URL)

	// one valid item plus one unknown id: whole request must fail
	body := fmt.Sprintf(`{"payment_type":"cash","purchases":[{"product_id":%q,"quantity":1},{"product_id":%q,"quantity":1}]}`,
		prodID, uuid.NewString())
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Buyer-ID", "B1")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s (expected 400)", w.Code, w.Body.String())
	}
	if repo.lastOrder != nil {
		t.Fatalf("partial order persisted")
	}
}

func TestGetOrder_NotFound(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{}
	r := newCheckoutRouter(repo, "http://unused")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/orders/"+uuid.NewString(), nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d body=%s (expected 404)", w.Code, w.Body.String())
	}
}

func TestUpdateOrderStatus_ValidAndInvalid(t *testing.T) {
	t.Parallel()

	oid := uuid.NewString()
	repo := &stubRepo{
		lastOrder: &ord.Order{ID: oid, BuyerID: "B1", Code: "NEXM-20260830-B1/001", DeliveryStatus: ord.DeliveryPending},
	}
	r := newCheckoutRouter(repo, "http://unused")

	// valid transition
	{
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/orders/"+oid+"/status",
			bytes.NewBufferString(`{"delivery_status":"SHIPPED"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status=%d body=%s (expected 200)", w.Code, w.Body.String())
		}
		if repo.lastOrder.DeliveryStatus != ord.DeliveryShipped {
			t.Fatalf("status=%s, expected SHIPPED", repo.lastOrder.DeliveryStatus)
		}
	}

	// unknown status
	{
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/orders/"+oid+"/status",
			bytes.NewBufferString(`{"delivery_status":"LOST"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status=%d body=%s (expected 400)", w.Code, w.Body.String())
		}
	}
}

func TestResendInvoice_Enqueues(t *testing.T) {
	t.Parallel()

	oid := uuid.NewString()
	repo := &stubRepo{
		lastOrder: &ord.Order{ID: oid, BuyerID: "B1", Code: "NEXM-20260830-B1/001"},
	}

	var gotOrderID, gotCode string
	enqueue := func(ctx context.Context, orderID, code string) error {
		gotOrderID, gotCode = orderID, code
		return nil
	}

	r := gin.New()
	r.POST("/orders/:id/invoice/resend", resendInvoiceHandler(repo, enqueue))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders/"+oid+"/invoice/resend", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusAccepted {
		t.Fatalf("status=%d body=%s (expected 202)", w.Code, w.Body.String())
	}
	if gotOrderID != oid || gotCode != "NEXM-20260830-B1/001" {
		t.Fatalf("enqueued %q/%q", gotOrderID, gotCode)
	}
}

func init() {
	gin.SetMode(gin.TestMode)
	gin.DefaultWriter = io.Discard
	log.SetOutput(io.Discard)
}
