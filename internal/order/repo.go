package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nexmart/checkout/internal/outbox"
)

// maxCodeRetries bounds the unique-violation retry loop around code
// assignment before surfacing ErrSequenceContention.
const maxCodeRetries = 5

type Repository interface {
	// Create persists the order and its line items atomically. It reserves
	// the buyer's next daily sequence, assigns o.Code exactly once and
	// enqueues the invoice job in the same transaction. Nothing is visible
	// to readers before commit.
	Create(ctx context.Context, o *Order, items []LineItem) error
	GetByID(ctx context.Context, id string) (*Order, []LineItem, error)
	GetItems(ctx context.Context, orderID string) ([]LineItem, error)
	ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]Order, error)
	UpdateFulfillment(ctx context.Context, id string, status DeliveryStatus, deliveryDate *time.Time, paymentStatus *bool) error
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, o *Order, items []LineItem) error {
	for attempt := 0; attempt < maxCodeRetries; attempt++ {
		err := r.createOnce(ctx, o, items)
		if err == nil {
			return nil
		}
		if !isUniqueViolation(err) {
			return err
		}
		// someone else committed our code first; re-reserve and retry
	}
	return ErrSequenceContention
}

func (r *PGRepo) createOnce(ctx context.Context, o *Order, items []LineItem) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	day := time.Now().UTC()
	seq, err := nextSequence(ctx, tx, o.BuyerID, day)
	if err != nil {
		return err
	}
	o.Code = FormatCode(day, o.BuyerID, seq)

	if err := tx.QueryRow(ctx, `
    INSERT INTO orders (id, buyer_id, code, payment_type, payment_status,
                        delivery_status, delivery_location, landmark, total,
                        created_at, updated_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,NOW(),NOW())
    RETURNING created_at, updated_at
  `, o.ID, o.BuyerID, o.Code, o.PaymentType, o.PaymentStatus,
		o.DeliveryStatus, o.DeliveryLocation, o.Landmark, o.TotalAmount,
	).Scan(&o.CreatedAt, &o.UpdatedAt); err != nil {
		return err
	}

	for i := range items {
		items[i].OrderID = o.ID
		if _, err := tx.Exec(ctx, `
      INSERT INTO purchases (id, order_id, product_id, product_name, seller_id, price, quantity, position)
      VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
    `, items[i].ID, o.ID, items[i].ProductID, items[i].ProductName,
			items[i].SellerID, items[i].Price, items[i].Quantity, i); err != nil {
			return err
		}
	}

	if err := outbox.EnqueueTx(ctx, tx, o.ID, o.Code); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// notFoundScan maps an absent row to ErrNotFound and leaves real database
// failures intact, so an outage never masquerades as a 404.
func notFoundScan(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, []LineItem, error) {
	var o Order
	if err := r.db.QueryRow(ctx, `
    SELECT id, buyer_id, code, payment_type, payment_status, delivery_status,
           delivery_date, delivery_location, landmark, total::text, created_at, updated_at
    FROM orders WHERE id=$1
  `, id).Scan(&o.ID, &o.BuyerID, &o.Code, &o.PaymentType, &o.PaymentStatus,
		&o.DeliveryStatus, &o.DeliveryDate, &o.DeliveryLocation, &o.Landmark,
		&o.TotalAmount, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, nil, notFoundScan(err)
	}
	items, err := r.GetItems(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return &o, items, nil
}

func (r *PGRepo) GetItems(ctx context.Context, orderID string) ([]LineItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
    SELECT id, order_id, product_id, product_name, seller_id, price::text, quantity
    FROM purchases WHERE order_id=$1
    ORDER BY position
  `, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []LineItem
	for rows.Next() {
		var it LineItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.ProductName,
			&it.SellerID, &it.Price, &it.Quantity); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *PGRepo) ListByBuyer(ctx context.Context, buyerID string, limit, offset int) ([]Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.db.Query(ctx, `
    SELECT id, buyer_id, code, payment_type, payment_status, delivery_status,
           delivery_date, delivery_location, landmark, total::text, created_at, updated_at
    FROM orders WHERE buyer_id=$1
    ORDER BY created_at DESC LIMIT $2 OFFSET $3
  `, buyerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.BuyerID, &o.Code, &o.PaymentType, &o.PaymentStatus,
			&o.DeliveryStatus, &o.DeliveryDate, &o.DeliveryLocation, &o.Landmark,
			&o.TotalAmount, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// UpdateFulfillment is the fulfillment collaborator's surface: delivery
// status, delivery date and payment flag. Code and totals are never touched.
func (r *PGRepo) UpdateFulfillment(ctx context.Context, id string, status DeliveryStatus, deliveryDate *time.Time, paymentStatus *bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
    UPDATE orders
    SET delivery_status = $2,
        delivery_date   = COALESCE($3, delivery_date),
        payment_status  = COALESCE($4, payment_status),
        updated_at      = NOW()
    WHERE id = $1
  `, id, status, deliveryDate, paymentStatus)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
