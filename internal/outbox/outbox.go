// Package outbox persists invoice-dispatch jobs in the same transaction that
// commits the order, so rendering and mail delivery happen after commit and a
// failing mail step can never roll back a valid order.
package outbox

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const maxAttempts = 10

type Job struct {
	ID        int64      `json:"id"`
	OrderID   string     `json:"order_id"`
	OrderCode string     `json:"order_code"`
	Attempts  int        `json:"attempts"`
	CreatedAt time.Time  `json:"created_at"`
	SentAt    *time.Time `json:"sent_at"`
}

// EnqueueTx inserts a job inside the caller's transaction.
func EnqueueTx(ctx context.Context, tx pgx.Tx, orderID, orderCode string) error {
	_, err := tx.Exec(ctx, `INSERT INTO invoice_jobs(order_id, order_code) VALUES ($1, $2)`, orderID, orderCode)
	return err
}

// Enqueue inserts a job outside any transaction (manual resend).
func Enqueue(ctx context.Context, pool *pgxpool.Pool, orderID, orderCode string) error {
	_, err := pool.Exec(ctx, `INSERT INTO invoice_jobs(order_id, order_code) VALUES ($1, $2)`, orderID, orderCode)
	return err
}

func FetchPending(ctx context.Context, pool *pgxpool.Pool, limit int) ([]Job, error) {
	rows, err := pool.Query(ctx, `
    SELECT id, order_id, order_code, attempts, created_at, sent_at
    FROM invoice_jobs
    WHERE sent_at IS NULL AND attempts < $2
    ORDER BY id
    LIMIT $1
  `, limit, maxAttempts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Job
	for rows.Next() {
		var j Job
		if err := rows.Scan(&j.ID, &j.OrderID, &j.OrderCode, &j.Attempts, &j.CreatedAt, &j.SentAt); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func MarkSent(ctx context.Context, pool *pgxpool.Pool, id int64) error {
	_, err := pool.Exec(ctx, `UPDATE invoice_jobs SET sent_at=now() WHERE id=$1`, id)
	return err
}

func MarkFailed(ctx context.Context, pool *pgxpool.Pool, id int64) error {
	_, err := pool.Exec(ctx, `UPDATE invoice_jobs SET attempts=attempts+1 WHERE id=$1`, id)
	return err
}
