package order

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

// nextSequence reserves the next ordinal for (buyer, calendar day) inside the
// caller's transaction. The upsert is an atomic increment-and-fetch: the row
// lock it takes serializes concurrent checkouts for the same buyer+day and is
// held until the surrounding transaction commits or rolls back, so an aborted
// checkout releases the reservation without burning a number.
//
// A naive count-of-today's-orders-plus-one is not safe here: two concurrent
// requests can read the same count before either inserts.
func nextSequence(ctx context.Context, tx pgx.Tx, buyerID string, day time.Time) (int, error) {
	var seq int
	err := tx.QueryRow(ctx, `
    INSERT INTO order_sequences (buyer_id, seq_date, last_seq)
    VALUES ($1, $2, 1)
    ON CONFLICT (buyer_id, seq_date)
    DO UPDATE SET last_seq = order_sequences.last_seq + 1
    RETURNING last_seq
  `, buyerID, day.Format("2006-01-02")).Scan(&seq)
	if err != nil {
		return 0, err
	}
	return seq, nil
}
