// Package buyer is the contact-directory collaborator: name and email lookup
// for invoice dispatch, and seller-name resolution for invoice rows.
// Registration, roles and authentication live outside this core.
package buyer

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("buyer not found")

type Repository interface {
	GetByID(ctx context.Context, id string) (*Buyer, error)
	GetByEmail(ctx context.Context, email string) (*Buyer, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Buyer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	row := r.db.QueryRow(ctx, `
		SELECT id, name, email, phone, location, created_at, updated_at
		FROM users WHERE id=$1
	`, id)
	var b Buyer
	if err := row.Scan(&b.ID, &b.Name, &b.Email, &b.Phone, &b.Location, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *PGRepo) GetByEmail(ctx context.Context, email string) (*Buyer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	row := r.db.QueryRow(ctx, `
		SELECT id, name, email, phone, location, created_at, updated_at
		FROM users WHERE email=$1
	`, email)
	var b Buyer
	if err := row.Scan(&b.ID, &b.Name, &b.Email, &b.Phone, &b.Location, &b.CreatedAt, &b.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &b, nil
}
