package repository

import (
	"context"
	"database/sql"

	"github.com/avelez/tireshop/internal/model"
)

// TireRepo provides access to the tires table. Quantity adjustments are
// exposed as Tx variants so the order flow can apply them inside the
// same transaction as the order insert.
type TireRepo struct {
	db *sql.DB
}

// NewTireRepo returns a new TireRepo bound to the given database.
func NewTireRepo(db *sql.DB) *TireRepo { return &TireRepo{db: db} }

// DB exposes the underlying handle so callers can begin transactions.
func (r *TireRepo) DB() *sql.DB { return r.db }

// ListAll returns every tire in inventory ordered by id. This backs the
// public catalog view and requires no authentication upstream.
func (r *TireRepo) ListAll(ctx context.Context) ([]model.Tire, error) {
	const q = `SELECT id, brand, size, quantity, price, notes, created_at, updated_at
	           FROM tires ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tires := []model.Tire{}
	for rows.Next() {
		var t model.Tire
		var notes sql.NullString
		if err := rows.Scan(&t.ID, &t.Brand, &t.Size, &t.Quantity, &t.Price, &notes, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		t.Notes = notes.String
		tires = append(tires, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tires, nil
}

// ExistsTx reports whether a tire with the given id exists, within the
// scope of an existing transaction.
func (r *TireRepo) ExistsTx(ctx context.Context, tx *sql.Tx, id int64) (bool, error) {
	const q = `SELECT 1 FROM tires WHERE id = ?`
	var one int
	err := tx.QueryRowContext(ctx, q, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DecrementQuantityTx reduces a tire's quantity by qty, floored at zero.
// The clamp happens in SQL so concurrent decrements can never drive the
// stored quantity negative. A missing tire id matches no row and is
// silently skipped.
func (r *TireRepo) DecrementQuantityTx(ctx context.Context, tx *sql.Tx, id int64, qty int) error {
	const q = `UPDATE tires SET quantity = GREATEST(quantity - ?, 0) WHERE id = ?`
	_, err := tx.ExecContext(ctx, q, qty, id)
	return err
}

// IncrementQuantityTx restores qty units to a tire's quantity, uncapped.
// Used when cancelling an order. Missing tires are silently skipped.
func (r *TireRepo) IncrementQuantityTx(ctx context.Context, tx *sql.Tx, id int64, qty int) error {
	const q = `UPDATE tires SET quantity = quantity + ? WHERE id = ?`
	_, err := tx.ExecContext(ctx, q, qty, id)
	return err
}

// UpsertTx inserts the tire with its given id, or overwrites all fields
// of the existing record when the id is already present. Records absent
// from a bulk save are left untouched.
func (r *TireRepo) UpsertTx(ctx context.Context, tx *sql.Tx, t model.Tire) error {
	const q = `INSERT INTO tires (id, brand, size, quantity, price, notes)
	           VALUES (?, ?, ?, ?, ?, ?)
	           ON DUPLICATE KEY UPDATE
	             brand = VALUES(brand), size = VALUES(size),
	             quantity = VALUES(quantity), price = VALUES(price),
	             notes = VALUES(notes)`
	_, err := tx.ExecContext(ctx, q, t.ID, t.Brand, t.Size, t.Quantity, t.Price, nullableString(t.Notes))
	return err
}

// BulkUpsert applies UpsertTx to every record inside one transaction so
// an admin save is all-or-nothing.
func (r *TireRepo) BulkUpsert(ctx context.Context, tires []model.Tire) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	for _, t := range tires {
		if err := r.UpsertTx(ctx, tx, t); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
