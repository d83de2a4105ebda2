package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/avelez/tireshop/internal/model"
)

// OrderRepo provides access to the orders table. Line items and the
// optional delivery address are stored as JSON columns, mirroring the
// shape the storefront submits. Creation and status changes that pair
// with inventory adjustments are exposed as Tx variants; the caller
// owns the transaction.
type OrderRepo struct {
	db *sql.DB
}

// NewOrderRepo returns a new OrderRepo bound to the given database.
func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{db: db} }

// DB exposes the underlying handle so callers can begin transactions.
func (r *OrderRepo) DB() *sql.DB { return r.db }

// NextIDTx returns max(existing order ids)+1, or 1 when the table is
// empty. The row lock serializes concurrent placements so two orders
// can never be assigned the same id, and ids are never reused even
// after cancellation because cancelled rows remain in the table.
func (r *OrderRepo) NextIDTx(ctx context.Context, tx *sql.Tx) (int64, error) {
	const q = `SELECT COALESCE(MAX(id), 0) + 1 FROM orders FOR UPDATE`
	var next int64
	if err := tx.QueryRowContext(ctx, q).Scan(&next); err != nil {
		return 0, err
	}
	return next, nil
}

// CreateTx inserts a new order within the scope of an existing
// transaction. The caller must have assigned the id, status and
// placement time already. Timestamps set by the database are queried
// back onto the record after the insert.
func (r *OrderRepo) CreateTx(ctx context.Context, tx *sql.Tx, o *model.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}
	var address interface{}
	if o.Address != nil {
		b, err := json.Marshal(o.Address)
		if err != nil {
			return err
		}
		address = b
	}
	const q = `INSERT INTO orders (id, placed_at, customer_name, customer_email, customer_phone,
	                               order_type, items, address, total, notes, status)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, q, o.ID, o.PlacedAt, o.Customer.Name, o.Customer.Email,
		o.Customer.Phone, o.OrderType, items, address, o.Total, nullableString(o.Notes), o.Status); err != nil {
		return err
	}
	const sel = `SELECT created_at, updated_at FROM orders WHERE id = ?`
	return tx.QueryRowContext(ctx, sel, o.ID).Scan(&o.CreatedAt, &o.UpdatedAt)
}

// GetForUpdateTx loads an order by id and locks its row for the rest of
// the transaction, so a cancel cannot race another status change on the
// same order. Returns ErrOrderNotFound when the id is unknown.
func (r *OrderRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id int64) (*model.Order, error) {
	const q = `SELECT id, placed_at, customer_name, customer_email, customer_phone,
	                  order_type, items, address, total, notes, status, created_at, updated_at
	           FROM orders WHERE id = ? FOR UPDATE`
	return scanOrder(tx.QueryRowContext(ctx, q, id))
}

// UpdateStatusTx sets an order's status within an existing transaction.
// The status string is stored verbatim. Returns ErrOrderNotFound when
// no row matches.
func (r *OrderRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, id int64, status string) error {
	const q = `UPDATE orders SET status = ? WHERE id = ?`
	res, err := tx.ExecContext(ctx, q, status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// UpdateStatus is the non-transactional variant used by the status
// endpoint, which has no inventory side effects.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	const q = `UPDATE orders SET status = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, status, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// ListAll returns every order, newest first.
func (r *OrderRepo) ListAll(ctx context.Context) ([]model.Order, error) {
	const q = `SELECT id, placed_at, customer_name, customer_email, customer_phone,
	                  order_type, items, address, total, notes, status, created_at, updated_at
	           FROM orders ORDER BY id DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return orders, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*model.Order, error) {
	var o model.Order
	var items []byte
	var address []byte
	var notes sql.NullString
	err := row.Scan(&o.ID, &o.PlacedAt, &o.Customer.Name, &o.Customer.Email, &o.Customer.Phone,
		&o.OrderType, &items, &address, &o.Total, &notes, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	o.Notes = notes.String
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, err
	}
	if len(address) > 0 {
		var a model.Address
		if err := json.Unmarshal(address, &a); err != nil {
			return nil, err
		}
		o.Address = &a
	}
	return &o, nil
}
