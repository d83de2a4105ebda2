// Package service contains the order transaction engine: the one place
// that writes both the order ledger and tire quantities, always inside
// a single database transaction.
package service

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/avelez/tireshop/internal/model"
	"github.com/avelez/tireshop/internal/repository"
)

// OrderService coordinates order placement, cancellation and status
// changes. Placement and cancellation each touch two tables (orders and
// tires) and commit atomically: either every change persists or none
// does.
type OrderService struct {
	db       *sql.DB
	tires    *repository.TireRepo
	orders   *repository.OrderRepo
	notifier Notifier
}

// NewOrderService constructs an OrderService. The notifier may be nil
// when confirmations are not wanted (tests).
func NewOrderService(db *sql.DB, tires *repository.TireRepo, orders *repository.OrderRepo, notifier Notifier) *OrderService {
	if db == nil || tires == nil || orders == nil {
		panic("nil dependency passed to NewOrderService")
	}
	return &OrderService{db: db, tires: tires, orders: orders, notifier: notifier}
}

// Place creates an order and decrements matching tire quantities as one
// atomic unit. The incoming order carries customer info, type, items,
// total and notes; id, status and placement time are assigned here. The
// id is max(existing)+1, taken under a row lock so concurrent
// placements serialize. Each referenced tire must exist
// (ErrTireNotFound otherwise); quantity sufficiency is deliberately not
// checked, decrements clamp at zero instead.
//
// The confirmation notification is dispatched after commit and is
// best-effort: a failed notification is logged, never surfaced, and
// never rolls back the order.
func (s *OrderService) Place(ctx context.Context, o *model.Order) (*model.Order, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for _, it := range o.Items {
		ok, err := s.tires.ExistsTx(ctx, tx, it.TireID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("tire %d: %w", it.TireID, repository.ErrTireNotFound)
		}
	}

	id, err := s.orders.NextIDTx(ctx, tx)
	if err != nil {
		return nil, err
	}
	o.ID = id
	o.Status = model.StatusPending
	o.PlacedAt = time.Now().UTC()

	if err := s.orders.CreateTx(ctx, tx, o); err != nil {
		return nil, err
	}
	for _, it := range o.Items {
		if err := s.tires.DecrementQuantityTx(ctx, tx, it.TireID, it.SelectedQty); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true

	if s.notifier != nil {
		if err := s.notifier.OrderPlaced(ctx, o); err != nil {
			log.Printf("order %d: confirmation notify failed: %v", o.ID, err)
		}
	}
	return o, nil
}

// Cancel restores the quantities deducted for the order's items and
// marks the order cancelled, atomically. Returns ErrOrderNotFound for
// an unknown id and ErrAlreadyCancelled when the order is already
// cancelled; in both cases no state changes. Tires that have since been
// removed from inventory are silently skipped.
func (s *OrderService) Cancel(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	o, err := s.orders.GetForUpdateTx(ctx, tx, id)
	if err != nil {
		return err
	}
	if o.Status == model.StatusCancelled {
		return repository.ErrAlreadyCancelled
	}

	for _, it := range o.Items {
		if err := s.tires.IncrementQuantityTx(ctx, tx, it.TireID, it.SelectedQty); err != nil {
			return err
		}
	}
	if err := s.orders.UpdateStatusTx(ctx, tx, id, model.StatusCancelled); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// UpdateStatus stores the given status string verbatim. No inventory
// side effects. Returns ErrOrderNotFound for an unknown id.
func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status string) error {
	return s.orders.UpdateStatus(ctx, id, status)
}
