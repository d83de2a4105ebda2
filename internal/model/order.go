package model

import "time"

// Order statuses.  An order moves pending -> confirmed -> ready ->
// completed; cancelled is reachable from any non-terminal state.  The
// status column stores whatever string the admin UI sends, so these
// constants cover the known lifecycle but are not enforced as an enum.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Customer holds the contact details captured at checkout.  All three
// fields are required for a valid order.
type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Address is the delivery destination, present only when the order type
// is "delivery".
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// OrderItem is a line on an order.  Brand, size and price are snapshots
// taken at order time so historical orders render correctly even after
// the inventory record changes or disappears.
type OrderItem struct {
	TireID      int64   `json:"id"`
	Brand       string  `json:"brand"`
	Size        string  `json:"size"`
	Price       float64 `json:"price"`
	SelectedQty int     `json:"selectedQty"`
}

// Order is a customer's request for a set of tires.
//
// Fields:
//  ID        – assigned as max(existing ids)+1 at placement, never reused.
//  PlacedAt  – server-set creation time.
//  Customer  – contact info, all fields required.
//  OrderType – "pickup" or "delivery".
//  Items     – line items with price snapshots.
//  Total     – order total as declared by the client.
//  Notes     – optional free-form remarks.
//  Status    – lifecycle status string.
//  Address   – delivery address, nil for pickup orders.
type Order struct {
	ID        int64       `json:"id"`
	PlacedAt  time.Time   `json:"timestamp"`
	Customer  Customer    `json:"customer"`
	OrderType string      `json:"orderType"`
	Items     []OrderItem `json:"items"`
	Total     float64     `json:"total"`
	Notes     string      `json:"notes,omitempty"`
	Status    string      `json:"status"`
	Address   *Address    `json:"address,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
