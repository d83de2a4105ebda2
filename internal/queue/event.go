// Package queue defines message payloads exchanged over the message
// broker and the background consumer that turns them into customer
// emails.
package queue

// EventItem is one order line carried on an OrderPlacedEvent. Brand,
// size and price are the snapshots taken at order time.
type EventItem struct {
	TireID      int64   `json:"tire_id"`
	Brand       string  `json:"brand"`
	Size        string  `json:"size"`
	Price       float64 `json:"price"`
	SelectedQty int     `json:"selected_qty"`
}

// OrderPlacedEvent is published when an order commits. The consumer
// uses it to send the confirmation email without touching the database.
type OrderPlacedEvent struct {
	OrderID       int64       `json:"order_id"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	CustomerPhone string      `json:"customer_phone"`
	OrderType     string      `json:"order_type"`
	Items         []EventItem `json:"items"`
	Total         float64     `json:"total"`
	Notes         string      `json:"notes,omitempty"`
	PlacedAt      string      `json:"placed_at"`
}
