package model

import "time"

// Tire is a single inventory line: one brand/size combination with the
// quantity currently on the rack.  Quantity is the only field the order
// flow mutates; everything else changes only through admin saves.
//
// Fields:
//  ID        – stable identifier, assigned by the admin tooling.
//  Brand     – manufacturer name.
//  Size      – tire size string (e.g. "225/65R17").
//  Quantity  – units in stock, never negative.
//  Price     – unit price in dollars.
//  Notes     – optional free-form remarks.
//  CreatedAt – creation timestamp (server-set).
//  UpdatedAt – last update timestamp (server-set).
type Tire struct {
	ID        int64     `json:"id"`
	Brand     string    `json:"brand"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
