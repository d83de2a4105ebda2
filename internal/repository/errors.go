// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios and map
// them to the right HTTP status without inspecting SQL errors.
package repository

import "errors"

// ErrOrderNotFound is returned when no order with the requested id
// exists. Handlers should translate this into an HTTP 404 response.
var ErrOrderNotFound = errors.New("order not found")

// ErrTireNotFound is returned when an order references a tire id that
// does not exist in inventory. Handlers should translate this into an
// HTTP 404 response.
var ErrTireNotFound = errors.New("tire not found")

// ErrAlreadyCancelled is returned when a cancel is attempted on an
// order whose status is already "cancelled". Re-cancelling is rejected
// rather than treated as a no-op so the admin UI can surface it.
// Handlers should translate this into an HTTP 400 response.
var ErrAlreadyCancelled = errors.New("order already cancelled")
