package mail_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/avelez/tireshop/internal/mail"
	"github.com/avelez/tireshop/internal/queue"
)

func TestBuildConfirmation(t *testing.T) {
	ev := queue.OrderPlacedEvent{
		OrderID:       7,
		CustomerName:  "Dana Reyes",
		CustomerEmail: "dana@example.com",
		CustomerPhone: "555-0101",
		OrderType:     "delivery",
		Items: []queue.EventItem{
			{TireID: 1, Brand: "Michelin", Size: "225/65R17", Price: 80, SelectedQty: 2},
			{TireID: 2, Brand: "Goodyear", Size: "195/60R15", Price: 55.5, SelectedQty: 1},
		},
		Total:    215.5,
		Notes:    "call before delivery",
		PlacedAt: "2026-08-31 14:02",
	}

	subject, body := mail.BuildConfirmation(ev)
	assert.Equal(t, "Order #7 received", subject)
	assert.Contains(t, body, "Hi Dana Reyes,")
	assert.Contains(t, body, "Order #7 (delivery) placed 2026-08-31 14:02")
	assert.Contains(t, body, "2 x Michelin 225/65R17 @ $80.00")
	assert.Contains(t, body, "1 x Goodyear 195/60R15 @ $55.50")
	assert.Contains(t, body, "Total: $215.50")
	assert.Contains(t, body, "Notes: call before delivery")
	assert.Contains(t, body, "555-0101")
}

func TestBuildConfirmation_OmitsEmptyNotes(t *testing.T) {
	_, body := mail.BuildConfirmation(queue.OrderPlacedEvent{OrderID: 1, CustomerName: "A"})
	assert.NotContains(t, body, "Notes:")
}
