package service

import (
	"context"
	"log"

	"github.com/avelez/tireshop/internal/mail"
	"github.com/avelez/tireshop/internal/model"
	"github.com/avelez/tireshop/internal/queue"
)

// Notifier dispatches the order-confirmation notification after an
// order commits. Implementations must treat delivery as best-effort;
// the order service logs and swallows any error they return.
type Notifier interface {
	OrderPlaced(ctx context.Context, o *model.Order) error
}

// orderEvent converts a committed order into its broker payload.
func orderEvent(o *model.Order) queue.OrderPlacedEvent {
	items := make([]queue.EventItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, queue.EventItem{
			TireID:      it.TireID,
			Brand:       it.Brand,
			Size:        it.Size,
			Price:       it.Price,
			SelectedQty: it.SelectedQty,
		})
	}
	return queue.OrderPlacedEvent{
		OrderID:       o.ID,
		CustomerName:  o.Customer.Name,
		CustomerEmail: o.Customer.Email,
		CustomerPhone: o.Customer.Phone,
		OrderType:     o.OrderType,
		Items:         items,
		Total:         o.Total,
		Notes:         o.Notes,
		PlacedAt:      o.PlacedAt.UTC().Format("2006-01-02 15:04"),
	}
}

// QueueNotifier hands confirmations to RabbitMQ; the background
// consumer turns them into emails.
type QueueNotifier struct{}

func (QueueNotifier) OrderPlaced(ctx context.Context, o *model.Order) error {
	return PublishOrderPlaced(ctx, orderEvent(o))
}

// MailNotifier sends the confirmation email inline, for deployments
// without a broker.
type MailNotifier struct {
	M *mail.Mailer
}

func (n MailNotifier) OrderPlaced(_ context.Context, o *model.Order) error {
	ev := orderEvent(o)
	subject, body := mail.BuildConfirmation(ev)
	return n.M.Send(ev.CustomerEmail, subject, body)
}

// LogNotifier is the fallback when neither a broker nor SMTP is
// configured; it records the confirmation in the server log.
type LogNotifier struct{}

func (LogNotifier) OrderPlaced(_ context.Context, o *model.Order) error {
	log.Printf("order %d placed by %s <%s>, total $%.2f (no mail transport configured)",
		o.ID, o.Customer.Name, o.Customer.Email, o.Total)
	return nil
}
