// Package mail sends order-confirmation emails over SMTP. Delivery is
// always best-effort: callers log failures and move on, an undelivered
// confirmation never affects the order itself.
package mail

import (
	"fmt"
	"net/smtp"
	"os"
	"strings"

	"github.com/avelez/tireshop/internal/queue"
)

// Mailer holds SMTP connection parameters.
type Mailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewMailerFromEnv builds a Mailer from SMTP_HOST, SMTP_PORT, SMTP_USER,
// SMTP_PASS and optional SMTP_FROM. It returns an error when any
// required variable is missing so the caller can fall back to the
// logging notifier.
func NewMailerFromEnv() (*Mailer, error) {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USER")
	password := os.Getenv("SMTP_PASS")
	from := os.Getenv("SMTP_FROM")

	if host == "" {
		return nil, fmt.Errorf("SMTP_HOST not set")
	}
	if port == "" {
		return nil, fmt.Errorf("SMTP_PORT not set")
	}
	if username == "" {
		return nil, fmt.Errorf("SMTP_USER not set")
	}
	if password == "" {
		return nil, fmt.Errorf("SMTP_PASS not set")
	}
	if from == "" {
		from = username
	}
	return &Mailer{host: host, port: port, username: username, password: password, from: from}, nil
}

// Send delivers a plain-text message to a single recipient.
func (m *Mailer) Send(to, subject, body string) error {
	addr := fmt.Sprintf("%s:%s", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	msg := []byte(
		"From: " + m.from + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=UTF-8\r\n" +
			"\r\n" +
			body,
	)

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}

// BuildConfirmation renders the subject and body of the confirmation
// email for a placed order.
func BuildConfirmation(ev queue.OrderPlacedEvent) (subject, body string) {
	subject = fmt.Sprintf("Order #%d received", ev.OrderID)

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", ev.CustomerName)
	fmt.Fprintf(&b, "Thanks for your order! Here is what we have on file:\n\n")
	fmt.Fprintf(&b, "Order #%d (%s) placed %s\n\n", ev.OrderID, ev.OrderType, ev.PlacedAt)
	for _, it := range ev.Items {
		fmt.Fprintf(&b, "  %d x %s %s @ $%.2f\n", it.SelectedQty, it.Brand, it.Size, it.Price)
	}
	fmt.Fprintf(&b, "\nTotal: $%.2f\n", ev.Total)
	if ev.Notes != "" {
		fmt.Fprintf(&b, "\nNotes: %s\n", ev.Notes)
	}
	fmt.Fprintf(&b, "\nWe'll contact you at %s when the order is ready.\n", ev.CustomerPhone)
	return subject, b.String()
}
