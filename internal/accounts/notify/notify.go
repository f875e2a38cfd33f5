// Package notify delivers recovery messages to account holders.
package notify

import (
	"context"
	"errors"
)

// ErrDeliveryFailed wraps transport failures so callers can distinguish
// "could not send" from "nowhere to send".
var ErrDeliveryFailed = errors.New("notify: delivery failed")

// Message is a single outbound notification.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender dispatches messages. Implementations must not retain the message
// after Send returns.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
