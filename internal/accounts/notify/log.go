package notify

import (
	"context"

	"github.com/aussiebroadwan/campuspass/pkg/slogx"
)

// LogSender writes messages to the log instead of sending them. Used in
// development when no SMTP relay is configured.
type LogSender struct{}

func NewLogSender() *LogSender { return &LogSender{} }

func (LogSender) Send(ctx context.Context, msg Message) error {
	slogx.FromContext(ctx).Info("notification (not sent, log sender active)",
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}
