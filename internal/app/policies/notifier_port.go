package policies

import (
	"context"
	"time"
)

// Notification is one message addressed to one subscriber.
type Notification struct {
	Recipient  string
	Message    string
	OccurredAt time.Time
}

// Notifier delivers a notification over a concrete channel (log, broker, journal).
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}
