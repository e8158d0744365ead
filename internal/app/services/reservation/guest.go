package reservation

import (
	"context"
	"time"

	"hotelbooking/internal/app/policies"
	domainnotification "hotelbooking/internal/domain/notification"
)

// Guest is a subscriber identified by name whose messages go out through a Notifier.
type Guest struct {
	name     string
	notifier policies.Notifier
}

func NewGuest(name string, notifier policies.Notifier) *Guest {
	return &Guest{name: name, notifier: notifier}
}

func (g *Guest) Name() string { return g.name }

func (g *Guest) Update(ctx context.Context, message string) error {
	if g.notifier == nil {
		return nil
	}
	return g.notifier.Send(ctx, policies.Notification{
		Recipient:  g.name,
		Message:    message,
		OccurredAt: time.Now().UTC(),
	})
}

var _ domainnotification.Subscriber = (*Guest)(nil)
