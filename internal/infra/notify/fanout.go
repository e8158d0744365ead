package notify

import (
	"context"
	"fmt"

	"hotelbooking/internal/app/policies"
)

// Channel is a notifier with a name used in error messages.
type Channel struct {
	Name     string
	Notifier policies.Notifier
}

// Fanout sends every notification to each channel in order and stops at the
// first failure.
type Fanout struct {
	channels []Channel
}

func NewFanout(channels ...Channel) *Fanout {
	f := &Fanout{}
	for _, ch := range channels {
		if ch.Notifier != nil {
			f.channels = append(f.channels, ch)
		}
	}
	return f
}

func (f *Fanout) Channels() []string {
	names := make([]string, 0, len(f.channels))
	for _, ch := range f.channels {
		names = append(names, ch.Name)
	}
	return names
}

func (f *Fanout) Send(ctx context.Context, n policies.Notification) error {
	for _, ch := range f.channels {
		if err := ch.Notifier.Send(ctx, n); err != nil {
			return fmt.Errorf("%s channel: %w", ch.Name, err)
		}
	}
	return nil
}

var _ policies.Notifier = (*Fanout)(nil)
