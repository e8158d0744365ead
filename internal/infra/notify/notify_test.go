package notify

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbooking/internal/app/policies"
)

type notifierFunc func(ctx context.Context, n policies.Notification) error

func (f notifierFunc) Send(ctx context.Context, n policies.Notification) error { return f(ctx, n) }

func TestLogNotifier_WritesRecipientAndMessage(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	err := LogNotifier{Logger: logger}.Send(context.Background(), policies.Notification{Recipient: "Ana", Message: "Reserva confirmada"})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"recipient":"Ana"`)
	assert.Contains(t, buf.String(), `"message":"Reserva confirmada"`)
}

func TestFanout_SendsToEveryChannelInOrder(t *testing.T) {
	var order []string
	record := func(name string) policies.Notifier {
		return notifierFunc(func(_ context.Context, n policies.Notification) error {
			order = append(order, name+":"+n.Recipient)
			return nil
		})
	}
	f := NewFanout(Channel{Name: "log", Notifier: record("log")}, Channel{Name: "skipped"}, Channel{Name: "kafka", Notifier: record("kafka")})

	require.NoError(t, f.Send(context.Background(), policies.Notification{Recipient: "Ana"}))

	assert.Equal(t, []string{"log:Ana", "kafka:Ana"}, order)
	assert.Equal(t, []string{"log", "kafka"}, f.Channels())
}

func TestFanout_StopsAtFirstFailure(t *testing.T) {
	boom := errors.New("down")
	called := false
	f := NewFanout(
		Channel{Name: "kafka", Notifier: notifierFunc(func(context.Context, policies.Notification) error { return boom })},
		Channel{Name: "journal", Notifier: notifierFunc(func(context.Context, policies.Notification) error { called = true; return nil })},
	)

	err := f.Send(context.Background(), policies.Notification{Recipient: "Ana"})

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "kafka channel")
	assert.False(t, called)
}
