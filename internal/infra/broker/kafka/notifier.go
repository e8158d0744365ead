package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"hotelbooking/internal/app/policies"
)

const (
	NotificationEventType = "reservation.notification.v1"
	defaultEventSource    = "hotelbooking"
)

type publisher interface {
	Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error
}

// Notifier publishes guest notifications as JSON events keyed by recipient.
type Notifier struct {
	producer publisher
	topic    string
	source   string
	now      func() time.Time
}

func NewNotifier(producer *Producer, topicPrefix, topic string) *Notifier {
	return &Notifier{
		producer: producer,
		topic:    topicPrefix + topic,
		source:   defaultEventSource,
		now:      time.Now,
	}
}

func (n *Notifier) Topic() string { return n.topic }

type notificationEnvelope struct {
	SpecVersion     string           `json:"specversion"`
	ID              string           `json:"id"`
	Type            string           `json:"type"`
	Source          string           `json:"source"`
	Time            time.Time        `json:"time"`
	DataContentType string           `json:"datacontenttype"`
	Data            notificationData `json:"data"`
}

type notificationData struct {
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
}

func (n *Notifier) Send(ctx context.Context, msg policies.Notification) error {
	occurred := msg.OccurredAt
	if occurred.IsZero() {
		occurred = n.now()
	}
	env := notificationEnvelope{
		SpecVersion:     "1.0",
		ID:              uuid.NewString(),
		Type:            NotificationEventType,
		Source:          n.source,
		Time:            occurred.UTC(),
		DataContentType: "application/json",
		Data:            notificationData{Recipient: msg.Recipient, Message: msg.Message},
	}
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}
	headers := map[string]string{
		"ce_type": env.Type,
		"ce_id":   env.ID,
	}
	if err := n.producer.Publish(ctx, n.topic, msg.Recipient, payload, headers); err != nil {
		return fmt.Errorf("publish to %s: %w", n.topic, err)
	}
	return nil
}

var _ policies.Notifier = (*Notifier)(nil)
