package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hotelbooking/internal/app/policies"
)

const notificationCollection = "guest_notifications"

// NotificationJournal appends every delivered notification to a collection.
type NotificationJournal struct {
	col *mongo.Collection
	now func() time.Time
}

func NewNotificationJournal(ctx context.Context, db *mongo.Database) (*NotificationJournal, error) {
	col := db.Collection(notificationCollection)
	idx := mongo.IndexModel{
		Keys:    bson.D{{Key: "recipient", Value: 1}, {Key: "occurred_at", Value: -1}},
		Options: options.Index().SetName("recipient_occurred_at"),
	}
	if _, err := col.Indexes().CreateOne(ctx, idx); err != nil {
		return nil, err
	}
	return &NotificationJournal{col: col, now: time.Now}, nil
}

type notificationDocument struct {
	ID         string    `bson:"_id"`
	Recipient  string    `bson:"recipient"`
	Message    string    `bson:"message"`
	OccurredAt time.Time `bson:"occurred_at"`
	StoredAt   time.Time `bson:"stored_at"`
}

func (j *NotificationJournal) Send(ctx context.Context, n policies.Notification) error {
	now := j.now().UTC()
	occurred := n.OccurredAt
	if occurred.IsZero() {
		occurred = now
	}
	doc := notificationDocument{
		ID:         uuid.NewString(),
		Recipient:  n.Recipient,
		Message:    n.Message,
		OccurredAt: occurred.UTC(),
		StoredAt:   now,
	}
	if _, err := j.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("journal notification: %w", err)
	}
	return nil
}

var _ policies.Notifier = (*NotificationJournal)(nil)
