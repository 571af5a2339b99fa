package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"github.com/N4th0wl/HangTuah-Website/internal/domain"
)

// KafkaNotifier hands messages to the out-of-process mailer and dashboards.
// It is a read-only consumer of ledger state and never blocks a request on
// delivery semantics beyond the produce call itself.
type KafkaNotifier struct {
	Orders        *kafka.Writer
	Notifications *kafka.Writer
}

func NewKafkaNotifier(orders, notifications *kafka.Writer) *KafkaNotifier {
	return &KafkaNotifier{Orders: orders, Notifications: notifications}
}

func (n *KafkaNotifier) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	payload, _ := json.Marshal(event)
	return n.Orders.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.OrderID)),
		Value: payload,
	})
}

func (n *KafkaNotifier) PublishContactMessage(ctx context.Context, msg domain.ContactMessage) error {
	payload, _ := json.Marshal(map[string]any{"type": "contact", "data": msg})
	return n.Notifications.WriteMessages(ctx, kafka.Message{
		Key:   []byte(msg.Email),
		Value: payload,
	})
}

func (n *KafkaNotifier) PublishReservation(ctx context.Context, res domain.Reservation) error {
	payload, _ := json.Marshal(map[string]any{"type": "reservation", "data": res})
	return n.Notifications.WriteMessages(ctx, kafka.Message{
		Key:   []byte(res.Email),
		Value: payload,
	})
}
