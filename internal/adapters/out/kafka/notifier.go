// Package kafka delivers notification outbox messages to a Kafka topic. The
// downstream notification service fans them out to email and in-app channels.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	skafka "github.com/segmentio/kafka-go"

	"freightflow/internal/core/ports"
)

// Writer is the subset of segmentio kafka.Writer the notifier needs. It keeps
// the notifier testable without a broker.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...skafka.Message) error
	Close() error
}

// envelope is the wire format of one notification event.
type envelope struct {
	ID        string         `json:"id"`
	Audience  string         `json:"audience"`
	ShipperID string         `json:"shipperId,omitempty"`
	Template  string         `json:"template"`
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"createdAt"`
}

// Notifier publishes outbox messages to Kafka, implementing ports.Notifier.
type Notifier struct {
	writer Writer
}

// NewNotifier creates a notifier over a broker connection. Messages are keyed
// by template so a consumer partition sees each notification kind in order.
func NewNotifier(brokerURL, topic string) *Notifier {
	return &Notifier{
		writer: &skafka.Writer{
			Addr:     skafka.TCP(brokerURL),
			Topic:    topic,
			Balancer: &skafka.LeastBytes{},
		},
	}
}

// NewNotifierWithWriter allows injecting a test writer.
func NewNotifierWithWriter(w Writer) *Notifier {
	return &Notifier{writer: w}
}

// Publish writes one outbox message to the topic.
func (n *Notifier) Publish(ctx context.Context, message ports.OutboxMessage) error {
	event := envelope{
		ID:        message.ID.String(),
		Audience:  string(message.Audience),
		Template:  message.Template,
		Data:      message.Payload,
		CreatedAt: message.CreatedAt,
	}
	if err := message.ShipperID.Validate(); err == nil {
		event.ShipperID = message.ShipperID.String()
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return n.writer.WriteMessages(ctx, skafka.Message{
		Key:   []byte(message.Template),
		Value: value,
	})
}

// Close closes the underlying writer.
func (n *Notifier) Close() error {
	return n.writer.Close()
}
