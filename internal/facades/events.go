package facades

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/sbilibin2017/matchrimoney/internal/logger"
	"github.com/sbilibin2017/matchrimoney/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=facades

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Deferrer postpones fn until the surrounding unit of work completes. It
// returns false when there is nothing to wait for.
type Deferrer func(ctx context.Context, fn func(ctx context.Context)) bool

// EventPublisher publishes domain events to Kafka.
type EventPublisher struct {
	writer   KafkaWriter
	deferrer Deferrer
}

// NewEventPublisher creates a publisher. A nil writer disables publishing.
// With a deferrer, events raised inside a request transaction are sent
// only after it commits.
func NewEventPublisher(writer KafkaWriter, deferrer Deferrer) *EventPublisher {
	return &EventPublisher{writer: writer, deferrer: deferrer}
}

// Publish sends the event keyed by its match id, or by actor when there is
// no match. Failures are logged and never returned.
func (p *EventPublisher) Publish(ctx context.Context, event models.Event) {
	if p.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "type", event.Type, "event_id", event.EventID)
		return
	}

	if p.deferrer != nil && p.deferrer(ctx, func(ctx context.Context) { p.write(ctx, event) }) {
		return
	}
	p.write(ctx, event)
}

func (p *EventPublisher) write(ctx context.Context, event models.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	key := event.MatchID.String()
	if event.MatchID == uuid.Nil {
		key = event.ActorID.String()
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "type", event.Type, "event_id", event.EventID, "error", err)
		return
	}
	logger.Log.Infow("Event published to Kafka", "type", event.Type, "event_id", event.EventID)
}

// Close closes the underlying writer.
func (p *EventPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
