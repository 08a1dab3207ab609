// Package events publishes booking lifecycle notifications after a mutation
// has been committed to the store.
package events

import (
	"context"
	"fmt"
	"time"

	"roombook/pkg/kafka"
	"roombook/pkg/model"
)

type Type string

const (
	BookingCreated   Type = "booking.created"
	BookingUpdated   Type = "booking.updated"
	BookingCancelled Type = "booking.cancelled"
)

const (
	SchemaVersion = "1"
	Source        = "roombook"
)

type Publisher interface {
	Publish(ctx context.Context, eventType Type, booking *model.Booking) error
	Close() error
}

// Payload is the JSON body of every booking event.
type Payload struct {
	Type       Type           `json:"type"`
	Booking    *model.Booking `json:"booking"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// MessageProducer is the subset of kafka.Producer the publisher needs.
type MessageProducer interface {
	Publish(ctx context.Context, msg kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	producer MessageProducer
}

// NewKafkaPublisher keys every message by room ID so events for one room
// stay on a single partition.
func NewKafkaPublisher(producer MessageProducer) Publisher {
	return &kafkaPublisher{producer: producer}
}

func (p *kafkaPublisher) Publish(ctx context.Context, eventType Type, booking *model.Booking) error {
	if booking == nil {
		return fmt.Errorf("%w: nil booking", kafka.ErrInvalidMessage)
	}

	now := time.Now().UTC()
	msg, err := kafka.NewMessage().
		WithKey(booking.RoomID).
		WithValue(Payload{Type: eventType, Booking: booking, OccurredAt: now}).
		WithTimestamp(now).
		WithEventType(string(eventType)).
		WithSchemaVersion(SchemaVersion).
		WithSource(Source).
		WithCorrelationID(CorrelationIDFromContext(ctx)).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build %s event: %w", eventType, err)
	}

	if err := p.producer.Publish(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.producer.Close()
}

type noopPublisher struct{}

// NewNoopPublisher is used when Kafka is disabled.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, Type, *model.Booking) error { return nil }

func (noopPublisher) Close() error { return nil }

type correlationIDKey struct{}

func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

func CorrelationIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}
