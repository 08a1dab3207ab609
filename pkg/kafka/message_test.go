package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	kafka_config "roombook/pkg/kafka/config"
	"roombook/pkg/logger"
)

func TestMessageBuilder_Build(t *testing.T) {
	ts := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	msg, err := NewMessage().
		WithKey("A").
		WithValue(map[string]string{"id": "b-1"}).
		WithTimestamp(ts).
		WithEventType("booking.created").
		WithCorrelationID("").
		WithSource("roombook").
		Build()
	if err != nil {
		t.Fatalf("Build() returned error: %v", err)
	}

	if msg.Key != "A" {
		t.Errorf("expected key A, got %q", msg.Key)
	}
	if msg.GetEventID() == "" {
		t.Errorf("expected a generated event id")
	}
	if msg.GetEventType() != "booking.created" {
		t.Errorf("unexpected event type %q", msg.GetEventType())
	}
	if _, ok := msg.Headers[HeaderCorrelationID]; ok {
		t.Errorf("empty correlation id should not be set")
	}
	if !msg.Timestamp.Equal(ts) {
		t.Errorf("unexpected timestamp %s", msg.Timestamp)
	}

	var decoded map[string]string
	if err := msg.DecodeValue(&decoded); err != nil {
		t.Fatalf("DecodeValue() returned error: %v", err)
	}
	if decoded["id"] != "b-1" {
		t.Errorf("unexpected payload %v", decoded)
	}
}

func TestMessageBuilder_InvalidValue(t *testing.T) {
	_, err := NewMessage().WithKey("A").WithValue(make(chan int)).Build()
	if !errors.Is(err, ErrInvalidMessage) {
		t.Fatalf("expected ErrInvalidMessage, got %v", err)
	}
}

func TestNewProducer_Validation(t *testing.T) {
	log := logger.NewNop()
	cfg := &kafka_config.Config{Brokers: []string{"localhost:9092"}}

	if _, err := NewProducer(nil, "bookings.events", "", log); err == nil {
		t.Errorf("expected error for nil config")
	}
	if _, err := NewProducer(&kafka_config.Config{}, "bookings.events", "", log); err == nil {
		t.Errorf("expected error for missing brokers")
	}
	if _, err := NewProducer(cfg, "", "", log); err == nil {
		t.Errorf("expected error for empty topic")
	}
}

func TestProducer_PublishRejectsInvalidMessages(t *testing.T) {
	cfg := &kafka_config.Config{
		Brokers:             []string{"localhost:9092"},
		ProducerMaxAttempts: 1,
		ProducerCompression: "none",
	}
	producer, err := NewProducer(cfg, "bookings.events", "", logger.NewNop())
	if err != nil {
		t.Fatalf("NewProducer() returned error: %v", err)
	}

	ctx := context.Background()
	if err := producer.Publish(ctx, Message{Value: []byte("{}")}); !errors.Is(err, ErrEmptyKey) {
		t.Errorf("expected ErrEmptyKey, got %v", err)
	}
	if err := producer.Publish(ctx, Message{Key: "A"}); !errors.Is(err, ErrEmptyValue) {
		t.Errorf("expected ErrEmptyValue, got %v", err)
	}

	if err := producer.Close(); err != nil {
		t.Fatalf("Close() returned error: %v", err)
	}
	if err := producer.Publish(ctx, Message{Key: "A", Value: []byte("{}")}); !errors.Is(err, ErrProducerClosed) {
		t.Errorf("expected ErrProducerClosed, got %v", err)
	}
}
