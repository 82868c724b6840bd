// Package events publishes domain events (medico.criado, consulta.atualizada,
// ...) to Kafka after the owning write has committed.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// Event is the JSON document written to the topic.
type Event struct {
	ID          uuid.UUID   `json:"id"`
	Type        string      `json:"tipo"`
	AggregateID uuid.UUID   `json:"agregadoId"`
	OccurredAt  time.Time   `json:"ocorridoEm"`
	Data        interface{} `json:"dados,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

// KafkaPublisher writes events keyed by aggregate id so that events of one
// record land on the same partition.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: kafka.NewWriter(kafka.WriterConfig{
			Brokers:      brokers,
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: int(kafka.RequireOne),
		}),
	}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev Event) error {
	msg, err := toMessage(ev)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("write event %s: %w", ev.Type, err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error { return p.writer.Close() }

func toMessage(ev Event) (kafka.Message, error) {
	value, err := json.Marshal(ev)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode event %s: %w", ev.Type, err)
	}
	return kafka.Message{
		Key:   []byte(ev.AggregateID.String()),
		Value: value,
		Time:  ev.OccurredAt,
		Headers: []kafka.Header{
			{Key: "tipo", Value: []byte(ev.Type)},
		},
	}, nil
}

// NopPublisher discards events. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }

// MemoryPublisher keeps events in memory.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []Event
	Err    error
}

func (m *MemoryPublisher) Publish(_ context.Context, ev Event) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, ev)
	return nil
}

func (m *MemoryPublisher) Close() error { return nil }

// Events returns a copy of everything published so far.
func (m *MemoryPublisher) Events() []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Event(nil), m.events...)
}

// Emitter is what services depend on.
type Emitter interface {
	Emit(ctx context.Context, eventType string, aggregateID uuid.UUID, data interface{})
}

// Bus stamps and publishes events. The database write an event describes
// has already committed when Emit runs, so a publish failure is logged
// and the request still succeeds.
type Bus struct {
	pub    Publisher
	logger zerolog.Logger
	now    func() time.Time
}

func NewBus(pub Publisher, logger zerolog.Logger) *Bus {
	if pub == nil {
		pub = NopPublisher{}
	}
	return &Bus{pub: pub, logger: logger, now: time.Now}
}

func (b *Bus) Emit(ctx context.Context, eventType string, aggregateID uuid.UUID, data interface{}) {
	ev := Event{
		ID:          uuid.New(),
		Type:        eventType,
		AggregateID: aggregateID,
		OccurredAt:  b.now().UTC(),
		Data:        data,
	}
	if err := b.pub.Publish(ctx, ev); err != nil {
		b.logger.Warn().Err(err).
			Str("event_type", eventType).
			Str("aggregate_id", aggregateID.String()).
			Msg("publish domain event")
	}
}

// Close flushes and closes the underlying publisher.
func (b *Bus) Close() error { return b.pub.Close() }
