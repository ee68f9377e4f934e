package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Publisher emits booking lifecycle events. Handlers never wait on the
// broker: publishing is asynchronous and best-effort.
type Publisher interface {
	Publish(eventType, correlationID string, payload any)
}

// NopPublisher is used when no brokers are configured and in tests.
type NopPublisher struct{}

func (NopPublisher) Publish(string, string, any) {}

// messageWriter is the slice of kafka.Writer the drain loop needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaPublisher struct {
	w        messageWriter
	producer string
	inbox    chan kafka.Message
	closeCh  chan struct{}
}

func NewKafkaPublisher(brokers []string, topic, producer string, buf int) *KafkaPublisher {
	return &KafkaPublisher{
		w: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Async:        true,
		},
		producer: producer,
		inbox:    make(chan kafka.Message, buf),
		closeCh:  make(chan struct{}),
	}
}

// Start drains the inbox until ctx is cancelled, then flushes whatever
// is still queued before closing the writer. The inbox channel is never
// closed: a Publish racing shutdown enqueues into the buffer (or drops)
// instead of panicking, and anything left after the flush is discarded
// with the loop.
func (p *KafkaPublisher) Start(ctx context.Context) {
	go func() {
		defer close(p.closeCh)
		for {
			select {
			case <-ctx.Done():
				p.flush()
				_ = p.w.Close()
				return
			case m := <-p.inbox:
				p.write(m)
			}
		}
	}()
}

func (p *KafkaPublisher) flush() {
	for {
		select {
		case m := <-p.inbox:
			p.write(m)
		default:
			return
		}
	}
}

func (p *KafkaPublisher) write(m kafka.Message) {
	if err := p.w.WriteMessages(context.Background(), m); err != nil {
		slog.Error("event publish failed", "error", err)
	}
}

func (p *KafkaPublisher) Publish(eventType, correlationID string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		slog.Error("event payload marshal failed", "event_type", eventType, "error", err)
		return
	}
	env := Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  1,
		OccurredAt:    time.Now(),
		Producer:      p.producer,
		CorrelationID: correlationID,
		Payload:       raw,
	}
	value, err := json.Marshal(env)
	if err != nil {
		slog.Error("event envelope marshal failed", "event_type", eventType, "error", err)
		return
	}

	select {
	case p.inbox <- kafka.Message{Key: []byte(correlationID), Value: value, Time: time.Now()}:
	default:
		// full inbox: drop rather than stall a request handler
		slog.Warn("event dropped, inbox full", "event_type", eventType)
	}
}

// WaitClosed blocks until the drain loop has flushed and exited.
func (p *KafkaPublisher) WaitClosed() { <-p.closeCh }
