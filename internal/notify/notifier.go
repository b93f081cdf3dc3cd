package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"lanebook/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type EventType string

const (
	EventHoldCreated      EventType = "hold.created"
	EventHoldReleased     EventType = "hold.released"
	EventBookingCreated   EventType = "booking.created"
	EventBookingConfirmed EventType = "booking.confirmed"
	EventBookingCancelled EventType = "booking.cancelled"
)

// Event is the notification payload published after a state change. Keys
// are the group identifier (hold token) so all events for one session land
// in the same partition.
type Event struct {
	Type       EventType `json:"type"`
	VenueID    uuid.UUID `json:"venue_id"`
	HoldToken  uuid.UUID `json:"hold_token"`
	BookingIDs []string  `json:"booking_ids,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Notifier interface {
	Publish(event Event)
}

// KafkaNotifier publishes events asynchronously. Publishing never blocks
// the request path: events are buffered and a full buffer drops the event
// with a warning. Notifications are best-effort side effects, not part of
// the booking state machine.
type KafkaNotifier struct {
	writer *kafka.Writer
	events chan Event
	done   chan struct{}
	once   sync.Once
}

func NewKafkaNotifier(cfg config.KafkaConfig) *KafkaNotifier {
	n := &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Topic:        cfg.Topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
		events: make(chan Event, cfg.Buffer),
		done:   make(chan struct{}),
	}
	go n.run()
	return n
}

func (n *KafkaNotifier) Publish(event Event) {
	select {
	case n.events <- event:
	default:
		slog.Warn("notification buffer full, dropping event", "type", event.Type, "hold_token", event.HoldToken)
	}
}

func (n *KafkaNotifier) run() {
	defer close(n.done)
	for event := range n.events {
		payload, err := json.Marshal(event)
		if err != nil {
			slog.Error("failed to marshal notification event", "type", event.Type, "error", err)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err = n.writer.WriteMessages(ctx, kafka.Message{
			Key:   []byte(event.HoldToken.String()),
			Value: payload,
		})
		cancel()
		if err != nil {
			slog.Error("failed to publish notification event", "type", event.Type, "error", err)
		}
	}
}

// Close drains buffered events and shuts down the writer.
func (n *KafkaNotifier) Close() error {
	n.once.Do(func() {
		close(n.events)
	})
	<-n.done
	return n.writer.Close()
}

// NopNotifier discards all events.
type NopNotifier struct{}

func (NopNotifier) Publish(Event) {}
