package events

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	TopicAppointmentCreated      = "appointment.created"
	TopicAppointmentTransitioned = "appointment.transitioned"
	TopicAppointmentRescheduled  = "appointment.rescheduled"
)

// Topics lists every topic the core publishes.
var Topics = []string{
	TopicAppointmentCreated,
	TopicAppointmentTransitioned,
	TopicAppointmentRescheduled,
}

// AppointmentPayload is the appointment snapshot handed to subscribers.
type AppointmentPayload struct {
	AppointmentID string    `json:"appointment_id"`
	BarberID      string    `json:"barber_id"`
	CustomerID    *string   `json:"customer_id,omitempty"`
	ActorID       *string   `json:"actor_id,omitempty"`
	ActorRole     string    `json:"actor_role,omitempty"`
	Action        string    `json:"action,omitempty"`
	From          string    `json:"from,omitempty"`
	Status        string    `json:"status"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	PreviousStart string    `json:"previous_start,omitempty"`
	WalkIn        bool      `json:"walk_in,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type Event struct {
	Topic     string
	Payload   []byte
	CreatedAt time.Time
}

// Decode unmarshals the JSON payload into dst.
func (e *Event) Decode(dst any) error {
	return json.Unmarshal(e.Payload, dst)
}

type Handler func(event *Event) error

// Publisher is what use cases depend on.
type Publisher interface {
	PublishJSON(topic string, payload any) error
}

// Bus is a fire-and-forget in-process pub/sub. Publish only enqueues; a
// single worker delivers to subscribers in publish order. When the buffer
// is full the event is dropped and logged.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string][]Handler
	closed      bool

	queue  chan *Event
	done   chan struct{}
	logger *zerolog.Logger

	onDrop func(topic string)
}

func NewBus(buffer int, logger *zerolog.Logger) *Bus {
	if buffer <= 0 {
		buffer = 100
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	b := &Bus{
		subscribers: make(map[string][]Handler),
		queue:       make(chan *Event, buffer),
		done:        make(chan struct{}),
		logger:      logger,
	}

	go b.worker()
	return b
}

// OnDrop registers a callback run for every dropped event.
func (b *Bus) OnDrop(fn func(topic string)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onDrop = fn
}

func (b *Bus) Subscribe(topic string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[topic] = append(b.subscribers[topic], handler)
}

// Publish enqueues event and reports whether it was accepted.
func (b *Bus) Publish(event *Event) bool {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return false
	}

	select {
	case b.queue <- event:
		return true
	default:
		b.logger.Warn().Str("topic", event.Topic).Msg("event queue full, dropping event")
		if b.onDrop != nil {
			b.onDrop(event.Topic)
		}
		return false
	}
}

func (b *Bus) PublishJSON(topic string, payload any) error {
	if b == nil {
		return nil
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	b.Publish(&Event{Topic: topic, Payload: raw, CreatedAt: time.Now()})
	return nil
}

// Close stops accepting events and waits until the queue is drained.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	close(b.queue)
	b.mu.Unlock()

	<-b.done
}

func (b *Bus) worker() {
	defer close(b.done)

	for ev := range b.queue {
		b.mu.RLock()
		handlers := append([]Handler(nil), b.subscribers[ev.Topic]...)
		b.mu.RUnlock()

		for _, h := range handlers {
			if err := h(ev); err != nil {
				b.logger.Error().Err(err).Str("topic", ev.Topic).Msg("event handler failed")
			}
		}
	}
}
