// Package stream fans out typed events to live WebSocket subscribers.
package stream

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/logger"
	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/models"
)

const defaultSubscriberQueueSize = 64

// Broadcaster owns the live subscriber set. Delivery is best-effort and
// at-most-once per subscriber per broadcast: a subscriber that cannot keep
// up with its bounded outbound queue is dropped rather than allowed to
// stall the broadcaster or its peers.
type Broadcaster struct {
	mu          sync.RWMutex
	subscribers map[*Subscriber]struct{}
	queueSize   int
	logger      logger.Logger
}

// NewBroadcaster creates a broadcaster with the given per-subscriber queue
// size. Zero or negative falls back to the default.
func NewBroadcaster(queueSize int, log logger.Logger) *Broadcaster {
	if queueSize <= 0 {
		queueSize = defaultSubscriberQueueSize
	}

	return &Broadcaster{
		subscribers: make(map[*Subscriber]struct{}),
		queueSize:   queueSize,
		logger:      log,
	}
}

// Register adds a new subscriber to the live set and returns its handle.
func (b *Broadcaster) Register() *Subscriber {
	sub := &Subscriber{
		send: make(chan []byte, b.queueSize),
	}

	b.mu.Lock()
	b.subscribers[sub] = struct{}{}
	count := len(b.subscribers)
	b.mu.Unlock()

	b.logger.Debug().Int("subscribers", count).Msg("Subscriber registered")

	return sub
}

// Unregister removes a subscriber from the live set and closes its queue.
// Unregistering an already-removed subscriber is a no-op.
func (b *Broadcaster) Unregister(sub *Subscriber) {
	b.mu.Lock()
	_, ok := b.subscribers[sub]
	if ok {
		delete(b.subscribers, sub)
	}
	count := len(b.subscribers)
	b.mu.Unlock()

	if !ok {
		return
	}

	sub.close()

	b.logger.Debug().Int("subscribers", count).Msg("Subscriber unregistered")
}

// Broadcast delivers an event envelope to every connected subscriber. The
// payload is marshaled once; each hand-off is non-blocking, and any
// subscriber whose queue is full is removed from the live set without
// affecting delivery to the others.
func (b *Broadcaster) Broadcast(eventType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		b.logger.Error().Err(err).Str("event_type", eventType).Msg("Failed to marshal broadcast payload")
		return
	}

	message, err := json.Marshal(models.StreamMessage{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		b.logger.Error().Err(err).Str("event_type", eventType).Msg("Failed to marshal broadcast envelope")
		return
	}

	for _, sub := range b.snapshot() {
		if !sub.enqueue(message) {
			b.logger.Warn().
				Str("event_type", eventType).
				Msg("Subscriber queue full, dropping subscriber")
			b.Unregister(sub)
		}
	}
}

// Count returns the number of live subscribers.
func (b *Broadcaster) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subscribers)
}

// snapshot copies the subscriber set so delivery iterates without holding
// the lock while Unregister mutates it.
func (b *Broadcaster) snapshot() []*Subscriber {
	b.mu.RLock()
	defer b.mu.RUnlock()

	subs := make([]*Subscriber, 0, len(b.subscribers))
	for sub := range b.subscribers {
		subs = append(subs, sub)
	}

	return subs
}
