// Package events fans device transition reports out to websocket
// subscribers.
package events

import (
	"log/slog"
	"sync"

	"github.com/micro-ha/remotectl/internal/domain/device"
)

const subscriberBuffer = 16

// Hub distributes transition events to subscribers. It implements
// device.Notifier so devices can report straight into it.
type Hub struct {
	mu          sync.Mutex
	subscribers map[chan device.Event]struct{}
	logger      *slog.Logger
}

// NewHub creates an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		subscribers: map[chan device.Event]struct{}{},
		logger:      logger,
	}
}

// Notify delivers one event to every subscriber. A subscriber whose
// buffer is full misses the event rather than blocking the device
// transition that produced it.
func (h *Hub) Notify(e device.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subscribers {
		select {
		case ch <- e:
		default:
			h.logger.Warn("dropping event for slow subscriber", "device", e.Name, "state", e.State)
		}
	}
}

// Subscribe registers a new event channel.
func (h *Hub) Subscribe() chan device.Event {
	ch := make(chan device.Event, subscriberBuffer)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subscribers[ch] = struct{}{}
	return ch
}

// Unsubscribe removes and closes a subscriber channel.
func (h *Hub) Unsubscribe(ch chan device.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subscribers[ch]; !ok {
		return
	}
	delete(h.subscribers, ch)
	close(ch)
}

// SubscriberCount returns the number of attached subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}
