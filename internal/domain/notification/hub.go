package notification

import (
	"context"
	"fmt"
	"sync"
)

// Subscriber receives booking completion messages.
type Subscriber interface {
	Name() string
	Update(ctx context.Context, message string) error
}

// Hub keeps subscribers in registration order. Duplicates are kept and
// nothing is ever removed.
type Hub struct {
	mu          sync.RWMutex
	subscribers []Subscriber
}

func NewHub() *Hub {
	return &Hub{}
}

func (h *Hub) AddObserver(s Subscriber) {
	if s == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subscribers = append(h.subscribers, s)
}

// NotifyAll delivers message to every subscriber in order. The first delivery
// error stops the broadcast and is returned; nothing is retried.
func (h *Hub) NotifyAll(ctx context.Context, message string) error {
	for _, s := range h.Subscribers() {
		if err := s.Update(ctx, message); err != nil {
			return fmt.Errorf("notify %s: %w", s.Name(), err)
		}
	}
	return nil
}

// Subscribers returns a copy of the current registrations.
func (h *Hub) Subscribers() []Subscriber {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]Subscriber, len(h.subscribers))
	copy(out, h.subscribers)
	return out
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
