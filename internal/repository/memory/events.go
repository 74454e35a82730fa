package memory

import (
	"context"
	"sync"
)

type Event struct {
	Type string
	Key  string
	Data interface{}
}

// EventRecorder keeps published events in memory.
type EventRecorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *EventRecorder) Publish(ctx context.Context, eventType string, key string, data interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, Event{Type: eventType, Key: key, Data: data})
}

func (r *EventRecorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Event(nil), r.events...)
}

func (r *EventRecorder) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	types := make([]string, 0, len(r.events))
	for _, e := range r.events {
		types = append(types, e.Type)
	}
	return types
}
