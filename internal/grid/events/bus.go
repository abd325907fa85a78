// Package events carries the grid engine's selection notifications.
package events

import (
	"fmt"
	"sync"

	"gridsel/internal/grid/geometry"
	"gridsel/internal/grid/selection"
)

// ChangedEvent is published on every selection state change. Ranges is the
// normalized public shape regardless of mode and is empty after a clear.
type ChangedEvent struct {
	Mode   selection.Mode
	Ranges []geometry.PublicRange
}

// Bus is a simple interface for publishing selection events.
type Bus interface {
	Publish(event interface{})
	Subscribe(eventType string, handler func(interface{}))
}

// Dispatcher is a synchronous event bus. Handlers run on the publishing
// goroutine so that emission order relative to render passes is preserved.
type Dispatcher struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
}

// NewDispatcher creates a new dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type. The type key is the
// event's Go type name as produced by EventType.
func (d *Dispatcher) Subscribe(eventType string, handler func(interface{})) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.listeners[eventType] = append(d.listeners[eventType], handler)
}

// Publish delivers an event to all listeners registered for its type.
func (d *Dispatcher) Publish(event interface{}) {
	d.mu.RLock()
	handlers := append([]func(interface{}){}, d.listeners[EventType(event)]...)
	d.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// EventType returns the subscription key for an event value.
func EventType(event interface{}) string {
	return fmt.Sprintf("%T", event)
}

// NullBus is a no-op implementation of Bus.
type NullBus struct{}

func (n *NullBus) Publish(event interface{})                             {}
func (n *NullBus) Subscribe(eventType string, handler func(interface{})) {}
