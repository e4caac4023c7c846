// Package feed provides the in-process change notification bus the realtime
// refresh controller subscribes to. Writers publish after committing; the bus
// never blocks a publisher on a slow subscriber.
package feed

import (
	"context"
	"sync"

	coreport "github.com/rotaryroots/hariyo-ban/internal/domain/port/core"
	"github.com/rotaryroots/hariyo-ban/internal/domain/port/persistence"
)

// subscriberBuffer bounds each subscriber channel. A full buffer drops the
// event; the periodic refresh backstop covers anything dropped.
const subscriberBuffer = 16

// Bus is an in-process implementation of the change feed
type Bus struct {
	mu          sync.Mutex
	subscribers map[int]chan persistence.ChangeEvent
	nextID      int
	closed      bool
	logger      coreport.Logger
}

// NewBus creates a new change notification bus
func NewBus(logger coreport.Logger) *Bus {
	return &Bus{
		subscribers: make(map[int]chan persistence.ChangeEvent),
		logger:      logger,
	}
}

// Publish delivers an event to all current subscribers without blocking
func (b *Bus) Publish(event persistence.ChangeEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	for id, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
			b.logger.Warn("Change event dropped for slow subscriber", map[string]any{
				"subscriber": id,
				"table":      event.Table,
			})
		}
	}
}

// Subscribe registers a subscriber scoped to ctx. The returned unsubscribe
// function releases the subscription and closes the channel; calling it more
// than once is safe.
func (b *Bus) Subscribe(ctx context.Context) (<-chan persistence.ChangeEvent, func()) {
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	ch := make(chan persistence.ChangeEvent, subscriberBuffer)
	b.subscribers[id] = ch
	b.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.subscribers[id]; ok {
				delete(b.subscribers, id)
				close(ch)
			}
		})
	}

	// Release the subscription when the caller's context ends
	go func() {
		<-ctx.Done()
		unsubscribe()
	}()

	return ch, unsubscribe
}

// Close drops all subscribers and rejects further publishes
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subscribers {
		delete(b.subscribers, id)
		close(ch)
	}
}
