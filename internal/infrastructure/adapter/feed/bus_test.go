package feed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotaryroots/hariyo-ban/internal/domain/port/persistence"
	"github.com/rotaryroots/hariyo-ban/internal/infrastructure/adapter/logger"
)

func donationInsert() persistence.ChangeEvent {
	return persistence.ChangeEvent{Table: persistence.TableDonations, Action: persistence.ActionInsert}
}

func TestBusPublishSubscribe(t *testing.T) {
	bus := NewBus(logger.NewNoopLogger())
	defer bus.Close()

	events, unsubscribe := bus.Subscribe(context.Background())
	defer unsubscribe()

	bus.Publish(donationInsert())

	select {
	case event := <-events:
		assert.Equal(t, persistence.TableDonations, event.Table)
		assert.Equal(t, persistence.ActionInsert, event.Action)
	case <-time.After(time.Second):
		t.Fatal("expected a published event")
	}
}

func TestBusFanOut(t *testing.T) {
	bus := NewBus(logger.NewNoopLogger())
	defer bus.Close()

	first, unsubFirst := bus.Subscribe(context.Background())
	defer unsubFirst()
	second, unsubSecond := bus.Subscribe(context.Background())
	defer unsubSecond()

	bus.Publish(donationInsert())

	for name, ch := range map[string]<-chan persistence.ChangeEvent{"first": first, "second": second} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatalf("subscriber %s did not receive the event", name)
		}
	}
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus(logger.NewNoopLogger())
	defer bus.Close()

	events, unsubscribe := bus.Subscribe(context.Background())
	unsubscribe()
	// Unsubscribing twice must be safe.
	unsubscribe()

	_, open := <-events
	assert.False(t, open, "channel closed after unsubscribe")

	// Publishing after unsubscribe must not panic.
	bus.Publish(donationInsert())
}

func TestBusContextCancelReleasesSubscription(t *testing.T) {
	bus := NewBus(logger.NewNoopLogger())
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	events, _ := bus.Subscribe(ctx)
	cancel()

	assert.Eventually(t, func() bool {
		select {
		case _, open := <-events:
			return !open
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond, "channel closed once the context ends")
}

func TestBusDropsEventsForSlowSubscribers(t *testing.T) {
	bus := NewBus(logger.NewNoopLogger())
	defer bus.Close()

	events, unsubscribe := bus.Subscribe(context.Background())
	defer unsubscribe()

	// Nothing drains the channel, so publishes past the buffer are dropped
	// instead of blocking.
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer+10; i++ {
			bus.Publish(donationInsert())
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publisher blocked on a slow subscriber")
	}

	require.Len(t, events, subscriberBuffer, "buffer holds at most its capacity")
}

func TestBusClose(t *testing.T) {
	bus := NewBus(logger.NewNoopLogger())

	events, _ := bus.Subscribe(context.Background())
	bus.Close()
	// Closing twice must be safe.
	bus.Close()

	_, open := <-events
	assert.False(t, open)

	// Publish and a late unsubscribe after close must not panic.
	bus.Publish(donationInsert())
}
