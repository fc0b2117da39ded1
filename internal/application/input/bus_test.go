package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishInRegistrationOrder(t *testing.T) {
	bus := NewBus()
	var order []string

	bus.Subscribe(KindTap, func(Event) { order = append(order, "first") })
	bus.Subscribe(KindTap, func(Event) { order = append(order, "second") })
	bus.Subscribe(KindSwipe, func(Event) { order = append(order, "swipe") })

	bus.Publish(Event{Kind: KindTap, X: 3, Y: 4})

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestBus_PublishWithoutListeners(t *testing.T) {
	bus := NewBus()

	assert.NotPanics(t, func() { bus.Publish(Event{Kind: KindSwipe}) })
}

func TestBus_EventPayload(t *testing.T) {
	bus := NewBus()
	var got Event
	bus.Subscribe(KindTap, func(e Event) { got = e })

	bus.Publish(Event{Kind: KindTap, X: 10, Y: 20})

	assert.Equal(t, 10, got.X)
	assert.Equal(t, 20, got.Y)
}

func TestSubscription_Cancel(t *testing.T) {
	bus := NewBus()
	calls := 0
	sub := bus.Subscribe(KindTap, func(Event) { calls++ })

	bus.Publish(Event{Kind: KindTap})
	sub.Cancel()
	sub.Cancel()
	bus.Publish(Event{Kind: KindTap})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, bus.Len(KindTap))
}

func TestSubscription_CancelNil(t *testing.T) {
	var sub *Subscription

	assert.NotPanics(t, sub.Cancel)
}

func TestBus_CancelDuringDelivery(t *testing.T) {
	bus := NewBus()
	var order []string
	var second *Subscription

	bus.Subscribe(KindTap, func(Event) {
		order = append(order, "first")
		second.Cancel()
	})
	second = bus.Subscribe(KindTap, func(Event) { order = append(order, "second") })
	bus.Subscribe(KindTap, func(Event) { order = append(order, "third") })

	bus.Publish(Event{Kind: KindTap})

	assert.Equal(t, []string{"first", "third"}, order)
	assert.Equal(t, 2, bus.Len(KindTap))
}

func TestBus_SelfCancelDuringDelivery(t *testing.T) {
	bus := NewBus()
	calls := 0
	var sub *Subscription
	sub = bus.Subscribe(KindTap, func(Event) {
		calls++
		sub.Cancel()
	})
	bus.Subscribe(KindTap, func(Event) { calls++ })

	bus.Publish(Event{Kind: KindTap})
	bus.Publish(Event{Kind: KindTap})

	assert.Equal(t, 3, calls)
}

func TestBus_SubscribeDuringDelivery(t *testing.T) {
	bus := NewBus()
	added := 0
	bus.Subscribe(KindTap, func(Event) {
		bus.Subscribe(KindTap, func(Event) { added++ })
	})

	bus.Publish(Event{Kind: KindTap})
	require.Equal(t, 0, added, "new listener waits for the next event")

	bus.Publish(Event{Kind: KindTap})
	assert.Equal(t, 1, added)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "tap", KindTap.String())
	assert.Equal(t, "swipe", KindSwipe.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
