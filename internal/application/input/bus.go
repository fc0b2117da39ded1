package input

// Listener receives published events
type Listener func(Event)

// Subscription is the handle returned by Subscribe
type Subscription struct {
	bus       *Bus
	kind      Kind
	fn        Listener
	cancelled bool
}

// Cancel removes the listener. Cancelling twice is a no-op.
func (s *Subscription) Cancel() {
	if s == nil || s.cancelled {
		return
	}
	s.cancelled = true
	s.bus.remove(s)
}

// Bus maps each event kind to its listeners in registration order.
// It is used from the game loop only and is not safe for concurrent use.
type Bus struct {
	listeners map[Kind][]*Subscription
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{listeners: make(map[Kind][]*Subscription)}
}

// Subscribe registers fn for events of kind
func (b *Bus) Subscribe(kind Kind, fn Listener) *Subscription {
	sub := &Subscription{bus: b, kind: kind, fn: fn}
	b.listeners[kind] = append(b.listeners[kind], sub)
	return sub
}

// Publish delivers e to the listeners registered for e.Kind.
// Delivery walks a snapshot: listeners added during delivery wait for the
// next event, and listeners cancelled during delivery are skipped.
func (b *Bus) Publish(e Event) {
	subs := b.listeners[e.Kind]
	if len(subs) == 0 {
		return
	}

	snapshot := make([]*Subscription, len(subs))
	copy(snapshot, subs)

	for _, sub := range snapshot {
		if sub.cancelled {
			continue
		}
		sub.fn(e)
	}
}

// Len returns the number of listeners for kind
func (b *Bus) Len(kind Kind) int {
	return len(b.listeners[kind])
}

func (b *Bus) remove(sub *Subscription) {
	subs := b.listeners[sub.kind]
	for i, s := range subs {
		if s == sub {
			b.listeners[sub.kind] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}
