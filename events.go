package spiral

import (
	"slices"
)

// EventSource delivers input events to subscribers, in the order in which
// they arrive.
type EventSource interface {
	Subscribe(fn func(Event)) Subscription
}

// Subscription is the handle returned by [EventSource.Subscribe].
type Subscription interface {
	// Unsubscribe stops delivery to the subscriber. It is safe to call more
	// than once.
	Unsubscribe()
}

// Bus is an in-process [EventSource]. Publish delivers each event
// synchronously to every subscriber, in subscription order, before
// returning. The zero value is ready to use. A Bus is not safe for
// concurrent use.
type Bus struct {
	nextID   uint64
	handlers []busHandler
}

type busHandler struct {
	id uint64
	fn func(Event)
}

// Subscribe registers fn for all subsequently published events.
func (b *Bus) Subscribe(fn func(Event)) Subscription {
	b.nextID++
	b.handlers = append(b.handlers, busHandler{id: b.nextID, fn: fn})
	return &busSubscription{bus: b, id: b.nextID}
}

// Publish delivers ev to every subscriber.
func (b *Bus) Publish(ev Event) {
	// Handlers may unsubscribe while we iterate.
	for _, h := range slices.Clone(b.handlers) {
		h.fn(ev)
	}
}

// Len returns the number of active subscriptions.
func (b *Bus) Len() int { return len(b.handlers) }

func (b *Bus) remove(id uint64) {
	b.handlers = slices.DeleteFunc(b.handlers, func(h busHandler) bool {
		return h.id == id
	})
}

type busSubscription struct {
	bus *Bus
	id  uint64
}

func (s *busSubscription) Unsubscribe() {
	if s.bus == nil {
		return
	}
	s.bus.remove(s.id)
	s.bus = nil
}
