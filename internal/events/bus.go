package events

import (
	"sync"

	"github.com/wolfman30/medicare-clinic/pkg/logging"
)

// Handler receives published envelopes. Handlers run synchronously on the
// publishing goroutine and must not block.
type Handler func(Envelope)

// Bus fans envelopes out to in-process subscribers.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]Handler
	logger *logging.Logger
}

// NewBus creates an empty bus.
func NewBus(logger *logging.Logger) *Bus {
	if logger == nil {
		logger = logging.Default()
	}
	return &Bus{subs: make(map[int]Handler), logger: logger}
}

// Subscribe registers h and returns a function that removes it.
func (b *Bus) Subscribe(h Handler) func() {
	if h == nil {
		return func() {}
	}
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = h
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// Publish builds an envelope for evt and delivers it to every subscriber.
func (b *Bus) Publish(aggregate string, evt CanonicalEvent) {
	if b == nil {
		return
	}
	env, err := NewEnvelope(aggregate, evt)
	if err != nil {
		b.logger.Warn("events: dropping event", "error", err)
		return
	}
	b.Deliver(env)
}

// Deliver hands a prepared envelope to every subscriber.
func (b *Bus) Deliver(env Envelope) {
	if b == nil {
		return
	}
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs))
	for _, h := range b.subs {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(env)
	}
}

// Len reports the number of active subscribers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
