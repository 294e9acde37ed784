package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wolfman30/medicare-clinic/internal/events"
	"github.com/wolfman30/medicare-clinic/pkg/logging"
)

// SessionGauge receives the number of live sessions.
type SessionGauge interface {
	SetActiveSessions(n int)
}

// Registry owns the stores of every connected client.
type Registry struct {
	mu       sync.RWMutex
	stores   map[string]*Store
	seed     func() Seed
	bus      *events.Bus
	idleTTL  time.Duration
	interval time.Duration
	gauge    SessionGauge
	logger   *logging.Logger
}

// NewRegistry creates an empty registry. Every new store is seeded from
// seed; a nil seed uses DemoSeed.
func NewRegistry(seed func() Seed, bus *events.Bus, logger *logging.Logger) *Registry {
	if seed == nil {
		seed = DemoSeed
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Registry{
		stores:   make(map[string]*Store),
		seed:     seed,
		bus:      bus,
		idleTTL:  30 * time.Minute,
		interval: time.Minute,
		logger:   logger,
	}
}

// WithIdleTTL sets how long an untouched session survives.
func (r *Registry) WithIdleTTL(d time.Duration) *Registry {
	if d > 0 {
		r.idleTTL = d
	}
	return r
}

// WithSweepInterval sets how often Run sweeps.
func (r *Registry) WithSweepInterval(d time.Duration) *Registry {
	if d > 0 {
		r.interval = d
	}
	return r
}

func (r *Registry) WithGauge(g SessionGauge) *Registry {
	r.gauge = g
	return r
}

// Bus is the bus every store publishes on.
func (r *Registry) Bus() *events.Bus { return r.bus }

// Create registers a freshly seeded store under a new id.
func (r *Registry) Create() *Store {
	st := New(uuid.New().String(), r.seed(), r.bus)

	r.mu.Lock()
	r.stores[st.id] = st
	n := len(r.stores)
	r.mu.Unlock()

	r.reportSize(n)
	r.logger.Debug("session created", "session_id", st.id)
	return st
}

// Get returns the store for id and marks it as used.
func (r *Registry) Get(id string) (*Store, bool) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, false
	}
	r.mu.RLock()
	st, ok := r.stores[id]
	r.mu.RUnlock()
	if ok {
		st.touch()
	}
	return st, ok
}

// Has reports whether id names a live session without marking it as used.
func (r *Registry) Has(id string) bool {
	id = strings.TrimSpace(id)
	if id == "" {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.stores[id]
	return ok
}

// Resolve returns the store for id, creating a new one when id is unknown.
// The boolean reports whether a store was created.
func (r *Registry) Resolve(id string) (*Store, bool) {
	if st, ok := r.Get(id); ok {
		return st, false
	}
	return r.Create(), true
}

// Remove drops the store for id.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	delete(r.stores, id)
	n := len(r.stores)
	r.mu.Unlock()
	r.reportSize(n)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.stores)
}

// Sweep evicts sessions idle since before now minus the TTL and returns how
// many were dropped.
func (r *Registry) Sweep(now time.Time) int {
	cutoff := now.Add(-r.idleTTL)

	r.mu.Lock()
	evicted := 0
	for id, st := range r.stores {
		if st.idleSince().Before(cutoff) {
			delete(r.stores, id)
			evicted++
		}
	}
	n := len(r.stores)
	r.mu.Unlock()

	if evicted > 0 {
		r.reportSize(n)
		r.logger.Info("evicted idle sessions", "count", evicted, "remaining", n)
	}
	return evicted
}

// Run sweeps on the configured interval until ctx is done.
func (r *Registry) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep(nowFunc())
		}
	}
}

func (r *Registry) reportSize(n int) {
	if r.gauge != nil {
		r.gauge.SetActiveSessions(n)
	}
}
