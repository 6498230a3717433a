package session

import (
	"context"
	"sync"
	"time"

	"robotshop-web/internal/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const eventBuffer = 16

type entry struct {
	store       *Store
	lastSeen    time.Time
	unsubscribe func()
}

// Registry maps browser session ids to their Store. Sessions that have not
// been touched for longer than the TTL are swept by Run.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
	logger   zerolog.Logger
}

func NewRegistry(ttl time.Duration, logger zerolog.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
		logger:   logger,
	}
}

// Create starts a fresh, uninitialized session and returns its id.
func (r *Registry) Create() (string, *Store) {
	id := uuid.NewString()
	store := NewStore()
	events, unsubscribe := store.Subscribe(eventBuffer)

	r.mu.Lock()
	r.sessions[id] = &entry{store: store, lastSeen: r.now(), unsubscribe: unsubscribe}
	n := len(r.sessions)
	r.mu.Unlock()

	go r.watch(id, events)

	metrics.SetActiveSessions(n)
	r.logger.Debug().Str("session_id", id).Msg("Session created")
	return id, store
}

// watch reports the changes of one session until it is unsubscribed.
func (r *Registry) watch(id string, events <-chan Event) {
	for ev := range events {
		metrics.ObserveSessionEvent(string(ev.Kind))
		if ev.Kind != EventCart {
			r.logger.Debug().Str("session_id", id).Str("kind", string(ev.Kind)).Bool("logged_in", ev.LoggedIn).Msg("Session changed")
			continue
		}
		r.logger.Debug().
			Str("session_id", id).
			Float64("total", ev.Cart.Total).
			Float64("items_subtotal", ev.Cart.ItemsSubtotal()).
			Int("items", len(ev.Cart.Items)).
			Msg("Cart changed")
	}
}

// Get returns the store for id and marks it as recently used.
func (r *Registry) Get(id string) (*Store, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	e.lastSeen = r.now()
	return e.store, true
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	if e, ok := r.sessions[id]; ok {
		e.unsubscribe()
		delete(r.sessions, id)
	}
	n := len(r.sessions)
	r.mu.Unlock()

	metrics.SetActiveSessions(n)
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep drops sessions idle for longer than the TTL and reports how many
// were removed.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}

	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	removed := 0
	for id, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			e.unsubscribe()
			delete(r.sessions, id)
			removed++
		}
	}
	n := len(r.sessions)
	r.mu.Unlock()

	if removed > 0 {
		metrics.SetActiveSessions(n)
		r.logger.Info().Int("removed", removed).Int("active", n).Msg("Idle sessions swept")
	}
	return removed
}

// Close drops every session and stops their watchers.
func (r *Registry) Close() {
	r.mu.Lock()
	for id, e := range r.sessions {
		e.unsubscribe()
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	metrics.SetActiveSessions(0)
}

// Run sweeps idle sessions every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}
