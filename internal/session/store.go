// Package session holds the per-browser shopping session: who the shopper is,
// what is in their cart and whether they are logged in.
package session

import (
	"errors"
	"sync"

	"robotshop-web/internal/models"
)

var ErrNotInitialized = errors.New("session identity not initialized")

type EventKind string

const (
	EventIdentity EventKind = "identity"
	EventCart     EventKind = "cart"
	EventLogin    EventKind = "login"
)

type Event struct {
	Kind     EventKind
	LoggedIn bool
	Cart     models.CartSummary
}

// Snapshot is a consistent copy of everything a Store holds.
type Snapshot struct {
	Initialized bool                   `json:"initialized"`
	LoggedIn    bool                   `json:"loggedIn"`
	Identity    models.SessionIdentity `json:"identity"`
	Cart        models.CartSummary     `json:"cart"`
}

// Store is the shared session state for one shopper. Writes are last write
// wins; nothing is merged.
type Store struct {
	mu          sync.RWMutex
	identity    *models.SessionIdentity
	cart        models.CartSummary
	loggedIn    bool
	subscribers map[int]chan Event
	nextSubID   int
}

func NewStore() *Store {
	return &Store{
		subscribers: make(map[int]chan Event),
	}
}

func (s *Store) Identity() (models.SessionIdentity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.identity == nil {
		return models.SessionIdentity{}, ErrNotInitialized
	}
	return cloneIdentity(*s.identity), nil
}

func (s *Store) Initialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

func (s *Store) SetIdentity(id models.SessionIdentity) {
	s.mu.Lock()
	identity := cloneIdentity(id)
	s.identity = &identity
	s.publishLocked(Event{Kind: EventIdentity, LoggedIn: s.loggedIn, Cart: s.cart.Clone()})
	s.mu.Unlock()
}

func (s *Store) Cart() models.CartSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Clone()
}

func (s *Store) SetCart(cart models.CartSummary) {
	s.mu.Lock()
	s.cart = cart.Clone()
	s.publishLocked(Event{Kind: EventCart, LoggedIn: s.loggedIn, Cart: s.cart.Clone()})
	s.mu.Unlock()
}

func (s *Store) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loggedIn
}

// SetLoggedIn only flips the flag; profile and cart are kept on logout.
func (s *Store) SetLoggedIn(flag bool) {
	s.mu.Lock()
	s.loggedIn = flag
	s.publishLocked(Event{Kind: EventLogin, LoggedIn: flag, Cart: s.cart.Clone()})
	s.mu.Unlock()
}

// AddPendingItems bumps the identity's running cart total ahead of the cart
// service response. The bump is never reconciled with the authoritative cart.
func (s *Store) AddPendingItems(qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return ErrNotInitialized
	}
	s.identity.Cart.Total += float64(qty)
	s.publishLocked(Event{Kind: EventIdentity, LoggedIn: s.loggedIn, Cart: s.cart.Clone()})
	return nil
}

// ResetCart empties the cart after a completed checkout.
func (s *Store) ResetCart() {
	s.mu.Lock()
	s.cart = models.EmptyCart()
	if s.identity != nil {
		s.identity.Cart.Total = 0
	}
	s.publishLocked(Event{Kind: EventCart, LoggedIn: s.loggedIn, Cart: s.cart.Clone()})
	s.mu.Unlock()
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		LoggedIn: s.loggedIn,
		Cart:     s.cart.Clone(),
	}
	if s.identity != nil {
		snap.Initialized = true
		snap.Identity = cloneIdentity(*s.identity)
	}
	return snap
}

// Subscribe registers for change events. Events are dropped for a
// subscriber whose buffer is full. The returned func unsubscribes and
// closes the channel.
func (s *Store) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = ch
	s.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subscribers, id)
			s.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

func (s *Store) publishLocked(ev Event) {
	for _, ch := range s.subscribers {
		select {
		case ch <- ev:
		default:
		}
	}
}

func cloneIdentity(id models.SessionIdentity) models.SessionIdentity {
	id.Cart = id.Cart.Clone()
	return id
}
