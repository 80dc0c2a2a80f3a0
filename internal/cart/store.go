// internal/cart/store.go
package cart

import (
	"slices"
	"sync"

	"github.com/javajoker/storefront/internal/models"
)

// State is an immutable snapshot of a store. Items are in first-add order.
type State struct {
	Items []models.CartItem `json:"items"`
	User  *models.User      `json:"user"`
}

// ItemCount is the sum of all quantities, the number shown on the cart badge.
func (s State) ItemCount() int {
	total := 0
	for _, item := range s.Items {
		total += item.Quantity
	}
	return total
}

// Subtotal is the sum of every line total.
func (s State) Subtotal() float64 {
	var total float64
	for _, item := range s.Items {
		total += item.LineTotal()
	}
	return total
}

func (s State) clone() State {
	out := State{Items: slices.Clone(s.Items)}
	if out.Items == nil {
		out.Items = []models.CartItem{}
	}
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	return out
}

// Listener receives the state produced by a mutation.
type Listener func(State)

// Store holds one session's cart and user. Every mutation runs under a single
// mutex, so at most one item exists per product id.
type Store struct {
	mu      sync.Mutex
	state   State
	version uint64

	notifyMu  sync.Mutex
	notified  uint64
	listeners map[int]Listener
	nextID    int
}

func NewStore() *Store {
	return &Store{
		state:     State{Items: []models.CartItem{}},
		listeners: make(map[int]Listener),
	}
}

// NewStoreFromState restores a store, dropping any item that breaks the
// quantity or uniqueness invariants.
func NewStoreFromState(state State) *Store {
	s := NewStore()
	seen := make(map[string]struct{}, len(state.Items))
	for _, item := range state.Items {
		if item.Quantity < 1 {
			continue
		}
		if _, ok := seen[item.Product.ID]; ok {
			continue
		}
		seen[item.Product.ID] = struct{}{}
		s.state.Items = append(s.state.Items, item)
	}
	if state.User != nil {
		u := *state.User
		s.state.User = &u
	}
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

func (s *Store) Items() []models.CartItem {
	return s.Snapshot().Items
}

func (s *Store) User() *models.User {
	return s.Snapshot().User
}

func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.ItemCount()
}

// AddToCart increments the product's quantity, appending a new item with
// quantity 1 on first add.
func (s *Store) AddToCart(product models.Product) {
	s.mutate(func(st *State) bool {
		if i := indexOf(st.Items, product.ID); i >= 0 {
			st.Items[i].Quantity++
			return true
		}
		st.Items = append(st.Items, models.CartItem{Product: product, Quantity: 1})
		return true
	})
}

// RemoveFromCart drops the product's item. Unknown ids are a no-op.
func (s *Store) RemoveFromCart(productID string) {
	s.mutate(func(st *State) bool {
		i := indexOf(st.Items, productID)
		if i < 0 {
			return false
		}
		st.Items = slices.Delete(st.Items, i, i+1)
		return true
	})
}

// UpdateQuantity replaces the item's quantity. A quantity <= 0 removes the
// item; an id that is not in the cart is ignored.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(productID)
		return
	}
	s.mutate(func(st *State) bool {
		i := indexOf(st.Items, productID)
		if i < 0 {
			return false
		}
		st.Items[i].Quantity = quantity
		return true
	})
}

func (s *Store) ClearCart() {
	s.mutate(func(st *State) bool {
		st.Items = []models.CartItem{}
		return true
	})
}

// SetUser replaces the held user; nil logs out.
func (s *Store) SetUser(user *models.User) {
	s.mutate(func(st *State) bool {
		if user == nil {
			st.User = nil
			return true
		}
		u := *user
		st.User = &u
		return true
	})
}

// Subscribe registers a listener called after every mutation and returns a
// function that removes it. Listeners run outside the state lock and may read
// the store; they must not mutate it or (un)subscribe.
func (s *Store) Subscribe(l Listener) (unsubscribe func()) {
	s.notifyMu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.notifyMu.Unlock()

	return func() {
		s.notifyMu.Lock()
		delete(s.listeners, id)
		s.notifyMu.Unlock()
	}
}

// mutate copies the items before fn runs so snapshots handed out earlier are
// never modified. fn reports whether it changed anything; no-ops are not
// published to listeners.
func (s *Store) mutate(fn func(*State) bool) {
	s.mu.Lock()
	next := State{Items: slices.Clone(s.state.Items), User: s.state.User}
	if next.Items == nil {
		next.Items = []models.CartItem{}
	}
	if !fn(&next) {
		s.mu.Unlock()
		return
	}
	s.state = next
	s.version++
	version := s.version
	snapshot := s.state.clone()
	s.mu.Unlock()

	s.notify(version, snapshot)
}

// notify delivers snapshots in version order and drops one that arrives after
// a newer snapshot was already delivered.
func (s *Store) notify(version uint64, snapshot State) {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	if version <= s.notified {
		return
	}
	s.notified = version

	for _, l := range s.listeners {
		l(snapshot)
	}
}

func indexOf(items []models.CartItem, productID string) int {
	return slices.IndexFunc(items, func(item models.CartItem) bool {
		return item.Product.ID == productID
	})
}
