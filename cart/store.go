package cart

import (
	"encoding/json"
	"sync"
)

// Store keeps carts between requests, keyed by session id. Handlers run
// concurrently, so all mutation goes through Update, which holds the store
// lock for the whole read-modify-write; Get hands out a detached copy that is
// safe to read without coordination.
type Store interface {
	// Update runs fn against the session's cart under the store lock,
	// creating the cart when the session is new.
	Update(sessionID string, fn func(*Cart))
	// Get returns a copy of the session's cart.
	Get(sessionID string) (*Cart, bool)
	// DeleteTable drops every session cart bound to a table, ending those
	// diners' sessions when staff close the table.
	DeleteTable(restaurantID uint, tableNumber string)
}

// MemoryStore is the default Store. Carts are session-lived; losing them on
// restart only means a diner re-adds their lines.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]*Cart)}
}

func (s *MemoryStore) Update(sessionID string, fn func(*Cart)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = New()
		s.carts[sessionID] = c
	}
	fn(c)
}

func (s *MemoryStore) Get(sessionID string) (*Cart, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.carts[sessionID]
	if !ok {
		return nil, false
	}
	return c.Clone(), true
}

func (s *MemoryStore) DeleteTable(restaurantID uint, tableNumber string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for sid, c := range s.carts {
		if c.RestaurantID == restaurantID && c.TableNumber == tableNumber {
			delete(s.carts, sid)
		}
	}
}

// Encode and Decode serialize carts for anything that holds them outside
// process memory; Clone rides on them for the snapshot copies Get returns.

func Encode(c *Cart) ([]byte, error) {
	return json.Marshal(c)
}

func Decode(data []byte) (*Cart, error) {
	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if c.Lines == nil {
		c.Lines = []Line{}
	}
	return &c, nil
}
