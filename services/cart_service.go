package services

import (
	"burger-house/models"
	"sync"

	"github.com/google/uuid"
)

// CartService keeps each browsing session's cart in memory, keyed by session
// token. The cart lives only as long as the process; the orders table tracks
// session status and final totals, not per-line rows.
type CartService struct {
	mu    sync.RWMutex
	carts map[string][]models.CartItem
}

func NewCartService() *CartService {
	return &CartService{
		carts: make(map[string][]models.CartItem),
	}
}

// AddItem appends a new line with a fresh id. Adding the same product twice
// yields two independent lines; there is no dedup.
func (s *CartService) AddItem(token string, item models.CartItem) models.CartItem {
	item.ID = uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[token] = append(s.carts[token], item)
	return item
}

// RemoveItem drops the matching line. A missing id is silently ignored.
func (s *CartService) RemoveItem(token, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[token]
	for i, item := range items {
		if item.ID == id {
			s.carts[token] = append(items[:i], items[i+1:]...)
			return
		}
	}
}

// UpdateItem merges observations and extras into an existing line. A missing
// id is silently ignored, mirroring idempotent-update semantics.
func (s *CartService) UpdateItem(token, id string, observations *string, extras *[]string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.carts[token]
	for i := range items {
		if items[i].ID == id {
			if observations != nil {
				items[i].Observations = *observations
			}
			if extras != nil {
				items[i].Extras = append([]string(nil), (*extras)...)
			}
			return
		}
	}
}

func (s *CartService) ClearCart(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, token)
}

// Items returns a copy of the session's lines.
func (s *CartService) Items(token string) []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]models.CartItem, len(s.carts[token]))
	copy(items, s.carts[token])
	return items
}

func (s *CartService) ItemCount(token string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts[token])
}
