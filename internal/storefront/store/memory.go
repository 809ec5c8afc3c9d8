package store

import (
	"sync"
	"time"

	"github.com/tair/storefront/internal/storefront/domain"
)

// MemoryStore is the single owner of products, liked-set, cart and filter
// for a session. Mutations are serialized by the mutex and each committed
// mutation synchronously notifies subscribers with a copied snapshot.
type MemoryStore struct {
	mu            sync.RWMutex
	products      []domain.Product
	likedProducts []int64
	cartItems     []domain.CartItem
	filter        domain.Filter

	listeners []func(domain.Snapshot)
	lastID    int64

	// now is a hook for deterministic ids in tests
	now func() time.Time
}

// NewMemoryStore creates an empty store with the default "all" filter
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		filter: domain.FilterAll,
		now:    time.Now,
	}
}

// Subscribe registers a listener invoked after every committed mutation.
// Listeners receive a copied snapshot and run on the mutating goroutine.
func (s *MemoryStore) Subscribe(fn func(domain.Snapshot)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

// Restore replaces the whole persisted state wholesale. It is meant for
// startup hydration, before any listener is attached, and bypasses the
// SetProducts empty-collection guard.
func (s *MemoryStore) Restore(snap domain.Snapshot) {
	s.mu.Lock()
	s.products = append([]domain.Product(nil), snap.Products...)
	s.likedProducts = append([]int64(nil), snap.LikedProducts...)
	s.cartItems = append([]domain.CartItem(nil), snap.CartItems...)
	s.mu.Unlock()
	s.changed()
}

func (s *MemoryStore) SetProducts(products []domain.Product) {
	s.mu.Lock()
	if len(s.products) > 0 || len(products) == 0 {
		s.mu.Unlock()
		return
	}
	s.products = append([]domain.Product(nil), products...)
	s.mu.Unlock()
	s.changed()
}

func (s *MemoryStore) AddProduct(product domain.Product) domain.Product {
	s.mu.Lock()
	product.ID = s.nextID()
	s.products = append(s.products, product)
	s.mu.Unlock()
	s.changed()
	return product
}

// nextID derives ids from the wall clock in milliseconds, like Date.now().
// Two adds within the same clock tick would collide; the bump below only
// keeps ids monotonic within a single process, the cross-tab collision
// stays a known weak point.
func (s *MemoryStore) nextID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

func (s *MemoryStore) RemoveProduct(id int64) {
	s.mu.Lock()
	products := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			products = append(products, p)
		}
	}
	s.products = products

	liked := s.likedProducts[:0]
	for _, likedID := range s.likedProducts {
		if likedID != id {
			liked = append(liked, likedID)
		}
	}
	s.likedProducts = liked

	items := s.cartItems[:0]
	for _, item := range s.cartItems {
		if item.ProductID != id {
			items = append(items, item)
		}
	}
	s.cartItems = items
	s.mu.Unlock()
	s.changed()
}

func (s *MemoryStore) UpdateProduct(id int64, patch domain.ProductPatch) (domain.Product, bool) {
	s.mu.Lock()
	for i := range s.products {
		if s.products[i].ID != id {
			continue
		}
		p := &s.products[i]
		if patch.Title != nil {
			p.Title = *patch.Title
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Image != nil {
			p.Image = *patch.Image
		}
		updated := *p
		s.mu.Unlock()
		s.changed()
		return updated, true
	}
	s.mu.Unlock()
	return domain.Product{}, false
}

func (s *MemoryStore) Product(id int64) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

func (s *MemoryStore) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Product(nil), s.products...)
}

func (s *MemoryStore) ToggleLike(id int64) bool {
	s.mu.Lock()
	liked := true
	kept := s.likedProducts[:0]
	for _, likedID := range s.likedProducts {
		if likedID == id {
			liked = false
			continue
		}
		kept = append(kept, likedID)
	}
	if liked {
		kept = append(kept, id)
	}
	s.likedProducts = kept
	s.mu.Unlock()
	s.changed()
	return liked
}

func (s *MemoryStore) LikedProducts() []int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]int64(nil), s.likedProducts...)
}

func (s *MemoryStore) SetFilter(filter domain.Filter) {
	s.mu.Lock()
	if s.filter == filter {
		s.mu.Unlock()
		return
	}
	s.filter = filter
	s.mu.Unlock()
	// The filter is session-only, but subscribers still see the commit
	// so derived views stay in sync.
	s.changed()
}

func (s *MemoryStore) Filter() domain.Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

func (s *MemoryStore) AddToCart(productID int64, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	found := false
	for i := range s.cartItems {
		if s.cartItems[i].ProductID == productID {
			s.cartItems[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		s.cartItems = append(s.cartItems, domain.CartItem{ProductID: productID, Quantity: quantity})
	}
	s.mu.Unlock()
	s.changed()
}

func (s *MemoryStore) RemoveFromCart(productID int64) {
	s.mu.Lock()
	items := s.cartItems[:0]
	for _, item := range s.cartItems {
		if item.ProductID != productID {
			items = append(items, item)
		}
	}
	s.cartItems = items
	s.mu.Unlock()
	s.changed()
}

func (s *MemoryStore) UpdateCartItemQuantity(productID int64, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	for i := range s.cartItems {
		if s.cartItems[i].ProductID == productID {
			s.cartItems[i].Quantity = quantity
			break
		}
	}
	s.mu.Unlock()
	s.changed()
}

func (s *MemoryStore) ClearCart() {
	s.mu.Lock()
	s.cartItems = nil
	s.mu.Unlock()
	s.changed()
}

func (s *MemoryStore) CartItems() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.CartItem(nil), s.cartItems...)
}

func (s *MemoryStore) CartItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, item := range s.cartItems {
		count += item.Quantity
	}
	return count
}

func (s *MemoryStore) CartTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0.0
	for _, item := range s.cartItems {
		for _, p := range s.products {
			if p.ID == item.ProductID {
				total += p.Price * float64(item.Quantity)
				break
			}
		}
	}
	return total
}

func (s *MemoryStore) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *MemoryStore) snapshotLocked() domain.Snapshot {
	return domain.Snapshot{
		Products:      append([]domain.Product(nil), s.products...),
		LikedProducts: append([]int64(nil), s.likedProducts...),
		CartItems:     append([]domain.CartItem(nil), s.cartItems...),
	}
}

// changed delivers the committed state to subscribers
func (s *MemoryStore) changed() {
	s.mu.RLock()
	snap := s.snapshotLocked()
	listeners := s.listeners
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(snap)
	}
}
