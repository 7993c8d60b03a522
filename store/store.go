package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/wearloom/storefront-api/catalog"
	"github.com/wearloom/storefront-api/models"
)

var (
	// ErrUnknownProduct is returned when an action names a product id that
	// does not exist in the catalog.
	ErrUnknownProduct = errors.New("unknown product")
	// ErrNotInCart is returned when an action targets a cart line that was
	// never added.
	ErrNotInCart = errors.New("product is not in the cart")
)

// Action is one well-typed mutation of a session's shopping state.
type Action interface {
	isAction()
}

// AddToCart adds one unit of a product, merging with an existing line.
type AddToCart struct {
	ProductID int
	Size      string
}

// RemoveFromCart deletes a cart line regardless of quantity.
type RemoveFromCart struct {
	ProductID int
}

// UpdateQuantity sets a cart line's quantity; zero or less removes it.
type UpdateQuantity struct {
	ProductID int
	Quantity  int
}

// ToggleWishlist adds the product to the wishlist, or removes it if present.
type ToggleWishlist struct {
	ProductID int
}

// ClearCart empties the cart.
type ClearCart struct{}

func (AddToCart) isAction()      {}
func (RemoveFromCart) isAction() {}
func (UpdateQuantity) isAction() {}
func (ToggleWishlist) isAction() {}
func (ClearCart) isAction()      {}

// Store holds one session's cart and wishlist. Every mutation goes through
// Apply so the state transitions live in a single place.
type Store struct {
	mu       sync.Mutex
	cat      *catalog.Catalog
	cart     []models.CartItem
	wishlist []models.Product
}

// New creates an empty store backed by the given catalog.
func New(cat *catalog.Catalog) *Store {
	return &Store{cat: cat}
}

// Apply runs one action against the store.
func (s *Store) Apply(a Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch a := a.(type) {
	case AddToCart:
		p, ok := s.cat.ByID(a.ProductID)
		if !ok {
			return fmt.Errorf("%w: id %d", ErrUnknownProduct, a.ProductID)
		}
		for i := range s.cart {
			if s.cart[i].Product.ID == a.ProductID {
				s.cart[i].Quantity++
				return nil
			}
		}
		s.cart = append(s.cart, models.CartItem{Product: p, Quantity: 1, Size: a.Size})
		return nil

	case RemoveFromCart:
		for i := range s.cart {
			if s.cart[i].Product.ID == a.ProductID {
				s.cart = append(s.cart[:i], s.cart[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: id %d", ErrNotInCart, a.ProductID)

	case UpdateQuantity:
		for i := range s.cart {
			if s.cart[i].Product.ID != a.ProductID {
				continue
			}
			if a.Quantity <= 0 {
				s.cart = append(s.cart[:i], s.cart[i+1:]...)
			} else {
				s.cart[i].Quantity = a.Quantity
			}
			return nil
		}
		return fmt.Errorf("%w: id %d", ErrNotInCart, a.ProductID)

	case ToggleWishlist:
		p, ok := s.cat.ByID(a.ProductID)
		if !ok {
			return fmt.Errorf("%w: id %d", ErrUnknownProduct, a.ProductID)
		}
		for i := range s.wishlist {
			if s.wishlist[i].ID == a.ProductID {
				s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
				return nil
			}
		}
		s.wishlist = append(s.wishlist, p)
		return nil

	case ClearCart:
		s.cart = nil
		return nil

	default:
		return fmt.Errorf("unknown action type %T", a)
	}
}

// Cart returns a snapshot of the cart lines.
func (s *Store) Cart() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// Wishlist returns a snapshot of the wishlist.
func (s *Store) Wishlist() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.wishlist))
	copy(out, s.wishlist)
	return out
}

// Manager hands out per-session stores, creating them on first use.
type Manager struct {
	mu     sync.Mutex
	cat    *catalog.Catalog
	stores map[string]*Store
}

// NewManager creates a session manager backed by the given catalog.
func NewManager(cat *catalog.Catalog) *Manager {
	return &Manager{cat: cat, stores: make(map[string]*Store)}
}

// Get returns the store for a session id, creating it if needed.
func (m *Manager) Get(sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	st, ok := m.stores[sessionID]
	if !ok {
		st = New(m.cat)
		m.stores[sessionID] = st
	}
	return st
}
