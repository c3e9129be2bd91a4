package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/amanabooks/storefront/internal/domain"
	"github.com/amanabooks/storefront/internal/validate"
)

// CartService implements domain.CartService against the in-memory store.
type CartService struct {
	store *Store
}

// Compile-time check that CartService implements domain.CartService.
var _ domain.CartService = (*CartService)(nil)

// NewCartService creates an in-memory cart service.
func NewCartService(store *Store) *CartService {
	return &CartService{store: store}
}

// GetCartItem returns the line for (session, book), or nil when absent.
func (s *CartService) GetCartItem(_ context.Context, sessionID, bookID string) (*domain.CartItem, error) {
	session, err := validate.NonEmptyString(sessionID, "sessionId")
	if err != nil {
		return nil, err
	}
	book, err := validate.NonEmptyString(bookID, "bookId")
	if err != nil {
		return nil, err
	}

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	if item, ok := s.store.cart[session][book]; ok {
		clone := item
		return &clone, nil
	}
	return nil, nil
}

// GetCartBySession returns all lines for a session, most recently
// touched first.
func (s *CartService) GetCartBySession(_ context.Context, sessionID string) ([]domain.CartItem, error) {
	session, err := validate.NonEmptyString(sessionID, "sessionId")
	if err != nil {
		return nil, err
	}

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	items := make([]domain.CartItem, 0, len(s.store.cart[session]))
	for _, item := range s.store.cart[session] {
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].AddedAt > items[j].AddedAt
	})
	return items, nil
}

// AddToCart increments the existing line for (session, book) or inserts
// a new one. The pair invariant holds: adding twice yields one line with
// the summed quantity.
func (s *CartService) AddToCart(_ context.Context, input domain.AddToCartInput) (*domain.CartItem, error) {
	session, err := validate.NonEmptyString(input.SessionID, "sessionId")
	if err != nil {
		return nil, err
	}
	book, err := validate.NonEmptyString(input.BookID, "bookId")
	if err != nil {
		return nil, err
	}
	quantity := 1
	if input.Quantity != nil {
		if quantity, err = validate.Quantity(input.Quantity); err != nil {
			return nil, err
		}
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	now := validate.NowISO()
	lines := s.store.cart[session]
	if lines == nil {
		lines = make(map[string]domain.CartItem)
		s.store.cart[session] = lines
	}

	if item, ok := lines[book]; ok {
		item.Quantity += quantity
		item.AddedAt = now
		lines[book] = item
		clone := item
		return &clone, nil
	}

	item := domain.CartItem{
		ID:        "cart-" + uuid.NewString(),
		SessionID: session,
		BookID:    book,
		Quantity:  quantity,
		AddedAt:   now,
	}
	lines[book] = item
	clone := item
	return &clone, nil
}

// UpdateItemQuantity sets an absolute quantity, inserting the line when
// absent.
func (s *CartService) UpdateItemQuantity(_ context.Context, input domain.UpdateCartQuantityInput) (*domain.CartItem, error) {
	session, err := validate.NonEmptyString(input.SessionID, "sessionId")
	if err != nil {
		return nil, err
	}
	book, err := validate.NonEmptyString(input.BookID, "bookId")
	if err != nil {
		return nil, err
	}
	quantity, err := validate.Quantity(input.Quantity)
	if err != nil {
		return nil, err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	now := validate.NowISO()
	lines := s.store.cart[session]
	if lines == nil {
		lines = make(map[string]domain.CartItem)
		s.store.cart[session] = lines
	}

	item, ok := lines[book]
	if !ok {
		item = domain.CartItem{
			ID:        "cart-" + uuid.NewString(),
			SessionID: session,
			BookID:    book,
		}
	}
	item.Quantity = quantity
	item.AddedAt = now
	lines[book] = item

	clone := item
	return &clone, nil
}

// RemoveFromCart deletes one line and reports whether it existed.
func (s *CartService) RemoveFromCart(_ context.Context, sessionID, bookID string) (bool, error) {
	session, err := validate.NonEmptyString(sessionID, "sessionId")
	if err != nil {
		return false, err
	}
	book, err := validate.NonEmptyString(bookID, "bookId")
	if err != nil {
		return false, err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	lines := s.store.cart[session]
	if _, ok := lines[book]; !ok {
		return false, nil
	}
	delete(lines, book)
	if len(lines) == 0 {
		delete(s.store.cart, session)
	}
	return true, nil
}

// ClearCart removes every line for a session and returns the count.
func (s *CartService) ClearCart(_ context.Context, sessionID string) (int64, error) {
	session, err := validate.NonEmptyString(sessionID, "sessionId")
	if err != nil {
		return 0, err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	removed := int64(len(s.store.cart[session]))
	delete(s.store.cart, session)
	return removed, nil
}
