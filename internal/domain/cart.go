package domain

import "context"

// =============================================================================
// CART DOMAIN ERRORS
// =============================================================================

var (
	ErrCartItemNotFound = &Error{Code: ENOTFOUND, Message: "Cart item not found"}
	ErrInvalidQuantity  = &Error{Code: EINVALID, Message: "quantity must be a positive number"}
)

// CartService provides per-session shopping cart operations. The session
// id is an opaque client-supplied string, not an authenticated identity.
type CartService interface {
	// GetCartItem returns the line for (session, bookID), or nil when the
	// session has no line for that book.
	GetCartItem(ctx context.Context, sessionID, bookID string) (*CartItem, error)

	// GetCartBySession returns all lines for a session, most recently
	// touched first.
	GetCartBySession(ctx context.Context, sessionID string) ([]CartItem, error)

	// AddToCart adds quantity to the session's line for the book,
	// creating the line when absent. At most one line ever exists per
	// (session, book) pair.
	AddToCart(ctx context.Context, input AddToCartInput) (*CartItem, error)

	// UpdateItemQuantity sets the line's quantity to an absolute value
	// (>= 1), inserting the line when absent.
	UpdateItemQuantity(ctx context.Context, input UpdateCartQuantityInput) (*CartItem, error)

	// RemoveFromCart deletes one line. Reports whether a line was
	// actually removed.
	RemoveFromCart(ctx context.Context, sessionID, bookID string) (bool, error)

	// ClearCart deletes every line for a session and returns how many
	// were removed.
	ClearCart(ctx context.Context, sessionID string) (int64, error)
}

// CartItem is one cart line. SessionID scopes the line to a cart; it is
// not part of the wire representation.
type CartItem struct {
	ID        string `json:"id"`
	SessionID string `json:"-"`
	BookID    string `json:"bookId"`
	Quantity  int    `json:"quantity"`
	AddedAt   string `json:"addedAt"`
}

// AddToCartInput carries an add-to-cart request. Quantity defaults to 1
// when nil.
type AddToCartInput struct {
	SessionID string
	BookID    string
	Quantity  any
}

// UpdateCartQuantityInput carries an absolute quantity update.
type UpdateCartQuantityInput struct {
	SessionID string
	BookID    string
	Quantity  any
}
