package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/amanabooks/storefront/internal/domain"
)

// CartHandler serves the session cart endpoints. Responses embed the
// full book document on every line so clients can render the cart
// without a second round trip.
type CartHandler struct {
	cart   domain.CartService
	books  domain.BookService
	logger *slog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cart domain.CartService, books domain.BookService, logger *slog.Logger) *CartHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CartHandler{cart: cart, books: books, logger: logger}
}

type cartLine struct {
	domain.CartItem
	Book *domain.Book `json:"book"`
}

type cartResponse struct {
	SessionID string     `json:"sessionId"`
	Items     []cartLine `json:"items"`
}

type cartRequest struct {
	SessionID string `json:"sessionId"`
	BookID    any    `json:"bookId"`
	Quantity  any    `json:"quantity"`
}

// bookIDString renders the request's bookId field, which clients send
// as either a string or a number, as its canonical string form.
func bookIDString(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	id, err := domain.CanonicalID(v)
	if err != nil {
		return "", false
	}
	return id, true
}

// Get handles GET /api/cart?sessionId=.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		BadRequest(w, "Missing sessionId query parameter")
		return
	}

	resp, err := h.buildCartResponse(r.Context(), sessionID)
	if err != nil {
		Fail(w, r, h.logger, err, "Failed to fetch cart items")
		return
	}
	JSON(w, http.StatusOK, resp)
}

// Add handles POST /api/cart. Adding a book already in the cart
// increments its line; the book must exist in the catalog.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req cartRequest
	if err := DecodeBody(r, &req); err != nil {
		Fail(w, r, h.logger, err, "Failed to add item to cart")
		return
	}

	bookID, ok := bookIDString(req.BookID)
	if req.SessionID == "" || !ok {
		BadRequest(w, "sessionId and bookId are required")
		return
	}

	book, err := h.books.GetBookByID(ctx, bookID)
	if err != nil {
		if domain.IsCode(err, domain.ENOTFOUND) {
			NotFound(w, "Book not found")
			return
		}
		Fail(w, r, h.logger, err, "Failed to add item to cart")
		return
	}

	// Store the catalog's own id so every representation of the same
	// book lands on the same cart line.
	_, err = h.cart.AddToCart(ctx, domain.AddToCartInput{
		SessionID: req.SessionID,
		BookID:    book.ID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		Fail(w, r, h.logger, err, "Failed to add item to cart")
		return
	}

	resp, err := h.buildCartResponse(ctx, req.SessionID)
	if err != nil {
		Fail(w, r, h.logger, err, "Failed to add item to cart")
		return
	}
	JSON(w, http.StatusOK, resp)
}

// Update handles PUT /api/cart, setting a line to an absolute quantity.
func (h *CartHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req cartRequest
	if err := DecodeBody(r, &req); err != nil {
		Fail(w, r, h.logger, err, "Failed to update cart item")
		return
	}

	bookID, ok := bookIDString(req.BookID)
	if req.SessionID == "" || !ok || req.Quantity == nil {
		BadRequest(w, "sessionId, bookId, and quantity are required")
		return
	}

	_, err := h.cart.UpdateItemQuantity(ctx, domain.UpdateCartQuantityInput{
		SessionID: req.SessionID,
		BookID:    bookID,
		Quantity:  req.Quantity,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidQuantity) {
			BadRequest(w, "Quantity must be at least 1")
			return
		}
		Fail(w, r, h.logger, err, "Failed to update cart item")
		return
	}

	resp, err := h.buildCartResponse(ctx, req.SessionID)
	if err != nil {
		Fail(w, r, h.logger, err, "Failed to update cart item")
		return
	}
	JSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /api/cart?sessionId=&bookId=. With a bookId it
// removes that single line; without one it clears the whole cart.
func (h *CartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		BadRequest(w, "Missing sessionId query parameter")
		return
	}

	bookID := r.URL.Query().Get("bookId")
	if bookID == "" {
		if _, err := h.cart.ClearCart(ctx, sessionID); err != nil {
			Fail(w, r, h.logger, err, "Failed to remove cart item")
			return
		}
		JSON(w, http.StatusOK, cartResponse{SessionID: sessionID, Items: []cartLine{}})
		return
	}

	removed, err := h.cart.RemoveFromCart(ctx, sessionID, bookID)
	if err != nil {
		Fail(w, r, h.logger, err, "Failed to remove cart item")
		return
	}
	if !removed {
		NotFound(w, "Cart item not found")
		return
	}

	resp, err := h.buildCartResponse(ctx, sessionID)
	if err != nil {
		Fail(w, r, h.logger, err, "Failed to remove cart item")
		return
	}
	JSON(w, http.StatusOK, resp)
}

// buildCartResponse loads a session's cart lines and joins each one
// with its book document. A line whose book has vanished from the
// catalog keeps a null book instead of failing the whole response.
func (h *CartHandler) buildCartResponse(ctx context.Context, sessionID string) (*cartResponse, error) {
	items, err := h.cart.GetCartBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	resp := &cartResponse{SessionID: sessionID, Items: make([]cartLine, 0, len(items))}
	if len(items) == 0 {
		return resp, nil
	}

	seen := make(map[string]bool, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if !seen[item.BookID] {
			seen[item.BookID] = true
			ids = append(ids, item.BookID)
		}
	}

	books, err := h.books.GetBooksByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.Book, len(books))
	byNumber := make(map[float64]*domain.Book, len(books))
	for i := range books {
		byID[books[i].ID] = &books[i]
		if n, ok := domain.NumericID(books[i].ID); ok {
			byNumber[n] = &books[i]
		}
	}

	for _, item := range items {
		book := byID[item.BookID]
		if book == nil {
			if n, ok := domain.NumericID(item.BookID); ok {
				book = byNumber[n]
			}
		}
		resp.Items = append(resp.Items, cartLine{CartItem: item, Book: book})
	}
	return resp, nil
}
