package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amanabooks/storefront/internal/domain"
)

func cartHandlerFixture() (*CartHandler, *mockCartService) {
	cart := &mockCartService{
		getCartBySessionFunc: func(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
			return []domain.CartItem{
				{ID: "cart-abc", SessionID: sessionID, BookID: "1", Quantity: 2, AddedAt: "2025-05-01T10:00:00.000Z"},
			}, nil
		},
	}
	books := &mockBookService{
		getBookByIDFunc: func(ctx context.Context, id string) (*domain.Book, error) {
			if id == "1" || id == "1.0" {
				return &domain.Book{ID: "1", Title: "The Geometry of Dawn"}, nil
			}
			return nil, domain.ErrBookNotFound
		},
		getBooksByIDsFunc: func(ctx context.Context, ids []string) ([]domain.Book, error) {
			var out []domain.Book
			for _, id := range ids {
				if id == "1" {
					out = append(out, domain.Book{ID: "1", Title: "The Geometry of Dawn"})
				}
			}
			return out, nil
		},
	}
	return NewCartHandler(cart, books, nil), cart
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return body
}

func TestCartHandler_Get(t *testing.T) {
	h, _ := cartHandlerFixture()

	t.Run("missing sessionId", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		if !strings.Contains(rec.Body.String(), "Missing sessionId query parameter") {
			t.Errorf("body = %q, want missing-sessionId message", rec.Body.String())
		}
	})

	t.Run("lines are joined with their books", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/cart?sessionId=sess-1", nil)
		rec := httptest.NewRecorder()
		h.Get(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		body := decodeCart(t, rec)
		if body["sessionId"] != "sess-1" {
			t.Errorf("sessionId = %v, want sess-1", body["sessionId"])
		}
		items := body["items"].([]any)
		if len(items) != 1 {
			t.Fatalf("got %d items, want 1", len(items))
		}
		item := items[0].(map[string]any)
		book := item["book"].(map[string]any)
		if book["title"] != "The Geometry of Dawn" {
			t.Errorf("book.title = %v, want The Geometry of Dawn", book["title"])
		}
		if _, leaked := item["sessionId"]; leaked {
			t.Error("cart line should not expose the session id")
		}
	})
}

func TestCartHandler_Add(t *testing.T) {
	t.Run("unknown book is 404", func(t *testing.T) {
		h, _ := cartHandlerFixture()
		body := `{"sessionId":"sess-1","bookId":"999","quantity":1}`
		req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Add(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
		if !strings.Contains(rec.Body.String(), "Book not found") {
			t.Errorf("body = %q, want book-not-found message", rec.Body.String())
		}
	})

	t.Run("missing fields are 400", func(t *testing.T) {
		h, _ := cartHandlerFixture()
		req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(`{"quantity":1}`))
		rec := httptest.NewRecorder()
		h.Add(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		if !strings.Contains(rec.Body.String(), "sessionId and bookId are required") {
			t.Errorf("body = %q, want required-fields message", rec.Body.String())
		}
	})

	t.Run("numeric bookId resolves to the catalog id", func(t *testing.T) {
		h, cart := cartHandlerFixture()
		var stored domain.AddToCartInput
		cart.addToCartFunc = func(ctx context.Context, input domain.AddToCartInput) (*domain.CartItem, error) {
			stored = input
			return &domain.CartItem{ID: "cart-abc", BookID: input.BookID, Quantity: 1}, nil
		}

		body := `{"sessionId":"sess-1","bookId":1,"quantity":1}`
		req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Add(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		if stored.BookID != "1" {
			t.Errorf("stored bookId = %q, want %q", stored.BookID, "1")
		}
		body2 := decodeCart(t, rec)
		if len(body2["items"].([]any)) != 1 {
			t.Error("response should carry the enriched cart")
		}
	})
}

func TestCartHandler_Update(t *testing.T) {
	t.Run("quantity required", func(t *testing.T) {
		h, _ := cartHandlerFixture()
		body := `{"sessionId":"sess-1","bookId":"1"}`
		req := httptest.NewRequest(http.MethodPut, "/api/cart", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Update(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		if !strings.Contains(rec.Body.String(), "sessionId, bookId, and quantity are required") {
			t.Errorf("body = %q, want required-fields message", rec.Body.String())
		}
	})

	t.Run("quantity below one is rejected", func(t *testing.T) {
		h, cart := cartHandlerFixture()
		cart.updateItemQuantityFunc = func(ctx context.Context, input domain.UpdateCartQuantityInput) (*domain.CartItem, error) {
			return nil, domain.ErrInvalidQuantity
		}

		body := `{"sessionId":"sess-1","bookId":"1","quantity":0}`
		req := httptest.NewRequest(http.MethodPut, "/api/cart", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Update(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		if !strings.Contains(rec.Body.String(), "Quantity must be at least 1") {
			t.Errorf("body = %q, want minimum-quantity message", rec.Body.String())
		}
	})

	t.Run("absolute set returns the cart", func(t *testing.T) {
		h, cart := cartHandlerFixture()
		var got domain.UpdateCartQuantityInput
		cart.updateItemQuantityFunc = func(ctx context.Context, input domain.UpdateCartQuantityInput) (*domain.CartItem, error) {
			got = input
			return &domain.CartItem{ID: "cart-abc", BookID: input.BookID, Quantity: 5}, nil
		}

		body := `{"sessionId":"sess-1","bookId":"1","quantity":5}`
		req := httptest.NewRequest(http.MethodPut, "/api/cart", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Update(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
		}
		if got.SessionID != "sess-1" || got.BookID != "1" {
			t.Errorf("input = %+v, want sess-1/1", got)
		}
	})
}

func TestCartHandler_Delete(t *testing.T) {
	t.Run("without bookId clears the cart", func(t *testing.T) {
		h, cart := cartHandlerFixture()
		cleared := false
		cart.clearCartFunc = func(ctx context.Context, sessionID string) (int64, error) {
			cleared = true
			return 3, nil
		}

		req := httptest.NewRequest(http.MethodDelete, "/api/cart?sessionId=sess-1", nil)
		rec := httptest.NewRecorder()
		h.Delete(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if !cleared {
			t.Error("expected ClearCart to be called")
		}
		body := decodeCart(t, rec)
		if len(body["items"].([]any)) != 0 {
			t.Error("cleared cart should report no items")
		}
	})

	t.Run("missing line is 404", func(t *testing.T) {
		h, cart := cartHandlerFixture()
		cart.removeFromCartFunc = func(ctx context.Context, sessionID, bookID string) (bool, error) {
			return false, nil
		}

		req := httptest.NewRequest(http.MethodDelete, "/api/cart?sessionId=sess-1&bookId=999", nil)
		rec := httptest.NewRecorder()
		h.Delete(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
		}
		if !strings.Contains(rec.Body.String(), "Cart item not found") {
			t.Errorf("body = %q, want cart-item-not-found message", rec.Body.String())
		}
	})

	t.Run("removed line returns remaining cart", func(t *testing.T) {
		h, cart := cartHandlerFixture()
		cart.removeFromCartFunc = func(ctx context.Context, sessionID, bookID string) (bool, error) {
			return true, nil
		}

		req := httptest.NewRequest(http.MethodDelete, "/api/cart?sessionId=sess-1&bookId=2", nil)
		rec := httptest.NewRecorder()
		h.Delete(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})
}
