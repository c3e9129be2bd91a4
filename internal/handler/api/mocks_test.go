package api

import (
	"context"

	"github.com/amanabooks/storefront/internal/domain"
)

// mockBookService implements domain.BookService for testing
type mockBookService struct {
	listBooksFunc     func(ctx context.Context) ([]domain.Book, error)
	getBookByIDFunc   func(ctx context.Context, id string) (*domain.Book, error)
	getBooksByIDsFunc func(ctx context.Context, ids []string) ([]domain.Book, error)
	createBookFunc    func(ctx context.Context, input domain.CreateBookInput) (*domain.Book, error)
}

func (m *mockBookService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	if m.listBooksFunc != nil {
		return m.listBooksFunc(ctx)
	}
	return nil, nil
}

func (m *mockBookService) GetBookByID(ctx context.Context, id string) (*domain.Book, error) {
	if m.getBookByIDFunc != nil {
		return m.getBookByIDFunc(ctx, id)
	}
	return nil, domain.ErrBookNotFound
}

func (m *mockBookService) GetBooksByIDs(ctx context.Context, ids []string) ([]domain.Book, error) {
	if m.getBooksByIDsFunc != nil {
		return m.getBooksByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *mockBookService) CreateBook(ctx context.Context, input domain.CreateBookInput) (*domain.Book, error) {
	if m.createBookFunc != nil {
		return m.createBookFunc(ctx, input)
	}
	return nil, nil
}

// mockReviewService implements domain.ReviewService for testing
type mockReviewService struct {
	listReviewsForBookFunc func(ctx context.Context, bookID string) ([]domain.Review, error)
	listAllReviewsFunc     func(ctx context.Context) ([]domain.Review, error)
	getReviewByIDFunc      func(ctx context.Context, id string) (*domain.Review, error)
	createReviewFunc       func(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error)
}

func (m *mockReviewService) ListReviewsForBook(ctx context.Context, bookID string) ([]domain.Review, error) {
	if m.listReviewsForBookFunc != nil {
		return m.listReviewsForBookFunc(ctx, bookID)
	}
	return nil, nil
}

func (m *mockReviewService) ListAllReviews(ctx context.Context) ([]domain.Review, error) {
	if m.listAllReviewsFunc != nil {
		return m.listAllReviewsFunc(ctx)
	}
	return nil, nil
}

func (m *mockReviewService) GetReviewByID(ctx context.Context, id string) (*domain.Review, error) {
	if m.getReviewByIDFunc != nil {
		return m.getReviewByIDFunc(ctx, id)
	}
	return nil, domain.ErrReviewNotFound
}

func (m *mockReviewService) CreateReview(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error) {
	if m.createReviewFunc != nil {
		return m.createReviewFunc(ctx, input)
	}
	return nil, nil
}

// mockCartService implements domain.CartService for testing
type mockCartService struct {
	getCartItemFunc        func(ctx context.Context, sessionID, bookID string) (*domain.CartItem, error)
	getCartBySessionFunc   func(ctx context.Context, sessionID string) ([]domain.CartItem, error)
	addToCartFunc          func(ctx context.Context, input domain.AddToCartInput) (*domain.CartItem, error)
	updateItemQuantityFunc func(ctx context.Context, input domain.UpdateCartQuantityInput) (*domain.CartItem, error)
	removeFromCartFunc     func(ctx context.Context, sessionID, bookID string) (bool, error)
	clearCartFunc          func(ctx context.Context, sessionID string) (int64, error)
}

func (m *mockCartService) GetCartItem(ctx context.Context, sessionID, bookID string) (*domain.CartItem, error) {
	if m.getCartItemFunc != nil {
		return m.getCartItemFunc(ctx, sessionID, bookID)
	}
	return nil, nil
}

func (m *mockCartService) GetCartBySession(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	if m.getCartBySessionFunc != nil {
		return m.getCartBySessionFunc(ctx, sessionID)
	}
	return nil, nil
}

func (m *mockCartService) AddToCart(ctx context.Context, input domain.AddToCartInput) (*domain.CartItem, error) {
	if m.addToCartFunc != nil {
		return m.addToCartFunc(ctx, input)
	}
	return nil, nil
}

func (m *mockCartService) UpdateItemQuantity(ctx context.Context, input domain.UpdateCartQuantityInput) (*domain.CartItem, error) {
	if m.updateItemQuantityFunc != nil {
		return m.updateItemQuantityFunc(ctx, input)
	}
	return nil, nil
}

func (m *mockCartService) RemoveFromCart(ctx context.Context, sessionID, bookID string) (bool, error) {
	if m.removeFromCartFunc != nil {
		return m.removeFromCartFunc(ctx, sessionID, bookID)
	}
	return false, nil
}

func (m *mockCartService) ClearCart(ctx context.Context, sessionID string) (int64, error) {
	if m.clearCartFunc != nil {
		return m.clearCartFunc(ctx, sessionID)
	}
	return 0, nil
}

var (
	_ domain.BookService   = (*mockBookService)(nil)
	_ domain.ReviewService = (*mockReviewService)(nil)
	_ domain.CartService   = (*mockCartService)(nil)
)
