package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/amanabooks/storefront/internal/domain"
	"github.com/amanabooks/storefront/internal/validate"
)

// ReviewService implements domain.ReviewService against the in-memory
// store, including maintenance of each book's derived rating aggregate.
type ReviewService struct {
	store *Store
}

// Compile-time check that ReviewService implements domain.ReviewService.
var _ domain.ReviewService = (*ReviewService)(nil)

// NewReviewService creates an in-memory review service.
func NewReviewService(store *Store) *ReviewService {
	return &ReviewService{store: store}
}

// ListReviewsForBook returns the reviews for one book, newest first.
func (s *ReviewService) ListReviewsForBook(_ context.Context, bookID string) ([]domain.Review, error) {
	canonical, err := domain.CanonicalID(bookID)
	if err != nil {
		return []domain.Review{}, nil
	}

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	if b, ok := s.store.lookupBookLocked(canonical); ok {
		canonical = b.ID
	}
	group := s.store.reviews[canonical]
	return append([]domain.Review{}, group...), nil
}

// ListAllReviews returns every review, newest first.
func (s *ReviewService) ListAllReviews(_ context.Context) ([]domain.Review, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	var all []domain.Review
	for _, group := range s.store.reviews {
		all = append(all, group...)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].Timestamp > all[j].Timestamp
	})
	if all == nil {
		all = []domain.Review{}
	}
	return all, nil
}

// GetReviewByID returns a single review or domain.ErrReviewNotFound.
func (s *ReviewService) GetReviewByID(_ context.Context, id string) (*domain.Review, error) {
	canonical, err := domain.CanonicalID(id)
	if err != nil {
		return nil, domain.ErrReviewNotFound
	}

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	for _, group := range s.store.reviews {
		for _, r := range group {
			if r.ID == canonical {
				clone := r
				return &clone, nil
			}
		}
	}
	return nil, domain.ErrReviewNotFound
}

// CreateReview validates and inserts a review, then recomputes and
// stores the owning book's rating and reviewCount within the same call.
// The caller immediately re-reads the book, so the aggregate must be
// current before this returns.
func (s *ReviewService) CreateReview(_ context.Context, input domain.CreateReviewInput) (*domain.Review, error) {
	const op = "review.create"

	if input.BookID == nil {
		return nil, domain.Invalid(op, "bookId is required")
	}
	canonical, err := domain.CanonicalID(input.BookID)
	if err != nil {
		return nil, err
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	book, ok := s.store.lookupBookLocked(canonical)
	if !ok {
		return nil, domain.Invalid(op, "Book not found")
	}

	id := ""
	if input.ID != nil {
		if id, err = validate.NonEmptyString(input.ID, "id"); err != nil {
			return nil, err
		}
	} else {
		id = "review-" + uuid.NewString()
	}

	review, err := validate.Review(input, id, book.ID)
	if err != nil {
		return nil, err
	}

	for _, group := range s.store.reviews {
		for _, existing := range group {
			if existing.ID == review.ID {
				return nil, domain.ErrReviewDuplicate
			}
		}
	}

	// Step one: insert the review.
	s.store.insertReviewLocked(review)

	// Step two: recompute the aggregate from the full review set and
	// write it onto the book.
	count, rating := domain.ReviewAggregate(s.store.reviews[book.ID])
	book.ReviewCount = count
	book.Rating = rating
	s.store.books[book.ID] = book

	return &review, nil
}
