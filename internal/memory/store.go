// Package memory provides the in-process fallback store used when no
// document database is configured. It implements the same domain service
// interfaces as the mongo package, so the two are interchangeable at
// wiring time.
package memory

import (
	"sort"
	"sync"

	"github.com/amanabooks/storefront/internal/domain"
)

// Store holds process-lifetime catalog, review, and cart state. It is
// explicitly constructed and passed to the services that need it; tests
// get a fresh one each. All mutations are serialized by a single RWMutex
// so the store stays consistent under concurrent requests.
type Store struct {
	mu sync.RWMutex

	// books keyed by canonical id, plus insertion order for stable
	// listing.
	books   map[string]domain.Book
	bookIDs []string

	// reviews grouped by owning book's canonical id, each group kept
	// sorted descending by timestamp.
	reviews map[string][]domain.Review

	// cart lines grouped by session id then book id. At most one line
	// per (session, book) pair.
	cart map[string]map[string]domain.CartItem
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		books:   make(map[string]domain.Book),
		reviews: make(map[string][]domain.Review),
		cart:    make(map[string]map[string]domain.CartItem),
	}
}

// NewSeededStore returns a store populated with the static default
// catalog. The seeded books' rating and reviewCount are computed from
// the seeded reviews at seed time, so the aggregate invariant holds from
// the first read.
func NewSeededStore() *Store {
	s := NewStore()
	reviews := seedReviews()

	for _, b := range seedBooks() {
		count, rating := domain.ReviewAggregate(reviewsForBook(reviews, b.ID))
		b.ReviewCount = count
		b.Rating = rating
		s.putBook(b)
	}
	for _, r := range reviews {
		s.putReview(r)
	}
	return s
}

func reviewsForBook(all []domain.Review, bookID string) []domain.Review {
	var out []domain.Review
	for _, r := range all {
		if r.BookID == bookID {
			out = append(out, r)
		}
	}
	return out
}

// putBook inserts or replaces a book. Caller must hold no lock.
func (s *Store) putBook(b domain.Book) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.books[b.ID]; !exists {
		s.bookIDs = append(s.bookIDs, b.ID)
	}
	s.books[b.ID] = b.Clone()
}

// putReview inserts a review into its book's group, keeping the group
// sorted descending by timestamp. Caller must hold no lock.
func (s *Store) putReview(r domain.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.insertReviewLocked(r)
}

func (s *Store) insertReviewLocked(r domain.Review) {
	group := append(s.reviews[r.BookID], r)
	sort.SliceStable(group, func(i, j int) bool {
		return group[i].Timestamp > group[j].Timestamp
	})
	s.reviews[r.BookID] = group
}
