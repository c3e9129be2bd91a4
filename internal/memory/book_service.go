package memory

import (
	"context"
	"math"
	"strconv"

	"github.com/amanabooks/storefront/internal/domain"
	"github.com/amanabooks/storefront/internal/validate"
)

// BookService implements domain.BookService against the in-memory store.
type BookService struct {
	store *Store
}

// Compile-time check that BookService implements domain.BookService.
var _ domain.BookService = (*BookService)(nil)

// NewBookService creates an in-memory book service.
func NewBookService(store *Store) *BookService {
	return &BookService{store: store}
}

// ListBooks returns every book in insertion order.
func (s *BookService) ListBooks(_ context.Context) ([]domain.Book, error) {
	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	books := make([]domain.Book, 0, len(s.store.bookIDs))
	for _, id := range s.store.bookIDs {
		books = append(books, s.store.books[id].Clone())
	}
	return books, nil
}

// GetBookByID looks a book up under any representation of its id. An id
// that cannot be normalized is treated as not found.
func (s *BookService) GetBookByID(_ context.Context, id string) (*domain.Book, error) {
	canonical, err := domain.CanonicalID(id)
	if err != nil {
		return nil, domain.ErrBookNotFound
	}

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	if b, ok := s.store.lookupBookLocked(canonical); ok {
		clone := b.Clone()
		return &clone, nil
	}
	return nil, domain.ErrBookNotFound
}

// GetBooksByIDs returns matching books in the same relative order as
// ids. Unmatched and unparseable ids are dropped silently; an id that
// appears twice yields one entry.
func (s *BookService) GetBooksByIDs(_ context.Context, ids []string) ([]domain.Book, error) {
	if len(ids) == 0 {
		return []domain.Book{}, nil
	}

	s.store.mu.RLock()
	defer s.store.mu.RUnlock()

	books := make([]domain.Book, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		canonical, err := domain.CanonicalID(id)
		if err != nil {
			continue
		}
		b, ok := s.store.lookupBookLocked(canonical)
		if !ok || seen[b.ID] {
			continue
		}
		seen[b.ID] = true
		books = append(books, b.Clone())
	}
	return books, nil
}

// CreateBook validates the payload and inserts a new book. When no id is
// supplied, the next integer above the current maximum numeric id is
// assigned.
func (s *BookService) CreateBook(_ context.Context, input domain.CreateBookInput) (*domain.Book, error) {
	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	var id string
	if input.ID != nil {
		canonical, err := domain.CanonicalID(input.ID)
		if err != nil {
			return nil, err
		}
		id = canonical
	} else {
		id = s.store.nextBookIDLocked()
	}

	book, err := validate.Book(input, id)
	if err != nil {
		return nil, err
	}

	if _, exists := s.store.lookupBookLocked(id); exists {
		return nil, domain.ErrBookDuplicate
	}
	for _, existing := range s.store.books {
		if existing.ISBN == book.ISBN {
			return nil, domain.ErrBookDuplicate
		}
	}

	s.store.bookIDs = append(s.store.bookIDs, book.ID)
	s.store.books[book.ID] = book.Clone()

	return &book, nil
}

// lookupBookLocked finds a book by canonical id, falling back to numeric
// equivalence so that "7", 7, and "7.0" all reach the same document.
// Caller must hold at least a read lock.
func (s *Store) lookupBookLocked(canonical string) (domain.Book, bool) {
	if b, ok := s.books[canonical]; ok {
		return b, true
	}
	if n, ok := domain.NumericID(canonical); ok {
		for _, b := range s.books {
			if stored, ok := domain.NumericID(b.ID); ok && stored == n {
				return b, true
			}
		}
	}
	return domain.Book{}, false
}

// nextBookIDLocked returns the next integer id above the current maximum
// numeric id; ids with no numeric form are skipped. Caller must hold the
// write lock.
func (s *Store) nextBookIDLocked() string {
	var maxID float64
	for _, b := range s.books {
		if n, ok := domain.NumericID(b.ID); ok && n > maxID {
			maxID = n
		}
	}
	next := int64(math.Floor(maxID)) + 1
	return strconv.FormatInt(next, 10)
}
