package domain

import "context"

// =============================================================================
// BOOK DOMAIN ERRORS
// =============================================================================

var (
	ErrBookNotFound  = &Error{Code: ENOTFOUND, Message: "Book not found"}
	ErrBookDuplicate = &Error{Code: ECONFLICT, Message: "Book with the same id or ISBN already exists"}
)

// BookService provides catalog operations over the book collection.
// Implementations exist for the persistent document store and for the
// in-memory fallback store; which one a deployment gets is decided once
// at startup, not per call.
type BookService interface {
	// ListBooks returns every book in the catalog.
	ListBooks(ctx context.Context) ([]Book, error)

	// GetBookByID returns the book matching any historical representation
	// of the given id. Returns ErrBookNotFound when no book matches; an
	// unparseable id is treated as not found, never as a fatal error.
	GetBookByID(ctx context.Context, id string) (*Book, error)

	// GetBooksByIDs returns books in the same relative order as ids.
	// Ids with no matching book are dropped silently; no id produces
	// more than one entry.
	GetBooksByIDs(ctx context.Context, ids []string) ([]Book, error)

	// CreateBook validates the payload and persists a new book.
	// When no id is supplied, the next integer above the current maximum
	// numeric id is assigned. Colliding id or isbn is rejected.
	CreateBook(ctx context.Context, input CreateBookInput) (*Book, error)
}

// Book is the canonical, normalized view of a catalog entry. Rating and
// ReviewCount are derived from the review collection and are rewritten on
// every review creation; they are never independently authored once
// reviews exist.
type Book struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Description   string   `json:"description"`
	Price         float64  `json:"price"`
	Image         string   `json:"image"`
	ISBN          string   `json:"isbn"`
	Genre         []string `json:"genre"`
	Tags          []string `json:"tags"`
	DatePublished string   `json:"datePublished"`
	Pages         int      `json:"pages"`
	Language      string   `json:"language"`
	Publisher     string   `json:"publisher"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"reviewCount"`
	InStock       bool     `json:"inStock"`
	Featured      bool     `json:"featured"`
}

// Clone returns a deep copy. Callers may mutate the result freely without
// corrupting store state.
func (b Book) Clone() Book {
	c := b
	c.Genre = append([]string(nil), b.Genre...)
	c.Tags = append([]string(nil), b.Tags...)
	return c
}

// CreateBookInput carries an untrusted creation payload. Fields are
// untyped because clients have historically sent numbers as strings,
// booleans as "1"/"0", and ids in several shapes; the validation layer
// owns coercion.
type CreateBookInput struct {
	ID            any `json:"id,omitempty"`
	Title         any `json:"title"`
	Author        any `json:"author"`
	Description   any `json:"description"`
	Price         any `json:"price"`
	Image         any `json:"image"`
	ISBN          any `json:"isbn"`
	Genre         any `json:"genre"`
	Tags          any `json:"tags"`
	DatePublished any `json:"datePublished"`
	Pages         any `json:"pages"`
	Language      any `json:"language"`
	Publisher     any `json:"publisher"`
	Rating        any `json:"rating"`
	ReviewCount   any `json:"reviewCount"`
	InStock       any `json:"inStock"`
	Featured      any `json:"featured"`
}
