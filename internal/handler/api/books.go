package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/amanabooks/storefront/internal/domain"
)

// BookHandler serves the catalog endpoints.
type BookHandler struct {
	books  domain.BookService
	logger *slog.Logger
}

// NewBookHandler creates a new book handler.
func NewBookHandler(books domain.BookService, logger *slog.Logger) *BookHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookHandler{books: books, logger: logger}
}

// List handles GET /api/books. With an ids query parameter
// (comma-separated) it returns only the matching books, in the order
// they were asked for; otherwise the full catalog.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if raw := r.URL.Query().Get("ids"); raw != "" {
		ids := strings.Split(raw, ",")
		books, err := h.books.GetBooksByIDs(ctx, ids)
		if err != nil {
			Fail(w, r, h.logger, err, "Failed to fetch books")
			return
		}
		JSON(w, http.StatusOK, books)
		return
	}

	books, err := h.books.ListBooks(ctx)
	if err != nil {
		Fail(w, r, h.logger, err, "Failed to fetch books")
		return
	}
	JSON(w, http.StatusOK, books)
}

// Get handles GET /api/books/{id}.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		BadRequest(w, "Book id missing from route params")
		return
	}

	book, err := h.books.GetBookByID(r.Context(), id)
	if err != nil {
		if domain.IsCode(err, domain.ENOTFOUND) {
			NotFound(w, "Book not found")
			return
		}
		Fail(w, r, h.logger, err, "Failed to fetch book")
		return
	}
	JSON(w, http.StatusOK, book)
}

// Create handles POST /api/books.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.CreateBookInput
	if err := DecodeBody(r, &input); err != nil {
		Fail(w, r, h.logger, err, "Failed to create book")
		return
	}

	book, err := h.books.CreateBook(r.Context(), input)
	if err != nil {
		Fail(w, r, h.logger, err, "Failed to create book")
		return
	}
	JSON(w, http.StatusCreated, book)
}
