package api

import (
	"log/slog"
	"net/http"

	"github.com/amanabooks/storefront/internal/domain"
)

// ReviewHandler serves the review endpoints.
type ReviewHandler struct {
	reviews domain.ReviewService
	logger  *slog.Logger
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviews domain.ReviewService, logger *slog.Logger) *ReviewHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReviewHandler{reviews: reviews, logger: logger}
}

// List handles GET /api/reviews. A bookId query parameter narrows the
// result to one book's reviews; an unknown or malformed bookId yields
// an empty list rather than an error.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		reviews []domain.Review
		err     error
	)
	if bookID := r.URL.Query().Get("bookId"); bookID != "" {
		reviews, err = h.reviews.ListReviewsForBook(ctx, bookID)
	} else {
		reviews, err = h.reviews.ListAllReviews(ctx)
	}
	if err != nil {
		Fail(w, r, h.logger, err, "Failed to fetch reviews")
		return
	}
	JSON(w, http.StatusOK, reviews)
}

// Get handles GET /api/reviews/{id}.
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		BadRequest(w, "Review id missing from route params")
		return
	}

	review, err := h.reviews.GetReviewByID(r.Context(), id)
	if err != nil {
		if domain.IsCode(err, domain.ENOTFOUND) {
			NotFound(w, "Review not found")
			return
		}
		Fail(w, r, h.logger, err, "Failed to fetch review")
		return
	}
	JSON(w, http.StatusOK, review)
}

// Create handles POST /api/reviews.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input domain.CreateReviewInput
	if err := DecodeBody(r, &input); err != nil {
		Fail(w, r, h.logger, err, "Failed to create review")
		return
	}

	review, err := h.reviews.CreateReview(r.Context(), input)
	if err != nil {
		Fail(w, r, h.logger, err, "Failed to create review")
		return
	}
	JSON(w, http.StatusCreated, review)
}
