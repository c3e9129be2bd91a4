package domain

import (
	"context"
	"math"
)

// =============================================================================
// REVIEW DOMAIN ERRORS
// =============================================================================

var (
	ErrReviewNotFound  = &Error{Code: ENOTFOUND, Message: "Review not found"}
	ErrReviewDuplicate = &Error{Code: ECONFLICT, Message: "Review with the same id already exists"}
)

// ReviewService provides review operations plus maintenance of the owning
// book's derived rating aggregate.
type ReviewService interface {
	// ListReviewsForBook returns the reviews for one book, newest first.
	ListReviewsForBook(ctx context.Context, bookID string) ([]Review, error)

	// ListAllReviews returns every review, newest first.
	ListAllReviews(ctx context.Context) ([]Review, error)

	// GetReviewByID returns a single review or ErrReviewNotFound.
	GetReviewByID(ctx context.Context, id string) (*Review, error)

	// CreateReview validates the payload, rejects reviews for books that
	// do not exist, inserts the review, and then synchronously recomputes
	// and persists the owning book's rating and reviewCount. The insert
	// and the aggregate write are two sequential, non-atomic writes: a
	// crash between them leaves the stored aggregate stale until the next
	// review creation recomputes it.
	CreateReview(ctx context.Context, input CreateReviewInput) (*Review, error)
}

// Review is an immutable reader review. BookID holds the owning book's
// canonical id; it is a weak reference, never a live handle.
type Review struct {
	ID        string  `json:"id"`
	BookID    string  `json:"bookId"`
	Author    string  `json:"author"`
	Rating    float64 `json:"rating"`
	Title     string  `json:"title"`
	Comment   string  `json:"comment"`
	Timestamp string  `json:"timestamp"`
	Verified  bool    `json:"verified"`
}

// CreateReviewInput carries an untrusted review creation payload.
// BookID is required; Timestamp defaults to the creation time and
// Verified to false when absent.
type CreateReviewInput struct {
	ID        any `json:"id,omitempty"`
	BookID    any `json:"bookId"`
	Author    any `json:"author"`
	Rating    any `json:"rating"`
	Title     any `json:"title"`
	Comment   any `json:"comment"`
	Timestamp any `json:"timestamp,omitempty"`
	Verified  any `json:"verified,omitempty"`
}

// ReviewAggregate computes the derived rating fields for a book from the
// full set of its reviews: the review count and the mean rating rounded
// to one decimal place (0 when there are no reviews).
func ReviewAggregate(reviews []Review) (count int, rating float64) {
	count = len(reviews)
	if count == 0 {
		return 0, 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	rating = math.Round(sum/float64(count)*10) / 10
	return count, rating
}
