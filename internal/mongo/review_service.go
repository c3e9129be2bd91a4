package mongo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/amanabooks/storefront/internal/domain"
	"github.com/amanabooks/storefront/internal/validate"
)

// ReviewService implements domain.ReviewService over the reviews
// collection. It depends on the book service for existence checks and
// for writing the derived aggregate back onto the owning book.
type ReviewService struct {
	client *Client
	books  *BookService
}

// Compile-time check that ReviewService implements domain.ReviewService.
var _ domain.ReviewService = (*ReviewService)(nil)

// NewReviewService creates a Mongo-backed review service.
func NewReviewService(client *Client, books *BookService) *ReviewService {
	return &ReviewService{client: client, books: books}
}

type reviewDoc struct {
	MongoID   any     `bson:"_id,omitempty"`
	ID        string  `bson:"id"`
	BookID    string  `bson:"bookId"`
	Author    string  `bson:"author"`
	Rating    float64 `bson:"rating"`
	Title     string  `bson:"title"`
	Comment   string  `bson:"comment"`
	Timestamp string  `bson:"timestamp"`
	Verified  bool    `bson:"verified"`
}

func (d reviewDoc) toDomain() domain.Review {
	return domain.Review{
		ID:        d.ID,
		BookID:    d.BookID,
		Author:    d.Author,
		Rating:    d.Rating,
		Title:     d.Title,
		Comment:   d.Comment,
		Timestamp: d.Timestamp,
		Verified:  d.Verified,
	}
}

func docFromReview(r domain.Review) reviewDoc {
	return reviewDoc{
		MongoID:   r.ID,
		ID:        r.ID,
		BookID:    r.BookID,
		Author:    r.Author,
		Rating:    r.Rating,
		Title:     r.Title,
		Comment:   r.Comment,
		Timestamp: r.Timestamp,
		Verified:  r.Verified,
	}
}

var newestFirst = options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

// ListReviewsForBook returns the reviews for one book, newest first.
// The book id is resolved through the book service first so any
// representation of the id reaches the reviews stored under the
// canonical one.
func (s *ReviewService) ListReviewsForBook(ctx context.Context, bookID string) ([]domain.Review, error) {
	const op = "review.list_for_book"

	canonical, err := domain.CanonicalID(bookID)
	if err != nil {
		return []domain.Review{}, nil
	}
	if book, err := s.books.GetBookByID(ctx, canonical); err == nil {
		canonical = book.ID
	} else if !domain.IsCode(err, domain.ENOTFOUND) {
		return nil, err
	}

	coll, err := s.client.reviews(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{"bookId": canonical}, newestFirst)
	if err != nil {
		return nil, domain.Unavailable(err, op, "failed to list reviews")
	}
	defer cursor.Close(ctx)

	return decodeReviews(ctx, cursor, op)
}

// ListAllReviews returns every review, newest first.
func (s *ReviewService) ListAllReviews(ctx context.Context) ([]domain.Review, error) {
	const op = "review.list_all"

	coll, err := s.client.reviews(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{}, newestFirst)
	if err != nil {
		return nil, domain.Unavailable(err, op, "failed to list reviews")
	}
	defer cursor.Close(ctx)

	return decodeReviews(ctx, cursor, op)
}

// GetReviewByID returns a single review or domain.ErrReviewNotFound.
func (s *ReviewService) GetReviewByID(ctx context.Context, id string) (*domain.Review, error) {
	const op = "review.get"

	canonical, err := domain.CanonicalID(id)
	if err != nil {
		return nil, domain.ErrReviewNotFound
	}

	coll, err := s.client.reviews(ctx)
	if err != nil {
		return nil, err
	}

	var doc reviewDoc
	if err := coll.FindOne(ctx, bson.M{"id": canonical}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, domain.Unavailable(err, op, "failed to fetch review")
	}

	review := doc.toDomain()
	return &review, nil
}

// CreateReview validates and inserts a review, then recomputes the
// owning book's rating and reviewCount from the full review set and
// writes them back. The insert and the aggregate write are two
// sequential, non-atomic operations: a crash in between leaves the
// stored aggregate stale until the next review creation recomputes it.
func (s *ReviewService) CreateReview(ctx context.Context, input domain.CreateReviewInput) (*domain.Review, error) {
	const op = "review.create"

	if input.BookID == nil {
		return nil, domain.Invalid(op, "bookId is required")
	}
	canonical, err := domain.CanonicalID(input.BookID)
	if err != nil {
		return nil, err
	}

	book, err := s.books.GetBookByID(ctx, canonical)
	if err != nil {
		if domain.IsCode(err, domain.ENOTFOUND) {
			return nil, domain.Invalid(op, "Book not found")
		}
		return nil, err
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

	coll, err := s.client.reviews(ctx)
	if err != nil {
		return nil, err
	}

	var existing reviewDoc
	switch err := coll.FindOne(ctx, bson.M{"id": review.ID}).Decode(&existing); {
	case err == nil:
		return nil, domain.ErrReviewDuplicate
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, domain.Unavailable(err, op, "failed to check for existing review")
	}

	// Step one: insert the review.
	if _, err := coll.InsertOne(ctx, docFromReview(review)); err != nil {
		return nil, domain.Unavailable(err, op, "failed to insert review")
	}

	// Step two: recompute the aggregate over all of the book's reviews
	// and write it onto the book, synchronously, because the caller
	// immediately re-reads the book.
	if err := s.recomputeBookAggregate(ctx, book.ID); err != nil {
		return nil, err
	}

	return &review, nil
}

// recomputeBookAggregate derives reviewCount and rating from the full
// review set of a book and persists them.
func (s *ReviewService) recomputeBookAggregate(ctx context.Context, bookID string) error {
	const op = "review.aggregate"

	reviews, err := s.ListReviewsForBook(ctx, bookID)
	if err != nil {
		return err
	}
	count, rating := domain.ReviewAggregate(reviews)

	books, err := s.client.books(ctx)
	if err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{"reviewCount": count, "rating": rating}}
	if _, err := books.UpdateOne(ctx, idFilter(bookID), update); err != nil {
		return domain.Unavailable(err, op, "failed to update book aggregate")
	}
	return nil
}

func decodeReviews(ctx context.Context, cursor *mongo.Cursor, op string) ([]domain.Review, error) {
	var docs []reviewDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domain.Unavailable(err, op, "failed to decode reviews")
	}
	reviews := make([]domain.Review, 0, len(docs))
	for _, doc := range docs {
		reviews = append(reviews, doc.toDomain())
	}
	return reviews, nil
}
