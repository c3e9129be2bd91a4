package validate

import (
	"github.com/amanabooks/storefront/internal/domain"
)

// Book validates a full book creation payload and assembles the entity.
// The caller supplies the already-normalized id; id and isbn uniqueness
// are checked by the storage backend, not here.
func Book(input domain.CreateBookInput, id string) (domain.Book, error) {
	var (
		book domain.Book
		err  error
	)
	book.ID = id

	if book.Title, err = NonEmptyString(input.Title, "title"); err != nil {
		return domain.Book{}, err
	}
	if book.Author, err = NonEmptyString(input.Author, "author"); err != nil {
		return domain.Book{}, err
	}
	if book.Description, err = NonEmptyString(input.Description, "description"); err != nil {
		return domain.Book{}, err
	}
	if book.Image, err = NonEmptyString(input.Image, "image"); err != nil {
		return domain.Book{}, err
	}
	if book.ISBN, err = NonEmptyString(input.ISBN, "isbn"); err != nil {
		return domain.Book{}, err
	}
	if book.Genre, err = StringSlice(input.Genre, "genre"); err != nil {
		return domain.Book{}, err
	}
	if book.Tags, err = StringSlice(input.Tags, "tags"); err != nil {
		return domain.Book{}, err
	}
	if book.DatePublished, err = NonEmptyString(input.DatePublished, "datePublished"); err != nil {
		return domain.Book{}, err
	}
	if book.Language, err = NonEmptyString(input.Language, "language"); err != nil {
		return domain.Book{}, err
	}
	if book.Publisher, err = NonEmptyString(input.Publisher, "publisher"); err != nil {
		return domain.Book{}, err
	}

	if book.Price, err = Number(input.Price, "price"); err != nil {
		return domain.Book{}, err
	}
	pages, err := Number(input.Pages, "pages")
	if err != nil {
		return domain.Book{}, err
	}
	book.Pages = int(pages)

	if book.Rating, err = Number(input.Rating, "rating"); err != nil {
		return domain.Book{}, err
	}
	reviewCount, err := Number(input.ReviewCount, "reviewCount")
	if err != nil {
		return domain.Book{}, err
	}
	book.ReviewCount = int(reviewCount)

	if book.InStock, err = Boolean(input.InStock, "inStock"); err != nil {
		return domain.Book{}, err
	}
	if book.Featured, err = Boolean(input.Featured, "featured"); err != nil {
		return domain.Book{}, err
	}

	return book, nil
}

// Review validates a review creation payload and assembles the entity.
// The caller supplies the review id and the owning book's canonical id;
// book existence and review-id uniqueness are backend concerns.
func Review(input domain.CreateReviewInput, id, bookID string) (domain.Review, error) {
	var (
		review domain.Review
		err    error
	)
	review.ID = id
	review.BookID = bookID

	if review.Author, err = NonEmptyString(input.Author, "author"); err != nil {
		return domain.Review{}, err
	}
	if review.Rating, err = Rating(input.Rating, "rating"); err != nil {
		return domain.Review{}, err
	}
	if review.Title, err = NonEmptyString(input.Title, "title"); err != nil {
		return domain.Review{}, err
	}
	if review.Comment, err = NonEmptyString(input.Comment, "comment"); err != nil {
		return domain.Review{}, err
	}
	if review.Timestamp, err = Timestamp(input.Timestamp, "timestamp"); err != nil {
		return domain.Review{}, err
	}
	if input.Verified != nil {
		if review.Verified, err = Boolean(input.Verified, "verified"); err != nil {
			return domain.Review{}, err
		}
	}

	return review, nil
}
