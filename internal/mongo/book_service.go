package mongo

import (
	"context"
	"errors"
	"math"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/amanabooks/storefront/internal/domain"
	"github.com/amanabooks/storefront/internal/validate"
)

// BookService implements domain.BookService over the books collection.
type BookService struct {
	client *Client
}

// Compile-time check that BookService implements domain.BookService.
var _ domain.BookService = (*BookService)(nil)

// NewBookService creates a Mongo-backed book service.
func NewBookService(client *Client) *BookService {
	return &BookService{client: client}
}

// bookDoc is the lenient decoding shape for stored book documents.
// The id is untyped because historical documents stored it as a number,
// a string, or a native object id; other fields may be missing entirely
// and are zeroed on normalization.
type bookDoc struct {
	MongoID       any      `bson:"_id,omitempty"`
	ID            any      `bson:"id,omitempty"`
	Title         string   `bson:"title,omitempty"`
	Author        string   `bson:"author,omitempty"`
	Description   string   `bson:"description,omitempty"`
	Price         float64  `bson:"price,omitempty"`
	Image         string   `bson:"image,omitempty"`
	ISBN          string   `bson:"isbn,omitempty"`
	Genre         []string `bson:"genre,omitempty"`
	Tags          []string `bson:"tags,omitempty"`
	DatePublished string   `bson:"datePublished,omitempty"`
	Pages         int      `bson:"pages,omitempty"`
	Language      string   `bson:"language,omitempty"`
	Publisher     string   `bson:"publisher,omitempty"`
	Rating        float64  `bson:"rating,omitempty"`
	ReviewCount   int      `bson:"reviewCount,omitempty"`
	InStock       bool     `bson:"inStock,omitempty"`
	Featured      bool     `bson:"featured,omitempty"`
}

// normalizeBook converts a stored document into the canonical entity.
// A document whose id cannot be canonicalized is corrupt; that is an
// internal failure, never a validation error.
func normalizeBook(doc bookDoc) (domain.Book, error) {
	idValue := doc.ID
	if idValue == nil {
		idValue = doc.MongoID
	}
	id, err := domain.CanonicalID(idValue)
	if err != nil {
		return domain.Book{}, domain.Internal(err, "book.normalize", "stored book document has an unusable id")
	}

	book := domain.Book{
		ID:            id,
		Title:         doc.Title,
		Author:        doc.Author,
		Description:   doc.Description,
		Price:         doc.Price,
		Image:         doc.Image,
		ISBN:          doc.ISBN,
		DatePublished: doc.DatePublished,
		Pages:         doc.Pages,
		Language:      doc.Language,
		Publisher:     doc.Publisher,
		Rating:        doc.Rating,
		ReviewCount:   doc.ReviewCount,
		InStock:       doc.InStock,
		Featured:      doc.Featured,
	}
	book.Genre = append([]string{}, doc.Genre...)
	book.Tags = append([]string{}, doc.Tags...)
	return book, nil
}

func docFromBook(b domain.Book) bookDoc {
	return bookDoc{
		MongoID:       b.ID,
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Description:   b.Description,
		Price:         b.Price,
		Image:         b.Image,
		ISBN:          b.ISBN,
		Genre:         b.Genre,
		Tags:          b.Tags,
		DatePublished: b.DatePublished,
		Pages:         b.Pages,
		Language:      b.Language,
		Publisher:     b.Publisher,
		Rating:        b.Rating,
		ReviewCount:   b.ReviewCount,
		InStock:       b.InStock,
		Featured:      b.Featured,
	}
}

// ListBooks returns every book in the collection. A configured store
// that errors surfaces the failure; it is never silently replaced by
// fallback data.
func (s *BookService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	const op = "book.list"

	coll, err := s.client.books(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, domain.Unavailable(err, op, "failed to list books")
	}
	defer cursor.Close(ctx)

	var docs []bookDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domain.Unavailable(err, op, "failed to decode books")
	}

	books := make([]domain.Book, 0, len(docs))
	for _, doc := range docs {
		book, err := normalizeBook(doc)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, nil
}

// GetBookByID finds a book under any historical representation of the
// given id. Unparseable ids are a miss, not a failure.
func (s *BookService) GetBookByID(ctx context.Context, id string) (*domain.Book, error) {
	const op = "book.get"

	canonical, err := domain.CanonicalID(id)
	if err != nil {
		return nil, domain.ErrBookNotFound
	}

	coll, err := s.client.books(ctx)
	if err != nil {
		return nil, err
	}

	var doc bookDoc
	if err := coll.FindOne(ctx, idFilter(canonical)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookNotFound
		}
		return nil, domain.Unavailable(err, op, "failed to fetch book")
	}

	book, err := normalizeBook(doc)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// GetBooksByIDs returns matching books in the same relative order as
// ids, dropping unmatched ids silently and never duplicating. The store
// returns matches in arbitrary order, so results are reordered here.
func (s *BookService) GetBooksByIDs(ctx context.Context, ids []string) ([]domain.Book, error) {
	const op = "book.get_many"

	canonicals := make([]string, 0, len(ids))
	for _, id := range ids {
		if canonical, err := domain.CanonicalID(id); err == nil {
			canonicals = append(canonicals, canonical)
		}
	}
	if len(canonicals) == 0 {
		return []domain.Book{}, nil
	}

	coll, err := s.client.books(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := coll.Find(ctx, idFilter(canonicals...))
	if err != nil {
		return nil, domain.Unavailable(err, op, "failed to fetch books")
	}
	defer cursor.Close(ctx)

	var docs []bookDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domain.Unavailable(err, op, "failed to decode books")
	}

	found := make([]domain.Book, 0, len(docs))
	for _, doc := range docs {
		book, err := normalizeBook(doc)
		if err != nil {
			return nil, err
		}
		found = append(found, book)
	}

	return orderByRequest(canonicals, found), nil
}

// orderByRequest arranges found books into the relative order of the
// requested canonical ids, matching numerically when the exact string
// differs ("7.0" still finds the book stored as "7"). Each book appears
// at most once.
func orderByRequest(canonicals []string, found []domain.Book) []domain.Book {
	byID := make(map[string]domain.Book, len(found))
	byNumber := make(map[float64]domain.Book)
	for _, b := range found {
		byID[b.ID] = b
		if n, ok := domain.NumericID(b.ID); ok {
			byNumber[n] = b
		}
	}

	ordered := make([]domain.Book, 0, len(found))
	seen := make(map[string]bool, len(found))
	for _, canonical := range canonicals {
		book, ok := byID[canonical]
		if !ok {
			if n, numeric := domain.NumericID(canonical); numeric {
				book, ok = byNumber[n]
			}
		}
		if !ok || seen[book.ID] {
			continue
		}
		seen[book.ID] = true
		ordered = append(ordered, book)
	}
	return ordered
}

// CreateBook validates the payload and inserts a new book, assigning the
// next integer id when none is supplied.
func (s *BookService) CreateBook(ctx context.Context, input domain.CreateBookInput) (*domain.Book, error) {
	const op = "book.create"

	coll, err := s.client.books(ctx)
	if err != nil {
		return nil, err
	}

	var id string
	if input.ID != nil {
		if id, err = domain.CanonicalID(input.ID); err != nil {
			return nil, err
		}
	} else {
		if id, err = s.nextBookID(ctx, coll); err != nil {
			return nil, err
		}
	}

	book, err := validate.Book(input, id)
	if err != nil {
		return nil, err
	}

	dupFilter := bson.M{"$or": []bson.M{
		idFilter(book.ID),
		{"isbn": book.ISBN},
	}}
	var existing bookDoc
	switch err := coll.FindOne(ctx, dupFilter).Decode(&existing); {
	case err == nil:
		return nil, domain.ErrBookDuplicate
	case !errors.Is(err, mongo.ErrNoDocuments):
		return nil, domain.Unavailable(err, op, "failed to check for existing book")
	}

	if _, err := coll.InsertOne(ctx, docFromBook(book)); err != nil {
		return nil, domain.Unavailable(err, op, "failed to insert book")
	}
	return &book, nil
}

// nextBookID scans existing ids and returns one above the maximum
// numeric id. Ids with no numeric form are skipped.
func (s *BookService) nextBookID(ctx context.Context, coll *mongo.Collection) (string, error) {
	const op = "book.next_id"

	opts := options.Find().SetProjection(bson.M{"id": 1, "_id": 1})
	cursor, err := coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return "", domain.Unavailable(err, op, "failed to scan book ids")
	}
	defer cursor.Close(ctx)

	var docs []bookDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return "", domain.Unavailable(err, op, "failed to decode book ids")
	}

	var maxID float64
	for _, doc := range docs {
		idValue := doc.ID
		if idValue == nil {
			idValue = doc.MongoID
		}
		canonical, err := domain.CanonicalID(idValue)
		if err != nil {
			continue
		}
		if n, ok := domain.NumericID(canonical); ok && n > maxID {
			maxID = n
		}
	}
	return strconv.FormatInt(int64(math.Floor(maxID))+1, 10), nil
}
