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

// CartService implements domain.CartService over the cart collection.
// One document per (session, book) line; quantity changes are single
// atomic upserts so concurrent adds for the same line never race.
type CartService struct {
	client *Client
}

// Compile-time check that CartService implements domain.CartService.
var _ domain.CartService = (*CartService)(nil)

// NewCartService creates a Mongo-backed cart service.
func NewCartService(client *Client) *CartService {
	return &CartService{client: client}
}

// cartDoc keeps the legacy field name userId for the session key so
// existing cart collections keep working.
type cartDoc struct {
	MongoID   any    `bson:"_id,omitempty"`
	ID        string `bson:"id"`
	SessionID string `bson:"userId"`
	BookID    string `bson:"bookId"`
	Quantity  int    `bson:"quantity"`
	AddedAt   string `bson:"addedAt"`
}

func (d cartDoc) toDomain() domain.CartItem {
	return domain.CartItem{
		ID:        d.ID,
		SessionID: d.SessionID,
		BookID:    d.BookID,
		Quantity:  d.Quantity,
		AddedAt:   d.AddedAt,
	}
}

// GetCartItem returns the cart line for a session and book, or nil
// when the session has no line for that book.
func (s *CartService) GetCartItem(ctx context.Context, sessionID, bookID string) (*domain.CartItem, error) {
	const op = "cart.get_item"

	session, err := validate.NonEmptyString(sessionID, "sessionId")
	if err != nil {
		return nil, err
	}
	book, err := validate.NonEmptyString(bookID, "bookId")
	if err != nil {
		return nil, err
	}

	coll, err := s.client.cart(ctx)
	if err != nil {
		return nil, err
	}

	var doc cartDoc
	if err := coll.FindOne(ctx, bson.M{"userId": session, "bookId": book}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, domain.Unavailable(err, op, "failed to fetch cart item")
	}

	item := doc.toDomain()
	return &item, nil
}

// GetCartBySession returns every line in a session's cart, most
// recently touched first.
func (s *CartService) GetCartBySession(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	const op = "cart.list"

	session, err := validate.NonEmptyString(sessionID, "sessionId")
	if err != nil {
		return nil, err
	}

	coll, err := s.client.cart(ctx)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "addedAt", Value: -1}})
	cursor, err := coll.Find(ctx, bson.M{"userId": session}, opts)
	if err != nil {
		return nil, domain.Unavailable(err, op, "failed to list cart")
	}
	defer cursor.Close(ctx)

	var docs []cartDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, domain.Unavailable(err, op, "failed to decode cart")
	}
	items := make([]domain.CartItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.toDomain())
	}
	return items, nil
}

// AddToCart adds a book to a session's cart. An existing line for the
// book has the quantity added to it; otherwise a new line is created.
// Both cases are a single findOneAndUpdate upsert.
func (s *CartService) AddToCart(ctx context.Context, input domain.AddToCartInput) (*domain.CartItem, error) {
	const op = "cart.add"

	session, err := validate.NonEmptyString(input.SessionID, "sessionId")
	if err != nil {
		return nil, err
	}
	book, err := validate.NonEmptyString(input.BookID, "bookId")
	if err != nil {
		return nil, err
	}
	quantity := 1
	if input.Quantity != nil {
		if quantity, err = validate.Quantity(input.Quantity); err != nil {
			return nil, err
		}
	}

	coll, err := s.client.cart(ctx)
	if err != nil {
		return nil, err
	}

	id := "cart-" + uuid.NewString()
	update := bson.M{
		"$inc":         bson.M{"quantity": quantity},
		"$set":         bson.M{"addedAt": validate.NowISO()},
		"$setOnInsert": bson.M{"_id": id, "id": id, "userId": session, "bookId": book},
	}
	return s.upsertLine(ctx, coll, session, book, update, op)
}

// UpdateItemQuantity sets the quantity of a cart line to an absolute
// value, creating the line when it does not exist yet.
func (s *CartService) UpdateItemQuantity(ctx context.Context, input domain.UpdateCartQuantityInput) (*domain.CartItem, error) {
	const op = "cart.update_quantity"

	session, err := validate.NonEmptyString(input.SessionID, "sessionId")
	if err != nil {
		return nil, err
	}
	book, err := validate.NonEmptyString(input.BookID, "bookId")
	if err != nil {
		return nil, err
	}
	quantity, err := validate.Quantity(input.Quantity)
	if err != nil {
		return nil, err
	}

	coll, err := s.client.cart(ctx)
	if err != nil {
		return nil, err
	}

	id := "cart-" + uuid.NewString()
	update := bson.M{
		"$set":         bson.M{"quantity": quantity, "addedAt": validate.NowISO()},
		"$setOnInsert": bson.M{"_id": id, "id": id, "userId": session, "bookId": book},
	}
	return s.upsertLine(ctx, coll, session, book, update, op)
}

func (s *CartService) upsertLine(ctx context.Context, coll *mongo.Collection, session, book string, update bson.M, op string) (*domain.CartItem, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc cartDoc
	filter := bson.M{"userId": session, "bookId": book}
	if err := coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return nil, domain.Unavailable(err, op, "failed to update cart")
	}
	item := doc.toDomain()
	return &item, nil
}

// RemoveFromCart deletes a single cart line. It reports whether a line
// was actually removed.
func (s *CartService) RemoveFromCart(ctx context.Context, sessionID, bookID string) (bool, error) {
	const op = "cart.remove"

	session, err := validate.NonEmptyString(sessionID, "sessionId")
	if err != nil {
		return false, err
	}
	book, err := validate.NonEmptyString(bookID, "bookId")
	if err != nil {
		return false, err
	}

	coll, err := s.client.cart(ctx)
	if err != nil {
		return false, err
	}

	res, err := coll.DeleteOne(ctx, bson.M{"userId": session, "bookId": book})
	if err != nil {
		return false, domain.Unavailable(err, op, "failed to remove cart item")
	}
	return res.DeletedCount == 1, nil
}

// ClearCart removes every line for a session and returns how many
// lines were deleted.
func (s *CartService) ClearCart(ctx context.Context, sessionID string) (int64, error) {
	const op = "cart.clear"

	session, err := validate.NonEmptyString(sessionID, "sessionId")
	if err != nil {
		return 0, err
	}

	coll, err := s.client.cart(ctx)
	if err != nil {
		return 0, err
	}

	res, err := coll.DeleteMany(ctx, bson.M{"userId": session})
	if err != nil {
		return 0, domain.Unavailable(err, op, "failed to clear cart")
	}
	return res.DeletedCount, nil
}
