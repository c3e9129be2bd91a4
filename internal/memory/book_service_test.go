package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanabooks/storefront/internal/domain"
)

func validBookInput() domain.CreateBookInput {
	return domain.CreateBookInput{
		Title:         "A New Book",
		Author:        "Test Author",
		Description:   "Something worth reading.",
		Price:         12.5,
		Image:         "/images/books/new-book.jpg",
		ISBN:          "9780000000100",
		Genre:         []any{"Fiction"},
		Tags:          []any{"new"},
		DatePublished: "2025-01-01",
		Pages:         200.0,
		Language:      "English",
		Publisher:     "Test House",
		Rating:        0.0,
		ReviewCount:   0.0,
		InStock:       true,
		Featured:      false,
	}
}

func TestBookService_ListBooks(t *testing.T) {
	svc := NewBookService(NewSeededStore())

	books, err := svc.ListBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 8)

	// Insertion order is preserved.
	assert.Equal(t, "1", books[0].ID)
	assert.Equal(t, "The Celestial Voyage", books[0].Title)
	assert.Equal(t, "8", books[7].ID)
}

func TestBookService_SeededAggregates(t *testing.T) {
	svc := NewBookService(NewSeededStore())

	tests := []struct {
		id          string
		wantRating  float64
		wantReviews int
	}{
		{id: "1", wantRating: 4.5, wantReviews: 2}, // 5 and 4
		{id: "4", wantRating: 3.5, wantReviews: 2}, // 4 and 3
		{id: "7", wantRating: 5.0, wantReviews: 2}, // 5 and 5
	}

	for _, tt := range tests {
		book, err := svc.GetBookByID(context.Background(), tt.id)
		require.NoError(t, err)
		assert.Equal(t, tt.wantRating, book.Rating, "book %s rating", tt.id)
		assert.Equal(t, tt.wantReviews, book.ReviewCount, "book %s reviewCount", tt.id)
	}
}

func TestBookService_GetBookByID_RepresentationEquivalence(t *testing.T) {
	svc := NewBookService(NewSeededStore())
	ctx := context.Background()

	representations := []string{"7", " 7 ", "7.0", "07"}
	for _, r := range representations {
		book, err := svc.GetBookByID(ctx, r)
		require.NoError(t, err, "representation %q", r)
		assert.Equal(t, "7", book.ID, "representation %q", r)
		assert.Equal(t, "Fragments of Light", book.Title)
	}
}

func TestBookService_GetBookByID_NotFound(t *testing.T) {
	svc := NewBookService(NewSeededStore())
	ctx := context.Background()

	_, err := svc.GetBookByID(ctx, "999")
	assert.ErrorIs(t, err, domain.ErrBookNotFound)

	// An unparseable id is a miss, not a fatal error.
	_, err = svc.GetBookByID(ctx, "   ")
	assert.ErrorIs(t, err, domain.ErrBookNotFound)
}

func TestBookService_GetBooksByIDs(t *testing.T) {
	svc := NewBookService(NewSeededStore())
	ctx := context.Background()

	t.Run("preserves input order and drops misses", func(t *testing.T) {
		books, err := svc.GetBooksByIDs(ctx, []string{"5", "999", "2", "8"})
		require.NoError(t, err)
		require.Len(t, books, 3)
		assert.Equal(t, "5", books[0].ID)
		assert.Equal(t, "2", books[1].ID)
		assert.Equal(t, "8", books[2].ID)
	})

	t.Run("never duplicates", func(t *testing.T) {
		books, err := svc.GetBooksByIDs(ctx, []string{"3", "3.0", " 3 "})
		require.NoError(t, err)
		require.Len(t, books, 1)
		assert.Equal(t, "3", books[0].ID)
	})

	t.Run("empty input", func(t *testing.T) {
		books, err := svc.GetBooksByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, books)
	})
}

func TestBookService_CreateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns next integer id", func(t *testing.T) {
		svc := NewBookService(NewSeededStore())
		book, err := svc.CreateBook(ctx, validBookInput())
		require.NoError(t, err)
		assert.Equal(t, "9", book.ID)

		got, err := svc.GetBookByID(ctx, "9")
		require.NoError(t, err)
		assert.Equal(t, "A New Book", got.Title)
	})

	t.Run("accepts supplied id", func(t *testing.T) {
		svc := NewBookService(NewSeededStore())
		input := validBookInput()
		input.ID = "42"
		book, err := svc.CreateBook(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "42", book.ID)
	})

	t.Run("rejects duplicate id", func(t *testing.T) {
		svc := NewBookService(NewSeededStore())
		input := validBookInput()
		input.ID = "1"
		_, err := svc.CreateBook(ctx, input)
		require.Error(t, err)
		assert.Equal(t, domain.ECONFLICT, domain.ErrorCode(err))
	})

	t.Run("rejects duplicate isbn", func(t *testing.T) {
		svc := NewBookService(NewSeededStore())
		input := validBookInput()
		input.ISBN = "9780000000001"
		_, err := svc.CreateBook(ctx, input)
		require.Error(t, err)
		assert.Equal(t, domain.ECONFLICT, domain.ErrorCode(err))
	})

	t.Run("rejects invalid payload with field message", func(t *testing.T) {
		svc := NewBookService(NewSeededStore())
		input := validBookInput()
		input.Genre = []any{}
		_, err := svc.CreateBook(ctx, input)
		require.Error(t, err)
		assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
		assert.Equal(t, "genre must be a non-empty array of strings", domain.ErrorMessage(err))
	})

	t.Run("rejects unusable supplied id", func(t *testing.T) {
		svc := NewBookService(NewSeededStore())
		input := validBookInput()
		input.ID = "   "
		_, err := svc.CreateBook(ctx, input)
		require.Error(t, err)
		assert.Equal(t, domain.EINVALID, domain.ErrorCode(err))
	})
}

func TestBookService_DefensiveCopies(t *testing.T) {
	svc := NewBookService(NewSeededStore())
	ctx := context.Background()

	book, err := svc.GetBookByID(ctx, "1")
	require.NoError(t, err)
	book.Title = "Mutated"
	book.Genre[0] = "Mutated"

	fresh, err := svc.GetBookByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "The Celestial Voyage", fresh.Title)
	assert.Equal(t, "Science Fiction", fresh.Genre[0])
}
