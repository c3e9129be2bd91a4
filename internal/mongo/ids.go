package mongo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/amanabooks/storefront/internal/domain"
)

// idCandidates expands one canonical id into every form it may have been
// stored under: the string itself, its numeric form when finite, and the
// native object-id form when the string is a syntactically valid
// ObjectID. Ids have lived under all three representations across the
// system's history, so a lookup by any one of them must still find
// documents stored under another.
func idCandidates(canonical string) []any {
	candidates := []any{canonical}
	if n, ok := domain.NumericID(canonical); ok {
		candidates = append(candidates, n)
	}
	if oid, err := primitive.ObjectIDFromHex(canonical); err == nil {
		candidates = append(candidates, oid)
	}
	return candidates
}

// idFilter builds a filter on the application-level id field matching
// any historical representation of any of the given canonical ids.
// Returns nil for an empty input list.
func idFilter(ids ...string) bson.M {
	if len(ids) == 0 {
		return nil
	}
	var candidates []any
	for _, id := range ids {
		candidates = append(candidates, idCandidates(id)...)
	}
	return bson.M{"id": bson.M{"$in": candidates}}
}
