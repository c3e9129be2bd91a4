package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidIdentifier reports an id value that cannot be normalized to
// any canonical form. Lookup operations treat it as not-found; write
// paths surface it as a validation failure.
var ErrInvalidIdentifier = &Error{Code: EINVALID, Message: "invalid identifier"}

// CanonicalID normalizes a heterogeneous identifier value to the single
// string form used for internal comparison and storage. Ids have been
// stored as numeric literals, strings, and database-native object ids
// across the system's history, so every comparison must route through
// here rather than comparing raw stored values.
func CanonicalID(v any) (string, error) {
	switch id := v.(type) {
	case nil:
		return "", ErrInvalidIdentifier
	case string:
		return canonicalIDString(id)
	case json.Number:
		return canonicalIDString(id.String())
	case float64:
		if math.IsNaN(id) || math.IsInf(id, 0) {
			return "", ErrInvalidIdentifier
		}
		return strconv.FormatFloat(id, 'f', -1, 64), nil
	case float32:
		return CanonicalID(float64(id))
	case int:
		return strconv.Itoa(id), nil
	case int32:
		return strconv.FormatInt(int64(id), 10), nil
	case int64:
		return strconv.FormatInt(id, 10), nil
	case uint:
		return strconv.FormatUint(uint64(id), 10), nil
	case uint32:
		return strconv.FormatUint(uint64(id), 10), nil
	case uint64:
		return strconv.FormatUint(id, 10), nil
	default:
		return "", ErrInvalidIdentifier
	}
}

func canonicalIDString(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", ErrInvalidIdentifier
	}
	// Placeholder representations that serializers on the client side
	// have historically produced for absent values.
	switch strings.ToLower(trimmed) {
	case "null", "undefined", "<nil>", "nan":
		return "", ErrInvalidIdentifier
	}
	return trimmed, nil
}

// NumericID reports the finite numeric form of a canonical id, when it
// has one. Used for next-id assignment and for building id match
// candidates against documents that stored the id as a number.
func NumericID(canonical string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.TrimSpace(canonical), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}
