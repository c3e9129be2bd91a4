// Package validate type-checks and normalizes untrusted input payloads.
// Clients have historically sent numbers as strings and booleans as
// "1"/"0", so every helper coerces where the legacy API did and fails
// with a field-specific validation error where it did not. All helpers
// are pure and synchronous.
package validate

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/amanabooks/storefront/internal/domain"
)

// isoFormat matches the wire format the legacy API produced for
// timestamps: UTC with millisecond precision and a trailing Z.
const isoFormat = "2006-01-02T15:04:05.000Z07:00"

// timestampLayouts are the input layouts accepted for timestamps, most
// specific first.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NowISO returns the current time in the canonical wire format.
func NowISO() string {
	return time.Now().UTC().Format(isoFormat)
}

// NonEmptyString requires a string value that is non-empty after
// trimming and returns the trimmed form.
func NonEmptyString(value any, field string) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", domain.Invalid("", field+" must be a string")
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", domain.Invalid("", field+" must not be empty")
	}
	return trimmed, nil
}

// StringSlice requires a non-empty array of non-empty strings and
// returns the trimmed elements.
func StringSlice(value any, field string) ([]string, error) {
	var raw []any
	switch v := value.(type) {
	case []any:
		raw = v
	case []string:
		raw = make([]any, len(v))
		for i, s := range v {
			raw[i] = s
		}
	default:
		return nil, domain.Invalid("", field+" must be a non-empty array of strings")
	}

	if len(raw) == 0 {
		return nil, domain.Invalid("", field+" must be a non-empty array of strings")
	}

	normalized := make([]string, len(raw))
	for i, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, domain.Invalid("", field+"["+strconv.Itoa(i)+"] must be a string")
		}
		trimmed := strings.TrimSpace(s)
		if trimmed == "" {
			return nil, domain.Invalid("", field+"["+strconv.Itoa(i)+"] must not be empty")
		}
		normalized[i] = trimmed
	}
	return normalized, nil
}

// Number requires a finite number, coercing numeric strings.
func Number(value any, field string) (float64, error) {
	n, ok := toFloat(value)
	if !ok {
		return 0, domain.Invalid("", field+" must be a valid number")
	}
	return n, nil
}

// Boolean requires a boolean, additionally accepting the legacy literal
// forms "true"/"1"/"false"/"0" as strings or numbers.
func Boolean(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		switch v {
		case "true", "1":
			return true, nil
		case "false", "0":
			return false, nil
		}
	case float64:
		if v == 1 {
			return true, nil
		}
		if v == 0 {
			return false, nil
		}
	}
	return false, domain.Invalid("", field+" must be a boolean")
}

// Rating requires a number between 0 and 5 inclusive.
func Rating(value any, field string) (float64, error) {
	rating, err := Number(value, field)
	if err != nil {
		return 0, err
	}
	if rating < 0 || rating > 5 {
		return 0, domain.Invalid("", field+" must be between 0 and 5")
	}
	return rating, nil
}

// Timestamp normalizes a timestamp to UTC millisecond ISO-8601 form.
// Absent values (nil or empty string) default to the current time;
// unparsable non-empty input fails.
func Timestamp(value any, field string) (string, error) {
	if value == nil {
		return time.Now().UTC().Format(isoFormat), nil
	}
	s, ok := value.(string)
	if !ok {
		return "", domain.Invalid("", field+" must be a valid ISO timestamp")
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return time.Now().UTC().Format(isoFormat), nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UTC().Format(isoFormat), nil
		}
	}
	return "", domain.Invalid("", field+" must be a valid ISO timestamp")
}

// Quantity requires a positive number and returns its integer floor.
func Quantity(value any) (int, error) {
	n, ok := toFloat(value)
	if !ok || n < 1 {
		return 0, domain.ErrInvalidQuantity
	}
	return int(math.Floor(n)), nil
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		n := v
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case float32:
		return toFloat(float64(v))
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		return toFloat(v.String())
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
