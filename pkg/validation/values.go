package validation

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var errNotADate = errors.New("validation: value is not a date")

// IsEmpty reports whether value counts as absent for Required: nil, empty
// strings, zero or nil times and empty lists. Whitespace is content.
func IsEmpty(value any) bool {
	switch typed := value.(type) {
	case nil:
		return true
	case string:
		return typed == ""
	case *string:
		return typed == nil || *typed == ""
	case time.Time:
		return typed.IsZero()
	case *time.Time:
		return typed == nil || typed.IsZero()
	case []string:
		return len(typed) == 0
	case []any:
		return len(typed) == 0
	default:
		return false
	}
}

// stringValue unwraps the string forms IsEmpty understands.
func stringValue(value any) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case *string:
		if typed == nil {
			return "", false
		}
		return *typed, true
	default:
		return "", false
	}
}

// ParseDate converts a date-like value into a time.Time. Strings must use
// DateLayout.
func ParseDate(value any) (time.Time, error) {
	switch typed := value.(type) {
	case time.Time:
		return typed, nil
	case *time.Time:
		if typed == nil {
			return time.Time{}, errNotADate
		}
		return *typed, nil
	case string:
		parsed, err := time.Parse(DateLayout, strings.TrimSpace(typed))
		if err != nil {
			return time.Time{}, fmt.Errorf("validation: parse date %q: %w", typed, err)
		}
		return parsed, nil
	default:
		return time.Time{}, errNotADate
	}
}
