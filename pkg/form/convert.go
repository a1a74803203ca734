package form

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func stringValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case fmt.Stringer:
		return typed.String()
	default:
		return fmt.Sprint(typed)
	}
}

// experienceValue converts a stored slider value into a float. Values that do
// not parse, NaN and infinities fall back to MinExperience.
func experienceValue(value any) float64 {
	parsed := parseExperience(value)
	if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return MinExperience
	}
	return parsed
}

func parseExperience(value any) float64 {
	switch typed := value.(type) {
	case int:
		return float64(typed)
	case int32:
		return float64(typed)
	case int64:
		return float64(typed)
	case uint:
		return float64(typed)
	case float32:
		return float64(typed)
	case float64:
		return typed
	case string:
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(typed), 64); err == nil {
			return parsed
		}
	}
	return MinExperience
}
