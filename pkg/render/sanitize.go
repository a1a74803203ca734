package render

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-regform/pkg/model"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// SanitizeText strips markup from user-provided text. The strict policy
// escapes entities, so the result is unescaped again for plain-text output.
func SanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	cleaned := textSanitizer().Sanitize(trimmed)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// SanitizeRecord returns a copy of record with every free-text value cleaned.
func SanitizeRecord(record model.Record) model.Record {
	record.FullName = SanitizeText(record.FullName)
	record.StudentID = SanitizeText(record.StudentID)
	record.Email = SanitizeText(record.Email)
	record.Gender = SanitizeText(record.Gender)
	record.Course = SanitizeText(record.Course)
	record.YearLevel = SanitizeText(record.YearLevel)
	if len(record.EventTypes) > 0 {
		types := make([]string, 0, len(record.EventTypes))
		for _, tag := range record.EventTypes {
			types = append(types, SanitizeText(tag))
		}
		record.EventTypes = types
	}
	return record
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
