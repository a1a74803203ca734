package testsupport

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-regform/pkg/model"
)

// ValidCourse is the course selected by FillValid.
const ValidCourse = model.CourseComputerScience

// ValidBirthDate is a birth date comfortably before the registration cutoff.
var ValidBirthDate = time.Date(2001, time.April, 12, 0, 0, 0, 0, time.UTC)

// ValidValues returns a full set of field values that pass every rule. The
// course value mirrors ValidCourse; callers that go through an engine should
// still select it explicitly.
func ValidValues() map[model.FieldName]any {
	return map[model.FieldName]any{
		model.FieldFullName:        "Ana Cruz",
		model.FieldStudentID:       "2021-00123",
		model.FieldEmail:           "ana.cruz@example.edu",
		model.FieldPassword:        "secret123",
		model.FieldGender:          "Female",
		model.FieldBirthDate:       ValidBirthDate,
		model.FieldCourse:          ValidCourse,
		model.FieldYearLevel:       "3rd Year",
		model.FieldEventExperience: 4,
		model.FieldAgreeToTerms:    true,
	}
}

// FormEngine is the subset of the form engine the fixtures drive. It keeps
// this package free of an import cycle with pkg/form tests.
type FormEngine interface {
	SetValue(name model.FieldName, value any) error
	SelectCourse(name string) error
}

// FillValid writes ValidValues into engine and selects ValidCourse.
func FillValid(t testing.TB, engine FormEngine) {
	t.Helper()

	for _, name := range model.Fields() {
		if name == model.FieldCourse {
			continue
		}
		if err := engine.SetValue(name, ValidValues()[name]); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}
	if err := engine.SelectCourse(ValidCourse); err != nil {
		t.Fatalf("select course: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
