package form

import (
	"math"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/validation"
)

// Bounds of the event experience slider.
const (
	MinExperience = 1
	MaxExperience = 10
)

// Compile-time guard: the slider range must be non-empty.
const _ = uint(MaxExperience - MinExperience - 1)

// CompletionConditions is the number of tracked completion sub-conditions.
const CompletionConditions = 9

// validatedConditions count only when the value is non-empty and valid.
var validatedConditions = []model.FieldName{
	model.FieldFullName,
	model.FieldStudentID,
	model.FieldEmail,
	model.FieldPassword,
	model.FieldBirthDate,
}

// CompletedConditions counts how many of the nine completion sub-conditions
// hold for snapshot. The course condition reads the course selection, not the
// raw course field.
func CompletedConditions(snapshot model.Snapshot) int {
	count := 0
	for _, name := range validatedConditions {
		if snapshot.Valid(name) && !validation.IsEmpty(snapshot.Value(name)) {
			count++
		}
	}
	if !validation.IsEmpty(snapshot.Value(model.FieldGender)) {
		count++
	}
	if snapshot.SelectedCourse() != "" {
		count++
	}
	if !validation.IsEmpty(snapshot.Value(model.FieldYearLevel)) {
		count++
	}
	if agreed, ok := snapshot.Value(model.FieldAgreeToTerms).(bool); ok && agreed {
		count++
	}
	return count
}

// Completion returns the completion percentage of snapshot in [0,100].
func Completion(snapshot model.Snapshot) int {
	return completionPercent(CompletedConditions(snapshot))
}

func completionPercent(count int) int {
	return int(math.Round(float64(count) / CompletionConditions * 100))
}

// SliderFill maps an experience value onto the slider fill percentage. The
// result is clamped to [0,100]; NaN maps to 0.
func SliderFill(value float64) float64 {
	if math.IsNaN(value) {
		return 0
	}
	fill := (value - MinExperience) / (MaxExperience - MinExperience) * 100
	return math.Max(0, math.Min(100, fill))
}
