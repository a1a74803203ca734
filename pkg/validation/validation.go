package validation

import "github.com/goliatone/go-regform/pkg/model"

// Issue represents a failed field with its reason and display message.
type Issue struct {
	Field   model.FieldName `json:"field"`
	Reason  model.Reason    `json:"reason"`
	Message string          `json:"message"`
}

// Result captures the outcome of validating every field at once.
type Result struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues,omitempty"`
}

// Definition returns the field for name with its rule list attached.
func Definition(name model.FieldName) (model.Field, bool) {
	for _, field := range definitions {
		if field.Name == name {
			return cloneField(field), true
		}
	}
	return model.Field{}, false
}

// Definitions returns every registration field in form order.
func Definitions() []model.Field {
	out := make([]model.Field, 0, len(definitions))
	for _, field := range definitions {
		out = append(out, cloneField(field))
	}
	return out
}

// Evaluate runs the rules of field against value and returns the first
// failure. Unknown fields carry no rules and are always valid.
func Evaluate(field model.FieldName, value any) model.Outcome {
	for _, rule := range rulesFor(field) {
		if outcome := rule(value); !outcome.OK() {
			return outcome
		}
	}
	return model.Valid()
}

// Validate evaluates every known field in form order. Missing keys are
// evaluated as nil.
func Validate(values map[model.FieldName]any) Result {
	result := Result{Valid: true}
	for _, field := range definitions {
		outcome := Evaluate(field.Name, values[field.Name])
		if outcome.OK() {
			continue
		}
		result.Valid = false
		result.Issues = append(result.Issues, Issue{
			Field:   field.Name,
			Reason:  outcome.Reason,
			Message: Message(field.Name, outcome.Reason),
		})
	}
	return result
}

var definitions = []model.Field{
	{Name: model.FieldFullName, Type: model.FieldTypeString, Label: "Full name", Required: true, Default: "", Rules: []model.Rule{Required}},
	{Name: model.FieldStudentID, Type: model.FieldTypeString, Label: "Student ID", Required: true, Default: "", Rules: []model.Rule{Required}},
	{Name: model.FieldEmail, Type: model.FieldTypeString, Label: "Email", Required: true, Default: "", Rules: []model.Rule{Required, Email}},
	{Name: model.FieldPassword, Type: model.FieldTypeString, Label: "Password", Required: true, Default: "", Rules: []model.Rule{Required, Password}},
	{Name: model.FieldGender, Type: model.FieldTypeString, Label: "Gender", Required: true, Default: "", Rules: []model.Rule{Required}},
	{Name: model.FieldBirthDate, Type: model.FieldTypeDate, Label: "Date of birth", Required: true, Rules: []model.Rule{Required, BirthYear}},
	{Name: model.FieldCourse, Type: model.FieldTypeString, Label: "Course", Required: true, Default: "", Rules: []model.Rule{Required}},
	{Name: model.FieldYearLevel, Type: model.FieldTypeString, Label: "Year level", Required: true, Default: "", Rules: []model.Rule{Required}},
	{Name: model.FieldEventExperience, Type: model.FieldTypeInteger, Label: "Event experience", Default: 1},
	{Name: model.FieldAgreeToTerms, Type: model.FieldTypeBoolean, Label: "I agree to the terms and conditions", Required: true, Default: false, Rules: []model.Rule{Required, RequiredTrue}},
}

func rulesFor(name model.FieldName) []model.Rule {
	for _, field := range definitions {
		if field.Name == name {
			return field.Rules
		}
	}
	return nil
}

func cloneField(field model.Field) model.Field {
	field.Rules = append([]model.Rule(nil), field.Rules...)
	return field
}
