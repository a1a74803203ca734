package model

// FieldName identifies a registration form field.
type FieldName string

const (
	FieldFullName        FieldName = "fullName"
	FieldStudentID       FieldName = "studentId"
	FieldEmail           FieldName = "email"
	FieldPassword        FieldName = "password"
	FieldGender          FieldName = "gender"
	FieldBirthDate       FieldName = "birthDate"
	FieldCourse          FieldName = "course"
	FieldYearLevel       FieldName = "yearLevel"
	FieldEventExperience FieldName = "eventExperience"
	FieldAgreeToTerms    FieldName = "agreeToTerms"
)

var fieldOrder = []FieldName{
	FieldFullName,
	FieldStudentID,
	FieldEmail,
	FieldPassword,
	FieldGender,
	FieldBirthDate,
	FieldCourse,
	FieldYearLevel,
	FieldEventExperience,
	FieldAgreeToTerms,
}

// Fields returns every field name in form order. The slice is a copy.
func Fields() []FieldName {
	return append([]FieldName(nil), fieldOrder...)
}

// ParseFieldName resolves a raw name into a known FieldName.
func ParseFieldName(raw string) (FieldName, bool) {
	for _, name := range fieldOrder {
		if string(name) == raw {
			return name, true
		}
	}
	return "", false
}

// IsKnown reports whether the name belongs to the registration form.
func (n FieldName) IsKnown() bool {
	_, ok := ParseFieldName(string(n))
	return ok
}

// FieldType is the simplified enum for form-friendly value kinds.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeDate    FieldType = "date"
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
	FieldTypeBoolean FieldType = "boolean"
)

// Reason is the typed code carried by a failed validation. Reasons are data,
// never Go errors.
type Reason string

const (
	ReasonRequired         Reason = "required"
	ReasonMustBeTrue       Reason = "mustBeTrue"
	ReasonInvalidFormat    Reason = "invalidFormat"
	ReasonStartsWithLetter Reason = "startsWithLetter"
	ReasonAlphanumericOnly Reason = "alphanumericOnly"
	ReasonTooShort         Reason = "tooShort"
	ReasonInvalidDate      Reason = "invalidDate"
	ReasonTooYoung         Reason = "tooYoung"
)

// Outcome is the result of evaluating a Rule. The zero value is valid.
type Outcome struct {
	Reason Reason `json:"reason,omitempty"`
}

// Valid returns the accepting outcome.
func Valid() Outcome {
	return Outcome{}
}

// Invalid returns a rejecting outcome carrying reason.
func Invalid(reason Reason) Outcome {
	return Outcome{Reason: reason}
}

// OK reports whether the outcome accepts the value.
func (o Outcome) OK() bool {
	return o.Reason == ""
}

// Rule is a pure validity check over a field value.
type Rule func(value any) Outcome

// Field describes a single input of the registration form. Rules run in
// order and the first failure wins.
type Field struct {
	Name     FieldName `json:"name"`
	Type     FieldType `json:"type"`
	Label    string    `json:"label,omitempty"`
	Required bool      `json:"required"`
	Default  any       `json:"default,omitempty"`
	Rules    []Rule    `json:"-"`
}
