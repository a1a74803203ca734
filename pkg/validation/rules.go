package validation

import (
	"time"

	"github.com/goliatone/go-regform/pkg/model"
)

const (
	// BirthYearCutoff is the latest birth year accepted for registration.
	BirthYearCutoff = 2006
	// MinPasswordLength is the shortest accepted password.
	MinPasswordLength = 8
	// DateLayout is the textual layout accepted for date values.
	DateLayout = time.DateOnly
)

// Required fails when the value is absent or empty. Boolean false is a value,
// use RequiredTrue to demand consent.
func Required(value any) model.Outcome {
	if IsEmpty(value) {
		return model.Invalid(model.ReasonRequired)
	}
	return model.Valid()
}

// RequiredTrue fails unless value is exactly boolean true.
func RequiredTrue(value any) model.Outcome {
	if v, ok := value.(bool); ok && v {
		return model.Valid()
	}
	return model.Invalid(model.ReasonMustBeTrue)
}

// Email fails when a non-empty value is not a local@domain address. Empty
// values are left to Required.
func Email(value any) model.Outcome {
	if IsEmpty(value) {
		return model.Valid()
	}
	raw, ok := stringValue(value)
	if !ok || !isEmailAddress(raw) {
		return model.Invalid(model.ReasonInvalidFormat)
	}
	return model.Valid()
}

// Password enforces the password shape on non-empty values. Checks run in a
// fixed order and stop at the first failure: leading ASCII letter, ASCII
// alphanumerics only, minimum length.
func Password(value any) model.Outcome {
	if IsEmpty(value) {
		return model.Valid()
	}
	raw, ok := stringValue(value)
	if !ok {
		return model.Invalid(model.ReasonInvalidFormat)
	}
	if !isASCIILetter(raw[0]) {
		return model.Invalid(model.ReasonStartsWithLetter)
	}
	for i := 0; i < len(raw); i++ {
		if !isASCIILetter(raw[i]) && !isASCIIDigit(raw[i]) {
			return model.Invalid(model.ReasonAlphanumericOnly)
		}
	}
	if len(raw) < MinPasswordLength {
		return model.Invalid(model.ReasonTooShort)
	}
	return model.Valid()
}

// BirthYear rejects non-empty dates whose calendar year is after
// BirthYearCutoff.
func BirthYear(value any) model.Outcome {
	if IsEmpty(value) {
		return model.Valid()
	}
	date, err := ParseDate(value)
	if err != nil {
		return model.Invalid(model.ReasonInvalidDate)
	}
	if date.Year() > BirthYearCutoff {
		return model.Invalid(model.ReasonTooYoung)
	}
	return model.Valid()
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
