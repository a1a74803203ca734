package validation

import (
	"fmt"

	"github.com/goliatone/go-regform/pkg/model"
)

var fieldMessages = map[model.FieldName]map[model.Reason]string{
	model.FieldFullName: {
		model.ReasonRequired: "Full name is required.",
	},
	model.FieldStudentID: {
		model.ReasonRequired: "Student ID is required.",
	},
	model.FieldEmail: {
		model.ReasonRequired:      "Email is required.",
		model.ReasonInvalidFormat: "Please enter a valid email address.",
	},
	model.FieldPassword: {
		model.ReasonRequired:         "Password is required.",
		model.ReasonStartsWithLetter: "Password must start with a letter.",
		model.ReasonAlphanumericOnly: "Only letters and numbers allowed, no spaces or symbols.",
		model.ReasonTooShort:         fmt.Sprintf("Password must be at least %d characters.", MinPasswordLength),
	},
	model.FieldGender: {
		model.ReasonRequired: "Please select a gender.",
	},
	model.FieldBirthDate: {
		model.ReasonRequired:    "Date of birth is required.",
		model.ReasonInvalidDate: "Please enter a valid date (YYYY-MM-DD).",
		model.ReasonTooYoung:    fmt.Sprintf("You must be born in %d or earlier to register.", BirthYearCutoff),
	},
	model.FieldCourse: {
		model.ReasonRequired: "Please select a course.",
	},
	model.FieldYearLevel: {
		model.ReasonRequired: "Please select a year level.",
	},
	model.FieldAgreeToTerms: {
		model.ReasonRequired:   "You must agree to the terms and conditions.",
		model.ReasonMustBeTrue: "You must agree to the terms and conditions.",
	},
}

var reasonMessages = map[model.Reason]string{
	model.ReasonRequired:         "This field is required.",
	model.ReasonMustBeTrue:       "This box must be checked.",
	model.ReasonInvalidFormat:    "Please enter a valid value.",
	model.ReasonStartsWithLetter: "Value must start with a letter.",
	model.ReasonAlphanumericOnly: "Only letters and numbers allowed.",
	model.ReasonTooShort:         "Value is too short.",
	model.ReasonInvalidDate:      "Please enter a valid date.",
	model.ReasonTooYoung:         "Date is after the allowed cutoff.",
}

// Message maps a reason code to the user-facing text for field. An empty
// reason yields an empty string.
func Message(field model.FieldName, reason model.Reason) string {
	if reason == "" {
		return ""
	}
	if msg, ok := fieldMessages[field][reason]; ok {
		return msg
	}
	if msg, ok := reasonMessages[reason]; ok {
		return msg
	}
	return string(reason)
}

// ErrorMessage evaluates value against the field rules and returns the message
// of the first failure, or an empty string when the value is valid.
func ErrorMessage(field model.FieldName, value any) string {
	return Message(field, Evaluate(field, value).Reason)
}
