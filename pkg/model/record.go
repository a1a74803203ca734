package model

import "time"

// Record is the finalized output of an accepted submission. The password is
// carried for the caller but never serialized.
type Record struct {
	FullName        string    `json:"fullName" yaml:"fullName"`
	StudentID       string    `json:"studentId" yaml:"studentId"`
	Email           string    `json:"email" yaml:"email"`
	Password        string    `json:"-" yaml:"-"`
	Gender          string    `json:"gender" yaml:"gender"`
	BirthDate       time.Time `json:"birthDate" yaml:"birthDate"`
	Course          string    `json:"course" yaml:"course"`
	YearLevel       string    `json:"yearLevel" yaml:"yearLevel"`
	EventExperience float64   `json:"eventExperience" yaml:"eventExperience"`
	EventTypes      []string  `json:"eventTypes,omitempty" yaml:"eventTypes,omitempty"`
	AgreeToTerms    bool      `json:"agreeToTerms" yaml:"agreeToTerms"`
}
