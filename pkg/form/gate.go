package form

import (
	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/validation"
)

// SubmissionOutcome is the all-or-nothing verdict of a submit attempt.
type SubmissionOutcome string

const (
	SubmissionAccepted SubmissionOutcome = "accepted"
	SubmissionRejected SubmissionOutcome = "rejected"
)

// Submission is the result of a submit attempt. Record is set only when the
// attempt is accepted; Issues only when it is rejected.
type Submission struct {
	Outcome SubmissionOutcome  `json:"outcome"`
	Record  *model.Record      `json:"record,omitempty"`
	Issues  []validation.Issue `json:"issues,omitempty"`
}

// Accepted reports whether the submission passed the gate.
func (s Submission) Accepted() bool {
	return s.Outcome == SubmissionAccepted
}

// Gate evaluates every field of snapshot. It is pure: marking fields touched
// on rejection is the caller's concern (see Engine.AttemptSubmit). The record
// takes its course from the selection, so an empty selection is rejected as a
// missing course even when the raw course field holds a value.
func Gate(snapshot model.Snapshot) Submission {
	result := validation.Validate(snapshot.Values())
	if snapshot.SelectedCourse() == "" {
		result = requireCourseSelection(result)
	}
	if !result.Valid {
		return Submission{
			Outcome: SubmissionRejected,
			Issues:  result.Issues,
		}
	}
	record := buildRecord(snapshot)
	return Submission{
		Outcome: SubmissionAccepted,
		Record:  &record,
	}
}

func buildRecord(snapshot model.Snapshot) model.Record {
	birthDate, _ := validation.ParseDate(snapshot.Value(model.FieldBirthDate))
	agreed, _ := snapshot.Value(model.FieldAgreeToTerms).(bool)
	return model.Record{
		FullName:        stringValue(snapshot.Value(model.FieldFullName)),
		StudentID:       stringValue(snapshot.Value(model.FieldStudentID)),
		Email:           stringValue(snapshot.Value(model.FieldEmail)),
		Password:        stringValue(snapshot.Value(model.FieldPassword)),
		Gender:          stringValue(snapshot.Value(model.FieldGender)),
		BirthDate:       birthDate,
		Course:          snapshot.SelectedCourse(),
		YearLevel:       stringValue(snapshot.Value(model.FieldYearLevel)),
		EventExperience: experienceValue(snapshot.Value(model.FieldEventExperience)),
		EventTypes:      snapshot.Chips(),
		AgreeToTerms:    agreed,
	}
}

func requireCourseSelection(result validation.Result) validation.Result {
	for _, issue := range result.Issues {
		if issue.Field == model.FieldCourse {
			return result
		}
	}
	courseIssue := validation.Issue{
		Field:   model.FieldCourse,
		Reason:  model.ReasonRequired,
		Message: validation.Message(model.FieldCourse, model.ReasonRequired),
	}

	// keep issues in form order
	order := fieldIndex(model.FieldCourse)
	issues := make([]validation.Issue, 0, len(result.Issues)+1)
	inserted := false
	for _, issue := range result.Issues {
		if !inserted && fieldIndex(issue.Field) > order {
			issues = append(issues, courseIssue)
			inserted = true
		}
		issues = append(issues, issue)
	}
	if !inserted {
		issues = append(issues, courseIssue)
	}
	return validation.Result{Valid: false, Issues: issues}
}

func fieldIndex(name model.FieldName) int {
	for i, field := range model.Fields() {
		if field == name {
			return i
		}
	}
	return -1
}
