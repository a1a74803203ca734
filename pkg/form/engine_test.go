package form_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-regform/pkg/form"
	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/testsupport"
)

func TestEngine_AttemptSubmitRejectsAndMarksTouched(t *testing.T) {
	engine := form.New()
	testsupport.FillValid(t, engine)
	_ = engine.SetValue(model.FieldStudentID, "")

	submission := engine.AttemptSubmit()
	if submission.Outcome != form.SubmissionRejected {
		t.Fatalf("expected rejection, got %q", submission.Outcome)
	}
	if submission.Record != nil {
		t.Fatalf("rejected submission must not carry a record")
	}
	if len(submission.Issues) != 1 || submission.Issues[0].Field != model.FieldStudentID {
		t.Fatalf("unexpected issues %+v", submission.Issues)
	}
	for _, name := range model.Fields() {
		if !engine.Touched(name) {
			t.Fatalf("expected %s touched after rejected submit", name)
		}
	}
	if engine.Submitted() {
		t.Fatalf("rejected attempt must not flip submitted")
	}
}

func TestEngine_RejectedSubmitOnFreshFormTouchesEverything(t *testing.T) {
	engine := form.New()

	if got := engine.VisibleError(model.FieldEmail); got != "" {
		t.Fatalf("untouched field should not show an error, got %q", got)
	}

	submission := engine.AttemptSubmit()
	if submission.Accepted() {
		t.Fatalf("empty form must be rejected")
	}
	if got := engine.VisibleError(model.FieldEmail); got != "Email is required." {
		t.Fatalf("expected visible email error after submit, got %q", got)
	}
	if got := engine.VisibleError(model.FieldAgreeToTerms); got == "" {
		t.Fatalf("expected visible terms error after submit")
	}
}

func TestEngine_AcceptedRecordTakesCourseFromSelection(t *testing.T) {
	engine := form.New()
	testsupport.FillValid(t, engine)
	_ = engine.ToggleChip(model.EventTechTalk)
	_ = engine.SetValue(model.FieldCourse, model.CourseAccountancy)

	submission := engine.AttemptSubmit()
	if !submission.Accepted() {
		t.Fatalf("expected acceptance, issues: %+v", submission.Issues)
	}

	record := submission.Record
	if record.Course != testsupport.ValidCourse {
		t.Fatalf("expected course %q from selection, got %q", testsupport.ValidCourse, record.Course)
	}
	if record.FullName != "Ana Cruz" || record.Password != "secret123" {
		t.Fatalf("record did not copy field values: %+v", record)
	}
	if !record.BirthDate.Equal(testsupport.ValidBirthDate) {
		t.Fatalf("unexpected birth date %v", record.BirthDate)
	}
	if record.EventExperience != 4 {
		t.Fatalf("expected experience 4, got %v", record.EventExperience)
	}
	if len(record.EventTypes) != 1 || record.EventTypes[0] != model.EventTechTalk {
		t.Fatalf("unexpected event types %v", record.EventTypes)
	}

	stored, ok := engine.Record()
	if !ok || !engine.Submitted() {
		t.Fatalf("expected engine to retain the accepted record")
	}
	if diff := testsupport.CompareGolden(*record, stored); diff != "" {
		t.Fatalf("stored record mismatch (-want +got):\n%s", diff)
	}
}

func TestEngine_RawCourseWithoutSelectionIsRejected(t *testing.T) {
	engine := form.New()
	for name, value := range testsupport.ValidValues() {
		if err := engine.SetValue(name, value); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
	}
	_ = engine.SetValue(model.FieldCourse, "Underwater Basket Weaving")

	submission := engine.AttemptSubmit()
	if submission.Accepted() {
		t.Fatalf("expected rejection without a course selection, record %+v", submission.Record)
	}
	if submission.Record != nil {
		t.Fatalf("rejected submission must not carry a record")
	}
	if len(submission.Issues) != 1 {
		t.Fatalf("expected a single course issue, got %+v", submission.Issues)
	}
	issue := submission.Issues[0]
	if issue.Field != model.FieldCourse || issue.Reason != model.ReasonRequired {
		t.Fatalf("unexpected issue %+v", issue)
	}
}

func TestEngine_SliderFillIgnoresNonFiniteExperience(t *testing.T) {
	engine := form.New()
	for _, raw := range []string{"NaN", "Inf", "-Inf", "+Infinity"} {
		if err := engine.SetValue(model.FieldEventExperience, raw); err != nil {
			t.Fatalf("set %q: %v", raw, err)
		}
		if got := engine.SliderFill(); got != 0 {
			t.Fatalf("SliderFill after %q = %v, want 0", raw, got)
		}
	}
}

func TestEngine_RejectionKeepsPreviousRecord(t *testing.T) {
	engine := form.New()
	testsupport.FillValid(t, engine)
	if !engine.AttemptSubmit().Accepted() {
		t.Fatalf("expected first submit accepted")
	}

	_ = engine.SetValue(model.FieldFullName, "")
	_ = engine.SetValue(model.FieldEmail, "changed@example.edu")
	if engine.AttemptSubmit().Accepted() {
		t.Fatalf("expected second submit rejected")
	}

	record, ok := engine.Record()
	if !ok {
		t.Fatalf("expected previous record retained")
	}
	if record.FullName != "Ana Cruz" || record.Email != "ana.cruz@example.edu" {
		t.Fatalf("rejected attempt mutated the accepted record: %+v", record)
	}
}

func TestEngine_SelectCourseMirrorsFieldAndClosesDropdown(t *testing.T) {
	engine := form.New()
	engine.ToggleCourseSelect()

	if err := engine.SelectCourse(model.CourseEducation); err != nil {
		t.Fatalf("select: %v", err)
	}
	if engine.CourseSelectOpen() {
		t.Fatalf("expected dropdown closed after select")
	}
	if v, _ := engine.Value(model.FieldCourse); v != model.CourseEducation {
		t.Fatalf("expected course field patched, got %#v", v)
	}
	if !engine.IsValid(model.FieldCourse) {
		t.Fatalf("expected course field valid")
	}

	if err := engine.SelectCourse("BS Astrology"); !errors.Is(err, form.ErrUnknownCourse) {
		t.Fatalf("expected ErrUnknownCourse, got %v", err)
	}
}

func TestEngine_DerivedState(t *testing.T) {
	engine := form.New()
	if got := engine.Completion(); got != 0 {
		t.Fatalf("expected 0%%, got %d", got)
	}
	if got := engine.SliderFill(); got != 0 {
		t.Fatalf("expected default slider fill 0, got %v", got)
	}

	testsupport.FillValid(t, engine)
	if got := engine.Completion(); got != 100 {
		t.Fatalf("expected 100%%, got %d", got)
	}

	_ = engine.SetValue(model.FieldEventExperience, 5.5)
	if got := engine.SliderFill(); got != 50 {
		t.Fatalf("expected 50%% fill, got %v", got)
	}
	_ = engine.SetValue(model.FieldEventExperience, 10)
	if got := engine.SliderFill(); got != 100 {
		t.Fatalf("expected 100%% fill, got %v", got)
	}
}

func TestEngine_ErrorMessageIgnoresTouched(t *testing.T) {
	engine := form.New()
	if got := engine.ErrorMessage(model.FieldPassword); got != "Password is required." {
		t.Fatalf("unexpected message %q", got)
	}
	_ = engine.SetValue(model.FieldPassword, "abcdefg1")
	if got := engine.ErrorMessage(model.FieldPassword); got != "" {
		t.Fatalf("valid password should have no message, got %q", got)
	}
}

func TestEngine_ThemeToggleAndReset(t *testing.T) {
	engine := form.New(form.WithDarkTheme(true))
	if !engine.IsThemeDark() {
		t.Fatalf("expected dark theme from option")
	}
	engine.ToggleTheme()
	if engine.IsThemeDark() {
		t.Fatalf("expected light theme after toggle")
	}
	if engine.ThemeSelection().Variant != form.VariantLight {
		t.Fatalf("selection should follow the toggle")
	}

	testsupport.FillValid(t, engine)
	_ = engine.ToggleChip(model.EventArts)
	engine.AttemptSubmit()
	engine.Reset()

	if !engine.IsThemeDark() {
		t.Fatalf("reset should restore the initial theme")
	}
	if engine.Submitted() || engine.Completion() != 0 || len(engine.ActiveChips()) != 0 {
		t.Fatalf("reset should clear the session")
	}
	if _, ok := engine.Record(); ok {
		t.Fatalf("reset should drop the accepted record")
	}
}

func TestEngine_LogsFieldNamesNotValues(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	engine := form.New(form.WithLogger(logger))

	_ = engine.SetValue(model.FieldPassword, "hunter2secret")
	engine.AttemptSubmit()

	out := buf.String()
	if !strings.Contains(out, `"field":"password"`) {
		t.Fatalf("expected field update logged, got %s", out)
	}
	if !strings.Contains(out, "submission rejected") {
		t.Fatalf("expected rejection logged, got %s", out)
	}
	if strings.Contains(out, "hunter2secret") {
		t.Fatalf("values must never be logged: %s", out)
	}
}

func TestEngine_UnknownInputs(t *testing.T) {
	engine := form.New()
	if err := engine.SetValue(model.FieldName("nickname"), "x"); !errors.Is(err, form.ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
	if err := engine.ToggleChip("Gaming"); !errors.Is(err, form.ErrUnknownEventType) {
		t.Fatalf("expected ErrUnknownEventType, got %v", err)
	}
}
