package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-regform/pkg/form"
	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/testsupport"
	"github.com/goliatone/go-regform/pkg/validation"
)

type stubDriver struct {
	inputs       []string
	passwords    []string
	selectIdx    []int
	multiIdx     [][]int
	confirm      []bool
	infoMessages []string
	onSelect     func(cfg SelectConfig)
	inputPos     int
	passPos      int
	selectPos    int
	multiPos     int
	confirmPos   int
}

func (s *stubDriver) Input(_ context.Context, _ InputConfig) (string, error) {
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, _ InputConfig) (string, error) {
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, _ ConfirmConfig) (bool, error) {
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	if s.onSelect != nil {
		s.onSelect(cfg)
	}
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, _ SelectConfig) ([]int, error) {
	if s.multiPos >= len(s.multiIdx) {
		return nil, errors.New("no multiselect scripted")
	}
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func (s *stubDriver) sawInfo(substr string) bool {
	for _, msg := range s.infoMessages {
		if strings.Contains(msg, substr) {
			return true
		}
	}
	return false
}

func courseIndex() int {
	return indexOf(model.Courses(), testsupport.ValidCourse)
}

func TestSession_RunRepromptsUntilValid(t *testing.T) {
	engine := form.New()
	courseOpen := false
	driver := &stubDriver{
		inputs:    []string{"Ana Cruz", "2021-00123", "not-an-email", "ana@example.edu", "2001-04-12", "11", "4"},
		passwords: []string{"1abc", "secret123"},
		selectIdx: []int{1, courseIndex(), 2},
		multiIdx:  [][]int{{0, 3}},
		confirm:   []bool{false, true},
		onSelect: func(cfg SelectConfig) {
			if cfg.Message == "Course" {
				courseOpen = engine.CourseSelectOpen()
			}
		},
	}
	session, err := NewSession(engine, WithPromptDriver(driver), WithThemePrompt(false))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	submission, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !submission.Accepted() || submission.Record == nil {
		t.Fatalf("expected accepted submission, got %+v", submission)
	}

	record := submission.Record
	if record.Email != "ana@example.edu" || record.Password != "secret123" {
		t.Fatalf("unexpected record %+v", record)
	}
	if record.Course != testsupport.ValidCourse {
		t.Fatalf("expected course %q, got %q", testsupport.ValidCourse, record.Course)
	}
	if record.Gender != DefaultGenders()[1] || record.YearLevel != DefaultYearLevels()[2] {
		t.Fatalf("unexpected choices gender=%q year=%q", record.Gender, record.YearLevel)
	}
	if record.EventExperience != 4 {
		t.Fatalf("expected experience 4, got %v", record.EventExperience)
	}
	if diff := cmp.Diff([]string{model.EventAcademic, model.EventTechTalk}, record.EventTypes); diff != "" {
		t.Fatalf("event types mismatch (-want +got):\n%s", diff)
	}

	if !courseOpen {
		t.Fatalf("course dropdown should be open while selecting")
	}
	if engine.CourseSelectOpen() {
		t.Fatalf("course dropdown should close after selection")
	}

	for _, want := range []string{
		"✗ Please enter a valid email address.",
		"✗ Password must start with a letter.",
		"✗ Enter a whole number between 1 and 10.",
		"✗ You must agree to the terms and conditions.",
		"4/10",
		"Completion: 100%",
	} {
		if !driver.sawInfo(want) {
			t.Fatalf("expected info %q, got %v", want, driver.infoMessages)
		}
	}
}

func TestSession_ThemePromptTogglesDark(t *testing.T) {
	engine := form.New()
	testsupport.FillValid(t, engine)
	driver := &stubDriver{
		inputs:    []string{"Ana Cruz", "2021-00123", "ana@example.edu", "2001-04-12", "1"},
		passwords: []string{"secret123"},
		selectIdx: []int{0, courseIndex(), 0},
		multiIdx:  [][]int{nil},
		confirm:   []bool{true, true},
	}
	session, err := NewSession(engine, WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if _, err := session.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !engine.IsThemeDark() {
		t.Fatalf("expected dark theme after confirming")
	}
	if len(engine.ActiveChips()) != 0 {
		t.Fatalf("expected no chips, got %v", engine.ActiveChips())
	}
}

func TestSession_MultiSelectTogglesOnlyChangedChips(t *testing.T) {
	engine := form.New()
	_ = engine.ToggleChip(model.EventSports)
	_ = engine.ToggleChip(model.EventArts)

	sports := indexOf(model.EventTypes(), model.EventSports)
	cultural := indexOf(model.EventTypes(), model.EventCultural)
	driver := &stubDriver{multiIdx: [][]int{{sports, cultural}}}
	session, err := NewSession(engine, WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if err := session.promptEventTypes(context.Background()); err != nil {
		t.Fatalf("prompt event types: %v", err)
	}
	if diff := cmp.Diff([]string{model.EventSports, model.EventCultural}, engine.ActiveChips()); diff != "" {
		t.Fatalf("chips mismatch (-want +got):\n%s", diff)
	}
}

type rejectOnceEngine struct {
	*form.Engine
	rejected bool
}

func (e *rejectOnceEngine) AttemptSubmit() form.Submission {
	if !e.rejected {
		e.rejected = true
		return form.Submission{
			Outcome: form.SubmissionRejected,
			Issues: []validation.Issue{{
				Field:   model.FieldStudentID,
				Reason:  model.ReasonRequired,
				Message: validation.Message(model.FieldStudentID, model.ReasonRequired),
			}},
		}
	}
	return e.Engine.AttemptSubmit()
}

func TestSession_RejectedSubmissionRepromptsIssues(t *testing.T) {
	engine := &rejectOnceEngine{Engine: form.New()}
	driver := &stubDriver{
		inputs:    []string{"Ana Cruz", "2021-00123", "ana@example.edu", "2001-04-12", "3", "2021-00999"},
		passwords: []string{"secret123"},
		selectIdx: []int{0, courseIndex(), 0},
		multiIdx:  [][]int{nil},
		confirm:   []bool{true},
	}
	session, err := NewSession(engine, WithPromptDriver(driver), WithThemePrompt(false))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	submission, err := session.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !submission.Accepted() {
		t.Fatalf("expected second attempt to be accepted")
	}
	if submission.Record.StudentID != "2021-00999" {
		t.Fatalf("expected re-prompted student id, got %q", submission.Record.StudentID)
	}
	if !driver.sawInfo("✗ Student ID: Student ID is required.") {
		t.Fatalf("expected issue line, got %v", driver.infoMessages)
	}
}

type abortDriver struct{ stubDriver }

func (d *abortDriver) Input(context.Context, InputConfig) (string, error) {
	return "", ErrAborted
}

func TestSession_AbortStopsRun(t *testing.T) {
	session, err := NewSession(form.New(), WithPromptDriver(&abortDriver{}), WithThemePrompt(false))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if _, err := session.Run(context.Background()); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestSession_EmptyOptionsFail(t *testing.T) {
	session, err := NewSession(form.New(), WithPromptDriver(&stubDriver{}))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	session.genders = nil
	if err := session.promptChoice(context.Background(), model.FieldGender, session.genders); !errors.Is(err, ErrNoOptions) {
		t.Fatalf("expected ErrNoOptions, got %v", err)
	}
}

func TestNewSession_RequiresEngine(t *testing.T) {
	if _, err := NewSession(nil); err == nil {
		t.Fatalf("expected error for nil engine")
	}
}

func TestApplyIconTokens(t *testing.T) {
	engine := form.New()
	engine.ToggleTheme()

	var icons survey.IconSet
	applyIconTokens(&icons, engine.ThemeTokens())

	if icons.Question.Format != "yellow+b" {
		t.Fatalf("expected dark prompt format, got %q", icons.Question.Format)
	}
	if icons.Error.Format != "red" {
		t.Fatalf("expected base error format, got %q", icons.Error.Format)
	}
	if icons.MarkedOption.Format != "magenta+b" || icons.SelectFocus.Format != "magenta+b" {
		t.Fatalf("unexpected marked formats %+v", icons.MarkedOption)
	}
}

func TestFillBar(t *testing.T) {
	cases := []struct {
		percent float64
		value   float64
		want    string
	}{
		{0, 1, "[" + strings.Repeat("░", fillBarWidth) + "] 1/10"},
		{100, 10, "[" + strings.Repeat("█", fillBarWidth) + "] 10/10"},
		{50, 5.5, "[" + strings.Repeat("█", 10) + strings.Repeat("░", 10) + "] 5.5/10"},
	}
	for _, tc := range cases {
		if got := fillBar(tc.percent, tc.value); got != tc.want {
			t.Fatalf("fillBar(%v, %v) = %q, want %q", tc.percent, tc.value, got, tc.want)
		}
	}
}

func TestSession_CustomPrefixesAndOptions(t *testing.T) {
	engine := form.New()
	var seen SelectConfig
	driver := &stubDriver{
		selectIdx: []int{1},
		onSelect:  func(cfg SelectConfig) { seen = cfg },
	}
	session, err := NewSession(engine,
		WithPromptDriver(driver),
		WithPrefixes(Prefixes{Info: "[i] ", Error: "[!] "}),
		WithGenders([]string{"Woman", "Man"}),
		WithPageSize(4),
	)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	if err := session.promptField(context.Background(), model.FieldGender); err != nil {
		t.Fatalf("prompt gender: %v", err)
	}
	if diff := cmp.Diff([]string{"Woman", "Man"}, seen.Options); diff != "" {
		t.Fatalf("options mismatch (-want +got):\n%s", diff)
	}
	if seen.PageSize != 4 {
		t.Fatalf("expected page size 4, got %d", seen.PageSize)
	}
	if value, _ := engine.Value(model.FieldGender); value != "Man" {
		t.Fatalf("expected gender Man, got %v", value)
	}

	if err := session.fail(context.Background(), "nope"); err != nil {
		t.Fatalf("fail: %v", err)
	}
	if got := driver.infoMessages[len(driver.infoMessages)-1]; got != "[!] nope" {
		t.Fatalf("unexpected prefixed line %q", got)
	}
}
