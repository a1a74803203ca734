package form

import (
	"github.com/rs/zerolog"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/validation"
)

// Engine is the registration form engine. Collaborators push raw input
// through the inbound methods and re-query derived state after each mutation;
// nothing is pushed back. An Engine is not safe for concurrent use.
type Engine struct {
	store     *Store
	selection *Selection
	theme     *Theme

	manifest    *theme.Manifest
	darkDefault bool
	logger      zerolog.Logger

	submitted bool
	record    *model.Record
}

// New constructs an engine with default field values, no chips, no course and
// the light theme unless WithDarkTheme says otherwise.
func New(options ...Option) *Engine {
	e := &Engine{
		logger: zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	e.store = NewStore()
	e.selection = NewSelection()
	e.theme = NewTheme(e.manifest, e.darkDefault)
	return e
}

// Reset re-initializes the whole session: values, touched flags, selections,
// theme and the submitted record.
func (e *Engine) Reset() {
	e.store.Reset()
	e.selection.Reset()
	e.theme.SetDark(e.darkDefault)
	e.submitted = false
	e.record = nil
	e.logger.Debug().Msg("form reset")
}

// SetValue writes a raw value into the field store.
func (e *Engine) SetValue(name model.FieldName, value any) error {
	if err := e.store.SetValue(name, value); err != nil {
		return err
	}
	e.logger.Debug().Str("field", string(name)).Bool("valid", e.store.IsValid(name)).Msg("field updated")
	return nil
}

// Value returns the current raw value of name.
func (e *Engine) Value(name model.FieldName) (any, bool) {
	return e.store.Value(name)
}

// IsValid reports whether name currently passes its rules.
func (e *Engine) IsValid(name model.FieldName) bool {
	return e.store.IsValid(name)
}

// Outcome returns the rule outcome for the current value of name.
func (e *Engine) Outcome(name model.FieldName) model.Outcome {
	return e.store.Outcome(name)
}

// ErrorMessage returns the message of the first failing rule, or "".
func (e *Engine) ErrorMessage(name model.FieldName) string {
	return validation.Message(name, e.store.Outcome(name).Reason)
}

// VisibleError is ErrorMessage gated on the touched flag, so untouched fields
// render without errors until a failed submit marks them.
func (e *Engine) VisibleError(name model.FieldName) string {
	if !e.store.Touched(name) {
		return ""
	}
	return e.ErrorMessage(name)
}

// Touched reports the touched flag of name.
func (e *Engine) Touched(name model.FieldName) bool {
	return e.store.Touched(name)
}

// MarkAllTouched flags every field as touched.
func (e *Engine) MarkAllTouched() {
	e.store.MarkAllTouched()
}

// Snapshot captures the field store and selection state.
func (e *Engine) Snapshot() model.Snapshot {
	return model.NewSnapshot(e.store.fieldStates(), e.selection.SelectedCourse(), e.selection.ActiveChips())
}

// Completion returns the completion percentage in [0,100].
func (e *Engine) Completion() int {
	return Completion(e.Snapshot())
}

// SliderFill returns the fill percentage for the current event experience.
func (e *Engine) SliderFill() float64 {
	value, _ := e.store.Value(model.FieldEventExperience)
	return SliderFill(experienceValue(value))
}

// ToggleChip flips an event-type chip.
func (e *Engine) ToggleChip(tag string) error {
	if err := e.selection.ToggleChip(tag); err != nil {
		return err
	}
	e.logger.Debug().Str("tag", tag).Bool("active", e.selection.IsChipActive(tag)).Msg("chip toggled")
	return nil
}

// RemoveChip removes an event-type chip; absent chips are ignored.
func (e *Engine) RemoveChip(tag string) {
	e.selection.RemoveChip(tag)
}

// IsChipActive reports whether tag is selected.
func (e *Engine) IsChipActive(tag string) bool {
	return e.selection.IsChipActive(tag)
}

// ActiveChips returns a copy of the selected tags.
func (e *Engine) ActiveChips() []string {
	return e.selection.ActiveChips()
}

// SelectCourse sets the single selected course, mirrors it into the course
// field and closes the dropdown.
func (e *Engine) SelectCourse(name string) error {
	if err := e.selection.SelectCourse(name); err != nil {
		return err
	}
	if err := e.store.SetValue(model.FieldCourse, name); err != nil {
		return err
	}
	e.logger.Debug().Str("course", name).Msg("course selected")
	return nil
}

// SelectedCourse returns the selected course, or "".
func (e *Engine) SelectedCourse() string {
	return e.selection.SelectedCourse()
}

// ToggleCourseSelect opens or closes the course dropdown.
func (e *Engine) ToggleCourseSelect() {
	e.selection.ToggleCourseSelect()
}

// CourseSelectOpen reports whether the course dropdown is open.
func (e *Engine) CourseSelectOpen() bool {
	return e.selection.CourseSelectOpen()
}

// ToggleTheme flips between the dark and light variants.
func (e *Engine) ToggleTheme() {
	e.theme.Toggle()
	e.logger.Debug().Str("variant", e.theme.Variant()).Msg("theme toggled")
}

// IsThemeDark reports whether the dark variant is active.
func (e *Engine) IsThemeDark() bool {
	return e.theme.IsDark()
}

// Theme exposes the theme state, which also serves as a theme.ThemeSelector.
func (e *Engine) Theme() *Theme {
	return e.theme
}

// ThemeSelection returns the active go-theme selection.
func (e *Engine) ThemeSelection() *theme.Selection {
	return e.theme.Selection()
}

// ThemeTokens returns the resolved tokens for the active variant.
func (e *Engine) ThemeTokens() map[string]string {
	return e.theme.Tokens()
}

// AttemptSubmit runs the submission gate. A rejected attempt marks every
// field touched and leaves any previously accepted record untouched. An
// accepted attempt stores the record and flips Submitted.
func (e *Engine) AttemptSubmit() Submission {
	submission := Gate(e.Snapshot())
	if !submission.Accepted() {
		e.store.MarkAllTouched()
		e.logger.Debug().Int("issues", len(submission.Issues)).Msg("submission rejected")
		return submission
	}
	record := *submission.Record
	record.EventTypes = append([]string(nil), record.EventTypes...)
	e.submitted = true
	e.record = &record
	e.logger.Debug().Str("course", submission.Record.Course).Msg("submission accepted")
	return submission
}

// Submitted reports whether a submission has been accepted.
func (e *Engine) Submitted() bool {
	return e.submitted
}

// Record returns a copy of the last accepted record.
func (e *Engine) Record() (model.Record, bool) {
	if e.record == nil {
		return model.Record{}, false
	}
	record := *e.record
	record.EventTypes = append([]string(nil), e.record.EventTypes...)
	return record, true
}
