// Package regform exposes the registration form engine and its renderers from
// the module root for callers that want a single import.
package regform

import (
	"fmt"
	"io"

	"github.com/goliatone/go-regform/pkg/form"
	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/render"
)

// EventTypesKey names the chip list in a values map passed to Apply.
const EventTypesKey = "eventTypes"

// Engine aliases form.Engine.
type Engine = form.Engine

// Submission aliases form.Submission.
type Submission = form.Submission

// Record aliases model.Record.
type Record = model.Record

// Format aliases render.Format.
type Format = render.Format

// NewEngine exposes the engine constructor from the top-level module.
func NewEngine(options ...form.Option) *form.Engine {
	return form.New(options...)
}

// Apply feeds a decoded values map through engine. The course goes through
// the course selection and EventTypesKey toggles chips; every other key must
// name a field. Unknown keys fail before anything is written.
func Apply(engine *form.Engine, values map[string]any) error {
	for key := range values {
		if key == EventTypesKey {
			continue
		}
		if _, ok := model.ParseFieldName(key); !ok {
			return fmt.Errorf("%w: %q", form.ErrUnknownField, key)
		}
	}

	for _, name := range model.Fields() {
		value, ok := values[string(name)]
		if !ok {
			continue
		}
		if name == model.FieldCourse {
			if err := applyCourse(engine, value); err != nil {
				return err
			}
			continue
		}
		if err := engine.SetValue(name, value); err != nil {
			return err
		}
	}

	return applyChips(engine, values[EventTypesKey])
}

func applyCourse(engine *form.Engine, value any) error {
	course, ok := value.(string)
	if !ok && value != nil {
		return fmt.Errorf("%s must be a string", model.FieldCourse)
	}
	if course == "" {
		return nil
	}
	return engine.SelectCourse(course)
}

func applyChips(engine *form.Engine, raw any) error {
	if raw == nil {
		return nil
	}
	var tags []string
	switch typed := raw.(type) {
	case []string:
		tags = typed
	case []any:
		for _, item := range typed {
			tag, ok := item.(string)
			if !ok {
				return fmt.Errorf("%s entries must be strings", EventTypesKey)
			}
			tags = append(tags, tag)
		}
	default:
		return fmt.Errorf("%s must be a list", EventTypesKey)
	}

	for _, tag := range tags {
		if engine.IsChipActive(tag) {
			continue
		}
		if err := engine.ToggleChip(tag); err != nil {
			return err
		}
	}
	return nil
}

// Submit applies values to a fresh engine and attempts a submission. It is
// the simplest entry point for callers validating a complete payload.
func Submit(values map[string]any, options ...form.Option) (form.Submission, error) {
	engine := form.New(options...)
	if err := Apply(engine, values); err != nil {
		return form.Submission{}, err
	}
	return engine.AttemptSubmit(), nil
}

// WriteSubmission renders submission to w using the embedded templates.
func WriteSubmission(w io.Writer, submission form.Submission, format render.Format) error {
	renderer, err := render.New()
	if err != nil {
		return err
	}
	return renderer.Submission(w, submission, format)
}
