package form

import (
	"fmt"

	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/validation"
)

// Store holds the authoritative value and touched flag of every field.
// Validity is never cached; it is recomputed from the value on each query.
type Store struct {
	values  map[model.FieldName]any
	touched map[model.FieldName]bool
}

// NewStore seeds a store with the field defaults.
func NewStore() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// Reset restores every field to its default value and clears touched flags.
func (s *Store) Reset() {
	defs := validation.Definitions()
	s.values = make(map[model.FieldName]any, len(defs))
	s.touched = make(map[model.FieldName]bool, len(defs))
	for _, field := range defs {
		s.values[field.Name] = field.Default
	}
}

// SetValue stores value as-is for name and marks the field touched.
func (s *Store) SetValue(name model.FieldName, value any) error {
	if !name.IsKnown() {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	s.values[name] = value
	s.touched[name] = true
	return nil
}

// Value returns the current value of name.
func (s *Store) Value(name model.FieldName) (any, bool) {
	value, ok := s.values[name]
	return value, ok
}

// Outcome evaluates the field rules against the current value.
func (s *Store) Outcome(name model.FieldName) model.Outcome {
	return validation.Evaluate(name, s.values[name])
}

// IsValid reports whether the current value of name passes its rules.
func (s *Store) IsValid(name model.FieldName) bool {
	return s.Outcome(name).OK()
}

// Touched reports whether name was edited or force-touched.
func (s *Store) Touched(name model.FieldName) bool {
	return s.touched[name]
}

// MarkTouched flags a single field as touched.
func (s *Store) MarkTouched(name model.FieldName) error {
	if !name.IsKnown() {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	s.touched[name] = true
	return nil
}

// MarkAllTouched flags every field so collaborators render their errors.
func (s *Store) MarkAllTouched() {
	for _, name := range model.Fields() {
		s.touched[name] = true
	}
}

// Values returns a copy of the current values.
func (s *Store) Values() map[model.FieldName]any {
	out := make(map[model.FieldName]any, len(s.values))
	for name, value := range s.values {
		out[name] = value
	}
	return out
}

func (s *Store) fieldStates() map[model.FieldName]model.FieldState {
	states := make(map[model.FieldName]model.FieldState, len(s.values))
	for _, name := range model.Fields() {
		value := s.values[name]
		states[name] = model.FieldState{
			Value:   value,
			Valid:   validation.Evaluate(name, value).OK(),
			Touched: s.touched[name],
		}
	}
	return states
}
