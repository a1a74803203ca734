package model

// FieldState is the value and status of one field at snapshot time.
type FieldState struct {
	Value   any  `json:"value"`
	Valid   bool `json:"valid"`
	Touched bool `json:"touched"`
}

// Snapshot is an immutable view of the field store plus the selection state
// the derived calculators need. Accessors return copies.
type Snapshot struct {
	fields map[FieldName]FieldState
	course string
	chips  []string
}

// NewSnapshot copies the supplied state into a Snapshot.
func NewSnapshot(fields map[FieldName]FieldState, course string, chips []string) Snapshot {
	clone := make(map[FieldName]FieldState, len(fields))
	for name, state := range fields {
		clone[name] = state
	}
	return Snapshot{
		fields: clone,
		course: course,
		chips:  append([]string(nil), chips...),
	}
}

// Field returns the state recorded for name.
func (s Snapshot) Field(name FieldName) (FieldState, bool) {
	state, ok := s.fields[name]
	return state, ok
}

// Value returns the recorded value for name, or nil when absent.
func (s Snapshot) Value(name FieldName) any {
	return s.fields[name].Value
}

// Valid reports the recorded validity for name. Absent fields are invalid.
func (s Snapshot) Valid(name FieldName) bool {
	return s.fields[name].Valid
}

// Touched reports the recorded touched flag for name.
func (s Snapshot) Touched(name FieldName) bool {
	return s.fields[name].Touched
}

// Values returns a copy of every recorded value keyed by field.
func (s Snapshot) Values() map[FieldName]any {
	out := make(map[FieldName]any, len(s.fields))
	for name, state := range s.fields {
		out[name] = state.Value
	}
	return out
}

// SelectedCourse returns the course held by the course selection, which may
// differ from the raw course field value.
func (s Snapshot) SelectedCourse() string {
	return s.course
}

// Chips returns the active event types.
func (s Snapshot) Chips() []string {
	if len(s.chips) == 0 {
		return nil
	}
	return append([]string(nil), s.chips...)
}
