package form

import (
	"fmt"
	"sort"

	"github.com/goliatone/go-regform/pkg/model"
)

// Selection tracks the event-type chips, the single selected course and the
// course dropdown flag. It is independent of form validity.
type Selection struct {
	chips      map[string]struct{}
	course     string
	courseOpen bool
}

// NewSelection returns an empty selection with the dropdown closed.
func NewSelection() *Selection {
	return &Selection{chips: make(map[string]struct{})}
}

// Reset clears every chip, the course and the dropdown flag.
func (s *Selection) Reset() {
	s.chips = make(map[string]struct{})
	s.course = ""
	s.courseOpen = false
}

// ToggleChip flips the membership of tag. Tags outside the vocabulary are
// rejected without mutation.
func (s *Selection) ToggleChip(tag string) error {
	if !model.IsEventType(tag) {
		return fmt.Errorf("%w: %q", ErrUnknownEventType, tag)
	}
	if _, ok := s.chips[tag]; ok {
		delete(s.chips, tag)
		return nil
	}
	s.chips[tag] = struct{}{}
	return nil
}

// RemoveChip drops tag. Absent or unknown tags are a no-op.
func (s *Selection) RemoveChip(tag string) {
	delete(s.chips, tag)
}

// IsChipActive reports whether tag is selected.
func (s *Selection) IsChipActive(tag string) bool {
	_, ok := s.chips[tag]
	return ok
}

// ActiveChips returns a copy of the selected tags in vocabulary order.
func (s *Selection) ActiveChips() []string {
	if len(s.chips) == 0 {
		return nil
	}
	out := make([]string, 0, len(s.chips))
	for tag := range s.chips {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool {
		return model.EventTypeIndex(out[i]) < model.EventTypeIndex(out[j])
	})
	return out
}

// SelectCourse replaces any previous course and closes the dropdown.
func (s *Selection) SelectCourse(name string) error {
	if !model.IsCourse(name) {
		return fmt.Errorf("%w: %q", ErrUnknownCourse, name)
	}
	s.course = name
	s.courseOpen = false
	return nil
}

// SelectedCourse returns the selected course, or "" when none.
func (s *Selection) SelectedCourse() string {
	return s.course
}

// ToggleCourseSelect opens or closes the course dropdown.
func (s *Selection) ToggleCourseSelect() {
	s.courseOpen = !s.courseOpen
}

// CourseSelectOpen reports whether the course dropdown is open.
func (s *Selection) CourseSelectOpen() bool {
	return s.courseOpen
}
