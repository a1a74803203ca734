package form

import "errors"

var (
	// ErrUnknownField signals a write to a field the form does not define.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrUnknownEventType signals a chip outside the event-type vocabulary.
	ErrUnknownEventType = errors.New("form: unknown event type")
	// ErrUnknownCourse signals a course outside the course list.
	ErrUnknownCourse = errors.New("form: unknown course")
	// ErrUnknownTheme is returned when a theme selection names another manifest.
	ErrUnknownTheme = errors.New("form: unknown theme")
	// ErrUnknownThemeVariant is returned for variants the manifest lacks.
	ErrUnknownThemeVariant = errors.New("form: unknown theme variant")
)
