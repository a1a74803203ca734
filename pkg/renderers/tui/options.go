package tui

import (
	"io"

	"github.com/rs/zerolog"
)

// DefaultPageSize is the number of options shown per select page.
const DefaultPageSize = 9

// DefaultGenders returns the gender options offered when none are configured.
func DefaultGenders() []string {
	return []string{"Male", "Female", "Prefer not to say"}
}

// DefaultYearLevels returns the year level options offered when none are
// configured.
func DefaultYearLevels() []string {
	return []string{"1st Year", "2nd Year", "3rd Year", "4th Year", "5th Year"}
}

// Prefixes captures the message prefixes the session prepends to
// informational and error lines.
type Prefixes struct {
	Info  string
	Error string
}

// DefaultPrefixes returns the prefixes used when WithPrefixes is not given.
func DefaultPrefixes() Prefixes {
	return Prefixes{Info: "› ", Error: "✗ "}
}

// Option configures the TUI session.
type Option func(*Session)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Session) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithOutput directs informational lines of the default driver to w.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		if w != nil {
			s.out = w
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithGenders replaces the gender options. Empty lists are ignored.
func WithGenders(options []string) Option {
	return func(s *Session) {
		if len(options) > 0 {
			s.genders = append([]string(nil), options...)
		}
	}
}

// WithYearLevels replaces the year level options. Empty lists are ignored.
func WithYearLevels(options []string) Option {
	return func(s *Session) {
		if len(options) > 0 {
			s.yearLevels = append([]string(nil), options...)
		}
	}
}

// WithPageSize sets the select page size.
func WithPageSize(size int) Option {
	return func(s *Session) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// WithPrefixes applies message prefixes.
func WithPrefixes(prefixes Prefixes) Option {
	return func(s *Session) {
		s.prefixes = prefixes
	}
}

// WithThemePrompt controls whether the session asks for the dark theme before
// walking the fields.
func WithThemePrompt(enabled bool) Option {
	return func(s *Session) {
		s.themePrompt = enabled
	}
}
