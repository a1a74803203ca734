package form

import (
	"github.com/rs/zerolog"

	theme "github.com/goliatone/go-theme"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger routes engine debug events to logger. Values are never logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithThemeManifest replaces the built-in theme manifest.
func WithThemeManifest(manifest *theme.Manifest) Option {
	return func(e *Engine) {
		if manifest != nil {
			e.manifest = manifest
		}
	}
}

// WithDarkTheme sets the initial theme variant.
func WithDarkTheme(dark bool) Option {
	return func(e *Engine) {
		e.darkDefault = dark
	}
}
