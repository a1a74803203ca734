package form

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// Theme variants understood by the engine.
const (
	VariantLight = "light"
	VariantDark  = "dark"
)

// DefaultThemeName names the built-in manifest.
const DefaultThemeName = "regform"

// DefaultThemeManifest returns the built-in manifest. Base tokens describe the
// light variant; the dark variant overrides a subset. Prompt tokens use survey
// color formats so terminal collaborators can apply them directly.
func DefaultThemeManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"background":    "#ffffff",
			"foreground":    "#1f2933",
			"accent":        "#3f51b5",
			"prompt.format": "cyan+b",
			"error.format":  "red",
			"help.format":   "blue",
			"marked.format": "green+b",
		},
		Variants: map[string]theme.Variant{
			VariantLight: {},
			VariantDark: {
				Tokens: map[string]string{
					"background":    "#121212",
					"foreground":    "#e4e7eb",
					"accent":        "#90caf9",
					"prompt.format": "yellow+b",
					"help.format":   "cyan",
					"marked.format": "magenta+b",
				},
			},
		},
	}
}

// Theme holds the session-scoped dark/light flag. It also satisfies
// theme.ThemeSelector so renderers can resolve the manifest through the
// go-theme contract.
type Theme struct {
	manifest *theme.Manifest
	dark     bool
}

var _ theme.ThemeSelector = (*Theme)(nil)

// NewTheme wraps manifest; a nil manifest falls back to DefaultThemeManifest.
func NewTheme(manifest *theme.Manifest, dark bool) *Theme {
	if manifest == nil {
		manifest = DefaultThemeManifest()
	}
	return &Theme{manifest: manifest, dark: dark}
}

// Toggle flips between the dark and light variants.
func (t *Theme) Toggle() {
	t.dark = !t.dark
}

// SetDark forces the dark flag.
func (t *Theme) SetDark(dark bool) {
	t.dark = dark
}

// IsDark reports whether the dark variant is active.
func (t *Theme) IsDark() bool {
	return t.dark
}

// Variant returns the active variant name.
func (t *Theme) Variant() string {
	if t.dark {
		return VariantDark
	}
	return VariantLight
}

// Selection returns the active manifest and variant.
func (t *Theme) Selection() *theme.Selection {
	return &theme.Selection{
		Theme:    t.manifest.Name,
		Variant:  t.Variant(),
		Manifest: t.manifest,
	}
}

// Select resolves a theme and variant against the wrapped manifest. Empty
// arguments fall back to the manifest name and the active variant. It does not
// change the active variant.
func (t *Theme) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	variant = strings.TrimSpace(variant)
	if name == "" {
		name = t.manifest.Name
	}
	if name != t.manifest.Name {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	if variant == "" {
		variant = t.Variant()
	}
	if _, ok := t.manifest.Variants[variant]; !ok && variant != VariantLight {
		return nil, fmt.Errorf("%w: %q", ErrUnknownThemeVariant, variant)
	}
	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: t.manifest,
	}, nil
}

// Tokens returns the base tokens merged with the active variant overrides.
func (t *Theme) Tokens() map[string]string {
	return mergeTokens(t.manifest, t.Variant())
}

func mergeTokens(manifest *theme.Manifest, variant string) map[string]string {
	out := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		out[key] = value
	}
	if v, ok := manifest.Variants[variant]; ok {
		for key, value := range v.Tokens {
			out[key] = value
		}
	}
	return out
}
