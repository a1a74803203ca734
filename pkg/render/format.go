package render

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat is returned for output formats the renderer lacks.
var ErrUnsupportedFormat = errors.New("render: unsupported format")

// Format controls how results are serialized.
type Format string

const (
	// FormatJSON emits application/json payloads.
	FormatJSON Format = "json"
	// FormatYAML emits application/yaml payloads.
	FormatYAML Format = "yaml"
	// FormatPretty emits a human-friendly text summary.
	FormatPretty Format = "pretty"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatPretty}
}

// ParseFormat resolves a case-insensitive format name. "yml" and "text" are
// accepted aliases.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "pretty", "text":
		return FormatPretty, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, raw)
	}
}

// ContentType reports the media type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml"
	case FormatPretty:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}
