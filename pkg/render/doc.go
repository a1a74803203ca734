// Package render serializes submission results for presentation
// collaborators. Accepted records render as JSON, YAML or a pongo2 text
// summary; rejected submissions render their issues in the same formats.
// Free-text values pass through a strict bluemonday policy first, and the
// password never appears in any output.
package render
