package regform

import (
	"io/fs"

	"github.com/goliatone/go-regform/pkg/render"
)

// EmbeddedTemplates exposes the built-in pretty-output templates so callers
// can copy or extend them and pass the result to render.WithTemplates.
func EmbeddedTemplates() fs.FS {
	return render.TemplatesFS()
}
