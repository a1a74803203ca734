package render

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"sync"

	"github.com/flosch/pongo2/v6"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-regform/pkg/form"
	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/validation"
)

const (
	recordTemplate = "record.tpl"
	issuesTemplate = "issues.tpl"

	// PasswordMask replaces the password in every rendered output.
	PasswordMask = "********"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

// TemplatesFS exposes the embedded templates rooted at their directory.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return embeddedTemplates
	}
	return sub
}

// Option configures the renderer before construction.
type Option func(*config)

type config struct {
	templates fs.FS
}

// WithTemplates overrides the embedded templates. The filesystem must provide
// record.tpl and issues.tpl at its root.
func WithTemplates(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templates = files
		}
	}
}

// Renderer serializes records and issues. Parsed templates are cached.
type Renderer struct {
	mu          sync.RWMutex
	templateSet *pongo2.TemplateSet
	templates   map[string]*pongo2.Template
}

// New constructs a Renderer backed by the embedded templates unless
// WithTemplates says otherwise.
func New(options ...Option) (*Renderer, error) {
	cfg := &config{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}
	if cfg.templates == nil {
		cfg.templates = TemplatesFS()
	}

	return &Renderer{
		templateSet: pongo2.NewSet("regform", pongo2.NewFSLoader(cfg.templates)),
		templates:   make(map[string]*pongo2.Template),
	}, nil
}

// Record writes an accepted record in the requested format.
func (r *Renderer) Record(w io.Writer, record model.Record, format Format) error {
	if r == nil {
		return errors.New("render: renderer is nil")
	}
	clean := SanitizeRecord(record)
	switch format {
	case FormatJSON:
		return writeJSON(w, clean)
	case FormatYAML:
		return writeYAML(w, clean)
	case FormatPretty:
		return r.execute(w, recordTemplate, pongo2.Context{
			"record":        recordView(clean),
			"maxExperience": form.MaxExperience,
		})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Issues writes the issues of a rejected submission in the requested format.
func (r *Renderer) Issues(w io.Writer, issues []validation.Issue, format Format) error {
	if r == nil {
		return errors.New("render: renderer is nil")
	}
	result := validation.Result{Valid: len(issues) == 0, Issues: issues}
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatYAML:
		return writeYAML(w, result)
	case FormatPretty:
		return r.execute(w, issuesTemplate, pongo2.Context{
			"issues": issueViews(issues),
		})
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Submission writes the record of an accepted submission or the issues of a
// rejected one.
func (r *Renderer) Submission(w io.Writer, submission form.Submission, format Format) error {
	if submission.Accepted() && submission.Record != nil {
		return r.Record(w, *submission.Record, format)
	}
	return r.Issues(w, submission.Issues, format)
}

func (r *Renderer) execute(w io.Writer, name string, ctx pongo2.Context) error {
	tmpl, err := r.template(name)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(ctx, &buf); err != nil {
		return fmt.Errorf("render: execute template %q: %w", name, err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("render: write output: %w", err)
	}
	return nil
}

func (r *Renderer) template(name string) (*pongo2.Template, error) {
	r.mu.RLock()
	tmpl, ok := r.templates[name]
	r.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if tmpl, ok := r.templates[name]; ok {
		return tmpl, nil
	}
	tmpl, err := r.templateSet.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("render: load template %q: %w", name, err)
	}
	r.templates[name] = tmpl
	return tmpl, nil
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("render: encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, value any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(value); err != nil {
		return fmt.Errorf("render: encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("render: encode yaml: %w", err)
	}
	return nil
}

func recordView(record model.Record) map[string]any {
	birthDate := ""
	if !record.BirthDate.IsZero() {
		birthDate = record.BirthDate.Format(validation.DateLayout)
	}
	return map[string]any{
		"fullName":        record.FullName,
		"studentId":       record.StudentID,
		"email":           record.Email,
		"password":        PasswordMask,
		"gender":          record.Gender,
		"birthDate":       birthDate,
		"course":          record.Course,
		"yearLevel":       record.YearLevel,
		"eventExperience": strconv.FormatFloat(record.EventExperience, 'f', -1, 64),
		"eventTypes":      record.EventTypes,
		"agreeToTerms":    record.AgreeToTerms,
	}
}

func issueViews(issues []validation.Issue) []map[string]any {
	out := make([]map[string]any, 0, len(issues))
	for _, issue := range issues {
		label := string(issue.Field)
		if field, ok := validation.Definition(issue.Field); ok && field.Label != "" {
			label = field.Label
		}
		out = append(out, map[string]any{
			"field":   string(issue.Field),
			"label":   label,
			"reason":  string(issue.Reason),
			"message": issue.Message,
		})
	}
	return out
}
