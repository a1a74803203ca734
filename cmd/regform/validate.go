package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-regform"
	"github.com/goliatone/go-regform/pkg/render"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a YAML or JSON values file without prompting",
		Long: `Reads field values keyed by field name (fullName, studentId, email, ...)
plus an optional eventTypes list, runs them through the form and prints the
accepted registration or the issues that block it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.validateFile(args[0])
		},
	}
}

func (a *app) validateFile(path string) error {
	format, err := render.ParseFormat(a.cfg.Output)
	if err != nil {
		return err
	}
	renderer, err := render.New()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading values: %w", err)
	}
	var values map[string]any
	if err := yaml.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("parsing values %s: %w", path, err)
	}

	engine := a.newEngine()
	if err := regform.Apply(engine, values); err != nil {
		return fmt.Errorf("applying values %s: %w", path, err)
	}

	submission := engine.AttemptSubmit()
	a.logger.Debug().Str("outcome", string(submission.Outcome)).Int("issues", len(submission.Issues)).Msg("values validated")
	return a.write(renderer, submission, format)
}
