package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-regform/internal/config"
	"github.com/goliatone/go-regform/internal/logging"
	"github.com/goliatone/go-regform/pkg/form"
	"github.com/goliatone/go-regform/pkg/render"
	"github.com/goliatone/go-regform/pkg/renderers/tui"
)

// errRejected is returned after the issues of a rejected submission have been
// written, so the process exits non-zero.
var errRejected = errors.New("submission rejected")

type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	logger  zerolog.Logger
	out     io.Writer
	errOut  io.Writer

	// driver overrides the survey prompts; nil in production.
	driver tui.PromptDriver
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		v:      viper.New(),
		logger: zerolog.Nop(),
		out:    out,
		errOut: errOut,
	}
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "regform",
		Short:             "Interactive student event registration form",
		Long:              `Walks through the student registration form in the terminal, validating every field as it is entered, and prints the accepted registration.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
		RunE:              a.runForm,
	}
	cmd.SetOut(a.out)
	cmd.SetErr(a.errOut)

	flags := cmd.PersistentFlags()
	flags.StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: .regform/config.yaml or ~/.config/regform/config.yaml)")
	flags.StringP("output", "o", "", "output format: json, yaml or pretty")
	flags.Bool("dark", false, "start with the dark theme")
	flags.String("log-level", "", "log level: debug, info, warn, error")

	_ = a.v.BindPFlag("output", flags.Lookup("output"))
	_ = a.v.BindPFlag("theme.dark", flags.Lookup("dark"))
	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))

	cmd.AddCommand(newValidateCmd(a), newInitCmd())
	return cmd
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.LogLevel, a.errOut, nil)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logger
	a.logger.Debug().Str("config", a.v.ConfigFileUsed()).Str("output", cfg.Output).Msg("configuration loaded")
	return nil
}

func (a *app) newEngine() *form.Engine {
	return form.New(
		form.WithLogger(a.logger.With().Str("component", "form").Logger()),
		form.WithDarkTheme(a.cfg.Theme.Dark),
	)
}

func (a *app) runForm(cmd *cobra.Command, _ []string) error {
	format, err := render.ParseFormat(a.cfg.Output)
	if err != nil {
		return err
	}
	renderer, err := render.New()
	if err != nil {
		return err
	}

	engine := a.newEngine()
	session, err := tui.NewSession(engine,
		tui.WithPromptDriver(a.driver),
		tui.WithOutput(a.out),
		tui.WithLogger(a.logger.With().Str("component", "tui").Logger()),
		tui.WithGenders(a.cfg.Genders),
		tui.WithYearLevels(a.cfg.YearLevels),
		tui.WithPageSize(a.cfg.Prompt.PageSize),
	)
	if err != nil {
		return err
	}

	submission, err := session.Run(cmd.Context())
	if err != nil {
		if errors.Is(err, tui.ErrAborted) {
			a.logger.Info().Msg("registration aborted")
		}
		return err
	}
	return a.write(renderer, submission, format)
}

func (a *app) write(renderer *render.Renderer, submission form.Submission, format render.Format) error {
	if err := renderer.Submission(a.out, submission, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if !submission.Accepted() {
		return errRejected
	}
	return nil
}
