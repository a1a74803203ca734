package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-regform/pkg/form"
	"github.com/goliatone/go-regform/pkg/model"
	"github.com/goliatone/go-regform/pkg/validation"
)

const fillBarWidth = 20

// Engine is the part of form.Engine a session drives.
type Engine interface {
	SetValue(name model.FieldName, value any) error
	Value(name model.FieldName) (any, bool)
	IsValid(name model.FieldName) bool
	ErrorMessage(name model.FieldName) string
	Completion() int
	SliderFill() float64
	ToggleChip(tag string) error
	IsChipActive(tag string) bool
	ActiveChips() []string
	SelectCourse(name string) error
	SelectedCourse() string
	ToggleCourseSelect()
	CourseSelectOpen() bool
	ToggleTheme()
	IsThemeDark() bool
	ThemeTokens() map[string]string
	AttemptSubmit() form.Submission
}

// Session walks a registration form through a PromptDriver.
type Session struct {
	engine      Engine
	driver      PromptDriver
	out         io.Writer
	logger      zerolog.Logger
	genders     []string
	yearLevels  []string
	pageSize    int
	prefixes    Prefixes
	themePrompt bool
}

// NewSession constructs a session with defaults (survey driver, default
// option lists, theme prompt enabled).
func NewSession(engine Engine, options ...Option) (*Session, error) {
	if engine == nil {
		return nil, errors.New("tui: engine is nil")
	}

	s := &Session{
		engine:      engine,
		logger:      zerolog.Nop(),
		genders:     DefaultGenders(),
		yearLevels:  DefaultYearLevels(),
		pageSize:    DefaultPageSize,
		prefixes:    DefaultPrefixes(),
		themePrompt: true,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	if s.driver == nil {
		s.driver = NewSurveyDriver(engine.ThemeTokens, s.out)
	}

	return s, nil
}

// Run prompts every field until it is valid, then submits. Fields named by a
// rejected submission are prompted again until the submission is accepted or
// the user aborts.
func (s *Session) Run(ctx context.Context) (form.Submission, error) {
	if ctx == nil {
		return form.Submission{}, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return form.Submission{}, err
	}

	if s.themePrompt {
		if err := s.promptTheme(ctx); err != nil {
			return form.Submission{}, err
		}
	}

	for _, name := range model.Fields() {
		if err := s.promptField(ctx, name); err != nil {
			return form.Submission{}, err
		}
		if err := s.info(ctx, fmt.Sprintf("Completion: %d%%", s.engine.Completion())); err != nil {
			return form.Submission{}, err
		}
	}

	for {
		submission := s.engine.AttemptSubmit()
		if submission.Accepted() {
			s.logger.Info().Msg("submission accepted")
			return submission, nil
		}
		s.logger.Info().Int("issues", len(submission.Issues)).Msg("submission rejected")

		if err := s.info(ctx, "Please fix the highlighted fields."); err != nil {
			return form.Submission{}, err
		}
		for _, issue := range submission.Issues {
			if err := s.fail(ctx, issueLine(issue)); err != nil {
				return form.Submission{}, err
			}
		}
		for _, issue := range submission.Issues {
			if err := s.promptField(ctx, issue.Field); err != nil {
				return form.Submission{}, err
			}
		}
	}
}

func (s *Session) promptTheme(ctx context.Context) error {
	dark, err := s.driver.Confirm(ctx, ConfirmConfig{
		Message: "Use the dark theme?",
		Default: s.engine.IsThemeDark(),
	})
	if err != nil {
		return err
	}
	if dark != s.engine.IsThemeDark() {
		s.engine.ToggleTheme()
		s.logger.Debug().Bool("dark", dark).Msg("theme toggled")
	}
	return nil
}

func (s *Session) promptField(ctx context.Context, name model.FieldName) error {
	s.logger.Debug().Str("field", string(name)).Msg("prompt field")

	switch name {
	case model.FieldPassword:
		return s.promptText(ctx, name, true)
	case model.FieldGender:
		return s.promptChoice(ctx, name, s.genders)
	case model.FieldYearLevel:
		return s.promptChoice(ctx, name, s.yearLevels)
	case model.FieldCourse:
		return s.promptCourse(ctx)
	case model.FieldEventExperience:
		if err := s.promptExperience(ctx); err != nil {
			return err
		}
		return s.promptEventTypes(ctx)
	case model.FieldAgreeToTerms:
		return s.promptTerms(ctx)
	default:
		return s.promptText(ctx, name, false)
	}
}

func (s *Session) promptText(ctx context.Context, name model.FieldName, secret bool) error {
	field, _ := validation.Definition(name)
	cfg := InputConfig{
		Message: field.Label,
		Help:    helpFor(name),
	}

	for {
		if !secret {
			cfg.Default = s.currentString(name)
		}
		var (
			response string
			err      error
		)
		if secret {
			response, err = s.driver.Password(ctx, cfg)
		} else {
			response, err = s.driver.Input(ctx, cfg)
		}
		if err != nil {
			return err
		}

		if err := s.engine.SetValue(name, response); err != nil {
			return err
		}
		if s.engine.IsValid(name) {
			return nil
		}
		if err := s.fail(ctx, s.engine.ErrorMessage(name)); err != nil {
			return err
		}
	}
}

func (s *Session) promptChoice(ctx context.Context, name model.FieldName, options []string) error {
	if len(options) == 0 {
		return fmt.Errorf("%w: %s", ErrNoOptions, name)
	}
	field, _ := validation.Definition(name)

	for {
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      field.Label,
			Options:      options,
			DefaultIndex: indexOf(options, s.currentString(name)),
			PageSize:     s.pageSize,
		})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(options) {
			if err := s.fail(ctx, s.engine.ErrorMessage(name)); err != nil {
				return err
			}
			continue
		}
		if err := s.engine.SetValue(name, options[idx]); err != nil {
			return err
		}
		if s.engine.IsValid(name) {
			return nil
		}
		if err := s.fail(ctx, s.engine.ErrorMessage(name)); err != nil {
			return err
		}
	}
}

func (s *Session) promptCourse(ctx context.Context) error {
	options := model.Courses()
	field, _ := validation.Definition(model.FieldCourse)

	for {
		if !s.engine.CourseSelectOpen() {
			s.engine.ToggleCourseSelect()
		}
		idx, err := s.driver.Select(ctx, SelectConfig{
			Message:      field.Label,
			Options:      options,
			DefaultIndex: indexOf(options, s.engine.SelectedCourse()),
			PageSize:     s.pageSize,
		})
		if err != nil {
			if s.engine.CourseSelectOpen() {
				s.engine.ToggleCourseSelect()
			}
			return err
		}
		if idx < 0 || idx >= len(options) {
			if err := s.fail(ctx, s.engine.ErrorMessage(model.FieldCourse)); err != nil {
				return err
			}
			continue
		}
		if err := s.engine.SelectCourse(options[idx]); err != nil {
			return err
		}
		if s.engine.IsValid(model.FieldCourse) {
			return nil
		}
		if err := s.fail(ctx, s.engine.ErrorMessage(model.FieldCourse)); err != nil {
			return err
		}
	}
}

func (s *Session) promptExperience(ctx context.Context) error {
	field, _ := validation.Definition(model.FieldEventExperience)
	message := fmt.Sprintf("%s (%d-%d)", field.Label, form.MinExperience, form.MaxExperience)

	for {
		response, err := s.driver.Input(ctx, InputConfig{
			Message: message,
			Default: s.currentString(model.FieldEventExperience),
			Help:    "How many school events have you joined before?",
		})
		if err != nil {
			return err
		}

		value, err := strconv.Atoi(strings.TrimSpace(response))
		if err != nil || value < form.MinExperience || value > form.MaxExperience {
			msg := fmt.Sprintf("Enter a whole number between %d and %d.", form.MinExperience, form.MaxExperience)
			if err := s.fail(ctx, msg); err != nil {
				return err
			}
			continue
		}
		if err := s.engine.SetValue(model.FieldEventExperience, value); err != nil {
			return err
		}
		return s.info(ctx, fillBar(s.engine.SliderFill(), float64(value)))
	}
}

func (s *Session) promptEventTypes(ctx context.Context) error {
	options := model.EventTypes()
	indices, err := s.driver.MultiSelect(ctx, SelectConfig{
		Message:  "Event types you are interested in",
		Options:  options,
		Defaults: indicesOf(options, s.engine.ActiveChips()),
		PageSize: s.pageSize,
	})
	if err != nil {
		return err
	}

	wanted := make(map[int]struct{}, len(indices))
	for _, idx := range indices {
		wanted[idx] = struct{}{}
	}
	for i, tag := range options {
		_, selected := wanted[i]
		if selected == s.engine.IsChipActive(tag) {
			continue
		}
		if err := s.engine.ToggleChip(tag); err != nil {
			return err
		}
	}
	return nil
}

func (s *Session) promptTerms(ctx context.Context) error {
	field, _ := validation.Definition(model.FieldAgreeToTerms)

	for {
		current, _ := s.engine.Value(model.FieldAgreeToTerms)
		agreed, _ := current.(bool)
		resp, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: field.Label,
			Default: agreed,
		})
		if err != nil {
			return err
		}
		if err := s.engine.SetValue(model.FieldAgreeToTerms, resp); err != nil {
			return err
		}
		if s.engine.IsValid(model.FieldAgreeToTerms) {
			return nil
		}
		if err := s.fail(ctx, s.engine.ErrorMessage(model.FieldAgreeToTerms)); err != nil {
			return err
		}
	}
}

func (s *Session) currentString(name model.FieldName) string {
	value, ok := s.engine.Value(name)
	if !ok || value == nil {
		return ""
	}
	if str, ok := value.(string); ok {
		return str
	}
	return fmt.Sprint(value)
}

func (s *Session) info(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, s.prefixes.Info+msg)
}

func (s *Session) fail(ctx context.Context, msg string) error {
	return s.driver.Info(ctx, s.prefixes.Error+msg)
}

func helpFor(name model.FieldName) string {
	switch name {
	case model.FieldPassword:
		return fmt.Sprintf("Start with a letter; letters and numbers only; at least %d characters.", validation.MinPasswordLength)
	case model.FieldBirthDate:
		return fmt.Sprintf("YYYY-MM-DD, born in %d or earlier.", validation.BirthYearCutoff)
	default:
		return ""
	}
}

func issueLine(issue validation.Issue) string {
	label := string(issue.Field)
	if field, ok := validation.Definition(issue.Field); ok && field.Label != "" {
		label = field.Label
	}
	return label + ": " + issue.Message
}

func fillBar(percent, value float64) string {
	filled := int(math.Round(percent / 100 * fillBarWidth))
	if filled < 0 {
		filled = 0
	}
	if filled > fillBarWidth {
		filled = fillBarWidth
	}
	return fmt.Sprintf("[%s%s] %s/%d",
		strings.Repeat("█", filled),
		strings.Repeat("░", fillBarWidth-filled),
		strconv.FormatFloat(value, 'f', -1, 64),
		form.MaxExperience,
	)
}
