// Package config provides configuration types, defaults and loading for the
// regform CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/goliatone/go-regform/pkg/render"
	"github.com/goliatone/go-regform/pkg/renderers/tui"
)

// EnvPrefix is the prefix of environment variable overrides (REGFORM_OUTPUT).
const EnvPrefix = "REGFORM"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all configuration options for regform.
type Config struct {
	Output     string       `mapstructure:"output" yaml:"output"`
	LogLevel   string       `mapstructure:"log_level" yaml:"log_level"`
	Theme      ThemeConfig  `mapstructure:"theme" yaml:"theme"`
	Prompt     PromptConfig `mapstructure:"prompt" yaml:"prompt"`
	Genders    []string     `mapstructure:"genders" yaml:"genders"`
	YearLevels []string     `mapstructure:"year_levels" yaml:"year_levels"`
}

// ThemeConfig selects the initial theme variant.
type ThemeConfig struct {
	Dark bool `mapstructure:"dark" yaml:"dark"`
}

// PromptConfig tunes the terminal prompts.
type PromptConfig struct {
	PageSize int `mapstructure:"page_size" yaml:"page_size"`
}

// Defaults returns the configuration used when no file or override is given.
func Defaults() Config {
	return Config{
		Output:     string(render.FormatPretty),
		LogLevel:   zerolog.WarnLevel.String(),
		Prompt:     PromptConfig{PageSize: tui.DefaultPageSize},
		Genders:    tui.DefaultGenders(),
		YearLevels: tui.DefaultYearLevels(),
	}
}

// Validate rejects unknown output formats and log levels, non-positive page
// sizes and empty option lists.
func (c Config) Validate() error {
	if _, err := render.ParseFormat(c.Output); err != nil {
		return fmt.Errorf("%w: output: %v", ErrInvalidConfig, err)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel)); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	if c.Prompt.PageSize <= 0 {
		return fmt.Errorf("%w: prompt.page_size must be positive", ErrInvalidConfig)
	}
	if err := validateOptions("genders", c.Genders); err != nil {
		return err
	}
	return validateOptions("year_levels", c.YearLevels)
}

func validateOptions(key string, options []string) error {
	if len(options) == 0 {
		return fmt.Errorf("%w: %s must not be empty", ErrInvalidConfig, key)
	}
	seen := make(map[string]struct{}, len(options))
	for i, option := range options {
		if strings.TrimSpace(option) == "" {
			return fmt.Errorf("%w: %s[%d] is blank", ErrInvalidConfig, key, i)
		}
		if _, dup := seen[option]; dup {
			return fmt.Errorf("%w: %s[%d] duplicates %q", ErrInvalidConfig, key, i, option)
		}
		seen[option] = struct{}{}
	}
	return nil
}

// SetDefaults registers Defaults on v.
func SetDefaults(v *viper.Viper) {
	defaults := Defaults()
	v.SetDefault("output", defaults.Output)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("theme.dark", defaults.Theme.Dark)
	v.SetDefault("prompt.page_size", defaults.Prompt.PageSize)
	v.SetDefault("genders", defaults.Genders)
	v.SetDefault("year_levels", defaults.YearLevels)
}

// Load reads configuration into v and decodes it. An explicit file must
// exist. Without one, .regform/config.yaml in the working directory wins
// over ~/.config/regform/config.yaml; a missing file keeps the defaults.
// Environment variables prefixed with REGFORM override file values.
func Load(v *viper.Viper, file string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
	} else {
		// Config lookup order:
		// 1. .regform/config.yaml (current directory)
		// 2. ~/.config/regform/config.yaml (user config)
		local := filepath.Join(".regform", "config.yaml")
		if _, err := os.Stat(local); err == nil {
			v.SetConfigFile(local)
		} else {
			if home, err := os.UserHomeDir(); err == nil {
				v.AddConfigPath(filepath.Join(home, ".config", "regform"))
			}
			v.SetConfigName("config")
			v.SetConfigType("yaml")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: read %s: %w", describe(v, file), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func describe(v *viper.Viper, file string) string {
	if file != "" {
		return file
	}
	if used := v.ConfigFileUsed(); used != "" {
		return used
	}
	return "config"
}
