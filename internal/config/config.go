// Package config loads runtime settings for the cvtemplates server and CLI.
//
// Values are layered: defaults, then an optional YAML file, then CVT_*
// environment variables. Command flags are applied by the caller on top.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "CVT_"

// Config represents the settings shared by the serve, render and export
// commands.
type Config struct {
	Addr          string        `yaml:"addr" validate:"required,hostname_port"`
	ShutdownGrace time.Duration `yaml:"shutdown_grace" validate:"gt=0"`

	// ResumePath and ResumeURL swap the built-in sample for an external
	// record. At most one may be set.
	ResumePath  string        `yaml:"resume" validate:"omitempty,excluded_with=ResumeURL"`
	ResumeURL   string        `yaml:"resume_url" validate:"omitempty,url"`
	AllowHTTP   bool          `yaml:"allow_http"`
	HTTPTimeout time.Duration `yaml:"http_timeout" validate:"gt=0"`

	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" validate:"oneof=text json"`

	DefaultRenderer string `yaml:"renderer" validate:"oneof=html json"`
	TemplatesDir    string `yaml:"templates_dir"`
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		Addr:            ":8080",
		ShutdownGrace:   10 * time.Second,
		HTTPTimeout:     10 * time.Second,
		LogLevel:        "info",
		LogFormat:       "text",
		DefaultRenderer: "html",
	}
}

// Load applies the YAML file at path (skipped when path is empty) and the
// environment on top of Default. The result is not validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("config: file %s not found: %w", path, err)
			}
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
	dur := func(key string, dst *time.Duration) error {
		v, ok := lookup(EnvPrefix + key)
		if !ok {
			return nil
		}
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %s%s: %w", EnvPrefix, key, err)
		}
		*dst = d
		return nil
	}

	str("ADDR", &c.Addr)
	str("RESUME", &c.ResumePath)
	str("RESUME_URL", &c.ResumeURL)
	str("LOG_LEVEL", &c.LogLevel)
	str("LOG_FORMAT", &c.LogFormat)
	str("RENDERER", &c.DefaultRenderer)
	str("TEMPLATES_DIR", &c.TemplatesDir)

	if err := dur("SHUTDOWN_GRACE", &c.ShutdownGrace); err != nil {
		return err
	}
	if err := dur("HTTP_TIMEOUT", &c.HTTPTimeout); err != nil {
		return err
	}
	if v, ok := lookup(EnvPrefix + "ALLOW_HTTP"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("config: %sALLOW_HTTP: %w", EnvPrefix, err)
		}
		c.AllowHTTP = b
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate reports every invalid field in a single error.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: %w", err)
	}
	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("config: invalid: %s", strings.Join(problems, "; "))
}

// HasExternalResume reports whether a resume path or URL was supplied.
func (c Config) HasExternalResume() bool {
	return c.ResumePath != "" || c.ResumeURL != ""
}
