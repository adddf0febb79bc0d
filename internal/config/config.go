package config

import (
	"fmt"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/scribe/pkg/adapters/notion"
	"github.com/aretw0/scribe/pkg/domain"
	"github.com/aretw0/scribe/pkg/operations"
)

// Config is the process-wide configuration, built once at startup and
// threaded into the gateway and the operations layer.
type Config struct {
	Token            string        `mapstructure:"token" yaml:"token"`
	ParentPageID     string        `mapstructure:"parent_page_id" yaml:"parent_page_id"`
	BaseURL          string        `mapstructure:"base_url" yaml:"base_url"`
	APIVersion       string        `mapstructure:"api_version" yaml:"api_version"`
	Timeout          time.Duration `mapstructure:"timeout" yaml:"timeout"`
	RateLimit        float64       `mapstructure:"rate_limit" yaml:"rate_limit"`
	MaxContentLength int           `mapstructure:"max_content_length" yaml:"max_content_length"`
	ValidateAppend   bool          `mapstructure:"validate_append" yaml:"validate_append"`
	DefaultEmoji     string        `mapstructure:"default_emoji" yaml:"default_emoji"`
	LogLevel         string        `mapstructure:"log_level" yaml:"log_level"`
	LogFormat        string        `mapstructure:"log_format" yaml:"log_format"`
}

// envKeys maps environment variables to config keys.
var envKeys = map[string]string{
	"NOTION_TOKEN":              "token",
	"PAGE_ID":                   "parent_page_id",
	"NOTION_BASE_URL":           "base_url",
	"NOTION_VERSION":            "api_version",
	"SCRIBE_TIMEOUT":            "timeout",
	"SCRIBE_RATE_LIMIT":         "rate_limit",
	"SCRIBE_MAX_CONTENT_LENGTH": "max_content_length",
	"SCRIBE_VALIDATE_APPEND":    "validate_append",
	"SCRIBE_DEFAULT_EMOJI":      "default_emoji",
	"SCRIBE_LOG_LEVEL":          "log_level",
	"SCRIBE_LOG_FORMAT":         "log_format",
}

func defaults() map[string]any {
	return map[string]any{
		"base_url":           notion.BaseURL,
		"api_version":        notion.APIVersion,
		"timeout":            notion.DefaultTimeout.String(),
		"rate_limit":         3.0,
		"max_content_length": operations.DefaultMaxContentLength,
		"validate_append":    true,
		"default_emoji":      domain.DefaultEmoji,
		"log_level":          "info",
		"log_format":         "auto",
	}
}

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

// Load builds the configuration from defaults, the optional YAML file at path
// and the process environment, in that order of precedence (last wins).
func Load(path string) (*Config, error) {
	return LoadWith(path, os.LookupEnv)
}

// LoadWith is Load with an injectable environment lookup.
func LoadWith(path string, lookup LookupFunc) (*Config, error) {
	values := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		fileValues := map[string]any{}
		if err := yaml.Unmarshal(data, &fileValues); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}

	if lookup != nil {
		for env, key := range envKeys {
			if v, ok := lookup(env); ok && v != "" {
				values[key] = v
			}
		}
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &cfg,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create config decoder: %w", err)
	}
	if err := decoder.Decode(values); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Validate checks the settings required to talk to the workspace.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Token, validation.Required.Error("is required (set NOTION_TOKEN)")),
		validation.Field(&c.ParentPageID, validation.Required.Error("is required (set PAGE_ID)")),
		validation.Field(&c.BaseURL, validation.Required, is.URL),
		validation.Field(&c.APIVersion, validation.Required),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.RateLimit, validation.Min(0.0)),
		validation.Field(&c.MaxContentLength, validation.Required, validation.Min(1)),
		validation.Field(&c.LogFormat, validation.In("auto", "text", "json")),
	)
}
