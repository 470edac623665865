package runtimeconfig

import (
	"errors"
	"testing"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Build.ContentDir != "." || cfg.Build.OutputDir != "build" || cfg.Build.TemplatesDir != "templates" {
		t.Fatalf("unexpected defaults: %+v", cfg.Build)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestValidate_Failures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"blank content dir", func(c *Config) { c.Build.ContentDir = "   " }, ErrContentDirRequired},
		{"blank output dir", func(c *Config) { c.Build.OutputDir = "" }, ErrOutputDirRequired},
		{"blank templates dir", func(c *Config) { c.Build.TemplatesDir = "" }, ErrTemplatesDirRequired},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, ErrLoggingLevelInvalid},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, ErrLoggingFormatInvalid},
		{"theming options without enabled", func(c *Config) { c.Theming.DefaultTheme = "paper" }, ErrThemingRequiresEnabled},
	}

	for _, tc := range cases {
		cfg := DefaultConfig()
		tc.mutate(&cfg)
		if err := cfg.Validate(); !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestValidate_ThemingEnabledAllowsOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theming.Enabled = true
	cfg.Theming.DefaultTheme = "paper"
	cfg.Theming.DefaultVariant = "light"
	cfg.Theming.CSSVariablePrefix = "zine"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidate_LevelAndFormatCaseInsensitive(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "DEBUG"
	cfg.Logging.Format = "JSON"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
