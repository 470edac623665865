package runtimeconfig

import (
	"errors"
	"strings"
)

// ErrContentDirRequired indicates the build has no content root configured.
var ErrContentDirRequired = errors.New("zine config: content directory is required")

// ErrOutputDirRequired indicates the build has no output root configured.
var ErrOutputDirRequired = errors.New("zine config: output directory is required")

// ErrTemplatesDirRequired indicates the renderer has no templates directory configured.
var ErrTemplatesDirRequired = errors.New("zine config: templates directory is required")
var ErrLoggingLevelInvalid = errors.New("zine config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("zine config: logging format is invalid")
var ErrThemingRequiresEnabled = errors.New("zine config: theming options require theming to be enabled")

// Config aggregates the runtime options for a zine build. Fields
// intentionally use simple types so host applications can extend them later.
type Config struct {
	Build   BuildConfig
	Theming ThemingConfig
	Logging LoggingConfig
}

// BuildConfig locates the content sources and the output tree.
type BuildConfig struct {
	ContentDir   string
	OutputDir    string
	TemplatesDir string
	CleanBuild   bool
}

// ThemingConfig controls the optional theme manifest enrichment.
type ThemingConfig struct {
	Enabled           bool
	DefaultTheme      string
	DefaultVariant    string
	CSSVariablePrefix string
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the conventional zine runtime configuration.
func DefaultConfig() Config {
	return Config{
		Build: BuildConfig{
			ContentDir:   ".",
			OutputDir:    "build",
			TemplatesDir: "templates",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate reports the first configuration inconsistency found.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Build.ContentDir) == "" {
		return ErrContentDirRequired
	}
	if strings.TrimSpace(c.Build.OutputDir) == "" {
		return ErrOutputDirRequired
	}
	if strings.TrimSpace(c.Build.TemplatesDir) == "" {
		return ErrTemplatesDirRequired
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}

	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}

	if !c.Theming.Enabled {
		if strings.TrimSpace(c.Theming.DefaultTheme) != "" ||
			strings.TrimSpace(c.Theming.DefaultVariant) != "" ||
			strings.TrimSpace(c.Theming.CSSVariablePrefix) != "" {
			return ErrThemingRequiresEnabled
		}
	}

	return nil
}
