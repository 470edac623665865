// Package bootstrap assembles the collaborators the zine CLI drives:
// logging provider, markdown parser, template renderer, render sink, and
// the build service.
package bootstrap

import (
	"fmt"
	"strings"

	zine "github.com/goliatone/go-zine"
	"github.com/goliatone/go-zine/internal/commands"
	"github.com/goliatone/go-zine/internal/logging"
	"github.com/goliatone/go-zine/internal/logging/gologger"
	"github.com/goliatone/go-zine/internal/markdown"
	"github.com/goliatone/go-zine/internal/render"
	"github.com/goliatone/go-zine/pkg/interfaces"
)

// Options capture the CLI flags that shape module construction.
type Options struct {
	ContentDir     string
	OutputDir      string
	TemplatesDir   string
	CleanBuild     bool
	ThemingEnabled bool
	LogLevel       string
	LogFormat      string
	LogAddSource   bool
}

// Module bundles the constructed services for the CLI.
type Module struct {
	Service  zine.Service
	Logger   interfaces.Logger
	Provider interfaces.LoggerProvider
}

// BuildModule wires a complete build module from the supplied options.
func BuildModule(opts Options) (*Module, error) {
	cfg := zine.DefaultConfig()
	if strings.TrimSpace(opts.ContentDir) != "" {
		cfg.Build.ContentDir = opts.ContentDir
	}
	if strings.TrimSpace(opts.OutputDir) != "" {
		cfg.Build.OutputDir = opts.OutputDir
	}
	if strings.TrimSpace(opts.TemplatesDir) != "" {
		cfg.Build.TemplatesDir = opts.TemplatesDir
	}
	cfg.Build.CleanBuild = opts.CleanBuild
	cfg.Theming.Enabled = opts.ThemingEnabled
	if strings.TrimSpace(opts.LogLevel) != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	if strings.TrimSpace(opts.LogFormat) != "" {
		cfg.Logging.Format = opts.LogFormat
	}
	cfg.Logging.AddSource = opts.LogAddSource

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
		Focus:     cfg.Logging.Focus,
	})
	if err != nil {
		return nil, fmt.Errorf("bootstrap logging: %w", err)
	}

	renderer, err := render.NewPongo2Renderer(cfg.Build.TemplatesDir)
	if err != nil {
		return nil, err
	}

	sink, err := render.NewFileSink(renderer, render.WithLogger(logging.RenderLogger(provider)))
	if err != nil {
		return nil, err
	}

	parser := markdown.NewGoldmarkParser(interfaces.ParseOptions{})

	service, err := zine.NewService(cfg, zine.Dependencies{
		Parser: parser,
		Sink:   sink,
		Logger: logging.BuilderLogger(provider),
	})
	if err != nil {
		return nil, err
	}

	return &Module{
		Service:  service,
		Logger:   commands.CommandLogger(provider, "build"),
		Provider: provider,
	}, nil
}
