// Package zine exposes the static publication build API for go-zine hosts.
// Use NewService with Config and Dependencies to build a publication from a
// content root, or work with the entity tree directly via NewPublication.
package zine

import (
	"github.com/goliatone/go-zine/internal/builder"
	core "github.com/goliatone/go-zine/internal/zine"
	"github.com/goliatone/go-zine/pkg/interfaces"
)

type (
	Service      = builder.Service
	Dependencies = builder.Dependencies
	BuildOptions = builder.BuildOptions
	BuildResult  = builder.BuildResult
	ThemeContext = builder.ThemeContext

	Entity      = core.Entity
	Context     = core.Context
	Layout      = core.Layout
	Publication = core.Zine
	Theme       = core.Theme
	TemplateRef = core.TemplateRef
	Season      = core.Season
	Article     = core.Article
	Page        = core.Page
	Sink        = core.Sink
)

var (
	ErrParserRequired     = core.ErrParserRequired
	ErrSinkRequired       = core.ErrSinkRequired
	ErrContentDirRequired = builder.ErrContentDirRequired
	ErrOutputDirRequired  = builder.ErrOutputDirRequired
)

// NewService wires a build service from the runtime configuration and the
// supplied collaborators. The configuration is validated before use.
func NewService(cfg Config, deps Dependencies) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return builder.NewService(builder.Config{
		ContentDir: cfg.Build.ContentDir,
		OutputDir:  cfg.Build.OutputDir,
		CleanBuild: cfg.Build.CleanBuild,
		Theming: builder.ThemingConfig{
			Enabled:           cfg.Theming.Enabled,
			DefaultTheme:      cfg.Theming.DefaultTheme,
			DefaultVariant:    cfg.Theming.DefaultVariant,
			CSSVariablePrefix: cfg.Theming.CSSVariablePrefix,
		},
	}, deps), nil
}

// NewPublication assembles a publication tree directly, bypassing the build
// service. Hosts driving their own orchestration use this entry point.
func NewPublication(site map[string]any, theme Theme, seasons []*Season, parser interfaces.MarkdownParser, sink Sink, opts ...core.Option) (*Publication, error) {
	return core.New(site, theme, seasons, parser, sink, opts...)
}

// NewContext returns an empty render context.
func NewContext() Context {
	return core.NewContext()
}

// DefaultLayout returns the conventional zine content layout.
func DefaultLayout() Layout {
	return core.DefaultLayout()
}

// WithLayout overrides the publication layout during construction.
func WithLayout(layout Layout) core.Option {
	return core.WithLayout(layout)
}
