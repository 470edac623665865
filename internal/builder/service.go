package builder

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/goliatone/go-zine/internal/logging"
	"github.com/goliatone/go-zine/internal/zine"
	"github.com/goliatone/go-zine/pkg/interfaces"
)

var (
	// ErrContentDirRequired indicates no content root was supplied.
	ErrContentDirRequired = errors.New("builder: content directory is required")
	// ErrOutputDirRequired indicates no output root was supplied.
	ErrOutputDirRequired = errors.New("builder: output directory is required")
)

const (
	themeDir  = "theme"
	staticDir = "static"
)

// Config captures runtime behaviour for the builder.
type Config struct {
	ContentDir string
	OutputDir  string
	CleanBuild bool
	Layout     zine.Layout
	Theming    ThemingConfig
}

// ThemingConfig toggles the optional go-theme manifest enrichment.
type ThemingConfig struct {
	Enabled           bool
	DefaultTheme      string
	DefaultVariant    string
	CSSVariablePrefix string
}

// Dependencies lists the collaborators required by the builder.
type Dependencies struct {
	Parser interfaces.MarkdownParser
	Sink   zine.Sink
	Logger interfaces.Logger
}

// Service runs complete publication builds.
type Service interface {
	Build(ctx context.Context, opts BuildOptions) (*BuildResult, error)
}

// BuildOptions narrows or redirects a single build run.
type BuildOptions struct {
	// ContentDir overrides the configured content root when non-empty.
	ContentDir string
	// OutputDir overrides the configured output root when non-empty.
	OutputDir string
	// DryRun parses the content tree without rendering any output.
	DryRun bool
}

// BuildResult reports aggregated build metadata.
type BuildResult struct {
	ID       uuid.UUID
	Seasons  int
	Articles int
	Pages    int
	Duration time.Duration
	DryRun   bool
}

// NewService wires a builder with the supplied configuration and dependencies.
func NewService(cfg Config, deps Dependencies) Service {
	logger := deps.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &service{
		cfg:    cfg,
		deps:   deps,
		logger: logger,
		now:    time.Now,
	}
}

type service struct {
	cfg    Config
	deps   Dependencies
	logger interfaces.Logger
	now    func() time.Time
}

// rootFile mirrors the schema of the publication-level metadata file: site
// metadata (opaque to the core), theme configuration, and the declared
// seasons.
type rootFile struct {
	Site    map[string]any `toml:"site"`
	Theme   zine.Theme     `toml:"theme"`
	Seasons []*zine.Season `toml:"season"`
}

func (s *service) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	start := s.now()

	if s.deps.Parser == nil {
		return nil, zine.ErrParserRequired
	}
	if s.deps.Sink == nil {
		return nil, zine.ErrSinkRequired
	}

	contentDir := strings.TrimSpace(opts.ContentDir)
	if contentDir == "" {
		contentDir = strings.TrimSpace(s.cfg.ContentDir)
	}
	if contentDir == "" {
		return nil, ErrContentDirRequired
	}

	outputDir := strings.TrimSpace(opts.OutputDir)
	if outputDir == "" {
		outputDir = strings.TrimSpace(s.cfg.OutputDir)
	}
	if outputDir == "" && !opts.DryRun {
		return nil, ErrOutputDirRequired
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	layout := s.cfg.Layout.Normalize()

	root, err := s.loadRoot(contentDir, layout)
	if err != nil {
		return nil, err
	}

	publication, err := zine.New(root.Site, root.Theme, root.Seasons, s.deps.Parser, s.deps.Sink, zine.WithLayout(layout))
	if err != nil {
		return nil, err
	}

	if err := publication.Parse(contentDir); err != nil {
		return nil, err
	}

	result := &BuildResult{
		ID:      uuid.New(),
		Seasons: len(publication.Seasons),
		Pages:   len(publication.Pages),
		DryRun:  opts.DryRun,
	}
	for _, season := range publication.Seasons {
		result.Articles += len(season.Articles)
	}

	if opts.DryRun {
		result.Duration = s.now().Sub(start)
		s.logBuild(result, contentDir, outputDir)
		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if s.cfg.CleanBuild {
		if err := cleanOutput(outputDir); err != nil {
			return nil, err
		}
	}

	base := zine.NewContext()
	if s.cfg.Theming.Enabled {
		theming, err := themeContext(s.cfg.Theming, filepath.Join(contentDir, themeDir))
		if err != nil {
			return nil, err
		}
		base.Set("theming", theming)
	}

	if err := publication.Render(base, outputDir); err != nil {
		return nil, err
	}

	if err := copyStaticAssets(contentDir, outputDir); err != nil {
		return nil, err
	}

	result.Duration = s.now().Sub(start)
	s.logBuild(result, contentDir, outputDir)
	return result, nil
}

func (s *service) loadRoot(contentDir string, layout zine.Layout) (*rootFile, error) {
	path := filepath.Join(contentDir, layout.MetadataFile)

	var root rootFile
	if _, err := toml.DecodeFile(path, &root); err != nil {
		return nil, fmt.Errorf("builder: load %s: %w", path, err)
	}
	if root.Site == nil {
		root.Site = map[string]any{}
	}
	return &root, nil
}

func (s *service) logBuild(result *BuildResult, contentDir, outputDir string) {
	logging.WithFields(s.logger, map[string]any{
		"build_id": result.ID.String(),
		"seasons":  result.Seasons,
		"articles": result.Articles,
		"pages":    result.Pages,
		"dry_run":  result.DryRun,
		"content":  contentDir,
		"output":   outputDir,
	}).Info("builder.build.completed")
}

// cleanOutput removes a previous build tree. A missing output directory is
// not an error.
func cleanOutput(outputDir string) error {
	if err := os.RemoveAll(outputDir); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("builder: clean %s: %w", outputDir, err)
	}
	return nil
}
