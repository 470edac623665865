package zine

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/goliatone/go-zine/internal/markdown"
	"github.com/goliatone/go-zine/pkg/interfaces"
)

// Zine is the publication root: it owns the theme, the sorted season list,
// and the free-form pages discovered under the pages directory.
type Zine struct {
	Theme   Theme
	Site    map[string]any
	Seasons Collection[*Season]
	Pages   Collection[*Page]

	env *env
}

// Option adjusts publication construction.
type Option func(*Zine)

// WithLayout overrides the fixed filenames and template identifiers the
// publication is built against. Zero fields fall back to the defaults.
func WithLayout(layout Layout) Option {
	return func(z *Zine) {
		z.env.layout = layout.Normalize()
	}
}

// New assembles a publication from its declared site metadata, theme, and
// seasons, wiring the markdown parser and render sink through the tree.
func New(site map[string]any, theme Theme, seasons []*Season, parser interfaces.MarkdownParser, sink Sink, opts ...Option) (*Zine, error) {
	if parser == nil {
		return nil, ErrParserRequired
	}
	if sink == nil {
		return nil, ErrSinkRequired
	}

	z := &Zine{
		Theme:   theme,
		Site:    site,
		Seasons: seasons,
		env: &env{
			parser: parser,
			sink:   sink,
			layout: DefaultLayout(),
		},
	}

	for _, opt := range opts {
		opt(z)
	}

	for _, season := range z.Seasons {
		season.env = z.env
	}

	return z, nil
}

// Parse walks the content root into memory: theme first, then every season
// (fan-out, fail-fast), then a stable sort of seasons ascending by number,
// and finally the recursive pages walk. Seasons with equal numbers keep
// their declaration order.
func (z *Zine) Parse(source string) error {
	if err := z.Theme.Parse(source); err != nil {
		return err
	}

	if err := z.Seasons.Parse(source); err != nil {
		return err
	}
	sort.SliceStable(z.Seasons, func(i, j int) bool {
		return z.Seasons[i].Number < z.Seasons[j].Number
	})

	return z.parsePages(source)
}

// parsePages discovers every regular file under the pages directory,
// converts it as Markdown, and appends a Page per file in walk order.
// filepath.WalkDir visits entries in lexical order, so discovery order is
// deterministic. A content root without a pages directory is valid.
func (z *Zine) parsePages(source string) error {
	pagesDir := filepath.Join(source, z.env.layout.PagesDir)
	if _, err := os.Stat(pagesDir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("zine: pages directory: %w", err)
	}

	return filepath.WalkDir(pagesDir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.Type().IsRegular() {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("zine: page %s: %w", path, err)
		}

		meta, body, err := markdown.SplitFrontMatter(data)
		if err != nil {
			return fmt.Errorf("zine: page %s: %w", path, err)
		}

		html, err := z.env.parser.Parse(body)
		if err != nil {
			return fmt.Errorf("zine: page %s: %w", path, err)
		}

		rel, err := filepath.Rel(pagesDir, path)
		if err != nil {
			return fmt.Errorf("zine: page %s: %w", path, err)
		}

		z.Pages = append(z.Pages, &Page{
			HTML:     string(html),
			FilePath: filepath.ToSlash(rel),
			Meta:     meta,
			env:      z.env,
		})
		return nil
	})
}

// Render emits the publication: seasons and pages first, each on a cloned
// branch of the base context, then the home page with the fully sorted
// season list bound. The home page is rendered last because it needs the
// complete season data its siblings were built from.
func (z *Zine) Render(ctx Context, dest string) error {
	if z.env == nil || z.env.sink == nil {
		return ErrSinkRequired
	}

	ctx = ctx.Clone()
	ctx.Set("theme", &z.Theme)
	ctx.Set("site", z.Site)

	if err := z.Seasons.Render(ctx.Clone(), dest); err != nil {
		return err
	}

	if err := z.Pages.Render(ctx.Clone(), filepath.Join(dest, z.env.layout.PageOutputDir)); err != nil {
		return err
	}

	ctx.Set("seasons", z.Seasons)
	return z.env.sink.Render(z.env.layout.IndexTemplate, ctx, dest)
}
