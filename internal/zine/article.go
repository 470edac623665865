package zine

import (
	"fmt"
	"os"
	"path/filepath"
)

// Article is a single markdown document owned by a season. Its File path is
// relative to the owning season's directory.
type Article struct {
	File   string `toml:"file"`
	Title  string `toml:"title"`
	Author string `toml:"author"`
	// Date is the declared publication date, kept verbatim as authored.
	Date string `toml:"date"`

	// HTML is empty until Parse converts the source document.
	HTML string `toml:"-"`

	env *env
}

// Parse reads the article's source file relative to the season directory
// and converts it to HTML.
func (a *Article) Parse(source string) error {
	if a.env == nil || a.env.parser == nil {
		return ErrParserRequired
	}

	data, err := os.ReadFile(filepath.Join(source, filepath.FromSlash(a.File)))
	if err != nil {
		return fmt.Errorf("zine: article %s: %w", a.File, err)
	}

	html, err := a.env.parser.Parse(data)
	if err != nil {
		return fmt.Errorf("zine: article %s: %w", a.File, err)
	}

	a.HTML = string(html)
	return nil
}

// Render binds the article into a cloned context and emits it at the given
// destination. Articles introduce no path segment of their own.
func (a *Article) Render(ctx Context, dest string) error {
	if a.env == nil || a.env.sink == nil {
		return ErrSinkRequired
	}

	ctx = ctx.Clone()
	ctx.Set("article", a)
	return a.env.sink.Render(a.env.layout.ArticleTemplate, ctx, dest)
}
