package zine

import "path/filepath"

// Page is a free-form document discovered by walking the pages directory.
// Pages are populated wholesale by the root aggregator's walk, not by a
// per-page Parse: a page's identity is only knowable in the context of the
// walk that found it.
type Page struct {
	noopEntity

	// HTML is the converted body of the source file.
	HTML string
	// FilePath is the source path relative to the pages root,
	// slash-separated, preserved verbatim as identity material.
	FilePath string
	// Meta holds the page's optional frontmatter block.
	Meta map[string]any

	env *env
}

// Slug derives the page's URL-safe output path from FilePath.
func (p *Page) Slug() (string, error) {
	return pageSlug(p.FilePath)
}

// Render binds the page's HTML as content into a cloned context and emits
// it under the destination joined with the page's slug.
func (p *Page) Render(ctx Context, dest string) error {
	if p.env == nil || p.env.sink == nil {
		return ErrSinkRequired
	}

	slug, err := p.Slug()
	if err != nil {
		return err
	}

	ctx = ctx.Clone()
	ctx.Set("content", p.HTML)
	if len(p.Meta) > 0 {
		ctx.Set("meta", p.Meta)
	}
	return p.env.sink.Render(p.env.layout.PageTemplate, ctx, filepath.Join(dest, filepath.FromSlash(slug)))
}
