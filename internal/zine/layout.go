package zine

import "strings"

// Layout names the fixed files, directories, and template identifiers a
// publication is built against. Values are injected at construction so the
// core stays testable with synthetic trees.
type Layout struct {
	// MetadataFile is the per-season metadata filename.
	MetadataFile string
	// PagesDir is the free-form pages subdirectory under the content root.
	PagesDir string
	// PageOutputDir is the output subdirectory free-form pages render into.
	PageOutputDir string

	IndexTemplate   string
	SeasonTemplate  string
	ArticleTemplate string
	PageTemplate    string
}

// DefaultLayout returns the conventional zine layout.
func DefaultLayout() Layout {
	return Layout{
		MetadataFile:    "zine.toml",
		PagesDir:        "pages",
		PageOutputDir:   "page",
		IndexTemplate:   "index.jinja",
		SeasonTemplate:  "season.jinja",
		ArticleTemplate: "article.jinja",
		PageTemplate:    "page.jinja",
	}
}

// Normalize fills omitted fields from the default layout.
func (l Layout) Normalize() Layout {
	def := DefaultLayout()
	if strings.TrimSpace(l.MetadataFile) == "" {
		l.MetadataFile = def.MetadataFile
	}
	if strings.TrimSpace(l.PagesDir) == "" {
		l.PagesDir = def.PagesDir
	}
	if strings.TrimSpace(l.PageOutputDir) == "" {
		l.PageOutputDir = def.PageOutputDir
	}
	if strings.TrimSpace(l.IndexTemplate) == "" {
		l.IndexTemplate = def.IndexTemplate
	}
	if strings.TrimSpace(l.SeasonTemplate) == "" {
		l.SeasonTemplate = def.SeasonTemplate
	}
	if strings.TrimSpace(l.ArticleTemplate) == "" {
		l.ArticleTemplate = def.ArticleTemplate
	}
	if strings.TrimSpace(l.PageTemplate) == "" {
		l.PageTemplate = def.PageTemplate
	}
	return l
}
