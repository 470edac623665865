package zine

import (
	"fmt"
	"os"
	"path/filepath"
)

// Theme holds the publication's presentation configuration. It contributes
// no output of its own; the root aggregator folds it into the base render
// context.
type Theme struct {
	noopEntity

	PrimaryColor   string `toml:"primary_color"`
	SecondaryColor string `toml:"secondary_color"`
	LinkColor      string `toml:"link_color"`

	// FooterTemplate optionally references a markup fragment under the
	// content root that parse resolves into inline content.
	FooterTemplate TemplateRef `toml:"footer_template"`
}

// Parse resolves the footer template reference against the content root.
// A theme without a footer template parses as a no-op.
func (t *Theme) Parse(source string) error {
	return t.FooterTemplate.Resolve(source)
}

// TemplateRef is a template fragment reference that starts life as a path
// relative to the content root and becomes inline markup once resolved.
// The two states are kept distinct so the parse-phase transition is
// explicit rather than an in-place change of meaning.
type TemplateRef struct {
	path     string
	content  string
	resolved bool
}

// NewTemplateRef returns an unresolved reference to the given path.
func NewTemplateRef(path string) TemplateRef {
	return TemplateRef{path: path}
}

// UnmarshalText lets metadata files declare the reference as a plain string.
func (r *TemplateRef) UnmarshalText(text []byte) error {
	r.path = string(text)
	r.content = ""
	r.resolved = false
	return nil
}

// IsZero reports whether the reference names nothing.
func (r TemplateRef) IsZero() bool {
	return r.path == "" && !r.resolved
}

// Path returns the declared source path.
func (r TemplateRef) Path() string { return r.path }

// Resolved reports whether Resolve has run.
func (r TemplateRef) Resolved() bool { return r.resolved }

// Content returns the resolved markup. Empty until Resolve succeeds.
func (r TemplateRef) Content() string { return r.content }

// Resolve reads the referenced file relative to root and stores its raw
// text. No conversion is applied; the fragment is treated as opaque markup.
func (r *TemplateRef) Resolve(root string) error {
	if r.path == "" {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(r.path)))
	if err != nil {
		return fmt.Errorf("zine: resolve template %s: %w", r.path, err)
	}
	r.content = string(data)
	r.resolved = true
	return nil
}
