package render

import (
	"fmt"
	"io"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-zine/pkg/interfaces"
)

// Pongo2Renderer implements interfaces.TemplateRenderer on top of a pongo2
// template set rooted at a templates directory. The set caches compiled
// templates, so one renderer instance serves an entire build.
type Pongo2Renderer struct {
	set *pongo2.TemplateSet
}

var _ interfaces.TemplateRenderer = (*Pongo2Renderer)(nil)

// NewPongo2Renderer constructs a renderer whose template names resolve
// relative to templatesDir.
func NewPongo2Renderer(templatesDir string) (*Pongo2Renderer, error) {
	loader, err := pongo2.NewLocalFileSystemLoader(templatesDir)
	if err != nil {
		return nil, fmt.Errorf("render: template loader %s: %w", templatesDir, err)
	}
	return &Pongo2Renderer{set: pongo2.NewSet("zine", loader)}, nil
}

// Render executes the named template with the supplied data mapping.
func (r *Pongo2Renderer) Render(name string, data any, out ...io.Writer) (string, error) {
	tpl, err := r.set.FromCache(name)
	if err != nil {
		return "", fmt.Errorf("render: template %s: %w", name, err)
	}
	return execute(tpl, data, out...)
}

// RenderString compiles and executes an inline template.
func (r *Pongo2Renderer) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	tpl, err := r.set.FromString(templateContent)
	if err != nil {
		return "", fmt.Errorf("render: inline template: %w", err)
	}
	return execute(tpl, data, out...)
}

func execute(tpl *pongo2.Template, data any, out ...io.Writer) (string, error) {
	ctx, err := toPongoContext(data)
	if err != nil {
		return "", err
	}

	html, err := tpl.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("render: execute template: %w", err)
	}

	for _, w := range out {
		if _, err := io.WriteString(w, html); err != nil {
			return "", fmt.Errorf("render: copy output: %w", err)
		}
	}
	return html, nil
}

func toPongoContext(data any) (pongo2.Context, error) {
	switch v := data.(type) {
	case nil:
		return pongo2.Context{}, nil
	case pongo2.Context:
		return v, nil
	case map[string]any:
		return pongo2.Context(v), nil
	default:
		return nil, fmt.Errorf("render: unsupported context type %T", data)
	}
}
