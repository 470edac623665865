package interfaces

import "io"

// TemplateRenderer turns a named template plus a data mapping into markup.
// When out writers are supplied the rendered output is also copied to each
// of them; the rendered string is always returned.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
