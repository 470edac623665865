package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-zine/internal/logging"
	"github.com/goliatone/go-zine/internal/zine"
	"github.com/goliatone/go-zine/pkg/interfaces"
)

// ErrRendererRequired indicates a sink was constructed without a template renderer.
var ErrRendererRequired = errors.New("render: template renderer required")

const defaultOutputFile = "index.html"

// FileSink satisfies zine.Sink by rendering the named template and writing
// the output as an index document beneath the destination directory.
type FileSink struct {
	renderer   interfaces.TemplateRenderer
	logger     interfaces.Logger
	outputFile string
}

var _ zine.Sink = (*FileSink)(nil)

// SinkOption adjusts FileSink construction.
type SinkOption func(*FileSink)

// WithLogger attaches a logger to the sink.
func WithLogger(logger interfaces.Logger) SinkOption {
	return func(s *FileSink) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithOutputFile overrides the per-directory output filename.
func WithOutputFile(name string) SinkOption {
	return func(s *FileSink) {
		if name != "" {
			s.outputFile = name
		}
	}
}

// NewFileSink constructs a sink that writes rendered pages to disk.
func NewFileSink(renderer interfaces.TemplateRenderer, opts ...SinkOption) (*FileSink, error) {
	if renderer == nil {
		return nil, ErrRendererRequired
	}
	s := &FileSink{
		renderer:   renderer,
		logger:     logging.NoOp(),
		outputFile: defaultOutputFile,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Render renders the named template with the context and writes the result
// to <dest>/<output file>, creating directories as needed.
func (s *FileSink) Render(name string, ctx zine.Context, dest string) error {
	html, err := s.renderer.Render(name, map[string]any(ctx))
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return fmt.Errorf("render: ensure %s: %w", dest, err)
	}

	target := filepath.Join(dest, s.outputFile)
	if err := os.WriteFile(target, []byte(html), 0o644); err != nil {
		return fmt.Errorf("render: write %s: %w", target, err)
	}

	s.logger.Debug("render.sink.write", "template", name, "path", target)
	return nil
}
