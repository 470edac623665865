package buildcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-zine/internal/builder"
)

const buildSiteMessageType = "zine.site.build"

// ResultCallback receives build results produced by builder operations. The
// callback is optional and is invoked synchronously from the handler when a
// BuildResult is available.
type ResultCallback func(ResultEnvelope)

// ResultEnvelope captures the outcome of a build command execution.
type ResultEnvelope struct {
	Result   *builder.BuildResult
	Metadata map[string]any
}

// BuildSiteCommand executes a full publication build.
type BuildSiteCommand struct {
	// ContentDir overrides the configured content root when non-empty.
	ContentDir string `json:"content_dir,omitempty"`
	// OutputDir overrides the configured output root when non-empty.
	OutputDir string `json:"output_dir,omitempty"`
	// DryRun parses the content tree without writing any output.
	DryRun bool `json:"dry_run,omitempty"`

	ResultCallback ResultCallback `json:"-"`
}

// Type implements command.Message.
func (BuildSiteCommand) Type() string { return buildSiteMessageType }

// Validate ensures directory overrides, when supplied, are well-formed.
func (m BuildSiteCommand) Validate() error {
	errs := validation.Errors{}
	if m.ContentDir != "" && strings.TrimSpace(m.ContentDir) == "" {
		errs["content_dir"] = validation.NewError("zine.site.build.content_dir_invalid", "content_dir must not be blank")
	}
	if m.OutputDir != "" && strings.TrimSpace(m.OutputDir) == "" {
		errs["output_dir"] = validation.NewError("zine.site.build.output_dir_invalid", "output_dir must not be blank")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
