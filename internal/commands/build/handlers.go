package buildcmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-zine/internal/builder"
	"github.com/goliatone/go-zine/internal/commands"
	"github.com/goliatone/go-zine/internal/logging"
	"github.com/goliatone/go-zine/pkg/interfaces"
)

const buildOperation = "site.build"

// ErrBuilderRequired is returned when no builder service is configured.
var ErrBuilderRequired = errors.New("build command: builder service required")

var _ command.Commander[BuildSiteCommand] = (*BuildSiteHandler)(nil)

// BuildSiteHandler orchestrates publication builds via the shared command
// handler foundation.
type BuildSiteHandler struct {
	inner *commands.Handler[BuildSiteCommand]
}

// NewBuildSiteHandler creates a handler bound to the supplied builder service.
func NewBuildSiteHandler(service builder.Service, logger interfaces.Logger, opts ...commands.HandlerOption[BuildSiteCommand]) *BuildSiteHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg BuildSiteCommand) error {
		if service == nil {
			return ErrBuilderRequired
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := service.Build(ctx, builder.BuildOptions{
			ContentDir: msg.ContentDir,
			OutputDir:  msg.OutputDir,
			DryRun:     msg.DryRun,
		})
		if err != nil {
			return err
		}

		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"build_id": result.ID.String(),
				"seasons":  result.Seasons,
				"articles": result.Articles,
				"pages":    result.Pages,
				"dry_run":  result.DryRun,
			}).Info("zine.command.site_build.completed")

			if msg.ResultCallback != nil {
				msg.ResultCallback(ResultEnvelope{
					Result: result,
					Metadata: map[string]any{
						"dry_run": msg.DryRun,
					},
				})
			}
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[BuildSiteCommand]{
		commands.WithLogger[BuildSiteCommand](baseLogger),
		commands.WithOperation[BuildSiteCommand](buildOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildSiteHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute implements command.Commander.
func (h *BuildSiteHandler) Execute(ctx context.Context, msg BuildSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}
