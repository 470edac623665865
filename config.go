package zine

import "github.com/goliatone/go-zine/internal/runtimeconfig"

var (
	ErrRuntimeContentDirRequired   = runtimeconfig.ErrContentDirRequired
	ErrRuntimeOutputDirRequired    = runtimeconfig.ErrOutputDirRequired
	ErrRuntimeTemplatesDirRequired = runtimeconfig.ErrTemplatesDirRequired
	ErrLoggingLevelInvalid         = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid        = runtimeconfig.ErrLoggingFormatInvalid
	ErrThemingRequiresEnabled      = runtimeconfig.ErrThemingRequiresEnabled
)

type (
	Config        = runtimeconfig.Config
	BuildConfig   = runtimeconfig.BuildConfig
	ThemingConfig = runtimeconfig.ThemingConfig
	LoggingConfig = runtimeconfig.LoggingConfig
)

// DefaultConfig returns the conventional zine runtime configuration.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
