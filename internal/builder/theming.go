package builder

import (
	"fmt"
	"os"
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

// ThemeContext surfaces go-theme selection data to templates through the
// base render context.
type ThemeContext struct {
	Name    string
	Variant string
	Tokens  map[string]string
	CSSVars map[string]string
}

// themeContext loads the theme manifest from the theme directory, registers
// it, and selects the configured theme/variant.
func themeContext(cfg ThemingConfig, themePath string) (*ThemeContext, error) {
	manifest, err := gotheme.LoadDir(os.DirFS(themePath), ".")
	if err != nil {
		return nil, fmt.Errorf("builder: load theme manifest from %s: %w", themePath, err)
	}

	normalized := *manifest
	if strings.TrimSpace(normalized.Name) == "" {
		normalized.Name = strings.TrimSpace(cfg.DefaultTheme)
	}
	if normalized.Name == "" {
		return nil, fmt.Errorf("builder: theme name required for manifest registration")
	}

	registry := gotheme.NewRegistry()
	if err := registry.Register(&normalized); err != nil {
		return nil, fmt.Errorf("builder: register theme manifest: %w", err)
	}

	selector := gotheme.Selector{
		Registry:       registry,
		DefaultTheme:   strings.TrimSpace(cfg.DefaultTheme),
		DefaultVariant: strings.TrimSpace(cfg.DefaultVariant),
	}

	selection, err := selector.Select(normalized.Name, strings.TrimSpace(cfg.DefaultVariant))
	if err != nil {
		return nil, fmt.Errorf("builder: select theme %s: %w", normalized.Name, err)
	}

	return &ThemeContext{
		Name:    selection.Theme,
		Variant: selection.Variant,
		Tokens:  selection.Tokens(),
		CSSVars: selection.CSSVariables(cfg.CSSVariablePrefix),
	}, nil
}
