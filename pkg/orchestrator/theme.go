package orchestrator

import (
	"fmt"
	"path"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-surveyviz/pkg/renderers/bars"
)

// ThemeSelector aliases the go-theme selector contract so callers configure
// the orchestrator without importing go-theme directly.
type ThemeSelector = theme.ThemeSelector

// WithThemeFallback replaces the built-in manifest used when no selector is
// configured or a selection comes back empty.
func WithThemeFallback(manifest *theme.Manifest) Option {
	return func(o *Orchestrator) {
		o.themeFallback = manifest
	}
}

func (o *Orchestrator) fallbackManifest() *theme.Manifest {
	if o.themeFallback != nil {
		return o.themeFallback
	}
	return bars.DefaultManifest()
}

// resolveTheme turns a theme/variant choice into the RendererConfig the
// renderers consume. Without a selector the fallback manifest is used, so
// the default palette always resolves.
func (o *Orchestrator) resolveTheme(name, variant string) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		manifest := o.fallbackManifest()
		if name != "" && name != manifest.Name {
			return nil, fmt.Errorf("orchestrator: theme %q requested but no theme selector configured", name)
		}
		if variant != "" {
			if _, ok := manifest.Variants[variant]; !ok {
				return nil, fmt.Errorf("orchestrator: theme %q has no variant %q", manifest.Name, variant)
			}
		}
		return rendererConfigFromManifest(manifest, variant)
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme: %w", err)
	}
	if selection == nil || selection.Manifest == nil {
		return rendererConfigFromManifest(o.fallbackManifest(), variant)
	}

	cfg, err := rendererConfigFromManifest(selection.Manifest, selection.Variant)
	if err != nil {
		return nil, err
	}
	cfg.Theme = selection.Theme
	return cfg, nil
}

// rendererConfigFromManifest merges base and variant tokens into a resolved
// config. The selector owns variant validation, so an unknown variant simply
// skips the merge. CSS custom property names derive from token names with
// dots folded to dashes.
func rendererConfigFromManifest(manifest *theme.Manifest, variant string) (*theme.RendererConfig, error) {
	if manifest == nil {
		return nil, fmt.Errorf("orchestrator: theme manifest is nil")
	}

	tokens := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}
	if variant != "" {
		if v, ok := manifest.Variants[variant]; ok {
			for key, value := range v.Tokens {
				tokens[key] = value
			}
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+strings.ReplaceAll(key, ".", "-")] = value
	}

	cfg := &theme.RendererConfig{
		Theme:   manifest.Name,
		Variant: variant,
		Tokens:  tokens,
		CSSVars: cssVars,
	}

	prefix := manifest.Assets.Prefix
	files := manifest.Assets.Files
	cfg.AssetURL = func(key string) string {
		if files == nil {
			return ""
		}
		file, ok := files[key]
		if !ok {
			return ""
		}
		return path.Join(prefix, file)
	}

	return cfg, nil
}
