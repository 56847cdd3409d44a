package surveyviz

import (
	"context"

	"github.com/goliatone/go-surveyviz/pkg/orchestrator"
	pkgpspp "github.com/goliatone/go-surveyviz/pkg/pspp"
	"github.com/goliatone/go-surveyviz/pkg/render"
	"github.com/goliatone/go-surveyviz/pkg/settings"
)

// Bundle identifies the three PSPP export files for one survey; alias
// exported via the root package for convenience.
type Bundle = pkgpspp.Bundle

// Settings carries the optional per-study configuration.
type Settings = settings.Settings

// RenderOptions describes per-request overrides renderers can use.
type RenderOptions = render.RenderOptions

// Request describes one report generation run.
type Request = orchestrator.Request

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateHTML loads the export bundle, aggregates response frequencies,
// and renders them using the named renderer. It is the simplest entry point
// for callers that just want HTML output.
func GenerateHTML(ctx context.Context, bundle Bundle, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Bundle:   bundle,
		Renderer: rendererName,
	})
}

// GenerateHTMLFromDocuments renders a report using pre-loaded payloads,
// bypassing the loader stage while still delegating to the orchestrator.
func GenerateHTMLFromDocuments(ctx context.Context, docs pkgpspp.Documents, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Documents: &docs,
		Renderer:  rendererName,
	})
}

// WithSettings registers per-study settings that can be passed to
// GenerateHTML alongside other orchestrator options.
func WithSettings(s Settings) orchestrator.Option {
	return orchestrator.WithSettings(s)
}

// WithThemeSelector passes a go-theme selector through to the orchestrator
// so theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector orchestrator.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}
