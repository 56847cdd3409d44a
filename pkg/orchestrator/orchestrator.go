package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	internalLoader "github.com/goliatone/go-surveyviz/internal/pspp/loader"
	internalParser "github.com/goliatone/go-surveyviz/internal/pspp/parser"
	"github.com/goliatone/go-surveyviz/pkg/model"
	pkgpspp "github.com/goliatone/go-surveyviz/pkg/pspp"
	"github.com/goliatone/go-surveyviz/pkg/render"
	"github.com/goliatone/go-surveyviz/pkg/renderers/bars"
	"github.com/goliatone/go-surveyviz/pkg/settings"
)

const defaultRendererName = "bars"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom export loader.
func WithLoader(loader pkgpspp.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom export parser.
func WithParser(parser pkgpspp.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithParserOptions configures the built-in parser. Ignored when a custom
// parser is injected.
func WithParserOptions(options pkgpspp.ParserOptions) Option {
	return func(o *Orchestrator) {
		o.parserOptions = options
	}
}

// WithAggregator injects a custom frequency aggregator.
func WithAggregator(aggregator model.Aggregator) Option {
	return func(o *Orchestrator) {
		o.aggregator = aggregator
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithSettings applies per-study settings: exclusions, weights, segments.
func WithSettings(s settings.Settings) Option {
	return func(o *Orchestrator) {
		o.settings = s
	}
}

// WithThemeSelector registers a go-theme selector so theme/variant choices
// can be resolved ahead of rendering.
func WithThemeSelector(selector ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// Orchestrator coordinates the full pipeline from PSPP export files to
// rendered output. It applies sensible defaults (bars renderer, built-in
// loader and parser) while remaining open to dependency injection.
type Orchestrator struct {
	loader          pkgpspp.Loader
	parser          pkgpspp.Parser
	parserOptions   pkgpspp.ParserOptions
	aggregator      model.Aggregator
	registry        *render.Registry
	defaultRenderer string
	settings        settings.Settings
	themeSelector   ThemeSelector
	themeFallback   *theme.Manifest
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes the inputs required to render a survey report.
type Request struct {
	// Bundle identifies where the three export files live. Optional when
	// Documents is supplied.
	Bundle pkgpspp.Bundle

	// Documents allows callers to bypass the loader when they already hold
	// the raw payloads.
	Documents *pkgpspp.Documents

	// Segment names a settings-defined subset filter to apply before
	// aggregation. Empty renders the whole survey.
	Segment string

	// Renderer names the renderer to use. If empty, the orchestrator falls
	// back to the configured default renderer.
	Renderer string

	// Title overrides the document title.
	Title string

	// ThemeName and ThemeVariant select a theme when a selector is
	// configured.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request instructions such as a warning sink
	// that renderers can surface degraded visualizations through.
	RenderOptions render.RenderOptions
}

// Generate executes the loader → parser → aggregator → renderer sequence
// and returns the rendered bytes (HTML for the default bars renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return nil, err
		}
	}

	docs, err := o.resolveDocuments(ctx, req)
	if err != nil {
		return nil, err
	}

	dataset, err := o.parser.Dataset(ctx, docs)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse dataset: %w", err)
	}

	dataset, err = o.applySettings(dataset, req.Segment)
	if err != nil {
		return nil, err
	}

	tables, err := o.aggregator.Aggregate(dataset)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: aggregate frequencies: %w", err)
	}

	report := model.Report{
		Title:       req.Title,
		Segment:     req.Segment,
		Respondents: dataset.Len(),
		Tables:      tables,
	}

	options := req.RenderOptions
	if options.Title == "" {
		options.Title = req.Title
	}
	if options.Theme == nil {
		cfg, err := o.resolveTheme(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, err
		}
		options.Theme = cfg
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, report, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}

	return output, nil
}

func (o *Orchestrator) resolveDocuments(ctx context.Context, req Request) (pkgpspp.Documents, error) {
	if req.Documents != nil {
		return *req.Documents, nil
	}
	if err := req.Bundle.Validate(); err != nil {
		return pkgpspp.Documents{}, fmt.Errorf("orchestrator: %w", err)
	}
	docs, err := o.loader.Load(ctx, req.Bundle)
	if err != nil {
		return pkgpspp.Documents{}, fmt.Errorf("orchestrator: load documents: %w", err)
	}
	return docs, nil
}

// applySettings drops excluded respondents, applies weights, and slices the
// requested segment. Settings are optional; the zero value is a no-op apart
// from segment lookups, which fail for unknown names.
func (o *Orchestrator) applySettings(dataset model.Dataset, segment string) (model.Dataset, error) {
	if exclusions := o.settings.Exclusions(); len(exclusions) > 0 {
		if err := dataset.DropRows(exclusions); err != nil {
			return model.Dataset{}, fmt.Errorf("orchestrator: apply exclusions: %w", err)
		}
	}

	filter, err := o.settings.Segment(segment)
	if err != nil {
		return model.Dataset{}, fmt.Errorf("orchestrator: %w", err)
	}
	if len(filter) > 0 {
		dataset, err = dataset.Subset(filter)
		if err != nil {
			return model.Dataset{}, fmt.Errorf("orchestrator: apply segment: %w", err)
		}
	}

	if len(o.settings.Weights) > 0 {
		if err := dataset.SetWeights(o.settings.Weights); err != nil {
			return model.Dataset{}, fmt.Errorf("orchestrator: apply weights: %w", err)
		}
	}

	return dataset, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(pkgpspp.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(o.parserOptions)
	}
	if o.aggregator == nil {
		o.aggregator = model.NewAggregator()
	}
	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := bars.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
