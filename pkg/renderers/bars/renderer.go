package bars

import (
	"context"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/goliatone/go-surveyviz/pkg/model"
	"github.com/goliatone/go-surveyviz/pkg/render"
	rendertemplate "github.com/goliatone/go-surveyviz/pkg/render/template"
	gotemplate "github.com/goliatone/go-surveyviz/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// Renderer emits one self-contained HTML document: a heading plus a labeled
// proportional bar block per variable, styled inline with no external
// assets.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	sanitizer *labelSanitizer
}

// New constructs the bars renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("bars renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates: renderer,
		sanitizer: newLabelSanitizer(),
	}, nil
}

func (r *Renderer) Name() string {
	return "bars"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render builds the template context from the report and executes the page
// template. Variables with zero non-missing responses render as an empty
// block and raise a render warning; they never fail the run.
func (r *Renderer) Render(ctx context.Context, report model.Report, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("bars renderer: template renderer is nil")
	}

	title := strings.TrimSpace(options.Title)
	if title == "" {
		title = report.Title
	}
	if title == "" {
		title = "Survey results"
	}

	// The page assembles from three templates the way the report decks
	// always have: answers roll up into a question block, blocks roll up
	// into the page.
	var questions strings.Builder
	for _, table := range report.Tables {
		if table.Empty() {
			options.Warnings.Add(table.Variable.Name, "no non-missing responses; rendering empty block")
		}
		block, err := r.renderQuestion(table, options)
		if err != nil {
			return nil, fmt.Errorf("bars renderer: render question %q: %w", table.Variable.Name, err)
		}
		questions.WriteString(block)
	}

	result, err := r.templates.RenderTemplate("templates/page.tmpl", map[string]any{
		"title":       r.sanitizer.clean(title),
		"segment":     r.sanitizer.clean(report.Segment),
		"respondents": report.Respondents,
		"questions":   questions.String(),
		"style":       r.styleContext(options),
	})
	if err != nil {
		return nil, fmt.Errorf("bars renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) renderQuestion(table model.FrequencyTable, options render.RenderOptions) (string, error) {
	var answers strings.Builder
	for i, row := range table.Rows {
		if row.Count == 0 {
			continue
		}
		rendered, err := r.templates.RenderTemplate("templates/answer.tmpl", map[string]any{
			"label":   r.sanitizer.clean(row.Label),
			"width":   formatPercent(row.Percent),
			"percent": formatPercent(row.Percent),
			"count":   formatCount(row.Count),
			"color":   colorFor(i, options.Theme),
		})
		if err != nil {
			return "", err
		}
		answers.WriteString(rendered)
	}

	heading := table.Variable.Name
	if q := strings.TrimSpace(table.Variable.Question); q != "" {
		heading += ". " + q
	}

	return r.templates.RenderTemplate("templates/question.tmpl", map[string]any{
		"title":   r.sanitizer.clean(heading),
		"answers": answers.String(),
		"empty":   table.Empty(),
	})
}

func (r *Renderer) styleContext(options render.RenderOptions) map[string]any {
	return map[string]any{
		"background": pageToken("page.background", "#ffffff", options.Theme),
		"text":       pageToken("page.text", "#24292f", options.Theme),
		"track":      pageToken("bar.track", "#f0f2f5", options.Theme),
	}
}

// formatPercent renders a share to one decimal; 99.9 displays as 100 so a
// fully answered single-choice question does not look short due to rounding.
func formatPercent(value float64) string {
	formatted := strconv.FormatFloat(value, 'f', 1, 64) + "%"
	if formatted == "99.9%" {
		formatted = "100%"
	}
	return formatted
}

// formatCount rounds weighted counts to whole respondents for display.
func formatCount(value float64) string {
	return strconv.Itoa(int(math.Round(value)))
}
