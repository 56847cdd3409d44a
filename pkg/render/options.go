package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data renderers can use without
// mutating the aggregation pipeline.
type RenderOptions struct {
	// Title overrides the document title; defaults to the report title.
	Title string

	// Theme carries the resolved palette and tokens. When nil, renderers
	// fall back to their built-in palette.
	Theme *theme.RendererConfig

	// Warnings collects non-fatal conditions encountered while rendering,
	// such as a variable with zero non-missing responses. A nil sink
	// silently discards them.
	Warnings *WarningSink
}
