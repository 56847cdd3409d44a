package render

import (
	"context"

	"github.com/goliatone/go-surveyviz/pkg/model"
)

// Renderer converts a Report into a byte representation (HTML for the
// built-in bars renderer).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, report model.Report, options RenderOptions) ([]byte, error)
}
