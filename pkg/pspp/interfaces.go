package pspp

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-surveyviz/pkg/model"
)

// Loader fetches the three export payloads described by a Bundle. All files
// are read fully into memory before parsing begins; there is no streaming.
type Loader interface {
	Load(ctx context.Context, bundle Bundle) (Documents, error)
}

// Parser turns loaded documents into the in-memory dataset: ordered
// variables with their code→label maps plus the raw respondent rows.
type Parser interface {
	Dataset(ctx context.Context, docs Documents) (model.Dataset, error)
}

// LoaderOptions configure the built-in loader.
type LoaderOptions struct {
	// FileSystem resolves fs sources. When nil, only file sources load.
	FileSystem fs.FS
}

// NewLoaderOptions returns the default loader configuration.
func NewLoaderOptions() LoaderOptions {
	return LoaderOptions{}
}

// ParserOptions configure the built-in parser.
type ParserOptions struct {
	// AllowUnmatchedColumns skips the cross-check between the definitions
	// file and the CSV headers. Off by default: a declared variable without
	// a column (or vice versa) is a ParseError.
	AllowUnmatchedColumns bool

	// IdentifierColumns are exempt from the cross-check and never
	// visualized. When empty, the first CSV column is treated as the
	// respondent identifier, matching how PSPP exports case ids.
	IdentifierColumns []string
}

// NewParserOptions returns the default parser configuration.
func NewParserOptions() ParserOptions {
	return ParserOptions{}
}
