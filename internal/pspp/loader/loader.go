package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	pkgpspp "github.com/goliatone/go-surveyviz/pkg/pspp"
)

// Loader implements pspp.Loader by reading every export file fully into
// memory. File and fs.FS sources are supported.
type Loader struct {
	fs fs.FS
}

// Ensure the implementation satisfies the public interface.
var _ pkgpspp.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options pkgpspp.LoaderOptions) pkgpspp.Loader {
	return &Loader{fs: options.FileSystem}
}

// Load fetches the three payloads described by the bundle and wraps them in
// a Documents value.
func (l *Loader) Load(ctx context.Context, bundle pkgpspp.Bundle) (pkgpspp.Documents, error) {
	if err := bundle.Validate(); err != nil {
		return pkgpspp.Documents{}, err
	}
	if err := ctx.Err(); err != nil {
		return pkgpspp.Documents{}, err
	}

	values, err := l.read(bundle.Values)
	if err != nil {
		return pkgpspp.Documents{}, fmt.Errorf("pspp loader: values: %w", err)
	}
	labels, err := l.read(bundle.Labels)
	if err != nil {
		return pkgpspp.Documents{}, fmt.Errorf("pspp loader: labels: %w", err)
	}
	variables, err := l.read(bundle.Variables)
	if err != nil {
		return pkgpspp.Documents{}, fmt.Errorf("pspp loader: variables: %w", err)
	}

	return pkgpspp.NewDocuments(bundle, values, labels, variables)
}

func (l *Loader) read(src pkgpspp.Source) ([]byte, error) {
	if src == nil {
		return nil, errors.New("source is nil")
	}

	switch src.Kind() {
	case pkgpspp.SourceKindFile:
		data, err := os.ReadFile(src.Location())
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%q: %w", src.Location(), pkgpspp.ErrNotFound)
			}
			return nil, err
		}
		return data, nil
	case pkgpspp.SourceKindFS:
		if l.fs == nil {
			return nil, errors.New("fs source requires a file system")
		}
		data, err := fs.ReadFile(l.fs, src.Location())
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%q: %w", src.Location(), pkgpspp.ErrNotFound)
			}
			return nil, err
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported source kind %q", src.Kind())
	}
}
