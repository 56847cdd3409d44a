package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	pkgpspp "github.com/goliatone/go-surveyviz/pkg/pspp"

	"github.com/goliatone/go-surveyviz/pkg/testsupport"
)

func writeExport(t *testing.T, dir string) pkgpspp.Bundle {
	t.Helper()

	files := map[string]string{
		"data_values.csv":    testsupport.ValuesCSV,
		"data_labels.csv":    testsupport.LabelsCSV,
		"data_variables.txt": testsupport.VariablesTXT,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write fixture %s: %v", name, err)
		}
	}

	return pkgpspp.BundleFromFiles(
		filepath.Join(dir, "data_values.csv"),
		filepath.Join(dir, "data_labels.csv"),
		filepath.Join(dir, "data_variables.txt"),
	)
}

func TestLoader_LoadFromDisk(t *testing.T) {
	bundle := writeExport(t, t.TempDir())

	docs, err := New(pkgpspp.NewLoaderOptions()).Load(context.Background(), bundle)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if string(docs.Values()) != testsupport.ValuesCSV {
		t.Fatalf("values payload mismatch:\n%s", docs.Values())
	}
	if string(docs.Labels()) != testsupport.LabelsCSV {
		t.Fatalf("labels payload mismatch:\n%s", docs.Labels())
	}
	if string(docs.Variables()) != testsupport.VariablesTXT {
		t.Fatalf("variables payload mismatch:\n%s", docs.Variables())
	}
}

func TestLoader_MissingFileIsNotFound(t *testing.T) {
	dir := t.TempDir()
	bundle := writeExport(t, dir)
	if err := os.Remove(filepath.Join(dir, "data_labels.csv")); err != nil {
		t.Fatalf("remove fixture: %v", err)
	}

	_, err := New(pkgpspp.NewLoaderOptions()).Load(context.Background(), bundle)
	if !errors.Is(err, pkgpspp.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoader_LoadFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"exports/data_values.csv":    &fstest.MapFile{Data: []byte(testsupport.ValuesCSV)},
		"exports/data_labels.csv":    &fstest.MapFile{Data: []byte(testsupport.LabelsCSV)},
		"exports/data_variables.txt": &fstest.MapFile{Data: []byte(testsupport.VariablesTXT)},
	}

	bundle := pkgpspp.Bundle{
		Values:    pkgpspp.SourceFromFS("exports/data_values.csv"),
		Labels:    pkgpspp.SourceFromFS("exports/data_labels.csv"),
		Variables: pkgpspp.SourceFromFS("exports/data_variables.txt"),
	}

	options := pkgpspp.NewLoaderOptions()
	options.FileSystem = fsys

	docs, err := New(options).Load(context.Background(), bundle)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(docs.Variables()) != testsupport.VariablesTXT {
		t.Fatalf("variables payload mismatch:\n%s", docs.Variables())
	}
}

func TestLoader_FSSourceWithoutFileSystem(t *testing.T) {
	bundle := pkgpspp.Bundle{
		Values:    pkgpspp.SourceFromFS("data_values.csv"),
		Labels:    pkgpspp.SourceFromFS("data_labels.csv"),
		Variables: pkgpspp.SourceFromFS("data_variables.txt"),
	}

	_, err := New(pkgpspp.NewLoaderOptions()).Load(context.Background(), bundle)
	if err == nil {
		t.Fatal("expected error for fs source without a file system")
	}
}

func TestLoader_IncompleteBundle(t *testing.T) {
	bundle := pkgpspp.Bundle{Values: pkgpspp.SourceFromFile("data_values.csv")}

	_, err := New(pkgpspp.NewLoaderOptions()).Load(context.Background(), bundle)
	if err == nil {
		t.Fatal("expected validation error for incomplete bundle")
	}
}

func TestLoader_CanceledContext(t *testing.T) {
	bundle := writeExport(t, t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(pkgpspp.NewLoaderOptions()).Load(ctx, bundle)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
