package render

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-surveyviz/pkg/model"
)

type stubRenderer struct {
	name string
}

func (s *stubRenderer) Name() string        { return s.name }
func (s *stubRenderer) ContentType() string { return "text/html; charset=utf-8" }
func (s *stubRenderer) Render(context.Context, model.Report, RenderOptions) ([]byte, error) {
	return []byte("<html></html>"), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(&stubRenderer{name: "bars"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Get("bars")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "bars" {
		t.Fatalf("unexpected renderer: %s", renderer.Name())
	}

	if !registry.Has("bars") {
		t.Fatalf("expected Has to report the renderer")
	}
	if registry.Has("table") {
		t.Fatalf("unexpected renderer reported")
	}
}

func TestRegistry_DuplicateAndInvalid(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
	if err := registry.Register(&stubRenderer{name: ""}); err == nil {
		t.Fatalf("expected error for unnamed renderer")
	}

	if err := registry.Register(&stubRenderer{name: "bars"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	err := registry.Register(&stubRenderer{name: "bars"})
	if err == nil || !strings.Contains(err.Error(), "already registered") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestRegistry_MustGet(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(&stubRenderer{name: "bars"})

	if got := registry.MustGet("bars"); got.Name() != "bars" {
		t.Fatalf("unexpected renderer: %s", got.Name())
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for missing renderer")
		}
	}()
	registry.MustGet("missing")
}

func TestRegistry_ListIsSorted(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(&stubRenderer{name: "table"})
	registry.MustRegister(&stubRenderer{name: "bars"})

	names := registry.List()
	if len(names) != 2 || names[0] != "bars" || names[1] != "table" {
		t.Fatalf("expected sorted names, got %v", names)
	}
}

func TestWarningSink(t *testing.T) {
	var nilSink *WarningSink
	nilSink.Add("Q1", "ignored") // must not panic
	if !nilSink.Empty() {
		t.Fatalf("nil sink must report empty")
	}

	sink := NewWarningSink()
	sink.Add("Q1", "no non-missing responses")
	sink.Add("", "document level notice")

	warnings := sink.Warnings()
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d", len(warnings))
	}
	if warnings[0].String() != "Q1: no non-missing responses" {
		t.Fatalf("unexpected warning text: %q", warnings[0])
	}
	if warnings[1].String() != "document level notice" {
		t.Fatalf("unexpected warning text: %q", warnings[1])
	}
	if sink.Empty() {
		t.Fatalf("sink with warnings must not report empty")
	}
}
