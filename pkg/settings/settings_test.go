package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse_YAML(t *testing.T) {
	doc := []byte(`
exclude_ids:
  CASE: ["17", "23"]
suspicious_ids:
  CASE: ["40"]
weights:
  GENDER:
    "1": 0.52
    "2": 0.48
segments:
  usa:
    COUNTRY: "9"
`)

	s, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if diff := cmp.Diff([]string{"17", "23"}, s.ExcludeIDs["CASE"]); diff != "" {
		t.Fatalf("exclude ids mismatch (-want +got):\n%s", diff)
	}
	if s.Weights["GENDER"]["1"] != 0.52 {
		t.Fatalf("weights not decoded: %+v", s.Weights)
	}
	if s.Segments["usa"]["COUNTRY"] != "9" {
		t.Fatalf("segments not decoded: %+v", s.Segments)
	}
}

func TestParse_JSONCompat(t *testing.T) {
	// Older studies shipped JSON settings; YAML decodes them unchanged.
	doc := []byte(`{"exclude_ids": {"CASE": ["1"]}, "segments": {"usa": {"COUNTRY": "9"}}}`)

	s, err := Parse(doc)
	if err != nil {
		t.Fatalf("parse json: %v", err)
	}
	if got := s.ExcludeIDs["CASE"]; len(got) != 1 || got[0] != "1" {
		t.Fatalf("unexpected exclude ids: %+v", got)
	}
}

func TestExclusions_MergesBothLists(t *testing.T) {
	s := Settings{
		ExcludeIDs:    map[string][]string{"CASE": {"1"}},
		SuspiciousIDs: map[string][]string{"CASE": {"2"}, "IP": {"local"}},
	}

	merged := s.Exclusions()
	if diff := cmp.Diff([]string{"1", "2"}, merged["CASE"]); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
	if len(merged["IP"]) != 1 {
		t.Fatalf("expected IP exclusions, got %+v", merged)
	}

	if got := (Settings{}).Exclusions(); got != nil {
		t.Fatalf("empty settings must yield nil exclusions, got %+v", got)
	}
}

func TestSegment_Lookup(t *testing.T) {
	s := Settings{Segments: map[string]map[string]string{"usa": {"COUNTRY": "9"}}}

	filter, err := s.Segment("usa")
	if err != nil {
		t.Fatalf("segment: %v", err)
	}
	if filter["COUNTRY"] != "9" {
		t.Fatalf("unexpected filter: %+v", filter)
	}

	if _, err := s.Segment("emea"); err == nil {
		t.Fatalf("expected error for undefined segment")
	}
	if filter, err := s.Segment(""); err != nil || filter != nil {
		t.Fatalf("empty segment must resolve to no filter, got %v, %v", filter, err)
	}
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing settings file must not error: %v", err)
	}
	if len(s.ExcludeIDs) != 0 {
		t.Fatalf("expected zero-value settings, got %+v", s)
	}
}

func TestLoad_ReadsFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("segments:\n  usa:\n    COUNTRY: \"9\"\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Segments["usa"]["COUNTRY"] != "9" {
		t.Fatalf("unexpected settings: %+v", s)
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("exclude_ids: [not: a: map")); err == nil {
		t.Fatalf("expected decode error")
	}
}
