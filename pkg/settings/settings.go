package settings

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings carries the optional per-study configuration: respondents to
// drop, demographic weights, and named segments. The document is YAML, which
// also accepts the JSON files older studies shipped.
type Settings struct {
	// ExcludeIDs drops respondents whose cell in a column matches one of
	// the listed codes. Typically test runs keyed by respondent id.
	ExcludeIDs map[string][]string `yaml:"exclude_ids" json:"exclude_ids"`

	// SuspiciousIDs works like ExcludeIDs; kept separate so studies can
	// audit what was dropped and why.
	SuspiciousIDs map[string][]string `yaml:"suspicious_ids" json:"suspicious_ids"`

	// Weights rebalances respondents by a single column's codes, shaped as
	// {column: {code: weight}}.
	Weights map[string]map[string]float64 `yaml:"weights" json:"weights"`

	// Segments names subset filters, shaped as {name: {column: code}}.
	Segments map[string]map[string]string `yaml:"segments" json:"segments"`
}

// Exclusions merges the exclude and suspicious lists into one drop table.
func (s Settings) Exclusions() map[string][]string {
	if len(s.ExcludeIDs) == 0 && len(s.SuspiciousIDs) == 0 {
		return nil
	}
	out := make(map[string][]string, len(s.ExcludeIDs)+len(s.SuspiciousIDs))
	for column, codes := range s.ExcludeIDs {
		out[column] = append(out[column], codes...)
	}
	for column, codes := range s.SuspiciousIDs {
		out[column] = append(out[column], codes...)
	}
	return out
}

// Segment resolves a named segment filter. An empty name returns nil.
func (s Settings) Segment(name string) (map[string]string, error) {
	if name == "" {
		return nil, nil
	}
	filter, ok := s.Segments[name]
	if !ok {
		return nil, fmt.Errorf("settings: segment %q is not defined", name)
	}
	return filter, nil
}

// Load reads a settings document from disk. A missing file is not an error:
// studies without settings run with defaults, mirroring how the survey
// tooling treats an absent configuration.
func Load(path string) (Settings, error) {
	if path == "" {
		return Settings{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Settings{}, nil
		}
		return Settings{}, fmt.Errorf("settings: read %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a settings document.
func Parse(data []byte) (Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("settings: decode: %w", err)
	}
	return s, nil
}
