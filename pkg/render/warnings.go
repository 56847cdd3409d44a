package render

import (
	"fmt"
	"sync"
)

// Warning is a non-fatal condition raised while rendering. Rendering always
// continues with a degraded visualization; warnings exist so callers can
// surface them after the run.
type Warning struct {
	Variable string
	Msg      string
}

func (w Warning) String() string {
	if w.Variable == "" {
		return w.Msg
	}
	return fmt.Sprintf("%s: %s", w.Variable, w.Msg)
}

// WarningSink accumulates warnings. The zero value is not usable; call
// NewWarningSink. A nil sink drops warnings, so renderers can emit without
// nil checks at every site.
type WarningSink struct {
	mu       sync.Mutex
	warnings []Warning
}

// NewWarningSink creates an empty sink.
func NewWarningSink() *WarningSink {
	return &WarningSink{}
}

// Add records a warning. Safe on a nil sink.
func (s *WarningSink) Add(variable, msg string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warnings = append(s.warnings, Warning{Variable: variable, Msg: msg})
}

// Warnings returns a copy of the recorded warnings.
func (s *WarningSink) Warnings() []Warning {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Warning, len(s.warnings))
	copy(out, s.warnings)
	return out
}

// Empty reports whether the sink holds no warnings.
func (s *WarningSink) Empty() bool {
	if s == nil {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.warnings) == 0
}
