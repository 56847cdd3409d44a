package bars

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// labelSanitizer strips markup from question and answer text before it is
// injected into the page. Labels come straight from an external tool's
// export and are not trusted HTML.
type labelSanitizer struct {
	policy *bluemonday.Policy
}

func newLabelSanitizer() *labelSanitizer {
	return &labelSanitizer{policy: bluemonday.StrictPolicy()}
}

func (s *labelSanitizer) clean(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(s.policy.Sanitize(trimmed))
}
