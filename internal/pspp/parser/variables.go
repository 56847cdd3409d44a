package parser

import (
	"strings"
)

// definition is one entry from the DISPLAY LABELS dump: variable name,
// question text, and declared position.
type definition struct {
	name     string
	question string
	position int
}

// parseDefinitions extracts variable definitions from the free-text dump.
// The dump is column formatted:
//
//	Variable            Label                                              Position
//	═══════════════════════════════════════════════════════════════════════════════
//	                 S5 What field do you work in?                                7
//	                 S6 Which of the following better describes your              8
//	                    current employment status?
//
// A line whose last eight characters are digits (padded with spaces) starts
// a new variable; any other content line continues the previous question
// text, which PSPP wraps at a fixed width.
func parseDefinitions(raw string) []definition {
	var defs []definition

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "Variable") || strings.ContainsRune(line, '═') {
			continue
		}

		if pos, ok := trailingPosition(line); ok {
			idx := strings.IndexRune(line, ' ')
			if idx <= 0 {
				continue
			}
			// The position occupies the last eight columns of the line.
			cut := len(line) - 8
			question := ""
			if cut > idx {
				question = strings.TrimSpace(line[idx:cut])
			}
			defs = append(defs, definition{name: line[:idx], question: question, position: pos})
			continue
		}

		// Continuation of the previous question text.
		if len(defs) > 0 {
			defs[len(defs)-1].question += " " + line
		}
	}

	return defs
}

// trailingPosition reports whether the last eight characters of the line are
// digits and spaces, and returns the parsed position.
func trailingPosition(line string) (int, bool) {
	if len(line) < 8 {
		return 0, false
	}
	tail := strings.TrimSpace(line[len(line)-8:])
	if tail == "" {
		return 0, false
	}
	pos := 0
	for _, r := range tail {
		if r < '0' || r > '9' {
			return 0, false
		}
		pos = pos*10 + int(r-'0')
	}
	return pos, true
}
