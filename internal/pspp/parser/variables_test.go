package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDefinitions_SkipsChromeAndWrapsQuestions(t *testing.T) {
	dump := `Variable            Label                                              Position
═══════════════════════════════════════════════════════════════════════════════
                 S5 What field do you work in?                                7
                 S6 Which of the following better describes your              8
                    current employment status?
                 S7 You mentioned you are currently a full-time student       9
                    In which of the following levels of school are you
                    currently enrolled?
`

	got := parseDefinitions(dump)
	want := []definition{
		{name: "S5", question: "What field do you work in?", position: 7},
		{name: "S6", question: "Which of the following better describes your current employment status?", position: 8},
		{name: "S7", question: "You mentioned you are currently a full-time student In which of the following levels of school are you currently enrolled?", position: 9},
	}

	if diff := cmp.Diff(want, got, cmp.AllowUnexported(definition{})); diff != "" {
		t.Fatalf("definitions mismatch (-want +got):\n%s", diff)
	}
}

func TestParseDefinitions_EmptyDump(t *testing.T) {
	if got := parseDefinitions(""); len(got) != 0 {
		t.Fatalf("expected no definitions, got %d", len(got))
	}
}

func TestParseDefinitions_ContinuationWithoutVariable(t *testing.T) {
	// A stray continuation line before any variable must not panic.
	got := parseDefinitions("orphan continuation line\n")
	if len(got) != 0 {
		t.Fatalf("expected no definitions, got %+v", got)
	}
}

func TestTrailingPosition(t *testing.T) {
	cases := []struct {
		line string
		pos  int
		ok   bool
	}{
		{"Q1 Do you use the product?                                   2", 2, true},
		{"continuation line without a position", 0, false},
		{"short", 0, false},
		{"ends in year 2020 but padded text", 0, false},
	}
	for _, tc := range cases {
		pos, ok := trailingPosition(tc.line)
		if ok != tc.ok || pos != tc.pos {
			t.Fatalf("trailingPosition(%q) = (%d, %v), want (%d, %v)", tc.line, pos, ok, tc.pos, tc.ok)
		}
	}
}
