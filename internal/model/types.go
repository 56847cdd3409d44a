package model

// CodeLabel pairs one raw coded value with its human-readable label.
type CodeLabel struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Variable describes one survey question: the CSV column name, the question
// text extracted from the definitions dump, its declared position, and the
// ordered set of code→label pairs observed for it. Variables are built once
// during parsing and immutable afterwards.
type Variable struct {
	Name     string      `json:"name"`
	Question string      `json:"question,omitempty"`
	Position int         `json:"position,omitempty"`
	Codes    []CodeLabel `json:"codes,omitempty"`
}

// Label returns the label for a code, falling back to the raw code when the
// export carried no label text for it.
func (v Variable) Label(code string) string {
	for _, cl := range v.Codes {
		if cl.Code == code {
			if cl.Label != "" {
				return cl.Label
			}
			break
		}
	}
	return code
}

// FrequencyRow is one tallied answer: the raw code, its label, the
// (possibly weighted) count, and the share of the non-missing total.
type FrequencyRow struct {
	Code    string  `json:"code"`
	Label   string  `json:"label"`
	Count   float64 `json:"count"`
	Percent float64 `json:"percent"`
}

// FrequencyTable holds the tallied answers for a single variable. Counts sum
// to Total, the number (or weight) of non-missing responses; blank cells are
// excluded from the denominator. A variable nobody answered has Total 0 and
// zero percentages throughout.
type FrequencyTable struct {
	Variable Variable       `json:"variable"`
	Rows     []FrequencyRow `json:"rows,omitempty"`
	Total    float64        `json:"total"`
}

// Empty reports whether the table carries no non-missing responses.
func (t FrequencyTable) Empty() bool {
	return t.Total == 0
}

// Report is what renderers consume: one frequency table per variable, in
// declaration order, plus run metadata.
type Report struct {
	Title       string            `json:"title,omitempty"`
	Segment     string            `json:"segment,omitempty"`
	Respondents int               `json:"respondents"`
	Tables      []FrequencyTable  `json:"tables"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}
