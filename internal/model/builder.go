package model

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Aggregator tallies response frequencies for every variable in a dataset.
type Aggregator interface {
	Aggregate(dataset Dataset) ([]FrequencyTable, error)
}

// NewAggregator returns the built-in aggregator.
func NewAggregator() Aggregator {
	return &aggregator{}
}

type aggregator struct{}

var _ Aggregator = (*aggregator)(nil)

// Aggregate walks every respondent row once per variable, counting each
// distinct code. Blank or whitespace cells are missing: they are skipped and
// excluded from the percentage denominator. Tables come back in the
// variables' declared order.
func (a *aggregator) Aggregate(dataset Dataset) ([]FrequencyTable, error) {
	tables := make([]FrequencyTable, 0, len(dataset.Variables))
	for _, variable := range dataset.Variables {
		table, err := a.aggregateVariable(dataset, variable)
		if err != nil {
			return nil, err
		}
		tables = append(tables, table)
	}
	return tables, nil
}

func (a *aggregator) aggregateVariable(dataset Dataset, variable Variable) (FrequencyTable, error) {
	col, ok := dataset.Column(variable.Name)
	if !ok {
		return FrequencyTable{}, fmt.Errorf("model: aggregate: variable %q has no column", variable.Name)
	}

	counts := make(map[string]float64)
	total := 0.0
	for row, cells := range dataset.Rows() {
		if col >= len(cells) {
			continue
		}
		code := strings.TrimSpace(cells[col])
		if code == "" {
			// Missing response, excluded from the denominator.
			continue
		}
		weight := dataset.Weight(row)
		counts[code] += weight
		total += weight
	}

	rows := make([]FrequencyRow, 0, len(counts))
	seen := make(map[string]struct{}, len(counts))

	// Declared codes first, in the variable's order.
	for _, cl := range variable.Codes {
		count, ok := counts[cl.Code]
		if !ok {
			continue
		}
		rows = append(rows, newFrequencyRow(cl.Code, variable.Label(cl.Code), count, total))
		seen[cl.Code] = struct{}{}
	}

	// Codes present in the data but absent from the legend tally too, with
	// the raw code standing in for the label.
	extras := make([]string, 0)
	for code := range counts {
		if _, ok := seen[code]; ok {
			continue
		}
		extras = append(extras, code)
	}
	sortCodes(extras)
	for _, code := range extras {
		rows = append(rows, newFrequencyRow(code, code, counts[code], total))
	}

	return FrequencyTable{Variable: variable, Rows: rows, Total: total}, nil
}

func newFrequencyRow(code, label string, count, total float64) FrequencyRow {
	percent := 0.0
	if total > 0 {
		percent = 100 * count / total
	}
	return FrequencyRow{Code: code, Label: label, Count: count, Percent: percent}
}

// sortCodes orders codes numerically when every entry parses as a number,
// otherwise lexically. PSPP exports numeric codes for closed questions and
// free strings for one-hot columns.
func sortCodes(codes []string) {
	values := make(map[string]float64, len(codes))
	for _, code := range codes {
		v, err := strconv.ParseFloat(code, 64)
		if err != nil {
			sort.Strings(codes)
			return
		}
		values[code] = v
	}
	sort.SliceStable(codes, func(i, j int) bool { return values[codes[i]] < values[codes[j]] })
}
