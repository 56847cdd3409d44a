package parser

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-surveyviz/pkg/model"
	pkgpspp "github.com/goliatone/go-surveyviz/pkg/pspp"
)

// Parser implements pspp.Parser on top of encoding/csv plus the
// DISPLAY LABELS line heuristic in variables.go.
type Parser struct {
	options pkgpspp.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgpspp.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgpspp.ParserOptions) pkgpspp.Parser {
	return &Parser{options: options}
}

// Dataset builds the in-memory survey from the three loaded documents. The
// values and labels CSVs must share headers and row counts; every declared
// variable must have a column and vice versa (identifier columns exempt)
// unless AllowUnmatchedColumns is set.
func (p *Parser) Dataset(ctx context.Context, docs pkgpspp.Documents) (model.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return model.Dataset{}, err
	}

	header, valueRows, err := readCSV(docs.Values(), pkgpspp.InputValues)
	if err != nil {
		return model.Dataset{}, err
	}
	labelHeader, labelRows, err := readCSV(docs.Labels(), pkgpspp.InputLabels)
	if err != nil {
		return model.Dataset{}, err
	}

	if err := matchHeaders(header, labelHeader); err != nil {
		return model.Dataset{}, err
	}
	if len(valueRows) != len(labelRows) {
		return model.Dataset{}, pkgpspp.NewParseError(pkgpspp.InputLabels,
			fmt.Sprintf("row count mismatch: %d value rows, %d label rows", len(valueRows), len(labelRows)), nil)
	}

	defs := parseDefinitions(string(docs.Variables()))

	identifiers := p.identifierColumns(header)
	if !p.options.AllowUnmatchedColumns {
		if err := crossCheck(header, defs, identifiers); err != nil {
			return model.Dataset{}, err
		}
	}

	variables := buildVariables(header, valueRows, labelRows, defs, identifiers)
	return model.NewDataset(variables, header, valueRows), nil
}

// identifierColumns resolves the columns exempt from the definition check.
// PSPP exports put the case identifier first, so that is the default.
func (p *Parser) identifierColumns(header []string) map[string]struct{} {
	out := make(map[string]struct{})
	if len(p.options.IdentifierColumns) > 0 {
		for _, name := range p.options.IdentifierColumns {
			out[strings.TrimSpace(name)] = struct{}{}
		}
		return out
	}
	if len(header) > 0 {
		out[header[0]] = struct{}{}
	}
	return out
}

func readCSV(raw []byte, input pkgpspp.Input) ([]string, [][]string, error) {
	reader := csv.NewReader(bytes.NewReader(raw))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, pkgpspp.NewParseError(input, "malformed CSV", err)
	}
	if len(records) == 0 {
		return nil, nil, pkgpspp.NewParseError(input, "missing header row", nil)
	}

	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = strings.TrimSpace(name)
	}

	// PSPP occasionally emits fully blank rows; drop them before tallying.
	rows := make([][]string, 0, len(records)-1)
	for _, record := range records[1:] {
		if blankRow(record) {
			continue
		}
		rows = append(rows, record)
	}
	return header, rows, nil
}

func blankRow(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func matchHeaders(values, labels []string) error {
	if len(values) != len(labels) {
		return pkgpspp.NewParseError(pkgpspp.InputLabels,
			fmt.Sprintf("column count mismatch: %d value columns, %d label columns", len(values), len(labels)), nil)
	}
	for i := range values {
		if values[i] != labels[i] {
			return pkgpspp.NewParseError(pkgpspp.InputLabels,
				fmt.Sprintf("column %d mismatch: %q in values, %q in labels", i, values[i], labels[i]), nil)
		}
	}
	return nil
}

func crossCheck(header []string, defs []definition, identifiers map[string]struct{}) error {
	columns := make(map[string]struct{}, len(header))
	for _, name := range header {
		columns[name] = struct{}{}
	}

	for _, def := range defs {
		if _, ok := columns[def.name]; !ok {
			return pkgpspp.NewParseError(pkgpspp.InputVariables,
				fmt.Sprintf("variable %q has no column in the CSV exports", def.name), nil)
		}
	}

	defined := make(map[string]struct{}, len(defs))
	for _, def := range defs {
		defined[def.name] = struct{}{}
	}
	for _, name := range header {
		if _, ok := identifiers[name]; ok {
			continue
		}
		if _, ok := defined[name]; !ok {
			return pkgpspp.NewParseError(pkgpspp.InputValues,
				fmt.Sprintf("column %q is not declared in the definitions file", name), nil)
		}
	}
	return nil
}

// buildVariables assembles one Variable per declared definition, in
// declaration order, then appends any undeclared non-identifier columns in
// CSV order (only reachable with AllowUnmatchedColumns). Code→label legends
// come from aligning the two CSVs cell by cell.
func buildVariables(header []string, valueRows, labelRows [][]string, defs []definition, identifiers map[string]struct{}) []model.Variable {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[name] = i
	}

	variables := make([]model.Variable, 0, len(defs))
	covered := make(map[string]struct{}, len(defs))
	for _, def := range defs {
		col, ok := index[def.name]
		if !ok {
			continue
		}
		variables = append(variables, model.Variable{
			Name:     def.name,
			Question: def.question,
			Position: def.position,
			Codes:    buildLegend(col, valueRows, labelRows),
		})
		covered[def.name] = struct{}{}
	}

	for i, name := range header {
		if _, ok := covered[name]; ok {
			continue
		}
		if _, ok := identifiers[name]; ok {
			continue
		}
		variables = append(variables, model.Variable{
			Name:  name,
			Codes: buildLegend(i, valueRows, labelRows),
		})
	}

	return variables
}

// buildLegend derives the code→label pairs for one column. Codes keep first
// appearance order unless every code is numeric, in which case they sort
// ascending the way PSPP frequency output lists them. A blank label cell
// leaves the label empty so consumers fall back to the raw code.
func buildLegend(col int, valueRows, labelRows [][]string) []model.CodeLabel {
	var order []string
	labels := make(map[string]string)

	for row, cells := range valueRows {
		if col >= len(cells) {
			continue
		}
		code := strings.TrimSpace(cells[col])
		if code == "" {
			continue
		}
		if _, ok := labels[code]; !ok {
			order = append(order, code)
			labels[code] = ""
		}
		if labels[code] == "" && row < len(labelRows) && col < len(labelRows[row]) {
			label := strings.TrimSpace(labelRows[row][col])
			if label != code {
				labels[code] = label
			}
		}
	}

	sortNumericCodes(order)

	legend := make([]model.CodeLabel, 0, len(order))
	for _, code := range order {
		legend = append(legend, model.CodeLabel{Code: code, Label: labels[code]})
	}
	return legend
}

func sortNumericCodes(codes []string) {
	values := make(map[string]float64, len(codes))
	for _, code := range codes {
		v, err := strconv.ParseFloat(code, 64)
		if err != nil {
			return
		}
		values[code] = v
	}
	sort.SliceStable(codes, func(i, j int) bool { return values[codes[i]] < values[codes[j]] })
}
