package model

import (
	"fmt"
	"strings"
)

// Dataset is the parsed survey: the declared variables, the full CSV column
// order, and every respondent row of raw coded cells. Rows are read once
// from the values CSV and discarded after aggregation.
type Dataset struct {
	Variables []Variable
	Columns   []string

	rows    [][]string
	weights []float64
	index   map[string]int
}

// NewDataset assembles a dataset from parsed parts. Column lookup is built
// eagerly so row operations stay O(1) per cell.
func NewDataset(variables []Variable, columns []string, rows [][]string) Dataset {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		index[name] = i
	}
	return Dataset{
		Variables: variables,
		Columns:   columns,
		rows:      rows,
		index:     index,
	}
}

// Len returns the number of respondent rows.
func (d Dataset) Len() int {
	return len(d.rows)
}

// Rows exposes the raw respondent rows. The slice is shared; callers must
// not mutate it.
func (d Dataset) Rows() [][]string {
	return d.rows
}

// Column returns the index of a named column.
func (d Dataset) Column(name string) (int, bool) {
	i, ok := d.index[name]
	return i, ok
}

// Weight returns the weight for a respondent row, defaulting to 1 when no
// weighting has been applied.
func (d Dataset) Weight(row int) float64 {
	if d.weights == nil || row < 0 || row >= len(d.weights) {
		return 1
	}
	return d.weights[row]
}

// TotalWeight sums the weights across all rows.
func (d Dataset) TotalWeight() float64 {
	if d.weights == nil {
		return float64(len(d.rows))
	}
	total := 0.0
	for _, w := range d.weights {
		total += w
	}
	return total
}

// DropRows removes every respondent whose cell in a listed column matches
// one of the exclusion codes. PSPP studies use this to drop test runs and
// suspicious respondents before tallying.
func (d *Dataset) DropRows(exclude map[string][]string) error {
	if len(exclude) == 0 {
		return nil
	}

	drop := make(map[int]struct{})
	for column, codes := range exclude {
		col, ok := d.index[column]
		if !ok {
			return fmt.Errorf("model: drop rows: unknown column %q", column)
		}
		for row, cells := range d.rows {
			cell := strings.TrimSpace(cells[col])
			for _, code := range codes {
				if cell == strings.TrimSpace(code) {
					drop[row] = struct{}{}
					break
				}
			}
		}
	}
	if len(drop) == 0 {
		return nil
	}

	kept := make([][]string, 0, len(d.rows)-len(drop))
	var keptWeights []float64
	if d.weights != nil {
		keptWeights = make([]float64, 0, len(d.weights)-len(drop))
	}
	for row, cells := range d.rows {
		if _, skip := drop[row]; skip {
			continue
		}
		kept = append(kept, cells)
		if d.weights != nil {
			keptWeights = append(keptWeights, d.weights[row])
		}
	}
	d.rows = kept
	d.weights = keptWeights
	return nil
}

// Subset returns a derived dataset holding only the respondents whose cells
// match every filter entry exactly. Variables and columns are shared with
// the parent; both are immutable after parsing.
func (d Dataset) Subset(filter map[string]string) (Dataset, error) {
	if len(filter) == 0 {
		return d, nil
	}

	cols := make(map[int]string, len(filter))
	for column, code := range filter {
		idx, ok := d.index[column]
		if !ok {
			return Dataset{}, fmt.Errorf("model: subset: unknown column %q", column)
		}
		cols[idx] = strings.TrimSpace(code)
	}

	var rows [][]string
	var weights []float64
	for row, cells := range d.rows {
		match := true
		for col, code := range cols {
			if strings.TrimSpace(cells[col]) != code {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		rows = append(rows, cells)
		if d.weights != nil {
			weights = append(weights, d.weights[row])
		}
	}

	sub := NewDataset(d.Variables, d.Columns, rows)
	sub.weights = weights
	return sub, nil
}

// SetWeights derives per-respondent weights from a weighting table shaped
// as {column: {code: weight}}. Weights are normalized so the total
// stays equal to the row count, matching how the survey tooling rebalances
// demographic segments without changing the reported base size.
func (d *Dataset) SetWeights(weights map[string]map[string]float64) error {
	if len(weights) == 0 {
		return nil
	}
	if len(weights) > 1 {
		return fmt.Errorf("model: set weights: exactly one weighting column supported, got %d", len(weights))
	}

	for column, byCode := range weights {
		col, ok := d.index[column]
		if !ok {
			return fmt.Errorf("model: set weights: unknown column %q", column)
		}

		raw := make([]float64, len(d.rows))
		total := 0.0
		for row, cells := range d.rows {
			cell := strings.TrimSpace(cells[col])
			w, ok := byCode[cell]
			if !ok {
				w = 1
			}
			raw[row] = w
			total += w
		}
		if total <= 0 {
			return fmt.Errorf("model: set weights: weights for %q sum to zero", column)
		}

		// Scale so the weighted total equals the row count.
		scale := float64(len(d.rows)) / total
		out := make([]float64, len(d.rows))
		for row, w := range raw {
			out[row] = w * scale
		}
		d.weights = out
	}
	return nil
}
