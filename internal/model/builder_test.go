package model

import (
	"math"
	"testing"
)

func sampleVariable() Variable {
	return Variable{
		Name:     "Q1",
		Question: "Do you use the product?",
		Codes: []CodeLabel{
			{Code: "1", Label: "Yes"},
			{Code: "2", Label: "No"},
		},
	}
}

func TestAggregator_CountsAndPercentages(t *testing.T) {
	dataset := NewDataset(
		[]Variable{sampleVariable()},
		[]string{"CASE", "Q1"},
		[][]string{
			{"1", "1"},
			{"2", "2"},
			{"3", "1"},
		},
	)

	tables, err := NewAggregator().Aggregate(dataset)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if len(tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(tables))
	}

	table := tables[0]
	if table.Total != 3 {
		t.Fatalf("expected total 3, got %v", table.Total)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}

	if table.Rows[0].Label != "Yes" || table.Rows[0].Count != 2 {
		t.Fatalf("unexpected first row: %+v", table.Rows[0])
	}
	if math.Abs(table.Rows[0].Percent-66.666) > 0.01 {
		t.Fatalf("expected ~66.7%%, got %v", table.Rows[0].Percent)
	}
	if table.Rows[1].Label != "No" || table.Rows[1].Count != 1 {
		t.Fatalf("unexpected second row: %+v", table.Rows[1])
	}

	sum := 0.0
	for _, row := range table.Rows {
		sum += row.Percent
	}
	if math.Abs(sum-100) > 0.01 {
		t.Fatalf("percentages must sum to 100 within rounding, got %v", sum)
	}
}

func TestAggregator_MissingCellsShrinkDenominator(t *testing.T) {
	dataset := NewDataset(
		[]Variable{sampleVariable()},
		[]string{"Q1"},
		[][]string{{"1"}, {""}, {"2"}, {"   "}},
	)

	tables, err := NewAggregator().Aggregate(dataset)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	table := tables[0]
	if table.Total != 2 {
		t.Fatalf("blank cells must not count; expected total 2, got %v", table.Total)
	}
	for _, row := range table.Rows {
		if math.Abs(row.Percent-50) > 0.01 {
			t.Fatalf("expected 50%% per row, got %+v", row)
		}
	}
}

func TestAggregator_ZeroResponses(t *testing.T) {
	dataset := NewDataset(
		[]Variable{sampleVariable()},
		[]string{"Q1"},
		[][]string{{""}, {""}},
	)

	tables, err := NewAggregator().Aggregate(dataset)
	if err != nil {
		t.Fatalf("a variable nobody answered must not error: %v", err)
	}

	table := tables[0]
	if !table.Empty() {
		t.Fatalf("expected empty table, got %+v", table)
	}
	if len(table.Rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(table.Rows))
	}
}

func TestAggregator_UnknownCodesFallBackToRawCode(t *testing.T) {
	dataset := NewDataset(
		[]Variable{sampleVariable()},
		[]string{"Q1"},
		[][]string{{"1"}, {"7"}, {"3"}},
	)

	tables, err := NewAggregator().Aggregate(dataset)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	rows := tables[0].Rows
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	// Declared codes first, then extras sorted numerically.
	if rows[0].Code != "1" || rows[1].Code != "3" || rows[2].Code != "7" {
		t.Fatalf("unexpected row order: %+v", rows)
	}
	if rows[1].Label != "3" || rows[2].Label != "7" {
		t.Fatalf("unknown codes must use the raw code as label: %+v", rows)
	}
}

func TestAggregator_PreservesDeclaredOrder(t *testing.T) {
	variables := []Variable{
		{Name: "B", Codes: []CodeLabel{{Code: "1", Label: "x"}}},
		{Name: "A", Codes: []CodeLabel{{Code: "1", Label: "y"}}},
	}
	dataset := NewDataset(variables, []string{"A", "B"}, [][]string{{"1", "1"}})

	tables, err := NewAggregator().Aggregate(dataset)
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if tables[0].Variable.Name != "B" || tables[1].Variable.Name != "A" {
		t.Fatalf("tables must keep declaration order, got %s then %s",
			tables[0].Variable.Name, tables[1].Variable.Name)
	}
}

func TestAggregator_MissingColumn(t *testing.T) {
	dataset := NewDataset([]Variable{{Name: "GONE"}}, []string{"Q1"}, nil)
	if _, err := NewAggregator().Aggregate(dataset); err == nil {
		t.Fatalf("expected error for variable without a column")
	}
}
