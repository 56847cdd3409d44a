package model

import internalmodel "github.com/goliatone/go-surveyviz/internal/model"

type CodeLabel = internalmodel.CodeLabel
type Variable = internalmodel.Variable
type Dataset = internalmodel.Dataset
type FrequencyRow = internalmodel.FrequencyRow
type FrequencyTable = internalmodel.FrequencyTable
type Report = internalmodel.Report
type Aggregator = internalmodel.Aggregator

// NewDataset re-exports the internal constructor.
func NewDataset(variables []Variable, columns []string, rows [][]string) Dataset {
	return internalmodel.NewDataset(variables, columns, rows)
}

// NewAggregator returns the built-in frequency aggregator.
func NewAggregator() Aggregator {
	return internalmodel.NewAggregator()
}
