// Package testsupport holds canonical PSPP export fixtures shared across
// test packages. Fixtures mirror the shape of real SAVE TRANSLATE and
// DISPLAY LABELS output at a size small enough to assert on by hand.
package testsupport

import (
	pkgpspp "github.com/goliatone/go-surveyviz/pkg/pspp"
)

// ValuesCSV is a coded export with a case-id column, one closed question,
// one question with a missing response, and a trailing blank row the way
// PSPP sometimes emits them.
const ValuesCSV = `CASE,Q1,Q2
1,1,1
2,2,
3,1,2
,,
`

// LabelsCSV mirrors ValuesCSV with label text in place of codes.
const LabelsCSV = `CASE,Q1,Q2
1,Yes,Daily
2,No,
3,Yes,Weekly
,,
`

// VariablesTXT is a DISPLAY LABELS dump covering both questions, with the
// second question wrapping across lines.
const VariablesTXT = `Variable            Label                                              Position
═══════════════════════════════════════════════════════════════════════════════
                 Q1 Do you use the product?                                   2
                 Q2 How often do you use the product in a                     3
                    typical month?
`

// Documents bundles the fixtures into loaded documents, bypassing disk.
func Documents() pkgpspp.Documents {
	bundle := pkgpspp.Bundle{
		Values:    pkgpspp.SourceFromFile("data_values.csv"),
		Labels:    pkgpspp.SourceFromFile("data_labels.csv"),
		Variables: pkgpspp.SourceFromFile("data_variables.txt"),
	}
	return pkgpspp.MustNewDocuments(bundle, []byte(ValuesCSV), []byte(LabelsCSV), []byte(VariablesTXT))
}
