package pspp

import "errors"

// Bundle identifies the three export files PSPP produces for one survey:
// the coded values CSV, the labelled values CSV, and the variable-definitions
// text dump (DISPLAY LABELS output).
type Bundle struct {
	Values    Source
	Labels    Source
	Variables Source
}

// Validate reports whether every source in the bundle is present.
func (b Bundle) Validate() error {
	if b.Values == nil {
		return errors.New("pspp: values source is required")
	}
	if b.Labels == nil {
		return errors.New("pspp: labels source is required")
	}
	if b.Variables == nil {
		return errors.New("pspp: variables source is required")
	}
	return nil
}

// BundleFromFiles builds a Bundle from three on-disk paths.
func BundleFromFiles(values, labels, variables string) Bundle {
	return Bundle{
		Values:    SourceFromFile(values),
		Labels:    SourceFromFile(labels),
		Variables: SourceFromFile(variables),
	}
}

// Documents wraps the raw export payloads and their origins. Payloads are
// copied on construction so parsers can treat them as immutable.
type Documents struct {
	bundle    Bundle
	values    []byte
	labels    []byte
	variables []byte
}

// NewDocuments constructs a Documents wrapper while validating the inputs.
func NewDocuments(bundle Bundle, values, labels, variables []byte) (Documents, error) {
	if err := bundle.Validate(); err != nil {
		return Documents{}, err
	}
	if len(values) == 0 {
		return Documents{}, NewParseError(InputValues, "empty payload", nil)
	}
	if len(labels) == 0 {
		return Documents{}, NewParseError(InputLabels, "empty payload", nil)
	}
	if len(variables) == 0 {
		return Documents{}, NewParseError(InputVariables, "empty payload", nil)
	}

	return Documents{
		bundle:    bundle,
		values:    append([]byte(nil), values...),
		labels:    append([]byte(nil), labels...),
		variables: append([]byte(nil), variables...),
	}, nil
}

// MustNewDocuments panics if the documents cannot be created. Useful for tests.
func MustNewDocuments(bundle Bundle, values, labels, variables []byte) Documents {
	docs, err := NewDocuments(bundle, values, labels, variables)
	if err != nil {
		panic(err)
	}
	return docs
}

// Bundle returns the origin metadata for the documents.
func (d Documents) Bundle() Bundle {
	return d.bundle
}

// Values returns the raw coded-values CSV payload.
func (d Documents) Values() []byte {
	return d.values
}

// Labels returns the raw labelled-values CSV payload.
func (d Documents) Labels() []byte {
	return d.labels
}

// Variables returns the raw variable-definitions text payload.
func (d Documents) Variables() []byte {
	return d.variables
}
