// Package weightsio reads weight matrices from YAML or JSON documents.
//
// Two document shapes are accepted (JSON is read as YAML, which is a superset):
//
//	# bare list of rows
//	- [4, 1, 3]
//	- [2, 0, 5]
//
//	# mapping with a weights key
//	weights:
//	  - [4, 1, 3]
//	  - [2, 0, 5]
package weightsio

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmatch/matrix"
)

var (
	// ErrEmptyDocument is returned when the input holds no document.
	ErrEmptyDocument = errors.New("weightsio: empty document")

	// ErrMalformed is returned when the document is not a list of numeric rows.
	ErrMalformed = errors.New("weightsio: malformed weight matrix")
)

// document is the mapping form.
type document struct {
	Weights [][]float64 `yaml:"weights"`
}

// Read decodes the first document of r into a Dense matrix.
// Shape and value errors from matrix.NewFromRows are wrapped together with
// ErrMalformed, so both sentinels match with errors.Is.
func Read(r io.Reader) (*matrix.Dense, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}

		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	var rows [][]float64
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&rows); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
	case yaml.MappingNode:
		var doc document
		if err := node.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		rows = doc.Weights
	default:
		return nil, fmt.Errorf("%w: line %d: expected a list of rows or a weights mapping", ErrMalformed, node.Line)
	}

	m, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return m, nil
}
