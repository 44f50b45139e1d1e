// Package export serializes trees to interchange formats beyond Newick.
package export

import (
	"fmt"
	"io"

	"github.com/lmartins/rootree/internal/newick"
	"github.com/lmartins/rootree/internal/phylo"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(t *phylo.Tree, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format. The dialect applies
// to the Newick exporter only.
func NewExporter(format string, d newick.Dialect) (Exporter, error) {
	switch format {
	case "newick", "nwk":
		return &NewickExporter{Dialect: d}, nil
	case "json":
		return &JSONExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: newick, json, yaml)", format)
	}
}

// NewickExporter writes the tree back out as Newick in a fixed dialect.
type NewickExporter struct {
	Dialect newick.Dialect
}

func (e *NewickExporter) Export(t *phylo.Tree, w io.Writer) error {
	return newick.Write(w, t, e.Dialect)
}

// Extension returns the file extension for this format
func (e *NewickExporter) Extension() string {
	return "nwk"
}
