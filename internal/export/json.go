package export

import (
	"encoding/json"
	"io"

	"github.com/lmartins/rootree/internal/phylo"
)

// JSONExporter exports trees in JSON format
type JSONExporter struct{}

// Export exports a tree to JSON format
func (e *JSONExporter) Export(t *phylo.Tree, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cladeView(t))
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
