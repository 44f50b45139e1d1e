package export

import (
	"io"

	"github.com/lmartins/rootree/internal/phylo"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports trees in YAML format
type YAMLExporter struct{}

// Export exports a tree to YAML format
func (e *YAMLExporter) Export(t *phylo.Tree, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(cladeView(t))
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
