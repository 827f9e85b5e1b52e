package export

import (
	"io"

	"github.com/iksnae/slack-export/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports rendered conversations in YAML format
type YAMLExporter struct{}

// Export exports a document to YAML format
func (e *YAMLExporter) Export(doc *internal.Document, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(doc)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
