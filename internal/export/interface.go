package export

import (
	"fmt"
	"io"

	"github.com/iksnae/slack-export/internal"
)

// Exporter defines the interface for all export formats
type Exporter interface {
	Export(doc *internal.Document, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "txt", "text":
		return &TextExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	case "jsonl":
		return &JSONLExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: txt, md, json, jsonl, yaml)", format)
	}
}
