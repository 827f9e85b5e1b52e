package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/slack-export/internal"
)

// JSONLExporter exports rendered conversations in JSONL format (one message
// per line)
type JSONLExporter struct{}

// Export exports a document to JSONL format
func (e *JSONLExporter) Export(doc *internal.Document, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, day := range doc.Days {
		for i, msg := range day.Messages {
			obj := map[string]interface{}{
				"conversation": doc.ID,
				"date":         day.Date,
				"position":     i,
				"text":         msg,
			}

			// Encode to single line
			if err := enc.Encode(obj); err != nil {
				return fmt.Errorf("failed to encode message: %w", err)
			}
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
