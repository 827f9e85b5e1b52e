package export

import (
	"fmt"
	"io"

	"github.com/iksnae/slack-export/internal"
)

// TextExporter exports rendered conversations as plain text, one titled
// document per conversation with a heading per day.
type TextExporter struct{}

// Export exports a document to plain text format
func (e *TextExporter) Export(doc *internal.Document, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "slack channel: %s\n", doc.Name); err != nil {
		return err
	}

	for _, day := range doc.Days {
		if _, err := fmt.Fprintf(w, "\n%s\n\n", day.Date); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", day.Text()); err != nil {
			return err
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *TextExporter) Extension() string {
	return "txt"
}
