package export

import (
	"fmt"
	"io"

	"github.com/iksnae/slack-export/internal"
)

// MarkdownExporter exports rendered conversations in Markdown format
type MarkdownExporter struct{}

// Export exports a document to Markdown format
func (e *MarkdownExporter) Export(doc *internal.Document, w io.Writer) error {
	// Header
	_, _ = fmt.Fprintf(w, "# slack channel: %s\n\n", doc.Name)

	for _, day := range doc.Days {
		_, _ = fmt.Fprintf(w, "## %s\n\n", day.Date)

		for i, msg := range day.Messages {
			_, _ = fmt.Fprintf(w, "%s\n\n", msg)

			// Add horizontal rule after each message (except the last one)
			if i < len(day.Messages)-1 {
				_, _ = fmt.Fprintf(w, "---\n\n")
			}
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
