package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iksnae/slack-export/internal"
	"github.com/iksnae/slack-export/internal/export"
	"github.com/spf13/cobra"
)

var (
	format     string
	forceWrite bool
	filterPath string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <archive> [out]",
	Short: "Export conversations to files",
	Long: `Export every conversation of an archive to the output directory
(default ./out), one document per conversation, in the chosen format
(txt, md, json, jsonl, yaml).

An optional YAML filter file restricts the export to selected conversations
and dates:

  chats:
    D0000000001:
      - 2023-01-05
      - 2023-01-06
  copy-files: true

Existing documents are skipped unless --force is given. A conversation that
fails to render is reported and skipped; the rest of the export continues.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		outDir := "./out"
		if len(args) > 1 {
			outDir = args[1]
		}

		archive, err := internal.OpenArchive(args[0])
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}

		filter, err := internal.LoadFilter(filterPath)
		if err != nil {
			return err
		}

		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		// Ensure output directory exists
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}

		assembler := internal.NewAssembler(archive)
		exported := 0
		failed := 0

		for _, conv := range archive.Conversations() {
			dates, ok := filter.Dates(conv.ID)
			if !ok {
				internal.LogDebug("Skipping conversation %s (not in filter)", conv.ID)
				continue
			}

			path := filepath.Join(outDir, fmt.Sprintf("%s.%s", conv.Name, exporter.Extension()))
			if _, err := os.Stat(path); err == nil {
				if !forceWrite {
					internal.LogWarn("Skip existing file %s", path)
					continue
				}
				internal.LogWarn("Overriding %s", path)
			}

			internal.LogInfo("Exporting conversation %s", conv.Name)
			doc, err := assembler.Assemble(&conv, dates)
			if err != nil {
				internal.LogError("Failed to render conversation %s: %v", conv.ID, err)
				failed++
				continue
			}

			if err := writeDocument(exporter, doc, path); err != nil {
				internal.LogError("Failed to write %s: %v", path, err)
				failed++
				continue
			}
			exported++

			if filter.ShouldCopyFiles() {
				if err := archive.CopyAttachments(&conv, outDir); err != nil {
					internal.LogWarn("Failed to copy attachments for %s: %v", conv.ID, err)
				}
			}
		}

		if failed > 0 {
			internal.PrintWarning(fmt.Sprintf("%d conversation(s) failed to export", failed))
		}
		internal.PrintSuccess(fmt.Sprintf("Export complete: %d conversation(s) exported to %s", exported, outDir))
		return nil
	},
}

// writeDocument exports one document to a file.
func writeDocument(exporter export.Exporter, doc *internal.Document, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := exporter.Export(doc, file); err != nil {
		_ = file.Close()
		return &internal.ExportError{Format: exporter.Extension(), Path: path, Err: err}
	}
	return file.Close()
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&format, "format", "f", "txt", "Export format (txt, md, json, jsonl, yaml)")
	exportCmd.Flags().BoolVar(&forceWrite, "force", false, "Overwrite existing documents")
	exportCmd.Flags().StringVar(&filterPath, "filter", "", "Path to YAML filter file")
}
