package cmd

import (
	"fmt"

	"github.com/iksnae/slack-export/internal"
	"github.com/spf13/cobra"
)

var indexDBPath string

// indexCmd represents the index command
var indexCmd = &cobra.Command{
	Use:   "index <archive>",
	Short: "Build a searchable message index",
	Long: `Render every conversation of an archive and write the messages into a
SQLite database for searching with 'slack-export search'.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := internal.OpenArchive(args[0])
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}

		db, err := internal.OpenIndex(indexDBPath)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		assembler := internal.NewAssembler(archive)
		indexed := 0
		failed := 0
		for _, conv := range archive.Conversations() {
			doc, err := assembler.Assemble(&conv, nil)
			if err != nil {
				internal.LogError("Failed to render conversation %s: %v", conv.ID, err)
				failed++
				continue
			}
			if err := internal.IndexDocument(db, doc); err != nil {
				internal.LogError("Failed to index conversation %s: %v", conv.ID, err)
				failed++
				continue
			}
			indexed++
		}

		if failed > 0 {
			internal.PrintWarning(fmt.Sprintf("%d conversation(s) failed to index", failed))
		}
		internal.PrintSuccess(fmt.Sprintf("Indexed %d conversation(s) into %s", indexed, indexDBPath))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.Flags().StringVar(&indexDBPath, "db", "messages.db", "Path of the index database")
}
