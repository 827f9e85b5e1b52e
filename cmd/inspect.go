package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/iksnae/slack-export/internal"
	"github.com/spf13/cobra"
)

var inspectFormat string

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <archive> <conversation-id> <date>",
	Short: "Inspect the raw records of one day batch",
	Long: `Print the parsed message records of a single day batch without rendering
them. Useful for locating the record behind an unknown-tag failure.

Examples:
  slack-export inspect ./export general 2023-01-05
  slack-export inspect ./export general 2023-01-05 --format json`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := internal.OpenArchive(args[0])
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		conv, err := archive.Conversation(args[1])
		if err != nil {
			return err
		}

		records, err := archive.ReadDay(conv, args[2]+".json")
		if err != nil {
			return err
		}

		if inspectFormat == "json" {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		}

		for i, rec := range records {
			subtype := rec.Subtype
			if subtype == "" {
				subtype = "-"
			}
			fmt.Printf("%3d  ts=%s user=%s subtype=%s blocks=%d files=%d\n",
				i, rec.Ts, rec.User, subtype, len(rec.Blocks), len(rec.Files))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVar(&inspectFormat, "format", "table", "Output format (table, json)")
}
