package cmd

import (
	"fmt"
	"os"

	"github.com/iksnae/slack-export/internal"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	version string = "dev"
	commit  string = "unknown"
	date    string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "slack-export",
	Short: "Render Slack export archives as readable documents",
	Long: `A CLI tool to turn a Slack workspace export into readable documents.

It reads the export's identity tables (users, channels, direct conversations)
and per-day message batches, resolves mentions and channel references to
display names, flattens rich text into plain lines, and writes one document
per conversation.

Quick Start:
  slack-export list <archive>              # List conversations in an export
  slack-export show <archive> <id>         # Render one conversation to stdout
  slack-export export <archive> ./out      # Export all conversations
  slack-export index <archive>             # Build a searchable message index

For detailed usage, see: https://github.com/iksnae/slack-export`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
