package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/slack-export/internal"
	"github.com/spf13/cobra"
)

var showDate string

var (
	// Styles for show command
	conversationHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("212")).
				Padding(0, 1).
				MarginBottom(1)

	dayHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Padding(0, 1)
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <archive> <conversation-id>",
	Short: "Render one conversation to stdout",
	Long: `Render a single conversation of an archive and print it, grouped by day.
Use 'slack-export list' to see available conversation ids.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := internal.OpenArchive(args[0])
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}

		conv, err := archive.Conversation(args[1])
		if err != nil {
			return fmt.Errorf("%w (use 'slack-export list' to see available conversations)", err)
		}

		var dates []string
		if showDate != "" {
			dates = []string{showDate}
		}

		doc, err := internal.NewAssembler(archive).Assemble(conv, dates)
		if err != nil {
			return err
		}

		fmt.Println(conversationHeaderStyle.Render(doc.Name))
		for _, day := range doc.Days {
			fmt.Println(dayHeaderStyle.Render(day.Date))
			fmt.Println()
			fmt.Println(day.Text())
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showDate, "date", "", "Render only this date (e.g. 2023-01-05)")
}
