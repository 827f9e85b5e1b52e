package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/slack-export/internal"
	"github.com/spf13/cobra"
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	rangeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var listCmd = &cobra.Command{
	Use:   "list <archive>",
	Short: "List conversations in an archive",
	Long:  `List every conversation directory of an export archive with its resolved label, day count and date range.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := internal.OpenArchive(args[0])
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}

		conversations := archive.Conversations()
		if len(conversations) == 0 {
			fmt.Println("No conversations found.")
			return nil
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("Found %d conversation(s)", len(conversations))))
		fmt.Println()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tID\tDAYS\tRANGE")
		for _, conv := range conversations {
			dates := conv.Dates()
			dateRange := "-"
			if len(dates) > 0 {
				dateRange = fmt.Sprintf("%s .. %s", dates[0], dates[len(dates)-1])
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				titleStyle.Render(conv.Name),
				idStyle.Render(conv.ID),
				countStyle.Render(fmt.Sprintf("%d", len(dates))),
				rangeStyle.Render(dateRange),
			)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
