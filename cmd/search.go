package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/slack-export/internal"
	"github.com/spf13/cobra"
)

var searchDBPath string

var (
	matchMetaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search an index built with 'slack-export index'",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := internal.OpenIndex(searchDBPath)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		results, err := internal.SearchIndex(db, args[0])
		if err != nil {
			return err
		}
		if len(results) == 0 {
			fmt.Println("No matches.")
			return nil
		}

		for _, r := range results {
			fmt.Println(matchMetaStyle.Render(fmt.Sprintf("%s %s #%d", r.Name, r.Date, r.Position)))
			fmt.Println(r.Body)
			fmt.Println()
		}
		fmt.Printf("%d match(es)\n", len(results))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVar(&searchDBPath, "db", "messages.db", "Path of the index database")
}
