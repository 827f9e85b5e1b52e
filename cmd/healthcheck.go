package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/slack-export/internal"
	"github.com/spf13/cobra"
)

var (
	healthcheckVerbose bool
)

var (
	checkOKStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	checkFailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	checkInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck <archive>",
	Short: "Check that an archive renders end to end",
	Long: `Check the health of an export archive by verifying:
  • The identity tables load and cross-reference
  • Every conversation directory and day batch parses
  • Every message renders without unknown tags or missing identities

This command renders everything but writes nothing, so a passing archive is
guaranteed to export cleanly.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println(sectionStyle.Render("Archive Health Check"))
		fmt.Println()

		// Step 1: identity tables
		fmt.Println(checkInfoStyle.Render("Step 1: Loading identity tables..."))
		archive, err := internal.OpenArchive(args[0])
		if err != nil {
			fmt.Println(checkFailStyle.Render("✗ Failed to open archive"))
			return err
		}
		fmt.Println(checkOKStyle.Render("✓ Identity tables loaded"))
		fmt.Println()

		// Step 2: render every conversation
		fmt.Println(checkInfoStyle.Render("Step 2: Rendering conversations..."))
		assembler := internal.NewAssembler(archive)
		healthy := 0
		broken := 0
		for _, conv := range archive.Conversations() {
			doc, err := assembler.Assemble(&conv, nil)
			if err != nil {
				fmt.Printf("%s %s: %v\n", checkFailStyle.Render("✗"), conv.ID, err)
				broken++
				continue
			}
			healthy++
			if healthcheckVerbose {
				messages := 0
				for _, day := range doc.Days {
					messages += len(day.Messages)
				}
				fmt.Printf("%s %s (%d day(s), %d message(s))\n",
					checkOKStyle.Render("✓"), conv.Name, len(doc.Days), messages)
			}
		}
		fmt.Println()

		if broken > 0 {
			fmt.Println(checkFailStyle.Render(fmt.Sprintf("✗ %d of %d conversation(s) failed", broken, healthy+broken)))
			return fmt.Errorf("%d conversation(s) failed the health check", broken)
		}
		fmt.Println(checkOKStyle.Render(fmt.Sprintf("✓ All %d conversation(s) render cleanly", healthy)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
	healthcheckCmd.Flags().BoolVar(&healthcheckVerbose, "details", false, "Print per-conversation results")
}
