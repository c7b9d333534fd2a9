package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the resume corpus",
	Long:  `Prints every resume in the corpus in import order.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

var listHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))

func runList(cmd *cobra.Command, _ []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	resumes, err := corpusService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list corpus: %w", err)
	}

	if len(resumes) == 0 {
		cmd.Println("Corpus is empty. Import resumes with: hiresift import <path>")
		return nil
	}

	header := fmt.Sprintf("%d resumes", len(resumes))
	if isTerminal() {
		header = listHeaderStyle.Render(header)
	}
	cmd.Println(header)
	cmd.Println()

	for i := range resumes {
		r := &resumes[i]
		name := r.Name()
		if name == "" {
			name = "Unknown Candidate"
		}
		cmd.Printf("  [%d] %s\n", r.Position+1, name)
		if contact := contactLine(r); contact != "" {
			cmd.Printf("      %s\n", contact)
		}
		cmd.Printf("      ID: %s  Source: %s\n", r.ID, r.URI)
	}

	return nil
}

// isTerminal reports whether stdout is attached to a terminal, so
// styled output is only emitted where it renders.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
