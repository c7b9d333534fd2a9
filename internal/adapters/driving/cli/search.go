package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hiresift/hiresift/internal/boolquery"
	"github.com/hiresift/hiresift/internal/core/domain"
)

var (
	searchLimit   int
	searchJSON    bool
	searchWorkers int
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the resume corpus",
	Long: `Scans every resume in the corpus and prints the candidates whose
text satisfies the boolean query expression. Matching is boolean, not
ranked: results keep corpus order.

Examples:
  hiresift search 'Python AND (Django OR Flask)'
  hiresift search '"Machine Learning" AND (Python OR R)'
  hiresift search 'AWS OR Azure'`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (0 = all)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().IntVar(&searchWorkers, "workers", 0, "scan worker count (0 = number of CPUs)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	if searchService == nil {
		return errors.New("search service not configured")
	}

	opts := domain.SearchOptions{
		Limit:   searchLimit,
		Workers: searchWorkers,
	}

	report, err := searchService.Search(cmd.Context(), query, opts)
	if err != nil {
		var parseErr *boolquery.ParseError
		if errors.As(err, &parseErr) {
			// User-correctable, not a program failure
			return fmt.Errorf("%s", parseErr.Error())
		}
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, report)
	}
	return outputSearchTable(cmd, report)
}

func outputSearchJSON(cmd *cobra.Command, report *domain.SearchReport) error {
	docs := make([]map[string]any, len(report.Matches))
	for i := range report.Matches {
		docs[i] = report.Matches[i].Fields
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, report *domain.SearchReport) error {
	if len(report.Matches) == 0 {
		cmd.Println("No resumes matched your search query.")
		cmd.Println()
		cmd.Println("Tips to improve results:")
		cmd.Println("  - Use broader terms")
		cmd.Println("  - Try using OR instead of AND")
		cmd.Println("  - Check for typos in your search query")
		return nil
	}

	cmd.Printf("Found %d matching candidates (scanned %d)\n", len(report.Matches), report.Scanned)
	cmd.Println()

	for i := range report.Matches {
		r := &report.Matches[i]

		name := r.Name()
		if name == "" {
			name = "Unknown Candidate"
		}
		cmd.Printf("  [%d] %s\n", i+1, name)

		contact := contactLine(r)
		if contact != "" {
			cmd.Printf("      %s\n", contact)
		}
		if skills := skillsPreview(r, 5); skills != "" {
			cmd.Printf("      Skills: %s\n", skills)
		}
		cmd.Printf("      ID: %s\n", r.ID)
		cmd.Println()
	}

	if len(report.Skipped) > 0 {
		cmd.Printf("Skipped %d unreadable resumes: %s\n",
			len(report.Skipped), strings.Join(report.Skipped, ", "))
	}

	return nil
}

// contactLine joins the available contact fields for one result row.
func contactLine(r *domain.Resume) string {
	var parts []string
	if e := r.Email(); e != "" {
		parts = append(parts, e)
	}
	if p := r.Phone(); p != "" {
		parts = append(parts, p)
	}
	if l := r.Location(); l != "" {
		parts = append(parts, l)
	}
	return strings.Join(parts, " | ")
}

// skillsPreview returns up to max skills, comma-joined, with an
// ellipsis when truncated.
func skillsPreview(r *domain.Resume, max int) string {
	skills := r.Skills()
	if len(skills) == 0 {
		return ""
	}
	if len(skills) > max {
		return strings.Join(skills[:max], ", ") + "..."
	}
	return strings.Join(skills, ", ")
}
