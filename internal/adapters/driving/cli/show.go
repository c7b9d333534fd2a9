package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one resume in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output the raw document as JSON")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	resume, err := corpusService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("get resume: %w", err)
	}

	if showJSON {
		data, err := json.MarshalIndent(resume.Fields, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal resume: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	name := resume.Name()
	if name == "" {
		name = "Unknown Candidate"
	}
	cmd.Printf("%s\n", name)
	if contact := contactLine(resume); contact != "" {
		cmd.Printf("%s\n", contact)
	}
	cmd.Println()

	if skills := resume.Skills(); len(skills) > 0 {
		cmd.Printf("Skills: %s\n", strings.Join(skills, ", "))
	}

	// Remaining sections are free-form; print them as indented JSON so
	// nothing in the document is hidden.
	extra := make(map[string]any)
	for k, v := range resume.Fields {
		switch k {
		case "name", "email", "phone", "location", "skills":
		default:
			extra[k] = v
		}
	}
	if len(extra) > 0 {
		data, err := json.MarshalIndent(extra, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal resume: %w", err)
		}
		cmd.Println(string(data))
	}

	return nil
}
