package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hiresift/hiresift/internal/connectors/filesystem"
)

var importWatch bool

var importCmd = &cobra.Command{
	Use:   "import [path]",
	Short: "Import resume JSON files into the corpus",
	Long: `Imports resumes from a JSON file or from every .json file in a
directory. A file may hold a single resume object or an array of
resume objects; the document schema is free-form.

With --watch the command keeps running after the initial import and
applies file changes in the directory to the corpus as they happen.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVarP(&importWatch, "watch", "w", false,
		"keep watching the directory for changes")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	ctx := cmd.Context()

	var count int
	if info.IsDir() {
		count, err = corpusService.ImportDir(ctx, path)
	} else {
		if importWatch {
			return errors.New("--watch requires a directory")
		}
		count, err = corpusService.ImportFile(ctx, path)
	}
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Imported %d resumes\n", count)

	if importWatch {
		cmd.Printf("Watching %s for changes (Ctrl-C to stop)\n", path)
		watcher := filesystem.NewWatcher(path, corpusService)
		return watcher.Run(ctx)
	}

	return nil
}
