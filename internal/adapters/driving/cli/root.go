// Package cli implements the hiresift command-line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hiresift/hiresift/internal/core/ports/driving"
	"github.com/hiresift/hiresift/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected by the composition root before Execute.
var (
	searchService driving.SearchService
	corpusService driving.CorpusService
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "hiresift",
	Short: "Boolean search over a resume corpus",
	Long: `hiresift answers boolean queries against a local corpus of
resume documents (JSON), returning the candidates whose text satisfies
the query expression.

Boolean search tips:
  - Simple keyword:      hiresift search Python
  - AND operator:        hiresift search 'Python AND Django'
  - OR operator:         hiresift search 'JavaScript OR TypeScript'
  - Grouped logic:       hiresift search '(Python OR Java) AND (AWS OR Azure)'
  - Quoted phrases:      hiresift search '"machine learning" AND Python'
  - Multi-word skills match with or without spaces: MachineLearning,
    machinelearning and (Machine AND Learning) are treated the same.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"print pipeline diagnostics to stderr")
}

// SetServices injects the core services used by the commands.
func SetServices(search driving.SearchService, corpus driving.CorpusService) {
	searchService = search
	corpusService = corpus
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
