package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hiresift/hiresift/internal/adapters/driven/storage/memory"
	"github.com/hiresift/hiresift/internal/core/domain"
	"github.com/hiresift/hiresift/internal/core/services"
)

// setupTestServices wires the commands to in-memory services and
// returns the backing store plus a cleanup restoring the previous
// wiring.
func setupTestServices() (*memory.ResumeStore, func()) {
	prevSearch := searchService
	prevCorpus := corpusService

	store := memory.NewResumeStore()
	SetServices(services.NewSearchService(store), services.NewCorpusService(store))

	return store, func() {
		searchService = prevSearch
		corpusService = prevCorpus
	}
}

// seedResumes saves documents to the store in corpus order.
func seedResumes(t *testing.T, store *memory.ResumeStore, docs []map[string]any) {
	t.Helper()
	for i, fields := range docs {
		err := store.Save(context.Background(), &domain.Resume{
			ID:     fmt.Sprintf("r%d", i+1),
			URI:    fmt.Sprintf("/corpus/r%d.json", i+1),
			Fields: fields,
		})
		require.NoError(t, err)
	}
}

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "hiresift", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "search")
	assert.Contains(t, commandNames, "import")
	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "show")
	assert.Contains(t, commandNames, "mcp")
	assert.Contains(t, commandNames, "tui")
	assert.Contains(t, commandNames, "version")
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

func TestSetVersion(t *testing.T) {
	prev := version
	defer func() { version = prev }()

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)

	// Empty keeps the current value.
	SetVersion("")
	assert.Equal(t, "1.2.3", version)
}
