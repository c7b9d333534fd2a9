package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowCmd_Use(t *testing.T) {
	assert.Equal(t, "show [id]", showCmd.Use)
}

func TestShowCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := execute(t, "show")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestShowCmd_PrintsResume(t *testing.T) {
	store, cleanup := setupTestServices()
	defer cleanup()
	seedResumes(t, store, []map[string]any{
		{
			"name":      "Ada",
			"email":     "ada@example.com",
			"skills":    []any{"Python", "Django"},
			"education": "Mathematics",
		},
	})

	out, err := execute(t, "show", "r1")

	require.NoError(t, err)
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, "ada@example.com")
	assert.Contains(t, out, "Skills: Python, Django")
	assert.Contains(t, out, `"education": "Mathematics"`)
}

func TestShowCmd_JSONOutput(t *testing.T) {
	store, cleanup := setupTestServices()
	defer cleanup()
	defer func() { showJSON = false }()
	seedResumes(t, store, []map[string]any{
		{"name": "Ada"},
	})

	out, err := execute(t, "show", "--json", "r1")

	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Ada"`)
}

func TestShowCmd_NotFound(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "show", "absent")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
