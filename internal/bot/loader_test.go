package bot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDefinitions(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bots.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefinitions(t *testing.T) {
	path := writeDefinitions(t, `
bots:
  - name: alpha
    mood: cheerful
    running: true
  - name: beta
`)

	bots, err := LoadDefinitions(path)
	require.NoError(t, err)
	require.Len(t, bots, 2)

	assert.Equal(t, "UP", bots["alpha"].Status())
	assert.Equal(t, "cheerful", bots["alpha"].Mood())

	assert.Equal(t, "DOWN", bots["beta"].Status())
	assert.Equal(t, "neutral", bots["beta"].Mood())
}

func TestLoadDefinitions_MissingFile(t *testing.T) {
	_, err := LoadDefinitions(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read bot definitions")
}

func TestLoadDefinitions_MissingName(t *testing.T) {
	path := writeDefinitions(t, `
bots:
  - mood: cheerful
`)

	_, err := LoadDefinitions(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid bot definitions")
}

func TestLoadDefinitions_DuplicateName(t *testing.T) {
	path := writeDefinitions(t, `
bots:
  - name: alpha
  - name: alpha
`)

	_, err := LoadDefinitions(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate bot name")
}

func TestLoadDefinitions_Empty(t *testing.T) {
	path := writeDefinitions(t, `bots: []`)

	bots, err := LoadDefinitions(path)
	require.NoError(t, err)
	assert.Empty(t, bots)
}
