package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScripted_Defaults(t *testing.T) {
	b := NewScripted("alpha", "", false)

	assert.Equal(t, "alpha", b.Name())
	assert.Equal(t, "DOWN", b.Status())
	assert.Equal(t, "neutral", b.Mood())
}

func TestHandleCommand_StartStop(t *testing.T) {
	b := NewScripted("alpha", "cheerful", false)

	require.NoError(t, b.HandleCommand("start"))
	assert.Equal(t, "UP", b.Status())

	require.NoError(t, b.HandleCommand("stop"))
	assert.Equal(t, "DOWN", b.Status())
}

func TestHandleCommand_SetMood(t *testing.T) {
	b := NewScripted("alpha", "neutral", true)

	require.NoError(t, b.HandleCommand("set mood excited"))
	assert.Equal(t, "excited", b.Mood())
}

func TestHandleCommand_SetMood_Empty(t *testing.T) {
	b := NewScripted("alpha", "neutral", true)

	err := b.HandleCommand("set mood   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mood must not be empty")
	assert.Equal(t, "neutral", b.Mood())
}

func TestHandleCommand_Unknown(t *testing.T) {
	b := NewScripted("alpha", "neutral", true)

	err := b.HandleCommand("fly to the moon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestHandleCommand_TrimsWhitespace(t *testing.T) {
	b := NewScripted("alpha", "neutral", false)

	require.NoError(t, b.HandleCommand("  start  "))
	assert.Equal(t, "UP", b.Status())
}
