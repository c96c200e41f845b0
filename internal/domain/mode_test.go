package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseModes(t *testing.T) {
	t.Run("single mode", func(t *testing.T) {
		modes, unknown := ParseModes([]string{"exec"})
		assert.Empty(t, unknown)
		assert.Equal(t, []Mode{ModeExec}, modes)
	})

	t.Run("all expands in rule order", func(t *testing.T) {
		modes, unknown := ParseModes([]string{"all"})
		assert.Empty(t, unknown)
		assert.Equal(t, AllModes, modes)
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		modes, unknown := ParseModes([]string{"web", "web", "exec"})
		assert.Empty(t, unknown)
		assert.Equal(t, []Mode{ModeExec, ModeWeb}, modes)
	})

	t.Run("order is fixed regardless of token order", func(t *testing.T) {
		modes, _ := ParseModes([]string{"file", "thinking", "exec"})
		assert.Equal(t, []Mode{ModeExec, ModeThinking, ModeFile}, modes)
	})

	t.Run("unknown tokens are collected sorted", func(t *testing.T) {
		modes, unknown := ParseModes([]string{"zzz", "exec", "foo"})
		assert.Equal(t, []string{"foo", "zzz"}, unknown)
		assert.Equal(t, []Mode{ModeExec}, modes)
	})
}

func TestIsValidMode(t *testing.T) {
	for _, name := range ValidModeNames {
		assert.True(t, IsValidMode(name), name)
	}
	assert.False(t, IsValidMode("foo"))
	assert.False(t, IsValidMode("EXEC"))
}
