package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/dayout/config"
)

func resetConfig(t *testing.T) {
	t.Cleanup(func() { cfg = config.DefaultConfig() })
}

func TestValidateCommand(t *testing.T) {
	resetConfig(t)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"validate", "--scenes", t.TempDir()})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "3 scenes, 11 discoverable elements\n", out.String())
}

func TestRunRejectsUnknownPolicy(t *testing.T) {
	resetConfig(t)
	rootCmd.SetArgs([]string{"--policy", "tap"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config:")
}
