// Package commands_test provides tests for CLI command creation.
package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astkit-labs/astkit/internal/cli/config"
)

func TestNewCommandContext(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	cmd := &cobra.Command{Use: "test"}
	cmd.SetContext(context.Background())
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	cmdCtx := NewCommandContext(cmd)

	require.NotNil(t, cmdCtx.Cfg)
	require.NotNil(t, cmdCtx.Logger)
	require.NotNil(t, cmdCtx.Renderer)
}

func TestGetConfigFallback(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	t.Setenv("ASTKIT_OUTPUT", "")
	t.Setenv("ASTKIT_VERBOSE", "")
	t.Setenv("ASTKIT_DOCS_URL", "")

	cfg := getConfig()

	assert.Equal(t, []string{"./..."}, cfg.Patterns)
	assert.Equal(t, config.DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.DocsURL)
}

func TestGetConfigFallback_Env(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	t.Setenv("ASTKIT_OUTPUT", "json")
	t.Setenv("ASTKIT_VERBOSE", "true")
	t.Setenv("ASTKIT_DOCS_URL", "https://docs.example.com/rules")

	cfg := getConfig()

	assert.Equal(t, "json", cfg.OutputFormat)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "https://docs.example.com/rules", cfg.DocsURL)
}

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("ASTKIT_TEST_KEY", "")
	assert.Equal(t, "fallback", getEnvOrDefault("ASTKIT_TEST_KEY", "fallback"))

	t.Setenv("ASTKIT_TEST_KEY", "set")
	assert.Equal(t, "set", getEnvOrDefault("ASTKIT_TEST_KEY", "fallback"))
}
