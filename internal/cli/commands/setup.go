package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/astkit-labs/astkit/internal/cli/config"
	"github.com/astkit-labs/astkit/internal/cli/output"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
}

// NewCommandContext assembles the config, logger, and renderer a command
// needs. Commands that lint construct their own driver on top.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
	}
}

// getConfig returns the current configuration.
// It uses config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	return &config.Config{
		Patterns:     []string{"./..."},
		OutputFormat: getEnvOrDefault("ASTKIT_OUTPUT", config.DefaultOutput),
		Verbose:      os.Getenv("ASTKIT_VERBOSE") == "true",
		DocsURL:      os.Getenv("ASTKIT_DOCS_URL"),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
