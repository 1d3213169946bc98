package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/astkit-labs/astkit/internal/cli/output"
)

// starterConfig is the astkit.yaml written by init, with the defaults
// spelled out and the lint block documented.
const starterConfig = `# astkit configuration.
# Precedence: flags > ASTKIT_* environment variables > this file > defaults.

# Package patterns to analyze.
patterns:
  - ./...

# Include test files and packages.
tests: false

# Output format: auto, text, markdown, or json.
# auto picks text on a terminal and markdown when piped.
output: auto

lint:
  # Rule IDs to turn off entirely.
  disabled: []
  #  - CV02

  # Per-rule severity overrides: error, warning, info, or hint.
  severity: {}
  #  ST01: error

  # Rule-specific options. Run 'astkit rules <rule-id>' for each rule's keys.
  rules: {}
  #  MD01:
  #    threshold: 25
`

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a starter astkit.yaml",
		Long: `Write a starter astkit.yaml with the default settings spelled out.

The generated file documents the lint block: disabling rules, overriding
severities, and passing rule-specific options.`,
		Example: `  # Initialize in the current directory
  astkit init

  # Initialize in another directory
  astkit init ./tools

  # Force overwrite existing config
  astkit init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			cfg := getConfig()
			mode := output.Mode(cfg.OutputFormat)
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

			return runInit(r, dir, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")

	return cmd
}

func runInit(r *output.Renderer, dir string, force bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, "astkit.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("astkit.yaml already exists. Use --force to overwrite")
	}

	if err := os.WriteFile(configPath, []byte(starterConfig), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}

	r.Success("astkit.yaml written")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  astkit vet          Analyze the module")
	r.Println("  astkit vet --watch  Relint on every save")
	r.Println("  astkit rules        Browse the rule documentation")

	return nil
}
