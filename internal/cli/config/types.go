// Package config loads astkit's configuration from astkit.yaml, environment
// variables, and command line flags, in increasing order of precedence.
package config

// LintConfig is the lint section of astkit.yaml.
type LintConfig struct {
	// Disabled lists rule IDs that never run.
	Disabled []string `koanf:"disabled"`
	// Severity overrides the reported severity per rule ID.
	Severity map[string]string `koanf:"severity"`
	// Rules carries per-rule options, keyed by rule ID.
	Rules map[string]map[string]any `koanf:"rules"`
}

// Config holds all CLI configuration options.
type Config struct {
	Patterns     []string    `koanf:"patterns"`
	Tests        bool        `koanf:"tests"`
	Verbose      bool        `koanf:"verbose"`
	OutputFormat string      `koanf:"output"`
	DocsURL      string      `koanf:"docs_url"`
	Lint         *LintConfig `koanf:"lint"`

	// ProjectRoot is the directory the config file was found in, or the
	// working directory when there is none. Packages load relative to it.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultOutput = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)
