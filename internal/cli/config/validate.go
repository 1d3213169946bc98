package config

import (
	"fmt"
	"strings"

	"github.com/astkit-labs/astkit/pkg/lint"
)

// Validate checks the configuration for values the commands cannot act on.
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case "", "auto", "text", "markdown", "md", "json":
	default:
		return fmt.Errorf("unknown output format %q (want auto, text, markdown, or json)", c.OutputFormat)
	}

	if c.Lint != nil {
		for id, sev := range c.Lint.Severity {
			if _, ok := lint.ParseSeverity(sev); !ok {
				return fmt.Errorf("lint.severity.%s: unknown severity %q (want error, warning, info, or hint)", id, sev)
			}
		}
	}
	return nil
}

// ToLintConfig converts the yaml-shaped lint section into the runtime
// configuration the analyzer consumes.
func (c *Config) ToLintConfig() *lint.Config {
	out := lint.NewConfig()
	if c == nil || c.Lint == nil {
		return out
	}

	for _, id := range c.Lint.Disabled {
		out.Disable(strings.TrimSpace(id))
	}
	for id, sev := range c.Lint.Severity {
		if s, ok := lint.ParseSeverity(sev); ok {
			out.SetSeverity(id, s)
		}
	}
	for id, opts := range c.Lint.Rules {
		out.SetRuleOptions(id, opts)
	}
	return out
}
