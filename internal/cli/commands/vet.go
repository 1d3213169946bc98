package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/astkit-labs/astkit/internal/cli/config"
	"github.com/astkit-labs/astkit/internal/cli/output"
	"github.com/astkit-labs/astkit/internal/driver"
	"github.com/astkit-labs/astkit/pkg/lint"
	_ "github.com/astkit-labs/astkit/pkg/lint/rules" // register rules
)

// VetOptions holds options for the vet command.
type VetOptions struct {
	Format   string   // Output format: text, markdown, json
	Disable  []string // Rule IDs to disable
	Rules    []string // Run only specific rules
	Severity string   // Minimum severity: error, warning, info, hint
	Tests    bool     // Include test files and packages
	Watch    bool     // Relint on file changes
}

// NewVetCommand creates the vet command.
func NewVetCommand() *cobra.Command {
	opts := &VetOptions{}
	cmd := &cobra.Command{
		Use:   "vet [patterns]",
		Short: "Run lint rules on Go packages",
		Long: `Analyze Go packages for convention, structure, and reference issues.

Loads the packages matched by the given patterns (./... by default), runs
the registered rules, and reports findings. Rules can be configured in
astkit.yaml, and single findings silenced with //astkit:disable directives.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # Vet the current module
  astkit vet

  # Vet specific packages
  astkit vet ./internal/... ./cmd/...

  # Output as JSON
  astkit vet --format json

  # Disable specific rules
  astkit vet --disable CV01,ST02

  # Only report errors
  astkit vet --severity error

  # Relint on every save
  astkit vet --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVet(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")
	cmd.Flags().StringSliceVar(&opts.Disable, "disable", nil, "Rule IDs to disable")
	cmd.Flags().StringSliceVar(&opts.Rules, "rule", nil, "Run only specific rules")
	cmd.Flags().StringVar(&opts.Severity, "severity", "hint", "Minimum severity: error, warning, info, hint")
	cmd.Flags().BoolVar(&opts.Tests, "tests", false, "Include test files and packages")
	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Relint whenever a Go file changes")

	return cmd
}

func runVet(cmd *cobra.Command, args []string, opts *VetOptions) error {
	cmdCtx := NewCommandContext(cmd)
	cfg := cmdCtx.Cfg
	r := cmdCtx.Renderer

	// Override renderer if format flag is set
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	if cfg.DocsURL != "" {
		lint.SetDocsBaseURL(cfg.DocsURL)
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Patterns
	}

	d := driver.New(driver.Options{
		Patterns: patterns,
		Dir:      cfg.ProjectRoot,
		Tests:    opts.Tests || cfg.Tests,
		Rules:    splitRuleIDs(opts.Rules),
		Config:   buildLintConfig(cfg, opts),
		Logger:   cmdCtx.Logger,
	})

	threshold, ok := lint.ParseSeverity(opts.Severity)
	if !ok {
		threshold = lint.SeverityHint
	}

	if opts.Watch {
		_, _ = fmt.Fprintln(r.ErrWriter(), "watching for changes (ctrl-c to stop)")
		return d.Watch(cmd.Context(), func(res *driver.Result) {
			res.FilterSeverity(threshold)
			renderVetResult(r, res)
		})
	}

	res, err := d.Run(cmd.Context())
	if err != nil {
		return err
	}
	res.FilterSeverity(threshold)

	renderVetResult(r, res)

	// Exit with code 1 if issues found
	if res.ExitCode() != 0 {
		return fmt.Errorf("vet issues found")
	}
	return nil
}

// buildLintConfig layers CLI flags over the project configuration.
func buildLintConfig(cfg *config.Config, opts *VetOptions) *lint.Config {
	lintCfg := cfg.ToLintConfig()

	// Apply CLI overrides (higher precedence)
	for _, id := range opts.Disable {
		lintCfg.Disable(strings.TrimSpace(id))
	}

	return lintCfg
}

func splitRuleIDs(ids []string) []string {
	var out []string
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}

func renderVetResult(r *output.Renderer, res *driver.Result) {
	if r.EffectiveMode() == output.ModeJSON {
		_ = r.JSON(res)
		return
	}

	renderLoadErrors(r, res)

	if len(res.Findings) == 0 {
		if len(res.LoadErrors) == 0 {
			r.Success("No issues found")
		}
		renderSuppressedNote(r, res)
		return
	}

	if r.EffectiveMode() == output.ModeMarkdown {
		renderFindingsMarkdown(r, res)
	} else {
		renderFindingsText(r, res)
	}
	renderSummary(r, res)
}

func renderLoadErrors(r *output.Renderer, res *driver.Result) {
	if len(res.LoadErrors) == 0 {
		return
	}
	styles := r.Styles()
	r.Println(styles.Error.Render(fmt.Sprintf("%d load errors:", len(res.LoadErrors))))
	for _, e := range res.LoadErrors {
		r.Println("  " + e)
	}
	r.Println("")
}

// renderFindingsText groups findings by file with a styled header line.
func renderFindingsText(r *output.Renderer, res *driver.Result) {
	styles := r.Styles()

	currentFile := ""
	for _, f := range res.Findings {
		file := f.File
		if file == "" {
			// Module-level findings carry only a package path.
			file = f.Package
		}
		if file != currentFile {
			if currentFile != "" {
				r.Println("")
			}
			currentFile = file
			r.Println(styles.FilePath.Render(file))
		}

		loc := fmt.Sprintf("%d:%d", f.Line, f.Column)
		if f.Line == 0 {
			loc = "-"
		}
		r.Printf("  %s  %s  %s  %s\n",
			styles.Muted.Render(fmt.Sprintf("%-7s", loc)),
			severityLabel(r, f.Severity),
			styles.Bold.Render(f.RuleID),
			f.Message,
		)
		for _, rel := range f.Related {
			r.Printf("           %s\n",
				styles.Muted.Render(fmt.Sprintf("%s:%d:%d: %s", rel.File, rel.Line, rel.Column, rel.Message)))
		}
	}
	r.Println("")
}

func renderFindingsMarkdown(r *output.Renderer, res *driver.Result) {
	r.Println("# Vet Findings")
	r.Println("")

	currentFile := ""
	for _, f := range res.Findings {
		file := f.File
		if file == "" {
			file = f.Package
		}
		if file != currentFile {
			currentFile = file
			r.Println("## " + file)
			r.Println("")
		}
		loc := fmt.Sprintf("%d:%d", f.Line, f.Column)
		if f.Line == 0 {
			loc = "-"
		}
		r.Printf("- **%s** `%s` %s %s\n", f.RuleID, f.Severity, loc, f.Message)
	}
	r.Println("")
}

func renderSummary(r *output.Renderer, res *driver.Result) {
	summaryParts := []string{fmt.Sprintf("%d issues", len(res.Findings))}
	if n := res.Counts["error"]; n > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d errors", n))
	}
	if n := res.Counts["warning"]; n > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d warnings", n))
	}
	if n := res.Counts["info"]; n > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d info", n))
	}
	if n := res.Counts["hint"]; n > 0 {
		summaryParts = append(summaryParts, fmt.Sprintf("%d hints", n))
	}
	r.Printf("Summary: %s in %d packages\n", strings.Join(summaryParts, ", "), res.Packages)
	renderSuppressedNote(r, res)
}

func renderSuppressedNote(r *output.Renderer, res *driver.Result) {
	if res.Suppressed > 0 {
		r.Println(r.Styles().Muted.Render(fmt.Sprintf("%d findings suppressed by directives", res.Suppressed)))
	}
}

func severityLabel(r *output.Renderer, severity string) string {
	styles := r.Styles()
	switch severity {
	case "error":
		return styles.Error.Render("error  ")
	case "warning":
		return styles.Warning.Render("warning")
	case "info":
		return styles.Info.Render("info   ")
	case "hint":
		return styles.Muted.Render("hint   ")
	default:
		return styles.Muted.Render(severity)
	}
}
