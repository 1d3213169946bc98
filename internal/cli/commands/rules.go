package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/astkit-labs/astkit/internal/cli/output"
	"github.com/astkit-labs/astkit/pkg/lint"
	_ "github.com/astkit-labs/astkit/pkg/lint/rules" // register rules
)

// RulesOptions holds options for the rules command.
type RulesOptions struct {
	Group   string // Filter by group
	Type    string // Filter by type: source, module
	Verbose bool   // Show full documentation
	Format  string // Output format
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	opts := &RulesOptions{}
	cmd := &cobra.Command{
		Use:   "rules [rule-id]",
		Short: "List available lint rules",
		Long: `List all available lint rules with their documentation.

Rules are organized by type (source or module) and group (e.g., convention,
structure). Use --verbose to see full documentation including examples and
fix guidance.

Output adapts to environment:
  - Terminal: Styled output with colors
  - Piped/Scripted: Markdown format
  - JSON: Machine-readable format`,
		Example: `  # List all rules
  astkit rules

  # Show details for a specific rule
  astkit rules CV01

  # List source rules only
  astkit rules --type source

  # List rules in the convention group
  astkit rules --group convention

  # Show full documentation
  astkit rules -V

  # Output as JSON
  astkit rules --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return showRule(cmd, args[0], opts)
			}
			return listRules(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Group, "group", "", "Filter by group (e.g., convention, structure)")
	cmd.Flags().StringVar(&opts.Type, "type", "", "Filter by type: source, module")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "V", false, "Show full documentation")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Output format: text, markdown, json")

	return cmd
}

func ruleInfos() []lint.RuleInfo {
	defs := lint.AllRules()
	infos := make([]lint.RuleInfo, 0, len(defs))
	for _, def := range defs {
		infos = append(infos, lint.GetRuleInfo(lint.WrapRuleDef(def)))
	}
	return infos
}

func listRules(cmd *cobra.Command, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	infos := ruleInfos()

	// Apply filters
	filtered := make([]lint.RuleInfo, 0, len(infos))
	for _, info := range infos {
		if opts.Group != "" && !strings.EqualFold(info.Group, opts.Group) {
			continue
		}
		if opts.Type != "" && !strings.EqualFold(info.Type, opts.Type) {
			continue
		}
		filtered = append(filtered, info)
	}

	// Sort by type, then group, then ID
	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].Type != filtered[j].Type {
			return filtered[i].Type < filtered[j].Type
		}
		if filtered[i].Group != filtered[j].Group {
			return filtered[i].Group < filtered[j].Group
		}
		return filtered[i].ID < filtered[j].ID
	})

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return listRulesJSON(r, filtered)
	case output.ModeMarkdown:
		return listRulesMarkdown(r, filtered, opts)
	default:
		return listRulesText(r, filtered, opts)
	}
}

func listRulesText(r *output.Renderer, infos []lint.RuleInfo, opts *RulesOptions) error {
	styles := r.Styles()

	sourceCount := 0
	moduleCount := 0
	for _, info := range infos {
		if info.Type == "module" {
			moduleCount++
		} else {
			sourceCount++
		}
	}

	r.Println(styles.Header1.Render(fmt.Sprintf("Lint Rules (%d source, %d module)", sourceCount, moduleCount)))
	r.Println("")

	if opts.Verbose {
		for _, info := range infos {
			renderRuleText(r, info)
			r.Println("")
		}
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(r.Writer())
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"ID", "Name", "Group", "Severity"})
	for _, info := range infos {
		tw.AppendRow(table.Row{
			info.ID,
			info.Name,
			info.Group,
			info.DefaultSeverity.String(),
		})
	}
	tw.Render()

	r.Println("")
	r.Println(styles.Muted.Render("Use 'astkit rules <rule-id>' for detailed documentation"))
	return nil
}

func listRulesMarkdown(r *output.Renderer, infos []lint.RuleInfo, opts *RulesOptions) error {
	r.Println("# Lint Rules")
	r.Println("")

	currentGroup := ""
	for _, info := range infos {
		groupKey := info.Type + "/" + info.Group
		if groupKey != currentGroup {
			currentGroup = groupKey
			r.Printf("## %s (%s)\n", capitalizeFirst(info.Group), info.Type)
			r.Println("")
		}
		r.Printf("- **%s** %s (%s): %s\n", info.ID, info.Name, info.DefaultSeverity, truncateOneLine(info.Description))
		if opts.Verbose && info.Rationale != "" {
			r.Printf("  - %s\n", truncateOneLine(info.Rationale))
		}
	}
	return nil
}

// RulesJSONOutput is the JSON shape of the rules listing.
type RulesJSONOutput struct {
	Rules []lint.RuleInfo `json:"rules"`
	Count struct {
		Source int `json:"source"`
		Module int `json:"module"`
		Total  int `json:"total"`
	} `json:"count"`
}

func listRulesJSON(r *output.Renderer, infos []lint.RuleInfo) error {
	out := RulesJSONOutput{Rules: infos}
	for _, info := range infos {
		if info.Type == "module" {
			out.Count.Module++
		} else {
			out.Count.Source++
		}
	}
	out.Count.Total = len(infos)
	return r.JSON(out)
}

func showRule(cmd *cobra.Command, ruleID string, opts *RulesOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer
	if opts.Format != "" {
		r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(opts.Format))
	}

	ruleID = strings.ToUpper(strings.TrimSpace(ruleID))
	var found *lint.RuleInfo
	for _, info := range ruleInfos() {
		if info.ID == ruleID {
			found = &info
			break
		}
	}
	if found == nil {
		return fmt.Errorf("unknown rule: %s (run 'astkit rules' to list available rules)", ruleID)
	}

	switch r.EffectiveMode() {
	case output.ModeJSON:
		return r.JSON(found)
	case output.ModeMarkdown:
		renderRuleMarkdown(r, *found)
		return nil
	default:
		renderRuleText(r, *found)
		return nil
	}
}

func renderRuleText(r *output.Renderer, info lint.RuleInfo) {
	styles := r.Styles()

	r.Println(styles.Header1.Render(fmt.Sprintf("%s: %s", info.ID, info.Name)))
	r.Println("")
	r.Printf("Type: %s  Group: %s  Severity: %s\n",
		info.Type, info.Group, getSeverityStyle(styles, info.DefaultSeverity).Render(info.DefaultSeverity.String()))
	r.Println("")
	r.Println(info.Description)

	if info.Rationale != "" {
		r.Println("")
		r.Println(styles.Header2.Render("Why This Matters"))
		r.Println(info.Rationale)
	}
	if info.BadExample != "" {
		r.Println("")
		r.Println(styles.Header2.Render("Bad Example"))
		r.Println(info.BadExample)
	}
	if info.GoodExample != "" {
		r.Println("")
		r.Println(styles.Header2.Render("Good Example"))
		r.Println(info.GoodExample)
	}
	if info.Fix != "" {
		r.Println("")
		r.Println(styles.Header2.Render("How to Fix"))
		r.Println(info.Fix)
	}
	if len(info.ConfigKeys) > 0 {
		r.Println("")
		r.Println(styles.Header2.Render("Configuration"))
		for _, key := range info.ConfigKeys {
			r.Printf("  lint.rules.%s.%s\n", info.ID, key)
		}
	}
	r.Println("")
	r.Println(styles.Muted.Render("Docs: " + lint.BuildDocURL(info.ID)))
}

func renderRuleMarkdown(r *output.Renderer, info lint.RuleInfo) {
	r.Printf("# %s: %s\n", info.ID, info.Name)
	r.Println("")
	r.Printf("**Type:** %s | **Group:** %s | **Severity:** %s\n", info.Type, info.Group, info.DefaultSeverity)
	r.Println("")
	r.Println(info.Description)

	if info.Rationale != "" {
		r.Println("")
		r.Println("## Why This Matters")
		r.Println("")
		r.Println(info.Rationale)
	}
	if info.BadExample != "" {
		r.Println("")
		r.Println("## Bad Example")
		r.Println("")
		r.Println("```go")
		r.Println(info.BadExample)
		r.Println("```")
	}
	if info.GoodExample != "" {
		r.Println("")
		r.Println("## Good Example")
		r.Println("")
		r.Println("```go")
		r.Println(info.GoodExample)
		r.Println("```")
	}
	if info.Fix != "" {
		r.Println("")
		r.Println("## How to Fix")
		r.Println("")
		r.Println(info.Fix)
	}
	if len(info.ConfigKeys) > 0 {
		r.Println("")
		r.Println("## Configuration")
		r.Println("")
		for _, key := range info.ConfigKeys {
			r.Printf("- `lint.rules.%s.%s`\n", info.ID, key)
		}
	}
	r.Println("")
	r.Printf("Docs: %s\n", lint.BuildDocURL(info.ID))
}

func truncateOneLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func getSeverityStyle(styles *output.Styles, sev lint.Severity) lipgloss.Style {
	switch sev {
	case lint.SeverityError:
		return styles.Error
	case lint.SeverityWarning:
		return styles.Warning
	case lint.SeverityInfo:
		return styles.Info
	default:
		return styles.Muted
	}
}
