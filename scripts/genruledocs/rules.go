package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/astkit-labs/astkit/pkg/lint"
	_ "github.com/astkit-labs/astkit/pkg/lint/rules"
)

// sourceGroupDescriptions provides human-readable descriptions for source rule groups.
var sourceGroupDescriptions = map[string]string{
	"aliasing":   "Rules about identifier naming and receiver conventions.",
	"convention": "Rules about Go coding conventions and API usage.",
	"references": "Rules about value and result usage.",
	"structure":  "Rules about control flow structure and correctness.",
}

// moduleGroupDescriptions provides human-readable descriptions for module rule groups.
var moduleGroupDescriptions = map[string]string{
	"module": "Rules about package dependencies and module organization.",
}

// generateRuleDocs generates all rule documentation files.
func generateRuleDocs(outDir string) error {
	log.Printf("Generating rule docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Collect metadata for every registered rule
	var sourceRules, moduleRules []lint.RuleInfo
	for _, def := range lint.AllRules() {
		info := lint.GetRuleInfo(lint.WrapRuleDef(def))
		switch info.Type {
		case "module":
			moduleRules = append(moduleRules, info)
		default:
			sourceRules = append(sourceRules, info)
		}
	}

	// Generate index page
	if err := generateRuleIndex(outDir, len(sourceRules), len(moduleRules)); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	// Generate source rules page
	if err := generateSourceRulesPage(outDir, sourceRules); err != nil {
		return err
	}
	log.Printf("  Generated source-rules.md")

	// Generate module rules page
	if err := generateModuleRulesPage(outDir, moduleRules); err != nil {
		return err
	}
	log.Printf("  Generated module-rules.md")

	return nil
}

// generateRuleIndex generates the main linting overview page.
func generateRuleIndex(outDir string, sourceCount, moduleCount int) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Lint Rules", "Source and module lint rules for astkit")
	w.GeneratedMarker()

	w.Header(1, "Lint Rules")
	w.Paragraph(fmt.Sprintf("astkit includes **%d source rules** and **%d module rules**.", sourceCount, moduleCount))

	w.Header(2, "Rule Types")
	w.BulletList([]string{
		Bold("Source Rules") + ": Analyze individual files using the syntax tree and type information",
		Bold("Module Rules") + ": Analyze the whole package load, including the import graph",
	})

	w.Header(2, "Severity Levels")
	w.Table(
		[]string{"Severity", "Description"},
		[][]string{
			{InlineCode("error"), "Critical issue that should be fixed"},
			{InlineCode("warning"), "Potential issue that should be reviewed"},
			{InlineCode("info"), "Informational feedback"},
			{InlineCode("hint"), "Suggestion for improvement"},
		},
	)

	w.Header(2, "Configuration")
	w.Paragraph("Rules can be configured in `astkit.yaml`:")
	w.CodeBlock("yaml", `lint:
  disabled:
    - CV02               # disable rule
  severity:
    ST01: error          # override severity
  rules:
    MD01:
      threshold: 25      # rule-specific option`)

	w.Header(2, "Rule Categories")

	w.Header(3, "Source Rules")
	w.Table(
		[]string{"Category", "Prefix", "Description"},
		[][]string{
			{"[Aliasing](/rules/source-rules#aliasing)", "AL", "Identifier and receiver naming"},
			{"[Convention](/rules/source-rules#convention)", "CV", "Go coding conventions"},
			{"[References](/rules/source-rules#references)", "RF", "Value and result usage"},
			{"[Structure](/rules/source-rules#structure)", "ST", "Control flow structure"},
		},
	)

	w.Header(3, "Module Rules")
	w.Table(
		[]string{"Category", "Prefix", "Description"},
		[][]string{
			{"[Module](/rules/module-rules#module)", "MD", "Package dependencies and fanout"},
		},
	)

	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600)
}

// generateSourceRulesPage generates the source rules documentation page.
func generateSourceRulesPage(outDir string, rules []lint.RuleInfo) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Source Lint Rules", "File-level analysis rules for astkit")
	w.GeneratedMarker()

	w.Header(1, "Source Lint Rules")
	w.Paragraph(fmt.Sprintf("astkit includes %d source lint rules that inspect syntax trees and type information.", len(rules)))

	grouped := groupRulesByGroup(rules)
	groupOrder := []string{"aliasing", "convention", "references", "structure"}

	for _, group := range groupOrder {
		groupRules, ok := grouped[group]
		if !ok || len(groupRules) == 0 {
			continue
		}

		// Group header with anchor
		w.Line(fmt.Sprintf("## %s {#%s}", capitalizeFirst(group), group))
		w.Newline()

		if desc, ok := sourceGroupDescriptions[group]; ok {
			w.Paragraph(desc)
		}

		for _, rule := range groupRules {
			writeRuleDoc(w, rule)
		}
	}

	return os.WriteFile(filepath.Join(outDir, "source-rules.md"), w.Bytes(), 0600)
}

// generateModuleRulesPage generates the module rules documentation page.
func generateModuleRulesPage(outDir string, rules []lint.RuleInfo) error {
	w := NewMarkdownWriter()

	w.Frontmatter("Module Lint Rules", "Whole-load analysis rules for astkit")
	w.GeneratedMarker()

	w.Header(1, "Module Lint Rules")
	w.Paragraph(fmt.Sprintf("astkit includes %d module lint rules that inspect the full package load.", len(rules)))

	grouped := groupRulesByGroup(rules)
	groupOrder := []string{"module"}

	for _, group := range groupOrder {
		groupRules, ok := grouped[group]
		if !ok || len(groupRules) == 0 {
			continue
		}

		// Group header with anchor
		w.Line(fmt.Sprintf("## %s {#%s}", capitalizeFirst(group), group))
		w.Newline()

		if desc, ok := moduleGroupDescriptions[group]; ok {
			w.Paragraph(desc)
		}

		for _, rule := range groupRules {
			writeRuleDoc(w, rule)
		}
	}

	return os.WriteFile(filepath.Join(outDir, "module-rules.md"), w.Bytes(), 0600)
}

// groupRulesByGroup organizes rules by their Group field.
func groupRulesByGroup(rules []lint.RuleInfo) map[string][]lint.RuleInfo {
	grouped := make(map[string][]lint.RuleInfo)
	for _, r := range rules {
		grouped[r.Group] = append(grouped[r.Group], r)
	}
	// Sort rules within each group by ID
	for group := range grouped {
		sort.Slice(grouped[group], func(i, j int) bool {
			return grouped[group][i].ID < grouped[group][j].ID
		})
	}
	return grouped
}

// capitalizeFirst capitalizes the first letter of a string.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(w *MarkdownWriter, info lint.RuleInfo) {
	// Rule header with anchor: ### CV01 - convention.sprintf_constant {#CV01}
	w.Line(fmt.Sprintf("### %s - %s {#%s}", info.ID, info.Name, info.ID))
	w.Newline()

	w.Line(fmt.Sprintf("**Severity:** %s", InlineCode(info.DefaultSeverity.String())))
	w.Newline()

	w.Paragraph(strings.TrimSpace(info.Description))

	if info.Rationale != "" {
		w.Header(4, "Why This Matters")
		w.Paragraph(strings.TrimSpace(info.Rationale))
	}

	if info.BadExample != "" {
		w.Header(4, "Bad")
		w.CodeBlock("go", info.BadExample)
	}

	if info.GoodExample != "" {
		w.Header(4, "Good")
		w.CodeBlock("go", info.GoodExample)
	}

	if info.Fix != "" {
		w.Header(4, "How to Fix")
		w.Paragraph(strings.TrimSpace(info.Fix))
	}

	if len(info.ConfigKeys) > 0 {
		w.Header(4, "Configuration")
		w.Paragraph(fmt.Sprintf("This rule accepts the following configuration options: %s",
			InlineCode(strings.Join(info.ConfigKeys, ", "))))
	}

	// Horizontal rule between rules for readability
	w.Line("---")
	w.Newline()
}
