package module

import (
	"fmt"

	"github.com/astkit-labs/astkit/pkg/lint"
)

func init() {
	lint.Register(ImportFanout)
}

// DefaultFanoutThreshold is the first-party import count above which MD01
// fires. Override with the threshold rule option.
const DefaultFanoutThreshold = 10

// ImportFanout flags packages that depend on too much of their own module.
var ImportFanout = lint.RuleDef{
	ID:          "MD01",
	Name:        "module.import_fanout",
	Group:       "module",
	Description: "Package imports more first-party packages than the configured threshold.",
	Severity:    lint.SeverityInfo,
	ConfigKeys:  []string{"threshold"},
	CheckModule: checkImportFanout,
	Rationale:   "A package that reaches into a large share of its own module tends to become the knot every refactor has to untie. High fan-out is an early signal to split responsibilities.",
	BadExample:  "// internal/app imports 17 sibling packages",
	GoodExample: "// internal/app imports a handful of focused siblings",
}

func checkImportFanout(ctx lint.ModuleContext, opts map[string]any) []lint.Diagnostic {
	threshold := lint.GetIntOption(opts, "threshold", DefaultFanoutThreshold)

	// First-party means loaded in this run; stdlib and external modules
	// are not part of the count.
	loaded := make(map[string]bool)
	for _, pass := range ctx.Packages() {
		if pass.Pkg != nil {
			loaded[pass.Pkg.Path()] = true
		}
	}

	var diagnostics []lint.Diagnostic
	for _, pass := range ctx.Packages() {
		if pass.Pkg == nil {
			continue
		}
		path := pass.Pkg.Path()

		count := 0
		for _, imported := range ctx.Imports(path) {
			if loaded[imported] {
				count++
			}
		}
		if count <= threshold {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "MD01",
			Severity: lint.SeverityInfo,
			Message:  fmt.Sprintf("package %s imports %d first-party packages (threshold %d); consider splitting it", path, count, threshold),
			FilePath: path,
		})
	}

	return diagnostics
}
