// Package lint provides the rule framework for static analysis of Go
// packages.
//
// # Architecture
//
// The package contributes no analysis of its own; it frames rules written
// against the helper packages:
//
//  1. Root package (pkg/lint/): shared contracts, the registry, and the
//     analyzer that applies configuration
//  2. Rules (pkg/lint/rules/): the shipped rule set, registered via init()
//  3. Driver (internal/driver): loads packages and feeds passes to the
//     analyzer
//
// # Rule Registration
//
// Rules register themselves when their package is imported:
//
//	import _ "github.com/astkit-labs/astkit/pkg/lint/rules"
//
// # Rule Categories
//
// Source rules (package-level):
//   - AL (Aliasing): names that hide or misuse other names
//   - CV (Convention): Go coding conventions
//   - RF (References): how results and identifiers are used
//   - ST (Structure): suspicious statement and expression structure
//
// Module rules (whole-load):
//   - MD (Module): import-graph shape across the loaded packages
//
// # Configuration
//
// Config controls which rules run and how loud they are:
//
//	config := lint.NewConfig()
//	config.Disable("ST02")
//	config.SetSeverity("CV01", lint.SeverityError)
//	config.SetRuleOptions("MD01", map[string]any{"threshold": 15})
//
// # Creating Custom Rules
//
// Define a RuleDef and register it:
//
//	var MyRule = lint.RuleDef{
//		ID:          "MY01",
//		Name:        "custom.my_rule",
//		Group:       "custom",
//		Description: "My custom rule description",
//		Severity:    lint.SeverityWarning,
//		Check:       checkMyRule,
//	}
//
//	func init() {
//		lint.Register(MyRule)
//	}
//
// Source rules additionally export as golang.org/x/tools/go/analysis passes
// through AsAnalyzer, so they plug into vet and gopls drivers unchanged.
package lint
