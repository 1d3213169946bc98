// Package rules provides the lint rule implementations shipped with astkit.
//
// Rules are organized by category, each with a two-letter prefix:
//   - convention: Rules about Go conventions (CV01-CV03)
//   - structure: Rules about statement and control-flow structure (ST01-ST03)
//   - aliasing: Rules about receivers and parameter aliasing (AL01-AL02)
//   - references: Rules about discarded references and results (RF01)
//   - module: Whole-module rules over the import graph (MD01)
//
// To register all rules with the global lint registry, import this package
// with a blank identifier:
//
//	import _ "github.com/astkit-labs/astkit/pkg/lint/rules"
//
// Individual rule categories can also be imported:
//
//	import _ "github.com/astkit-labs/astkit/pkg/lint/rules/convention"
//	import _ "github.com/astkit-labs/astkit/pkg/lint/rules/structure"
package rules
