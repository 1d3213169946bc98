package convention

import (
	"go/ast"

	"github.com/astkit-labs/astkit/pkg/lint"
	"github.com/astkit-labs/astkit/pkg/sem"
	"github.com/astkit-labs/astkit/pkg/symbols"
	"github.com/astkit-labs/astkit/pkg/syntax"
)

func init() {
	lint.Register(SprintfConstant)
}

// SprintfConstant flags formatting calls that do no formatting.
var SprintfConstant = lint.RuleDef{
	ID:          "CV01",
	Name:        "convention.sprintf_constant",
	Group:       "convention",
	Description: "fmt.Sprintf or fmt.Errorf with a constant format and no arguments.",
	Severity:    lint.SeverityWarning,
	Check:       checkSprintfConstant,
	Rationale:   "A formatting call without arguments allocates and scans the format string for verbs at runtime to produce a value that was already known at compile time.",
	BadExample:  `s := fmt.Sprintf("ready")`,
	GoodExample: `s := "ready"`,
	Fix:         "Use the string directly, or errors.New for fmt.Errorf.",
}

var (
	sprintfFunc = symbols.MustQualified("fmt.Sprintf")
	errorfFunc  = symbols.MustQualified("fmt.Errorf")
)

func checkSprintfConstant(pass *lint.Pass, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic

	pass.Inspector().Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		if len(call.Args) != 1 || call.Ellipsis.IsValid() {
			return
		}

		fn, ok := sem.CalleeFunc(pass.Info, call)
		if !ok {
			return
		}
		isSprintf := sprintfFunc.Match(fn)
		if !isSprintf && !errorfFunc.Match(fn) {
			return
		}

		// Only fire when the lone argument binds the format parameter, not
		// a spread of the variadic tail.
		sig, ok := sem.SignatureOf(pass.Info, call)
		if !ok {
			return
		}
		param, ok := sem.ParamForArg(sig, call, 0)
		if !ok || param.Name() != "format" {
			return
		}
		if _, ok := sem.StringValue(pass.Info, call.Args[0]); !ok {
			return
		}

		d := lint.Diagnostic{
			RuleID:   "CV01",
			Severity: lint.SeverityWarning,
			Pos:      call.Pos(),
			EndPos:   call.End(),
		}
		if isSprintf {
			d.Message = symbols.Name(fn) + " with a constant format and no arguments; use the string directly"
			if lit, ok := syntax.Unparen(call.Args[0]).(*ast.BasicLit); ok {
				d.Fixes = []lint.Fix{{
					Description: "use the string directly",
					TextEdits: []lint.TextEdit{{
						Pos:     call.Pos(),
						EndPos:  call.End(),
						NewText: lit.Value,
					}},
				}}
			}
		} else {
			d.Message = symbols.Name(fn) + " with a constant format and no arguments; use errors.New"
		}
		diagnostics = append(diagnostics, d)
	})

	return diagnostics
}
