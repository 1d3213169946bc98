package structure

import (
	"go/ast"

	"github.com/astkit-labs/astkit/pkg/lint"
	"github.com/astkit-labs/astkit/pkg/sem"
	"github.com/astkit-labs/astkit/pkg/syntax"
)

func init() {
	lint.Register(ConstantCondition)
}

// ConstantCondition flags branches that can only go one way.
var ConstantCondition = lint.RuleDef{
	ID:          "ST01",
	Name:        "structure.constant_condition",
	Group:       "structure",
	Description: "if or for conditions that are constant-true or constant-false.",
	Severity:    lint.SeverityInfo,
	Check:       checkConstantCondition,
	Rationale:   "A branch on a constant either hides dead code or adds noise around code that always runs. Both usually point at a leftover from debugging or refactoring.",
	BadExample:  "if true {\n\tserve()\n}",
	GoodExample: "serve()",
}

func checkConstantCondition(pass *lint.Pass, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic

	pass.Inspector().Preorder([]ast.Node{(*ast.IfStmt)(nil), (*ast.ForStmt)(nil)}, func(n ast.Node) {
		var cond ast.Expr
		isFor := false
		switch n := n.(type) {
		case *ast.IfStmt:
			cond = n.Cond
		case *ast.ForStmt:
			cond = n.Cond
			isFor = true
		}
		// A bare for loop has no condition and is idiomatic.
		if cond == nil {
			return
		}
		val, ok := sem.BoolValue(pass.Info, cond)
		if !ok {
			return
		}

		d := lint.Diagnostic{
			RuleID:   "ST01",
			Severity: lint.SeverityInfo,
			Message:  "condition is always false",
			Pos:      cond.Pos(),
			EndPos:   cond.End(),
		}
		if val {
			d.Message = "condition is always true"
		}

		// for true { } spelled out literally can just drop the condition.
		if id, isIdent := syntax.Unparen(cond).(*ast.Ident); isFor && isIdent && id.Name == "true" {
			d.Fixes = []lint.Fix{{
				Description: "drop the constant condition",
				TextEdits: []lint.TextEdit{{
					Pos:     cond.Pos(),
					EndPos:  cond.End(),
					NewText: "",
				}},
			}}
		}
		diagnostics = append(diagnostics, d)
	})

	return diagnostics
}
