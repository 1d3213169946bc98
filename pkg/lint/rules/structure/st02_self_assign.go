package structure

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"github.com/astkit-labs/astkit/pkg/lint"
	"github.com/astkit-labs/astkit/pkg/syntax"
	"github.com/astkit-labs/astkit/pkg/walk"
)

func init() {
	lint.Register(SelfAssign)
}

// SelfAssign flags assignments of an expression to itself.
var SelfAssign = lint.RuleDef{
	ID:          "ST02",
	Name:        "structure.self_assign",
	Group:       "structure",
	Description: "An expression assigned to itself.",
	Severity:    lint.SeverityWarning,
	Check:       checkSelfAssign,
	Rationale:   "x = x does nothing, and in practice it is almost always a typo for an assignment to or from a similarly named field or variable.",
	BadExample:  "cfg.Timeout = cfg.Timeout",
	GoodExample: "cfg.Timeout = req.Timeout",
}

func checkSelfAssign(pass *lint.Pass, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic

	pass.Inspector().Preorder([]ast.Node{(*ast.AssignStmt)(nil)}, func(n ast.Node) {
		stmt := n.(*ast.AssignStmt)
		if stmt.Tok != token.ASSIGN || len(stmt.Lhs) != len(stmt.Rhs) {
			return
		}

		selfPairs := 0
		for i := range stmt.Lhs {
			// _ = x is a deliberate discard, not a self assignment.
			if syntax.IsBlank(stmt.Lhs[i]) {
				continue
			}
			if sideEffects(stmt.Lhs[i]) || sideEffects(stmt.Rhs[i]) {
				continue
			}
			if !syntax.EqualExprs(stmt.Lhs[i], stmt.Rhs[i]) {
				continue
			}
			selfPairs++
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "ST02",
				Severity: lint.SeverityWarning,
				Message:  fmt.Sprintf("%s is assigned to itself", types.ExprString(stmt.Lhs[i])),
				Pos:      stmt.Lhs[i].Pos(),
				EndPos:   stmt.Rhs[i].End(),
			})
		}

		// When every pair is a self assignment the whole statement can go.
		if selfPairs > 0 && selfPairs == len(stmt.Lhs) {
			last := &diagnostics[len(diagnostics)-1]
			last.Fixes = []lint.Fix{{
				Description: "remove the self assignment",
				TextEdits: []lint.TextEdit{{
					Pos:     stmt.Pos(),
					EndPos:  stmt.End(),
					NewText: "",
				}},
			}}
		}
	})

	return diagnostics
}

// sideEffects reports whether evaluating the expression may call code, in
// which case two identical spellings can still produce different values.
func sideEffects(expr ast.Expr) bool {
	calls := walk.Calls(expr)
	defer calls.Release()
	return len(calls.Items) > 0
}
