package structure

import (
	"fmt"
	"go/ast"
	"go/types"

	"github.com/astkit-labs/astkit/pkg/lint"
	"github.com/astkit-labs/astkit/pkg/syntax"
)

func init() {
	lint.Register(DuplicateCondition)
}

// DuplicateCondition flags unreachable arms of an if/else-if chain.
var DuplicateCondition = lint.RuleDef{
	ID:          "ST03",
	Name:        "structure.duplicate_condition",
	Group:       "structure",
	Description: "A condition repeated within one if/else-if chain.",
	Severity:    lint.SeverityWarning,
	Check:       checkDuplicateCondition,
	Rationale:   "Arms of a chain are tried in order, so a repeated condition can never fire; its branch is dead and usually one of the conditions was meant to differ.",
	BadExample:  "if n > 0 {\n\tpos()\n} else if n > 0 {\n\tneg()\n}",
	GoodExample: "if n > 0 {\n\tpos()\n} else if n < 0 {\n\tneg()\n}",
}

func checkDuplicateCondition(pass *lint.Pass, _ map[string]any) []lint.Diagnostic {
	// Collect the chain links first so every chain is walked exactly once,
	// from its head.
	links := make(map[*ast.IfStmt]bool)
	pass.Inspector().Preorder([]ast.Node{(*ast.IfStmt)(nil)}, func(n ast.Node) {
		if inner, ok := n.(*ast.IfStmt).Else.(*ast.IfStmt); ok {
			links[inner] = true
		}
	})

	var diagnostics []lint.Diagnostic
	pass.Inspector().Preorder([]ast.Node{(*ast.IfStmt)(nil)}, func(n ast.Node) {
		head := n.(*ast.IfStmt)
		if links[head] {
			return
		}

		var seen []ast.Expr
		for cur := head; cur != nil; {
			// An init statement can rebind names between arms, making
			// syntactically equal conditions mean different things.
			if cur.Init != nil {
				return
			}
			if !conditionRepeatable(cur.Cond) {
				seen = append(seen, nil)
			} else {
				for _, prev := range seen {
					if prev == nil || !syntax.EqualExprs(prev, cur.Cond) {
						continue
					}
					diagnostics = append(diagnostics, lint.Diagnostic{
						RuleID:   "ST03",
						Severity: lint.SeverityWarning,
						Message:  fmt.Sprintf("duplicate condition %s in if/else-if chain", types.ExprString(cur.Cond)),
						Pos:      cur.Cond.Pos(),
						EndPos:   cur.Cond.End(),
						RelatedInfo: []lint.RelatedInfo{{
							Pos:     prev.Pos(),
							Message: "first checked here",
						}},
					})
					break
				}
				seen = append(seen, cur.Cond)
			}

			next, ok := cur.Else.(*ast.IfStmt)
			if !ok {
				return
			}
			cur = next
		}
	})

	return diagnostics
}

// conditionRepeatable reports whether re-evaluating the condition must give
// the same answer. Conditions that call code may legitimately repeat.
func conditionRepeatable(cond ast.Expr) bool {
	return !sideEffects(cond)
}
