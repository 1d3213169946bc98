package convention

import (
	"fmt"
	"go/ast"
	"go/types"

	"github.com/astkit-labs/astkit/pkg/lint"
	"github.com/astkit-labs/astkit/pkg/sem"
	"github.com/astkit-labs/astkit/pkg/symbols"
)

func init() {
	lint.Register(ContextKeyType)
}

// ContextKeyType flags context keys that invite cross-package collisions.
var ContextKeyType = lint.RuleDef{
	ID:          "CV02",
	Name:        "convention.context_key_type",
	Group:       "convention",
	Description: "context.WithValue key of a built-in basic type.",
	Severity:    lint.SeverityWarning,
	Check:       checkContextKeyType,
	Rationale:   "Keys of built-in types like string collide silently when two packages pick the same value. A small unexported key type makes the key unique to its package.",
	BadExample:  `ctx = context.WithValue(ctx, "user", u)`,
	GoodExample: "type userKey struct{}\n\nctx = context.WithValue(ctx, userKey{}, u)",
}

var withValueFunc = symbols.MustQualified("context.WithValue")

func checkContextKeyType(pass *lint.Pass, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic

	pass.Inspector().Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		fn, ok := sem.CalleeFunc(pass.Info, call)
		if !ok || !withValueFunc.Match(fn) {
			return
		}
		sig, ok := sem.SignatureOf(pass.Info, call)
		if !ok {
			return
		}

		for i, arg := range call.Args {
			param, ok := sem.ParamForArg(sig, call, i)
			if !ok || param.Name() != "key" {
				continue
			}
			keyType, ok := sem.TypeOf(pass.Info, arg)
			if !ok {
				continue
			}
			// A defined type with a basic underlying type is the
			// recommended pattern; only the predeclared types collide.
			basic, isBasic := keyType.(*types.Basic)
			if !isBasic {
				continue
			}
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "CV02",
				Severity: lint.SeverityWarning,
				Message:  fmt.Sprintf("context key has built-in type %s; define an unexported key type to avoid collisions", basic.Name()),
				Pos:      arg.Pos(),
				EndPos:   arg.End(),
			})
		}
	})

	return diagnostics
}
