package aliasing

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"github.com/astkit-labs/astkit/pkg/lint"
	"github.com/astkit-labs/astkit/pkg/sem"
	"github.com/astkit-labs/astkit/pkg/syntax"
	"github.com/astkit-labs/astkit/pkg/walk"
)

func init() {
	lint.Register(BlankParamUse)
}

// BlankParamUse flags stale _ = x suppressions of parameters.
var BlankParamUse = lint.RuleDef{
	ID:          "AL02",
	Name:        "aliasing.blank_param_use",
	Group:       "aliasing",
	Description: "A parameter blanked with _ = x and then used anyway.",
	Severity:    lint.SeverityWarning,
	Check:       checkBlankParamUse,
	Rationale:   "_ = x exists to mark a parameter as deliberately unused. Once the parameter gains a real use the marker is a lie, and it keeps unused-parameter tooling from ever firing again.",
	BadExample:  "func handle(req *Request) {\n\t_ = req\n\tlog(req.ID)\n}",
	GoodExample: "func handle(req *Request) {\n\tlog(req.ID)\n}",
	Fix:         "Remove the _ = x statement.",
}

func checkBlankParamUse(pass *lint.Pass, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic

	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Body == nil || fn.Type.Params == nil {
				continue
			}
			params := paramObjects(pass.Info, fn)
			if len(params) == 0 {
				continue
			}
			diagnostics = append(diagnostics, staleBlanks(pass, file, fn, params)...)
		}
	}

	return diagnostics
}

// paramObjects resolves the named parameters of a declaration.
func paramObjects(info *types.Info, fn *ast.FuncDecl) map[types.Object]bool {
	params := make(map[types.Object]bool)
	for _, field := range fn.Type.Params.List {
		for _, name := range field.Names {
			if name.Name == "_" {
				continue
			}
			if obj, ok := sem.ObjectOf(info, name); ok {
				params[obj] = true
			}
		}
	}
	return params
}

func staleBlanks(pass *lint.Pass, file *ast.File, fn *ast.FuncDecl, params map[types.Object]bool) []lint.Diagnostic {
	assigns := walk.Assigns(fn.Body)
	defer assigns.Release()
	uses := walk.Idents(fn.Body)
	defer uses.Release()

	var diagnostics []lint.Diagnostic
	for _, blank := range assigns.Items {
		if blank.Tok != token.ASSIGN || len(blank.Lhs) != 1 || len(blank.Rhs) != 1 {
			continue
		}
		if !syntax.IsBlank(blank.Lhs[0]) {
			continue
		}
		src, ok := syntax.Unparen(blank.Rhs[0]).(*ast.Ident)
		if !ok {
			continue
		}
		obj, ok := sem.ObjectOf(pass.Info, src)
		if !ok || !params[obj] {
			continue
		}

		usePos, used := usedAfter(pass, file, fn, blank, src, obj, uses.Items)
		if !used {
			continue
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "AL02",
			Severity: lint.SeverityWarning,
			Message:  fmt.Sprintf("parameter %s is used after being blanked; remove _ = %s", src.Name, src.Name),
			Pos:      blank.Pos(),
			EndPos:   blank.End(),
			RelatedInfo: []lint.RelatedInfo{{
				Pos:     usePos,
				Message: "used here",
			}},
			Fixes: []lint.Fix{{
				Description: "remove the blank assignment",
				TextEdits: []lint.TextEdit{{
					Pos:     blank.Pos(),
					EndPos:  blank.End(),
					NewText: "",
				}},
			}},
		})
	}
	return diagnostics
}

// usedAfter finds a read of obj in a statement that always runs after the
// blank assignment. Reads whose ordering is uncertain, inside loops or
// function literals, do not count.
func usedAfter(pass *lint.Pass, file *ast.File, fn *ast.FuncDecl, blank *ast.AssignStmt, src *ast.Ident, obj types.Object, ids []*ast.Ident) (token.Pos, bool) {
	for _, id := range ids {
		if id == src {
			continue
		}
		used, ok := sem.ObjectOf(pass.Info, id)
		if !ok || used != obj {
			continue
		}
		stmt, ok := enclosingStmt(file, id)
		if !ok {
			continue
		}
		if syntax.ExecutedBefore(fn.Body, blank, stmt) == syntax.ExecutionYes {
			return id.Pos(), true
		}
	}
	return token.NoPos, false
}

func enclosingStmt(file *ast.File, n ast.Node) (ast.Stmt, bool) {
	path, ok := syntax.PathAt(file, n.Pos(), n.End())
	if !ok {
		return nil, false
	}
	for i := len(path) - 1; i >= 0; i-- {
		if stmt, ok := path[i].(ast.Stmt); ok {
			return stmt, true
		}
	}
	return nil, false
}
