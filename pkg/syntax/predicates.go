package syntax

import (
	"go/ast"
	"go/token"
	"strconv"
)

// Unparen removes any number of enclosing parentheses from expr.
func Unparen(expr ast.Expr) ast.Expr {
	for {
		paren, ok := expr.(*ast.ParenExpr)
		if !ok {
			return expr
		}
		expr = paren.X
	}
}

// StringLit returns the unquoted value of expr when it is a string literal.
// Interpreted and raw literals are both accepted. For constant-folded string
// expressions (concatenations, named constants) use sem.StringValue, which
// asks the type checker.
func StringLit(expr ast.Expr) (string, bool) {
	lit, ok := Unparen(expr).(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", false
	}
	s, err := strconv.Unquote(lit.Value)
	if err != nil {
		return "", false
	}
	return s, true
}

// IntLit returns the value of expr when it is a decimal, octal, hex, or
// binary integer literal.
func IntLit(expr ast.Expr) (int64, bool) {
	lit, ok := Unparen(expr).(*ast.BasicLit)
	if !ok || lit.Kind != token.INT {
		return 0, false
	}
	n, err := strconv.ParseInt(lit.Value, 0, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsIdent reports whether expr is an identifier with the given name.
func IsIdent(expr ast.Expr, name string) bool {
	id, ok := expr.(*ast.Ident)
	return ok && id.Name == name
}

// IsBlank reports whether expr is the blank identifier.
func IsBlank(expr ast.Expr) bool {
	return IsIdent(expr, "_")
}

// IsPkgDot reports whether expr has the shape pkg.name, where pkg is a plain
// identifier. The test is syntactic only: it does not verify that pkg really
// names an imported package. Combine with sem.Callee or symbols.Qualified
// when the distinction matters.
func IsPkgDot(expr ast.Expr, pkg, name string) bool {
	sel, ok := Unparen(expr).(*ast.SelectorExpr)
	if !ok {
		return false
	}
	return IsIdent(sel.X, pkg) && sel.Sel.Name == name
}
