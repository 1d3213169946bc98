package syntax

import "go/ast"

// SelectorPath decomposes a pure selector chain a.b.c into its identifiers,
// outermost receiver first. It reports false when any link of the chain is
// something other than an identifier or selector, such as a call or index.
func SelectorPath(expr ast.Expr) ([]*ast.Ident, bool) {
	var rev []*ast.Ident
	for {
		switch e := Unparen(expr).(type) {
		case *ast.Ident:
			rev = append(rev, e)
			// reverse into source order
			for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
				rev[i], rev[j] = rev[j], rev[i]
			}
			return rev, true
		case *ast.SelectorExpr:
			rev = append(rev, e.Sel)
			expr = e.X
		default:
			return nil, false
		}
	}
}

// RootIdent returns the leftmost identifier of an access chain, looking
// through selectors, calls, indexes, slices, type assertions, and pointer
// dereferences. For a.b().c[0] it returns a. It reports false when the chain
// bottoms out in something with no root identifier, such as a literal.
func RootIdent(expr ast.Expr) (*ast.Ident, bool) {
	for {
		switch e := Unparen(expr).(type) {
		case *ast.Ident:
			return e, true
		case *ast.SelectorExpr:
			expr = e.X
		case *ast.CallExpr:
			expr = e.Fun
		case *ast.IndexExpr:
			expr = e.X
		case *ast.IndexListExpr:
			expr = e.X
		case *ast.SliceExpr:
			expr = e.X
		case *ast.TypeAssertExpr:
			expr = e.X
		case *ast.StarExpr:
			expr = e.X
		case *ast.UnaryExpr:
			expr = e.X
		default:
			return nil, false
		}
	}
}
