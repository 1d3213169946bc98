package syntax

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/ast/astutil"
)

// FirstAncestor returns the innermost ancestor of type T from an ancestor
// stack in inspector.WithStack order: outermost first, the visited node
// itself last. The node itself is not considered its own ancestor.
func FirstAncestor[T ast.Node](stack []ast.Node) (T, bool) {
	for i := len(stack) - 2; i >= 0; i-- {
		if t, ok := stack[i].(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// FirstAncestorOrSelf is like FirstAncestor but also considers the node
// itself.
func FirstAncestorOrSelf[T ast.Node](stack []ast.Node) (T, bool) {
	for i := len(stack) - 1; i >= 0; i-- {
		if t, ok := stack[i].(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// EnclosingFunc returns the innermost enclosing *ast.FuncDecl or
// *ast.FuncLit from an ancestor stack.
func EnclosingFunc(stack []ast.Node) (ast.Node, bool) {
	for i := len(stack) - 1; i >= 0; i-- {
		switch stack[i].(type) {
		case *ast.FuncDecl, *ast.FuncLit:
			return stack[i], true
		}
	}
	return nil, false
}

// EnclosingFuncBody returns the body of the innermost enclosing function
// declaration or literal.
func EnclosingFuncBody(stack []ast.Node) (*ast.BlockStmt, bool) {
	fn, ok := EnclosingFunc(stack)
	if !ok {
		return nil, false
	}
	switch fn := fn.(type) {
	case *ast.FuncDecl:
		if fn.Body == nil {
			return nil, false
		}
		return fn.Body, true
	case *ast.FuncLit:
		return fn.Body, true
	}
	return nil, false
}

// PathAt returns the node path enclosing the interval [pos, end) in file,
// in the same outermost-first order as inspector.WithStack stacks, so the
// result feeds directly into FirstAncestor. It delegates interval resolution
// to astutil.PathEnclosingInterval.
func PathAt(file *ast.File, pos, end token.Pos) ([]ast.Node, bool) {
	path, _ := astutil.PathEnclosingInterval(file, pos, end)
	if len(path) == 0 {
		return nil, false
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
