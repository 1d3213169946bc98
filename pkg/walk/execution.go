package walk

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// Scope controls how far Execution follows calls out of the root function.
type Scope int

const (
	// Shallow stays inside the root function body.
	Shallow Scope = iota
	// Package additionally descends into same-package callees reachable
	// directly from the root.
	Package
	// Recursive follows same-package callees transitively. Cycles are
	// entered once.
	Recursive
)

// Index maps functions and methods of one package to their declarations.
// Build it once per package and share it; lookups are read-only afterwards.
type Index struct {
	info  *types.Info
	decls map[*types.Func]*ast.FuncDecl
}

// NewIndex records the declaration of every package-level function and
// method in files.
func NewIndex(info *types.Info, files []*ast.File) *Index {
	ix := &Index{info: info, decls: make(map[*types.Func]*ast.FuncDecl)}
	for _, file := range files {
		for _, decl := range file.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok {
				continue
			}
			if fn, ok := info.Defs[fd.Name].(*types.Func); ok {
				ix.decls[fn] = fd
			}
		}
	}
	return ix
}

// Decl returns the declaration of fn. Instantiated generic functions resolve
// through their origin.
func (ix *Index) Decl(fn *types.Func) (*ast.FuncDecl, bool) {
	if ix == nil || fn == nil {
		return nil, false
	}
	fd, ok := ix.decls[fn.Origin()]
	return fd, ok
}

// CalleeDecl returns the declaration of the function a call statically
// invokes, when that function lives in the indexed package.
func (ix *Index) CalleeDecl(call *ast.CallExpr) (*ast.FuncDecl, bool) {
	if ix == nil || call == nil {
		return nil, false
	}
	fn, ok := typeutil.Callee(ix.info, call).(*types.Func)
	if !ok {
		return nil, false
	}
	return ix.Decl(fn)
}

// Execution walks the body of fn in approximate execution order: nodes in
// source order, with callee bodies spliced in after the call's operands when
// scope allows. Function literal bodies are walked where the literal
// appears. visit returning false stops the whole walk.
//
// The approximation deliberately ignores loop back-edges, goto, and panic
// unwinding; use syntax.ExecutedBefore to reason about precise ordering of
// two statements.
func Execution(ix *Index, fn ast.Node, scope Scope, visit func(ast.Node) bool) {
	if fn == nil || visit == nil {
		return
	}
	w := &execWalker{ix: ix, scope: scope, visit: visit, entered: make(map[*ast.FuncDecl]bool)}
	if fd, ok := fn.(*ast.FuncDecl); ok {
		w.entered[fd] = true
	}
	w.walk(fn)
}

type execWalker struct {
	ix      *Index
	scope   Scope
	visit   func(ast.Node) bool
	entered map[*ast.FuncDecl]bool
	depth   int
	stopped bool
}

func (w *execWalker) walk(root ast.Node) {
	ast.Inspect(root, func(n ast.Node) bool {
		if w.stopped || n == nil {
			return false
		}
		if !w.visit(n) {
			w.stopped = true
			return false
		}
		call, ok := n.(*ast.CallExpr)
		if !ok || w.scope == Shallow {
			return true
		}

		// Walk the operands first, then splice in the callee body.
		w.walk(call.Fun)
		for _, arg := range call.Args {
			if w.stopped {
				return false
			}
			w.walk(arg)
		}
		if w.stopped {
			return false
		}
		if fd, ok := w.ix.CalleeDecl(call); ok && fd.Body != nil && !w.entered[fd] {
			if w.scope == Recursive || w.depth == 0 {
				w.entered[fd] = true
				w.depth++
				w.walk(fd.Body)
				w.depth--
			}
		}
		return false
	})
}
