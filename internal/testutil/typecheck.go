package testutil

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"strings"
	"testing"
)

// Source is one parsed and type-checked file, bundled with everything the
// analysis tests reach for: positions, the syntax tree, the checked package,
// and the full types.Info maps.
type Source struct {
	Fset *token.FileSet
	File *ast.File
	Pkg  *types.Package
	Info *types.Info

	src string
}

// TypeCheck parses and type-checks a single file of Go source. Imports are
// resolved from source, so snippets may import standard library packages.
// Any parse or type error fails the test.
func TypeCheck(t testing.TB, src string) *Source {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "src.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
		Instances:  make(map[*ast.Ident]types.Instance),
	}
	conf := types.Config{Importer: importer.ForCompiler(fset, "source", nil)}
	pkg, err := conf.Check(file.Name.Name, fset, []*ast.File{file}, info)
	if err != nil {
		t.Fatalf("type check: %v", err)
	}

	return &Source{Fset: fset, File: file, Pkg: pkg, Info: info, src: src}
}

// Text returns the source text of a node.
func (s *Source) Text(n ast.Node) string {
	start := s.Fset.Position(n.Pos()).Offset
	end := s.Fset.Position(n.End()).Offset
	return s.src[start:end]
}

// Expr returns the first expression whose source text is exactly text.
func (s *Source) Expr(t testing.TB, text string) ast.Expr {
	t.Helper()
	var found ast.Expr
	ast.Inspect(s.File, func(n ast.Node) bool {
		if found != nil {
			return false
		}
		if e, ok := n.(ast.Expr); ok && s.Text(e) == text {
			found = e
			return false
		}
		return true
	})
	if found == nil {
		t.Fatalf("no expression %q", text)
	}
	return found
}

// Stmt returns the first statement whose source text starts with prefix.
func (s *Source) Stmt(t testing.TB, prefix string) ast.Stmt {
	t.Helper()
	var found ast.Stmt
	ast.Inspect(s.File, func(n ast.Node) bool {
		if found != nil {
			return false
		}
		if st, ok := n.(ast.Stmt); ok && strings.HasPrefix(s.Text(st), prefix) {
			found = st
			return false
		}
		return true
	})
	if found == nil {
		t.Fatalf("no statement starting with %q", prefix)
	}
	return found
}

// Ident returns the first identifier with the given name.
func (s *Source) Ident(t testing.TB, name string) *ast.Ident {
	t.Helper()
	var found *ast.Ident
	ast.Inspect(s.File, func(n ast.Node) bool {
		if found != nil {
			return false
		}
		if id, ok := n.(*ast.Ident); ok && id.Name == name {
			found = id
			return false
		}
		return true
	})
	if found == nil {
		t.Fatalf("no identifier %q", name)
	}
	return found
}

// Func looks up a package-level function or method by name. Methods are
// addressed as Type.Name or (*Type).Name.
func (s *Source) Func(t testing.TB, name string) *types.Func {
	t.Helper()

	recv, method, ok := strings.Cut(name, ".")
	if !ok {
		obj, ok := s.Pkg.Scope().Lookup(name).(*types.Func)
		if !ok {
			t.Fatalf("no function %q", name)
		}
		return obj
	}

	recv = strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(recv, "("), "*"), ")")
	named, ok := s.Pkg.Scope().Lookup(recv).(*types.TypeName)
	if !ok {
		t.Fatalf("no type %q", recv)
	}
	obj, _, _ := types.LookupFieldOrMethod(named.Type(), true, s.Pkg, method)
	fn, ok := obj.(*types.Func)
	if !ok {
		t.Fatalf("no method %q on %q", method, recv)
	}
	return fn
}
