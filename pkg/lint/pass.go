package lint

import (
	"go/ast"
	"go/token"
	"go/types"
	"sync"

	"golang.org/x/tools/go/ast/inspector"

	"github.com/astkit-labs/astkit/pkg/walk"
)

// Pass is one type-checked package handed to source rules. The shared
// structures behind Inspector and DeclIndex build lazily and are then
// read-only, so many rules can reuse them; the Pass itself is meant for one
// goroutine at a time.
type Pass struct {
	Fset  *token.FileSet
	Files []*ast.File
	Pkg   *types.Package
	Info  *types.Info

	inspOnce sync.Once
	insp     *inspector.Inspector

	indexOnce sync.Once
	index     *walk.Index

	reported []Diagnostic
}

// NewPass bundles one package's checked data.
func NewPass(fset *token.FileSet, files []*ast.File, pkg *types.Package, info *types.Info) *Pass {
	return &Pass{Fset: fset, Files: files, Pkg: pkg, Info: info}
}

// Inspector returns a node inspector over the pass's files, built on first
// use and shared by every rule in the pass.
func (p *Pass) Inspector() *inspector.Inspector {
	p.inspOnce.Do(func() { p.insp = inspector.New(p.Files) })
	return p.insp
}

// DeclIndex returns the function declaration index for the package, built on
// first use.
func (p *Pass) DeclIndex() *walk.Index {
	p.indexOnce.Do(func() { p.index = walk.NewIndex(p.Info, p.Files) })
	return p.index
}

// Position resolves a position against the pass's FileSet.
func (p *Pass) Position(pos token.Pos) token.Position {
	return p.Fset.Position(pos)
}

// Report records a diagnostic from within a traversal callback. Diagnostics
// reported this way are collected by the analyzer after the rule returns, in
// addition to any the rule returns directly.
func (p *Pass) Report(d Diagnostic) {
	p.reported = append(p.reported, d)
}

// takeReported drains diagnostics accumulated through Report.
func (p *Pass) takeReported() []Diagnostic {
	out := p.reported
	p.reported = nil
	return out
}
