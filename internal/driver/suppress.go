package driver

import (
	"go/ast"
	"go/token"

	"github.com/astkit-labs/astkit/pkg/lint"
	"github.com/astkit-labs/astkit/pkg/syntax"
)

// Inline suppression uses the directive comment
//
//	//astkit:disable RULE [RULE...] -- reason
//
// A directive suppresses matching findings on its own line and on the line
// below it, so both trailing comments and comments above a statement work.
// A directive above the package clause suppresses for the whole file, and a
// directive with no rule arguments suppresses every rule.

const directiveTool = "astkit"

type suppression struct {
	line     int // 0 means the whole file
	rules    map[string]bool
	allRules bool
}

// suppressor indexes the disable directives of one package.
type suppressor struct {
	fset   *token.FileSet
	byFile map[string][]suppression
}

func newSuppressor(fset *token.FileSet, files []*ast.File) *suppressor {
	s := &suppressor{fset: fset, byFile: make(map[string][]suppression)}
	for _, file := range files {
		for _, d := range syntax.DirectivesFor(file, directiveTool) {
			if d.Verb != "disable" {
				continue
			}
			pos := fset.Position(d.Pos)
			sup := suppression{line: pos.Line}
			if d.Pos < file.Package {
				sup.line = 0
			}
			if len(d.Args) == 0 {
				sup.allRules = true
			} else {
				sup.rules = make(map[string]bool, len(d.Args))
				for _, id := range d.Args {
					sup.rules[id] = true
				}
			}
			s.byFile[pos.Filename] = append(s.byFile[pos.Filename], sup)
		}
	}
	return s
}

// suppressed reports whether a diagnostic is covered by a disable
// directive. Diagnostics without a position cannot be suppressed inline.
func (s *suppressor) suppressed(d lint.Diagnostic) bool {
	if !d.Pos.IsValid() {
		return false
	}
	pos := s.fset.Position(d.Pos)
	for _, sup := range s.byFile[pos.Filename] {
		if sup.line != 0 && sup.line != pos.Line && sup.line != pos.Line-1 {
			continue
		}
		if sup.allRules || sup.rules[d.RuleID] {
			return true
		}
	}
	return false
}
