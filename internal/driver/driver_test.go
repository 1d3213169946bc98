package driver

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/astkit-labs/astkit/internal/depgraph"
	"github.com/astkit-labs/astkit/pkg/lint"
)

func parseFile(t *testing.T, fset *token.FileSet, name, src string) *ast.File {
	t.Helper()
	file, err := parser.ParseFile(fset, name, src, parser.ParseComments)
	if err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
	return file
}

// declPos returns the position of a package-level var with the given name.
func declPos(t *testing.T, file *ast.File, name string) token.Pos {
	t.Helper()
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}
		for _, spec := range gen.Specs {
			v, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			for _, id := range v.Names {
				if id.Name == name {
					return id.Pos()
				}
			}
		}
	}
	t.Fatalf("no declaration named %s", name)
	return token.NoPos
}

func TestSuppressor(t *testing.T) {
	src := `package p

//astkit:disable ST01 -- known constant condition
var a = 1

var b = 2 //astkit:disable ST01 ST02 -- both flagged on purpose

//astkit:disable -- generated section
var c = 3

var d = 4

var e = 5 //astkit:enable ST01
`
	fset := token.NewFileSet()
	file := parseFile(t, fset, "p.go", src)
	sup := newSuppressor(fset, []*ast.File{file})

	diag := func(name, rule string) lint.Diagnostic {
		return lint.Diagnostic{RuleID: rule, Pos: declPos(t, file, name)}
	}

	cases := []struct {
		name string
		d    lint.Diagnostic
		want bool
	}{
		{"directive on line above", diag("a", "ST01"), true},
		{"directive on line above, other rule", diag("a", "CV01"), false},
		{"trailing directive", diag("b", "ST01"), true},
		{"trailing directive, second rule", diag("b", "ST02"), true},
		{"trailing directive, unlisted rule", diag("b", "RF01"), false},
		{"bare directive disables every rule", diag("c", "CV03"), true},
		{"line without a directive", diag("d", "ST01"), false},
		{"unknown verb is not a suppression", diag("e", "ST01"), false},
		{"invalid position", lint.Diagnostic{RuleID: "ST01"}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sup.suppressed(tc.d); got != tc.want {
				t.Errorf("suppressed(%s) = %v, want %v", tc.d.RuleID, got, tc.want)
			}
		})
	}
}

func TestSuppressorFileWide(t *testing.T) {
	src := `//astkit:disable CV01 -- vendored file
package p

var a = 1
`
	fset := token.NewFileSet()
	file := parseFile(t, fset, "p.go", src)
	sup := newSuppressor(fset, []*ast.File{file})

	pos := declPos(t, file, "a")
	if !sup.suppressed(lint.Diagnostic{RuleID: "CV01", Pos: pos}) {
		t.Error("directive before the package clause should cover the whole file")
	}
	if sup.suppressed(lint.Diagnostic{RuleID: "ST01", Pos: pos}) {
		t.Error("file-wide directive should only cover its listed rules")
	}
}

func TestSuppressorOtherFile(t *testing.T) {
	fset := token.NewFileSet()
	one := parseFile(t, fset, "one.go", "package p\n\nvar a = 1 //astkit:disable ST01 -- here only\n")
	two := parseFile(t, fset, "two.go", "package p\n\nvar a = 1\n")
	sup := newSuppressor(fset, []*ast.File{one, two})

	if !sup.suppressed(lint.Diagnostic{RuleID: "ST01", Pos: declPos(t, one, "a")}) {
		t.Error("diagnostic in one.go should be suppressed")
	}
	if sup.suppressed(lint.Diagnostic{RuleID: "ST01", Pos: declPos(t, two, "a")}) {
		t.Error("directive in one.go should not reach two.go")
	}
}

func TestResolve(t *testing.T) {
	fset := token.NewFileSet()
	file := parseFile(t, fset, "p.go", "package p\n\nvar a = 1\n")
	pass := lint.NewPass(fset, []*ast.File{file}, types.NewPackage("m/p", "p"), nil)

	pos := declPos(t, file, "a")
	d := New(Options{})
	f := d.resolve(pass, lint.Diagnostic{
		RuleID:           "ST01",
		Severity:         lint.SeverityWarning,
		Message:          "something",
		Pos:              pos,
		EndPos:           pos + 1,
		DocumentationURL: "https://astkit.dev/docs/rules/st01",
		RelatedInfo:      []lint.RelatedInfo{{Pos: pos, Message: "declared here"}},
	})

	if f.Package != "m/p" {
		t.Errorf("Package = %q, want %q", f.Package, "m/p")
	}
	if f.File != "p.go" || f.Line != 3 || f.Column != 5 {
		t.Errorf("position = %s:%d:%d, want p.go:3:5", f.File, f.Line, f.Column)
	}
	if f.EndLine != 3 || f.EndColumn != 6 {
		t.Errorf("end = %d:%d, want 3:6", f.EndLine, f.EndColumn)
	}
	if f.Severity != "warning" {
		t.Errorf("Severity = %q, want %q", f.Severity, "warning")
	}
	if f.DocURL != "https://astkit.dev/docs/rules/st01" {
		t.Errorf("DocURL = %q", f.DocURL)
	}
	if len(f.Related) != 1 || f.Related[0].Line != 3 || f.Related[0].Message != "declared here" {
		t.Errorf("Related = %+v", f.Related)
	}
}

func TestSortFindings(t *testing.T) {
	findings := []Finding{
		{Package: "m/b", File: "b.go", Line: 1, RuleID: "CV01"},
		{Package: "m/a", File: "a.go", Line: 9, RuleID: "CV01"},
		{Package: "m/a", File: "a.go", Line: 2, RuleID: "ST01"},
		{Package: "m/a", File: "a.go", Line: 2, RuleID: "CV01"},
		{Package: "m/a", File: "z.go", Line: 1, RuleID: "CV01"},
	}
	sortFindings(findings)

	want := []string{
		"m/a a.go:2 CV01",
		"m/a a.go:2 ST01",
		"m/a a.go:9 CV01",
		"m/a z.go:1 CV01",
		"m/b b.go:1 CV01",
	}
	for i, f := range findings {
		got := fmt.Sprintf("%s %s:%d %s", f.Package, f.File, f.Line, f.RuleID)
		if got != want[i] {
			t.Errorf("findings[%d] = %s, want %s", i, got, want[i])
		}
	}
}

func TestDedupe(t *testing.T) {
	findings := []Finding{
		{RuleID: "CV01", Package: "m/a", File: "a.go", Line: 3, Message: "x"},
		{RuleID: "CV01", Package: "m/a", File: "a.go", Line: 3, Message: "x"},
		{RuleID: "CV01", Package: "m/a", File: "a.go", Line: 4, Message: "x"},
		{RuleID: "ST01", Package: "m/a", File: "a.go", Line: 3, Message: "x"},
	}
	out := dedupe(findings)
	if len(out) != 3 {
		t.Fatalf("dedupe kept %d findings, want 3", len(out))
	}
}

func TestFilterSeverityAndExitCode(t *testing.T) {
	r := &Result{
		Findings: []Finding{
			{RuleID: "A", Severity: "error", severity: lint.SeverityError},
			{RuleID: "B", Severity: "warning", severity: lint.SeverityWarning},
			{RuleID: "C", Severity: "hint", severity: lint.SeverityHint},
		},
	}
	r.recount()
	if r.Counts["error"] != 1 || r.Counts["warning"] != 1 || r.Counts["hint"] != 1 {
		t.Fatalf("counts = %v", r.Counts)
	}
	if r.ExitCode() != 1 {
		t.Error("findings should produce exit code 1")
	}

	r.FilterSeverity(lint.SeverityWarning)
	if len(r.Findings) != 2 {
		t.Fatalf("after filter: %d findings, want 2", len(r.Findings))
	}
	if r.Counts["hint"] != 0 {
		t.Errorf("counts not refreshed: %v", r.Counts)
	}

	r.FilterSeverity(lint.SeverityError)
	r.Findings = r.Findings[:0]
	r.recount()
	if r.ExitCode() != 0 {
		t.Error("clean result should produce exit code 0")
	}

	empty := &Result{LoadErrors: []string{"p.go:1:1: broken"}}
	if empty.ExitCode() != 1 {
		t.Error("load errors should produce exit code 1")
	}
}

func TestModuleView(t *testing.T) {
	g := depgraph.New()
	g.Add("m/a")
	g.Add("m/b")
	if err := g.Link("m/b", "m/a"); err != nil {
		t.Fatal(err)
	}

	passes := []*lint.Pass{
		lint.NewPass(nil, nil, types.NewPackage("m/a", "a"), nil),
		lint.NewPass(nil, nil, types.NewPackage("m/b", "b"), nil),
	}
	view := &moduleView{passes: passes, graph: g}

	if got := view.Packages(); len(got) != 2 {
		t.Fatalf("Packages() returned %d passes, want 2", len(got))
	}
	if got := view.Imports("m/b"); len(got) != 1 || got[0] != "m/a" {
		t.Errorf("Imports(m/b) = %v, want [m/a]", got)
	}
	if got := view.Importers("m/a"); len(got) != 1 || got[0] != "m/b" {
		t.Errorf("Importers(m/a) = %v, want [m/b]", got)
	}
}

func TestEffectiveConfig(t *testing.T) {
	lint.Clear()
	t.Cleanup(lint.Clear)

	nop := func(pass *lint.Pass, opts map[string]any) []lint.Diagnostic { return nil }
	lint.Register(lint.RuleDef{ID: "AA01", Name: "a", Group: "convention", Description: "a", Severity: lint.SeverityWarning, Check: nop})
	lint.Register(lint.RuleDef{ID: "BB01", Name: "b", Group: "structure", Description: "b", Severity: lint.SeverityWarning, Check: nop})

	config := effectiveConfig(Options{Rules: []string{"AA01"}})
	if config.IsDisabled("AA01") {
		t.Error("listed rule should stay enabled")
	}
	if !config.IsDisabled("BB01") {
		t.Error("unlisted rule should be disabled")
	}

	config = effectiveConfig(Options{})
	if config.IsDisabled("AA01") || config.IsDisabled("BB01") {
		t.Error("empty filter should disable nothing")
	}
}

func TestNewDefaults(t *testing.T) {
	d := New(Options{})
	if len(d.opts.Patterns) != 1 || d.opts.Patterns[0] != "./..." {
		t.Errorf("default patterns = %v, want [./...]", d.opts.Patterns)
	}
	if d.logger == nil {
		t.Error("logger should never be nil")
	}
}
