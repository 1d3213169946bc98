package lint

import (
	"go/ast"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/analysis"

	"github.com/astkit-labs/astkit/internal/testutil"
)

// installRules resets the global registry for one test and registers defs.
func installRules(t *testing.T, defs ...RuleDef) {
	t.Helper()
	Clear()
	t.Cleanup(Clear)
	for _, def := range defs {
		Register(def)
	}
}

func TestRegistry(t *testing.T) {
	installRules(t,
		RuleDef{ID: "ST01", Group: "structure", Check: nopCheck},
		RuleDef{ID: "CV02", Group: "convention", Check: nopCheck},
		RuleDef{ID: "CV01", Group: "convention", Check: nopCheck},
	)

	assert.Equal(t, 3, Count())

	var ids []string
	for _, rule := range AllRules() {
		ids = append(ids, rule.ID)
	}
	assert.Equal(t, []string{"CV01", "CV02", "ST01"}, ids, "AllRules sorts by ID")

	rule, ok := GetByID("CV02")
	require.True(t, ok)
	assert.Equal(t, "convention", rule.Group)

	_, ok = GetByID("XX99")
	assert.False(t, ok)

	convention := GetByGroup("convention")
	require.Len(t, convention, 2)
	assert.Equal(t, "CV01", convention[0].ID)
	assert.Equal(t, "CV02", convention[1].ID)
	assert.Empty(t, GetByGroup("missing"))

	Clear()
	assert.Zero(t, Count())
}

func nopCheck(_ *Pass, _ map[string]any) []Diagnostic { return nil }

func TestAnalyze(t *testing.T) {
	installRules(t,
		RuleDef{
			ID:       "AA01",
			Severity: SeverityWarning,
			Check: func(_ *Pass, _ map[string]any) []Diagnostic {
				return []Diagnostic{{RuleID: "AA01", Severity: SeverityWarning, Message: "returned"}}
			},
		},
		RuleDef{
			ID:       "BB01",
			Severity: SeverityWarning,
			Check: func(pass *Pass, _ map[string]any) []Diagnostic {
				pass.Report(Diagnostic{RuleID: "BB01", Severity: SeverityWarning, Message: "reported"})
				return nil
			},
		},
		RuleDef{
			ID:    "CC01",
			Check: func(_ *Pass, _ map[string]any) []Diagnostic { panic("disabled rule must not run") },
		},
		RuleDef{
			ID: "DD01",
			Check: func(_ *Pass, opts map[string]any) []Diagnostic {
				return []Diagnostic{{
					RuleID:           "DD01",
					Severity:         SeverityWarning,
					Message:          GetStringOption(opts, "label", "default"),
					DocumentationURL: "https://example.com/dd01",
				}}
			},
		},
		RuleDef{
			ID:          "MM01",
			CheckModule: func(_ ModuleContext, _ map[string]any) []Diagnostic { panic("module rule must not run per package") },
		},
	)

	config := NewConfig().
		Disable("CC01").
		SetSeverity("BB01", SeverityError).
		SetRuleOptions("DD01", map[string]any{"label": "configured"})

	diags := NewAnalyzer(config).Analyze(NewPass(token.NewFileSet(), nil, nil, nil))
	require.Len(t, diags, 3)

	byRule := make(map[string]Diagnostic, len(diags))
	for _, d := range diags {
		byRule[d.RuleID] = d
	}

	assert.Equal(t, SeverityWarning, byRule["AA01"].Severity)
	assert.Equal(t, BuildDocURL("AA01"), byRule["AA01"].DocumentationURL, "empty doc URL is filled in")

	assert.Equal(t, "reported", byRule["BB01"].Message, "Report-collected diagnostics are included")
	assert.Equal(t, SeverityError, byRule["BB01"].Severity, "config severity override applies")

	assert.Equal(t, "configured", byRule["DD01"].Message, "rule options reach the check")
	assert.Equal(t, "https://example.com/dd01", byRule["DD01"].DocumentationURL, "explicit doc URL is kept")
}

func TestAnalyzeNilPass(t *testing.T) {
	assert.Nil(t, NewAnalyzer(nil).Analyze(nil))
}

type fakeModuleContext struct {
	passes    []*Pass
	imports   map[string][]string
	importers map[string][]string
}

func (c *fakeModuleContext) Packages() []*Pass            { return c.passes }
func (c *fakeModuleContext) Imports(path string) []string { return c.imports[path] }
func (c *fakeModuleContext) Importers(path string) []string {
	return c.importers[path]
}

func TestAnalyzeModule(t *testing.T) {
	installRules(t,
		RuleDef{
			ID:       "MD01",
			Severity: SeverityInfo,
			CheckModule: func(ctx ModuleContext, _ map[string]any) []Diagnostic {
				var diags []Diagnostic
				for _, from := range ctx.Imports("example.com/a") {
					diags = append(diags, Diagnostic{
						RuleID:   "MD01",
						Severity: SeverityInfo,
						Message:  "imports " + from,
						FilePath: "example.com/a",
					})
				}
				return diags
			},
		},
		RuleDef{
			ID:    "SS01",
			Check: func(_ *Pass, _ map[string]any) []Diagnostic { panic("source rule must not run at module level") },
		},
	)

	ctx := &fakeModuleContext{
		imports: map[string][]string{"example.com/a": {"example.com/b", "example.com/c"}},
	}

	diags := NewAnalyzer(nil).AnalyzeModule(ctx)
	require.Len(t, diags, 2)
	assert.Equal(t, "imports example.com/b", diags[0].Message)
	assert.Equal(t, "example.com/a", diags[0].FilePath)
	assert.Equal(t, BuildDocURL("MD01"), diags[1].DocumentationURL)

	assert.Nil(t, NewAnalyzer(nil).AnalyzeModule(nil))
}

func TestPassSharedStructures(t *testing.T) {
	src := testutil.TypeCheck(t, `package p

func f() int { return 1 }
`)
	pass := NewPass(src.Fset, []*ast.File{src.File}, src.Pkg, src.Info)

	require.Same(t, pass.Inspector(), pass.Inspector(), "inspector builds once")
	require.Same(t, pass.DeclIndex(), pass.DeclIndex(), "decl index builds once")

	pos := src.File.Name.Pos()
	assert.Equal(t, 1, pass.Position(pos).Line)

	pass.Report(Diagnostic{Message: "one"})
	pass.Report(Diagnostic{Message: "two"})
	reported := pass.takeReported()
	require.Len(t, reported, 2)
	assert.Empty(t, pass.takeReported(), "drain leaves nothing behind")
}

func TestAsAnalyzer(t *testing.T) {
	assert.Panics(t, func() {
		AsAnalyzer(RuleDef{
			ID:          "MD01",
			CheckModule: func(_ ModuleContext, _ map[string]any) []Diagnostic { return nil },
		})
	})

	def := RuleDef{
		ID:          "TT01",
		Description: "flags the f function",
		Rationale:   "demonstration only",
		Check: func(pass *Pass, _ map[string]any) []Diagnostic {
			var diags []Diagnostic
			for _, file := range pass.Files {
				for _, decl := range file.Decls {
					fn, ok := decl.(*ast.FuncDecl)
					if !ok || fn.Name.Name != "f" {
						continue
					}
					diags = append(diags, Diagnostic{
						RuleID:   "TT01",
						Severity: SeverityWarning,
						Message:  "function f is flagged",
						Pos:      fn.Name.Pos(),
						EndPos:   fn.Name.End(),
						Fixes: []Fix{{
							Description: "rename to g",
							TextEdits: []TextEdit{{
								Pos:     fn.Name.Pos(),
								EndPos:  fn.Name.End(),
								NewText: "g",
							}},
						}},
					})
				}
			}
			return diags
		},
	}

	a := AsAnalyzer(def)
	assert.Equal(t, "tt01", a.Name)
	assert.Contains(t, a.Doc, "flags the f function")
	assert.Contains(t, a.Doc, "demonstration only")

	src := testutil.TypeCheck(t, `package p

func f() {}

func g() {}
`)

	var got []analysis.Diagnostic
	ap := &analysis.Pass{
		Analyzer:  a,
		Fset:      src.Fset,
		Files:     []*ast.File{src.File},
		Pkg:       src.Pkg,
		TypesInfo: src.Info,
		Report:    func(d analysis.Diagnostic) { got = append(got, d) },
	}

	result, err := a.Run(ap)
	require.NoError(t, err)
	assert.Nil(t, result)

	require.Len(t, got, 1)
	assert.Equal(t, "TT01", got[0].Category)
	assert.Equal(t, "function f is flagged", got[0].Message)
	assert.Equal(t, "f", src.Text(&fakeRange{got[0].Pos, got[0].End}))
	require.Len(t, got[0].SuggestedFixes, 1)
	require.Len(t, got[0].SuggestedFixes[0].TextEdits, 1)
	assert.Equal(t, "g", string(got[0].SuggestedFixes[0].TextEdits[0].NewText))
}

// fakeRange adapts a pos pair to the ast.Node surface Text slices by.
type fakeRange struct{ pos, end token.Pos }

func (r *fakeRange) Pos() token.Pos { return r.pos }
func (r *fakeRange) End() token.Pos { return r.end }

func TestAnalyzers(t *testing.T) {
	installRules(t,
		RuleDef{ID: "ZZ01", Check: nopCheck},
		RuleDef{ID: "AA02", Check: nopCheck},
		RuleDef{ID: "MM02", CheckModule: func(_ ModuleContext, _ map[string]any) []Diagnostic { return nil }},
	)

	analyzers := Analyzers()
	require.Len(t, analyzers, 2, "module rules are not exported as analysis passes")
	assert.Equal(t, "aa02", analyzers[0].Name)
	assert.Equal(t, "zz01", analyzers[1].Name)
}
