package module_test

import (
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astkit-labs/astkit/pkg/lint"
	_ "github.com/astkit-labs/astkit/pkg/lint/rules" // register rules
)

// fakeLoad is a hand-built module context; MD01 only needs package paths
// and the import graph.
type fakeLoad struct {
	passes  []*lint.Pass
	imports map[string][]string
}

func (l *fakeLoad) Packages() []*lint.Pass       { return l.passes }
func (l *fakeLoad) Imports(path string) []string { return l.imports[path] }
func (l *fakeLoad) Importers(path string) []string {
	var out []string
	for pkg, deps := range l.imports {
		for _, dep := range deps {
			if dep == path {
				out = append(out, pkg)
			}
		}
	}
	return out
}

func load(imports map[string][]string) *fakeLoad {
	l := &fakeLoad{imports: imports}
	for path := range imports {
		pkg := types.NewPackage(path, "x")
		l.passes = append(l.passes, lint.NewPass(nil, nil, pkg, nil))
	}
	return l
}

func runModuleRule(t *testing.T, ctx lint.ModuleContext, config *lint.Config, ruleID string) []lint.Diagnostic {
	t.Helper()

	var filtered []lint.Diagnostic
	for _, d := range lint.NewAnalyzer(config).AnalyzeModule(ctx) {
		if d.RuleID == ruleID {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func TestMD01_ImportFanout(t *testing.T) {
	ctx := load(map[string][]string{
		"example.com/m/app": {"example.com/m/a", "example.com/m/b", "example.com/m/c", "fmt"},
		"example.com/m/a":   {},
		"example.com/m/b":   {},
		"example.com/m/c":   {},
	})

	config := lint.NewConfig().SetRuleOptions("MD01", map[string]any{"threshold": 2})
	diags := runModuleRule(t, ctx, config, "MD01")

	require.Len(t, diags, 1)
	assert.Equal(t, "example.com/m/app", diags[0].FilePath)
	assert.Equal(t, "package example.com/m/app imports 3 first-party packages (threshold 2); consider splitting it", diags[0].Message)
	assert.Equal(t, lint.SeverityInfo, diags[0].Severity)
}

func TestMD01_DefaultThreshold(t *testing.T) {
	ctx := load(map[string][]string{
		"example.com/m/app": {"example.com/m/a", "example.com/m/b", "example.com/m/c"},
		"example.com/m/a":   {},
		"example.com/m/b":   {},
		"example.com/m/c":   {},
	})

	diags := runModuleRule(t, ctx, lint.NewConfig(), "MD01")
	assert.Empty(t, diags, "three imports stay under the default threshold")
}

func TestMD01_ExternalImportsIgnored(t *testing.T) {
	ctx := load(map[string][]string{
		"example.com/m/app": {"fmt", "strings", "net/http", "example.com/other/dep"},
	})

	config := lint.NewConfig().SetRuleOptions("MD01", map[string]any{"threshold": 0})
	diags := runModuleRule(t, ctx, config, "MD01")
	assert.Empty(t, diags, "only loaded packages count as first-party")
}
