package structure_test

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astkit-labs/astkit/internal/testutil"
	"github.com/astkit-labs/astkit/pkg/lint"
	_ "github.com/astkit-labs/astkit/pkg/lint/rules" // register rules
)

// Helper to run analysis and filter by rule ID
func runRule(t *testing.T, src, ruleID string) []lint.Diagnostic {
	t.Helper()
	checked := testutil.TypeCheck(t, src)
	pass := lint.NewPass(checked.Fset, []*ast.File{checked.File}, checked.Pkg, checked.Info)

	var filtered []lint.Diagnostic
	for _, d := range lint.NewAnalyzer(lint.NewConfig()).Analyze(pass) {
		if d.RuleID == ruleID {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func TestST01_ConstantCondition(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{
			name: "if true",
			src: `package p

func f() {
	if true {
		println("a")
	}
}
`,
			want: 1,
		},
		{
			name: "variable condition",
			src: `package p

func f(x int) {
	if x > 0 {
		println("a")
	}
}
`,
			want: 0,
		},
		{
			name: "bare for",
			src: `package p

func f() {
	for {
		return
	}
}
`,
			want: 0,
		},
		{
			name: "for true",
			src: `package p

func f() {
	for true {
		return
	}
}
`,
			want: 1,
		},
		{
			name: "constant false flag",
			src: `package p

const debug = false

func f() {
	if debug {
		println("a")
	}
}
`,
			want: 1,
		},
		{
			name: "parenthesized true",
			src: `package p

func f() {
	if (true) {
		println("a")
	}
}
`,
			want: 1,
		},
		{
			name: "constant comparison",
			src: `package p

func f() {
	if 1 > 2 {
		println("a")
	}
}
`,
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.src, "ST01")
			assert.Len(t, diags, tt.want)
		})
	}
}

func TestST01_Messages(t *testing.T) {
	diags := runRule(t, `package p

const debug = false

func f() {
	if debug {
		println("a")
	}
}
`, "ST01")
	require.Len(t, diags, 1)
	assert.Equal(t, "condition is always false", diags[0].Message)

	diags = runRule(t, `package p

func f() {
	for true {
		return
	}
}
`, "ST01")
	require.Len(t, diags, 1)
	assert.Equal(t, "condition is always true", diags[0].Message)
	require.Len(t, diags, 1)
	require.Len(t, diags[0].Fixes, 1, "for true can drop its condition")
}

func TestST02_SelfAssign(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{
			name: "variable to itself",
			src: `package p

func f(x int) int {
	x = x
	return x
}
`,
			want: 1,
		},
		{
			name: "different variables",
			src: `package p

func f(x, y int) int {
	x = y
	return x
}
`,
			want: 0,
		},
		{
			name: "field to itself",
			src: `package p

type cfg struct{ n int }

func f(c *cfg) {
	c.n = c.n
}
`,
			want: 1,
		},
		{
			name: "tuple both self",
			src: `package p

func f(x, y int) (int, int) {
	x, y = x, y
	return x, y
}
`,
			want: 2,
		},
		{
			name: "swap",
			src: `package p

func f(x, y int) (int, int) {
	x, y = y, x
	return x, y
}
`,
			want: 0,
		},
		{
			name: "blank discard",
			src: `package p

func f(x int) {
	_ = x
}
`,
			want: 0,
		},
		{
			name: "index with call",
			src: `package p

func key() int { return 0 }

func f(m map[int]int) {
	m[key()] = m[key()]
}
`,
			want: 0,
		},
		{
			name: "short declaration shadow",
			src: `package p

func f(x int) {
	{
		x := x
		_ = x
	}
}
`,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.src, "ST02")
			assert.Len(t, diags, tt.want)
		})
	}
}

func TestST02_Fix(t *testing.T) {
	diags := runRule(t, `package p

func f(x int) int {
	x = x
	return x
}
`, "ST02")

	require.Len(t, diags, 1)
	assert.Equal(t, "x is assigned to itself", diags[0].Message)
	require.Len(t, diags, 1)
	require.Len(t, diags[0].Fixes, 1, "a pure self assignment can be deleted")
	assert.Empty(t, diags[0].Fixes[0].TextEdits[0].NewText)
}

func TestST03_DuplicateCondition(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{
			name: "duplicate arm",
			src: `package p

func f(x int) {
	if x > 0 {
		println("a")
	} else if x > 0 {
		println("b")
	}
}
`,
			want: 1,
		},
		{
			name: "distinct arms",
			src: `package p

func f(x int) {
	if x > 0 {
		println("a")
	} else if x < 0 {
		println("b")
	}
}
`,
			want: 0,
		},
		{
			name: "duplicate of first in long chain",
			src: `package p

func f(x int) {
	if x > 0 {
		println("a")
	} else if x > 1 {
		println("b")
	} else if x > 0 {
		println("c")
	}
}
`,
			want: 1,
		},
		{
			name: "separate statements",
			src: `package p

func f(x int) {
	if x > 0 {
		println("a")
	}
	if x > 0 {
		println("b")
	}
}
`,
			want: 0,
		},
		{
			name: "conditions with calls",
			src: `package p

func flip() bool { return false }

func f() {
	if flip() {
		println("a")
	} else if flip() {
		println("b")
	}
}
`,
			want: 0,
		},
		{
			name: "nested chains are independent",
			src: `package p

func f(x int) {
	if x > 0 {
		if x > 0 {
			println("a")
		}
	}
}
`,
			want: 0,
		},
		{
			name: "init statement disables the chain",
			src: `package p

func g(x int) bool { return x > 0 }

func f(x int) {
	if v := g(x); v {
		println("a")
	} else if v {
		println("b")
	}
}
`,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.src, "ST03")
			assert.Len(t, diags, tt.want)
		})
	}
}

func TestST03_RelatedInfo(t *testing.T) {
	diags := runRule(t, `package p

func f(x int) {
	if x > 0 {
		println("a")
	} else if x > 0 {
		println("b")
	}
}
`, "ST03")

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "duplicate condition x > 0")
	require.Len(t, diags[0].RelatedInfo, 1)
	assert.Equal(t, "first checked here", diags[0].RelatedInfo[0].Message)
}
