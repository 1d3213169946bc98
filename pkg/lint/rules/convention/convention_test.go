package convention_test

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

func TestCV01_SprintfConstant(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{
			name: "constant format no args",
			src: `package p

import "fmt"

var s = fmt.Sprintf("ready")
`,
			want: 1,
		},
		{
			name: "errorf constant",
			src: `package p

import "fmt"

var err = fmt.Errorf("boom")
`,
			want: 1,
		},
		{
			name: "named constant format",
			src: `package p

import "fmt"

const format = "ready"

var s = fmt.Sprintf(format)
`,
			want: 1,
		},
		{
			name: "format with verb and args",
			src: `package p

import "fmt"

var s = fmt.Sprintf("%d items", 3)
`,
			want: 0,
		},
		{
			name: "variable format",
			src: `package p

import "fmt"

var format = "ready"

var s = fmt.Sprintf(format)
`,
			want: 0,
		},
		{
			name: "same-named local function",
			src: `package p

func Sprintf(s string) string { return s }

var s = Sprintf("ready")
`,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.src, "CV01")
			assert.Len(t, diags, tt.want)
		})
	}
}

func TestCV01_Fix(t *testing.T) {
	diags := runRule(t, `package p

import "fmt"

var s = fmt.Sprintf("ready")
`, "CV01")

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "fmt.Sprintf")
	require.Len(t, diags[0].Fixes, 1)
	require.Len(t, diags[0].Fixes[0].TextEdits, 1)
	assert.Equal(t, `"ready"`, diags[0].Fixes[0].TextEdits[0].NewText)

	diags = runRule(t, `package p

import "fmt"

var err = fmt.Errorf("boom")
`, "CV01")

	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "errors.New")
	assert.Empty(t, diags[0].Fixes, "rewriting to errors.New may need a new import")
}

func TestCV02_ContextKeyType(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{
			name: "string key",
			src: `package p

import "context"

var ctx = context.WithValue(context.Background(), "user", 1)
`,
			want: 1,
		},
		{
			name: "int key",
			src: `package p

import "context"

var ctx = context.WithValue(context.Background(), 42, 1)
`,
			want: 1,
		},
		{
			name: "defined string type key",
			src: `package p

import "context"

type key string

var ctx = context.WithValue(context.Background(), key("user"), 1)
`,
			want: 0,
		},
		{
			name: "empty struct key",
			src: `package p

import "context"

type key struct{}

var ctx = context.WithValue(context.Background(), key{}, 1)
`,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.src, "CV02")
			assert.Len(t, diags, tt.want)
			if tt.want > 0 {
				assert.Contains(t, diags[0].Message, "built-in type")
			}
		})
	}
}

func TestCV03_ErrorStringFormat(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want int
	}{
		{
			name: "capitalized and punctuated",
			src: `package p

import "errors"

var err = errors.New("Something failed.")
`,
			want: 2,
		},
		{
			name: "well formed",
			src: `package p

import "errors"

var err = errors.New("something failed")
`,
			want: 0,
		},
		{
			name: "initialism start",
			src: `package p

import "errors"

var err = errors.New("EOF reached early")
`,
			want: 0,
		},
		{
			name: "capitalized errorf",
			src: `package p

import "fmt"

var err = fmt.Errorf("Bad input: %q", "x")
`,
			want: 1,
		},
		{
			name: "trailing colon",
			src: `package p

import "errors"

var err = errors.New("connect to host:")
`,
			want: 1,
		},
		{
			name: "empty string",
			src: `package p

import "errors"

var err = errors.New("")
`,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.src, "CV03")
			assert.Len(t, diags, tt.want)
		})
	}
}
