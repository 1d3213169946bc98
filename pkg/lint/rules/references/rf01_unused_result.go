package references

import (
	"go/ast"
	"go/types"

	"github.com/astkit-labs/astkit/pkg/lint"
	"github.com/astkit-labs/astkit/pkg/sem"
	"github.com/astkit-labs/astkit/pkg/symbols"
	"github.com/astkit-labs/astkit/pkg/syntax"
)

func init() {
	lint.Register(UnusedResult)
}

// UnusedResult flags statement-level calls whose only effect is the value
// they return.
var UnusedResult = lint.RuleDef{
	ID:          "RF01",
	Name:        "references.unused_result",
	Group:       "references",
	Description: "Discarded result of a call to a pure stdlib function.",
	Severity:    lint.SeverityWarning,
	Check:       checkUnusedResult,
	Rationale:   "Functions like strings.ToUpper return a new value and change nothing else. Calling one as a statement does no work at all; the caller almost certainly meant to keep the result.",
	BadExample:  `strings.TrimSpace(name)`,
	GoodExample: `name = strings.TrimSpace(name)`,
}

// pureFuncs are stdlib functions and methods whose only observable effect
// is their return value.
var pureFuncs = []symbols.Qualified{
	symbols.MustQualified("strings.ToUpper"),
	symbols.MustQualified("strings.ToLower"),
	symbols.MustQualified("strings.TrimSpace"),
	symbols.MustQualified("strings.Trim"),
	symbols.MustQualified("strings.TrimPrefix"),
	symbols.MustQualified("strings.TrimSuffix"),
	symbols.MustQualified("strings.Replace"),
	symbols.MustQualified("strings.ReplaceAll"),
	symbols.MustQualified("strings.Split"),
	symbols.MustQualified("strings.Join"),
	symbols.MustQualified("strings.Fields"),
	symbols.MustQualified("strings.Repeat"),
	symbols.MustQualified("strings.Contains"),
	symbols.MustQualified("strings.HasPrefix"),
	symbols.MustQualified("strings.HasSuffix"),
	symbols.MustQualified("strings.Index"),
	symbols.MustQualified("strings.EqualFold"),
	symbols.MustQualified("fmt.Sprintf"),
	symbols.MustQualified("fmt.Sprint"),
	symbols.MustQualified("fmt.Sprintln"),
	symbols.MustQualified("fmt.Errorf"),
	symbols.MustQualified("errors.New"),
	symbols.MustQualified("strconv.Itoa"),
	symbols.MustQualified("strconv.Quote"),
	symbols.MustQualified("strconv.FormatInt"),
	symbols.MustQualified("strconv.FormatFloat"),
	symbols.MustQualified("strconv.FormatBool"),
	symbols.MustQualified("math.Abs"),
	symbols.MustQualified("slices.Contains"),
	symbols.MustQualified("slices.Index"),
	symbols.MustQualified("(time.Time).Add"),
	symbols.MustQualified("(time.Time).Sub"),
	symbols.MustQualified("(time.Time).UTC"),
	symbols.MustQualified("(time.Time).Truncate"),
}

func checkUnusedResult(pass *lint.Pass, _ map[string]any) []lint.Diagnostic {
	memo := purityMemo{buckets: make(map[uint32][]memoEntry)}

	var diagnostics []lint.Diagnostic
	pass.Inspector().Preorder([]ast.Node{(*ast.ExprStmt)(nil)}, func(n ast.Node) {
		call, ok := syntax.Unparen(n.(*ast.ExprStmt).X).(*ast.CallExpr)
		if !ok {
			return
		}
		fn, ok := sem.CalleeFunc(pass.Info, call)
		if !ok || !memo.pure(fn) {
			return
		}
		diagnostics = append(diagnostics, lint.Diagnostic{
			RuleID:   "RF01",
			Severity: lint.SeverityWarning,
			Message:  "result of " + symbols.Name(fn) + " call is never used",
			Pos:      call.Pos(),
			EndPos:   call.End(),
		})
	})

	return diagnostics
}

// purityMemo caches the pattern-list scan per callee, bucketed the way
// symbols comparers are meant to key hash tables. Generic instantiations
// share their origin's entry.
type purityMemo struct {
	buckets map[uint32][]memoEntry
}

type memoEntry struct {
	fn   *types.Func
	pure bool
}

func (m *purityMemo) pure(fn *types.Func) bool {
	hash := symbols.Objects.Hash(fn)
	for _, entry := range m.buckets[hash] {
		if symbols.Objects.Equal(entry.fn, fn) {
			return entry.pure
		}
	}

	pure := false
	for _, q := range pureFuncs {
		if q.Match(fn) {
			pure = true
			break
		}
	}
	m.buckets[hash] = append(m.buckets[hash], memoEntry{fn: fn, pure: pure})
	return pure
}
