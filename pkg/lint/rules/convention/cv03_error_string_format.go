package convention

import (
	"go/ast"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/astkit-labs/astkit/pkg/lint"
	"github.com/astkit-labs/astkit/pkg/sem"
	"github.com/astkit-labs/astkit/pkg/symbols"
)

func init() {
	lint.Register(ErrorStringFormat)
}

// ErrorStringFormat flags error strings that read badly when wrapped.
var ErrorStringFormat = lint.RuleDef{
	ID:          "CV03",
	Name:        "convention.error_string_format",
	Group:       "convention",
	Description: "Error strings that are capitalized or end with punctuation or a newline.",
	Severity:    lint.SeverityInfo,
	Check:       checkErrorStringFormat,
	Rationale:   "Error strings usually appear mid-sentence after other context, so a leading capital or trailing punctuation produces awkward combined messages.",
	BadExample:  `errors.New("Something failed.")`,
	GoodExample: `errors.New("something failed")`,
}

var errorsNewFunc = symbols.MustQualified("errors.New")

func checkErrorStringFormat(pass *lint.Pass, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic

	pass.Inspector().Preorder([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node) {
		call := n.(*ast.CallExpr)
		if len(call.Args) == 0 {
			return
		}
		fn, ok := sem.CalleeFunc(pass.Info, call)
		if !ok {
			return
		}
		if !errorsNewFunc.Match(fn) && !errorfFunc.Match(fn) {
			return
		}
		msg, ok := sem.StringValue(pass.Info, call.Args[0])
		if !ok || msg == "" {
			return
		}

		if capitalizedWord(msg) {
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "CV03",
				Severity: lint.SeverityInfo,
				Message:  "error string is capitalized",
				Pos:      call.Args[0].Pos(),
				EndPos:   call.Args[0].End(),
			})
		}
		if last, _ := utf8.DecodeLastRuneInString(msg); strings.ContainsRune(".:!\n", last) {
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "CV03",
				Severity: lint.SeverityInfo,
				Message:  "error string ends with punctuation or a newline",
				Pos:      call.Args[0].Pos(),
				EndPos:   call.Args[0].End(),
			})
		}
	})

	return diagnostics
}

// capitalizedWord reports whether the string opens with a capitalized word
// that is not an initialism like EOF or HTTP.
func capitalizedWord(s string) bool {
	first, _ := utf8.DecodeRuneInString(s)
	if !unicode.IsUpper(first) {
		return false
	}
	word, _, _ := strings.Cut(s, " ")
	return word != strings.ToUpper(word)
}
