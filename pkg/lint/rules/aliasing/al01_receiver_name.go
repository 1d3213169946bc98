package aliasing

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"

	"github.com/astkit-labs/astkit/pkg/lint"
	"github.com/astkit-labs/astkit/pkg/sem"
	"github.com/astkit-labs/astkit/pkg/symbols"
)

func init() {
	lint.Register(ReceiverName)
}

// ReceiverName flags methods whose receiver name drifts from the rest of
// the type.
var ReceiverName = lint.RuleDef{
	ID:          "AL01",
	Name:        "aliasing.receiver_name",
	Group:       "aliasing",
	Description: "Inconsistent receiver names across methods of one type.",
	Severity:    lint.SeverityInfo,
	Check:       checkReceiverName,
	Rationale:   "Readers learn one receiver name per type. A method that renames it forces a mental remap every time the code is read, for no gain.",
	BadExample:  "func (s *Server) Start() {}\nfunc (srv *Server) Stop() {}",
	GoodExample: "func (s *Server) Start() {}\nfunc (s *Server) Stop() {}",
	Fix:         "Rename the receiver to match the name used by the type's other methods.",
}

type receiverUse struct {
	name string
	pos  token.Pos
}

func checkReceiverName(pass *lint.Pass, _ map[string]any) []lint.Diagnostic {
	var diagnostics []lint.Diagnostic

	// Walk declarations in file order so the first method of a type sets
	// the expected name deterministically.
	first := make(map[*types.TypeName]receiverUse)
	for _, file := range pass.Files {
		for _, decl := range file.Decls {
			fn, ok := decl.(*ast.FuncDecl)
			if !ok || fn.Recv == nil || len(fn.Recv.List) != 1 {
				continue
			}
			names := fn.Recv.List[0].Names
			if len(names) != 1 || names[0].Name == "_" {
				continue
			}

			obj, ok := sem.ObjectOf(pass.Info, fn.Name)
			if !ok {
				continue
			}
			method, ok := obj.(*types.Func)
			if !ok {
				continue
			}
			typeName, ok := symbols.Receiver(method)
			if !ok {
				continue
			}

			name := names[0].Name
			prev, seen := first[typeName]
			if !seen {
				first[typeName] = receiverUse{name: name, pos: names[0].Pos()}
				continue
			}
			if prev.name == name {
				continue
			}
			diagnostics = append(diagnostics, lint.Diagnostic{
				RuleID:   "AL01",
				Severity: lint.SeverityInfo,
				Message:  fmt.Sprintf("receiver name %s should be consistent with previous receiver name %s for %s", name, prev.name, typeName.Name()),
				Pos:      names[0].Pos(),
				EndPos:   names[0].End(),
				RelatedInfo: []lint.RelatedInfo{{
					Pos:     prev.pos,
					Message: "previous receiver name",
				}},
			})
		}
	}

	return diagnostics
}
