package syntax

import (
	"go/ast"
	"go/token"
)

// Execution describes whether one statement begins executing before another
// within a single run of the enclosing function.
type Execution int

// Execution answers.
const (
	// ExecutionMaybe means the ordering cannot be decided syntactically,
	// for example because a loop, goto, or function literal is involved.
	ExecutionMaybe Execution = iota
	// ExecutionYes means the first statement always begins before the second.
	ExecutionYes
	// ExecutionNo means the first statement never begins before the second.
	// Mutually exclusive branches answer No.
	ExecutionNo
)

// String returns the lowercase name of the answer.
func (e Execution) String() string {
	switch e {
	case ExecutionYes:
		return "yes"
	case ExecutionNo:
		return "no"
	default:
		return "maybe"
	}
}

// ExecutedBefore reports whether statement a begins executing before
// statement b. Both statements must be located somewhere inside body.
//
// The analysis is syntactic and deliberately conservative: any goto in the
// body, any function literal strictly enclosing one statement but not the
// other, and any loop enclosing both make the answer Maybe. A deferred
// statement is ordered by where it is registered, not where its function
// eventually runs.
func ExecutedBefore(body *ast.BlockStmt, a, b ast.Stmt) Execution {
	if body == nil || a == nil || b == nil {
		return ExecutionMaybe
	}
	if a == b {
		return ExecutionNo
	}
	if containsGoto(body) {
		return ExecutionMaybe
	}

	pa := pathTo(body, a)
	pb := pathTo(body, b)
	if pa == nil || pb == nil {
		return ExecutionMaybe
	}

	// Longest common prefix; both paths start at body so k >= 0.
	k := 0
	for k+1 < len(pa) && k+1 < len(pb) && pa[k+1] == pb[k+1] {
		k++
	}

	if funcLitBelow(pa, k) || funcLitBelow(pb, k) {
		return ExecutionMaybe
	}
	for i := 0; i < k; i++ {
		switch pa[i].(type) {
		case *ast.ForStmt, *ast.RangeStmt:
			// Both statements repeat together; ordering interleaves
			// across iterations.
			return ExecutionMaybe
		}
	}

	// Containment: the enclosing statement begins first.
	if k == len(pa)-1 {
		return ExecutionYes
	}
	if k == len(pb)-1 {
		return ExecutionNo
	}

	common := pa[k]
	ca, cb := pa[k+1], pb[k+1]

	switch c := common.(type) {
	case *ast.BlockStmt:
		if isCaseClause(ca) || isCaseClause(cb) {
			// Sibling clauses of a switch or select are exclusive,
			// unless a fallthrough chains them.
			if k > 0 && containsFallthrough(pa[k-1]) {
				return ExecutionMaybe
			}
			return ExecutionNo
		}
		return orderInList(stmtNodes(c.List), ca, cb)

	case *ast.CaseClause:
		return orderInList(stmtNodes(c.Body), ca, cb)

	case *ast.CommClause:
		if ca == ast.Node(c.Comm) {
			return ExecutionYes
		}
		if cb == ast.Node(c.Comm) {
			return ExecutionNo
		}
		return orderInList(stmtNodes(c.Body), ca, cb)

	case *ast.IfStmt:
		if ca == ast.Node(c.Init) {
			return ExecutionYes
		}
		if cb == ast.Node(c.Init) {
			return ExecutionNo
		}
		// Then versus else: never both in one run.
		return ExecutionNo

	case *ast.SwitchStmt:
		if ca == ast.Node(c.Init) {
			return ExecutionYes
		}
		if cb == ast.Node(c.Init) {
			return ExecutionNo
		}
		return ExecutionMaybe

	case *ast.TypeSwitchStmt:
		switch {
		case ca == ast.Node(c.Init), ca == ast.Node(c.Assign) && cb != ast.Node(c.Init):
			return ExecutionYes
		case cb == ast.Node(c.Init), cb == ast.Node(c.Assign):
			return ExecutionNo
		}
		return ExecutionMaybe

	case *ast.ForStmt:
		// Init runs exactly once, before anything else in the loop.
		if ca == ast.Node(c.Init) {
			return ExecutionYes
		}
		if cb == ast.Node(c.Init) {
			return ExecutionNo
		}
		return ExecutionMaybe

	case *ast.LabeledStmt:
		return ExecutionMaybe
	}
	return ExecutionMaybe
}

// pathTo returns the node path from root down to target, outermost first,
// or nil when target is not beneath root.
func pathTo(root, target ast.Node) []ast.Node {
	var path []ast.Node
	var stack []ast.Node
	ast.Inspect(root, func(n ast.Node) bool {
		if n == nil {
			stack = stack[:len(stack)-1]
			return true
		}
		if path != nil {
			return false
		}
		stack = append(stack, n)
		if n == target {
			path = append([]ast.Node(nil), stack...)
		}
		return true
	})
	return path
}

func funcLitBelow(path []ast.Node, k int) bool {
	for _, n := range path[k+1:] {
		if _, ok := n.(*ast.FuncLit); ok {
			return true
		}
	}
	return false
}

func containsGoto(body *ast.BlockStmt) bool {
	found := false
	ast.Inspect(body, func(n ast.Node) bool {
		if br, ok := n.(*ast.BranchStmt); ok && br.Tok == token.GOTO {
			found = true
		}
		return !found
	})
	return found
}

func containsFallthrough(n ast.Node) bool {
	found := false
	ast.Inspect(n, func(n ast.Node) bool {
		if br, ok := n.(*ast.BranchStmt); ok && br.Tok == token.FALLTHROUGH {
			found = true
		}
		return !found
	})
	return found
}

func isCaseClause(n ast.Node) bool {
	switch n.(type) {
	case *ast.CaseClause, *ast.CommClause:
		return true
	}
	return false
}

func orderInList(list []ast.Node, ca, cb ast.Node) Execution {
	ia, ib := -1, -1
	for i, s := range list {
		if s == ca {
			ia = i
		}
		if s == cb {
			ib = i
		}
	}
	switch {
	case ia < 0 || ib < 0:
		return ExecutionMaybe
	case ia < ib:
		return ExecutionYes
	default:
		return ExecutionNo
	}
}

func stmtNodes(stmts []ast.Stmt) []ast.Node {
	nodes := make([]ast.Node, len(stmts))
	for i, s := range stmts {
		nodes[i] = s
	}
	return nodes
}
