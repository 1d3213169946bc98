package walk

import (
	"go/ast"
	"sync"
)

// List is a pooled collection of nodes of one kind. The zero value is not
// usable; obtain lists from Idents, Calls, Returns, or Assigns and give the
// storage back with Release.
type List[T ast.Node] struct {
	// Items holds the collected nodes in source order. The slice is only
	// valid until Release.
	Items []T

	pool     *sync.Pool
	released bool
}

// Release returns the list's storage to its pool. Releasing a list twice
// panics.
func (l *List[T]) Release() {
	if l.pool == nil || l.released {
		panic("walk: list already released")
	}
	l.released = true
	l.pool.Put(l)
}

var (
	identPool  = sync.Pool{New: func() any { return new(List[*ast.Ident]) }}
	callPool   = sync.Pool{New: func() any { return new(List[*ast.CallExpr]) }}
	returnPool = sync.Pool{New: func() any { return new(List[*ast.ReturnStmt]) }}
	assignPool = sync.Pool{New: func() any { return new(List[*ast.AssignStmt]) }}
)

// Idents collects every identifier under root in source order.
func Idents(root ast.Node) *List[*ast.Ident] {
	return collect[*ast.Ident](&identPool, root)
}

// Calls collects every call expression under root in source order.
func Calls(root ast.Node) *List[*ast.CallExpr] {
	return collect[*ast.CallExpr](&callPool, root)
}

// Returns collects every return statement under root in source order,
// including returns inside nested function literals.
func Returns(root ast.Node) *List[*ast.ReturnStmt] {
	return collect[*ast.ReturnStmt](&returnPool, root)
}

// Assigns collects every assignment statement under root in source order.
func Assigns(root ast.Node) *List[*ast.AssignStmt] {
	return collect[*ast.AssignStmt](&assignPool, root)
}

func collect[T ast.Node](pool *sync.Pool, root ast.Node) *List[T] {
	l := pool.Get().(*List[T])
	l.pool = pool
	l.released = false
	l.Items = l.Items[:0]
	if root == nil {
		return l
	}
	ast.Inspect(root, func(n ast.Node) bool {
		if t, ok := n.(T); ok {
			l.Items = append(l.Items, t)
		}
		return true
	})
	return l
}
