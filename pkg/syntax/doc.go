// Package syntax provides predicates and traversal helpers over go/ast nodes.
//
// Everything here is purely syntactic: no type information is consulted, so
// the helpers are usable before or without type checking. Queries that need
// the semantic model live in pkg/sem.
//
// # Try-returns
//
// Helpers report "no match" with a boolean second return instead of an error.
// A miss is an ordinary outcome when probing syntax, and callers are expected
// to test the boolean and move on:
//
//	if s, ok := syntax.StringLit(arg); ok {
//		// arg is a string literal with value s
//	}
//
// # Ancestor stacks
//
// Go syntax nodes carry no parent pointers. Helpers that look upward take the
// ancestor stack supplied by inspector.WithStack (outermost first, the node
// itself last), or resolve one from a position via PathAt.
package syntax
