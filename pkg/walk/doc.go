// Package walk collects syntax nodes from subtrees and traverses function
// bodies in approximate execution order.
//
// The collectors draw their backing storage from a sync.Pool because
// analyses run them on every function body of every file; callers must
// Release each list exactly once. Releasing twice panics rather than
// silently corrupting the pool.
package walk
