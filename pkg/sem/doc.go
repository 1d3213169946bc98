// Package sem answers semantic questions about expressions by delegating to
// the checker's own facts in types.Info. Nothing here re-derives what the
// type checker already knows; the package only looks results up and narrows
// them, reporting false instead of guessing when a fact is absent.
//
// All functions are pure, tolerate nil inputs, and are safe for concurrent
// use with a completed types.Info.
package sem
