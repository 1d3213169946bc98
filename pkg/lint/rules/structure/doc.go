// Package structure provides lint rules about statement structure and
// control flow.
//
// Rules in this package:
//   - ST01: if/for conditions that are constant-true or constant-false
//   - ST02: expressions assigned to themselves
//   - ST03: duplicate conditions in an if/else-if chain
package structure
