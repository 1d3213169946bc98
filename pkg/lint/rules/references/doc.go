// Package references provides lint rules about discarded results.
//
// Rules in this package:
//   - RF01: discarded results of calls to pure stdlib functions
package references
