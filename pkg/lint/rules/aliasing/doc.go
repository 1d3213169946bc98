// Package aliasing provides lint rules about receivers and parameter
// aliasing.
//
// Rules in this package:
//   - AL01: inconsistent receiver names across methods of one type
//   - AL02: parameters blanked with _ = x and then used anyway
package aliasing
