// Package convention provides lint rules for common Go conventions.
//
// Rules in this package:
//   - CV01: fmt.Sprintf/Errorf with a constant format and no arguments
//   - CV02: context.WithValue key of a built-in basic type
//   - CV03: error strings that are capitalized or end with punctuation
package convention
