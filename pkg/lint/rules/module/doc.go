// Package module provides lint rules that look at the whole load rather
// than one package at a time.
//
// Rules in this package:
//   - MD01: packages importing more first-party packages than a threshold
package module
