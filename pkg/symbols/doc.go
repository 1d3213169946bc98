// Package symbols compares and names type-checker objects.
//
// The comparers are shared singletons with Equal and Hash methods, so they
// can key hash tables the same way typeutil.Map does. Equality follows
// origin identity within one type-check universe; EqualByName and the
// Qualified patterns compare by name instead, which also works across
// universes, for example between a test oracle and the package under test.
package symbols
