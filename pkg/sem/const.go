package sem

import (
	"go/ast"
	"go/constant"
	"go/types"
)

// ConstValue returns the checker-folded constant value of expr. Named
// constants, iota, conversions, and constant arithmetic all fold; anything
// the checker could not evaluate at compile time reports false.
func ConstValue(info *types.Info, expr ast.Expr) (constant.Value, bool) {
	if info == nil || expr == nil {
		return nil, false
	}
	if tv, ok := info.Types[expr]; ok {
		if tv.Value == nil {
			return nil, false
		}
		return tv.Value, true
	}
	// Identifiers on the left of a declaration are recorded in Defs rather
	// than Types.
	if id, ok := expr.(*ast.Ident); ok {
		if c, ok := info.ObjectOf(id).(*types.Const); ok {
			return c.Val(), true
		}
	}
	return nil, false
}

// StringValue returns the constant string value of expr. Unlike a literal
// check this sees through concatenation and named constants.
func StringValue(info *types.Info, expr ast.Expr) (string, bool) {
	v, ok := ConstValue(info, expr)
	if !ok || v.Kind() != constant.String {
		return "", false
	}
	return constant.StringVal(v), true
}

// BoolValue returns the constant boolean value of expr.
func BoolValue(info *types.Info, expr ast.Expr) (bool, bool) {
	v, ok := ConstValue(info, expr)
	if !ok || v.Kind() != constant.Bool {
		return false, false
	}
	return constant.BoolVal(v), true
}

// IntValue returns the constant integer value of expr. Values that do not
// fit in an int64 report false.
func IntValue(info *types.Info, expr ast.Expr) (int64, bool) {
	v, ok := ConstValue(info, expr)
	if !ok || v.Kind() != constant.Int {
		return 0, false
	}
	i, exact := constant.Int64Val(v)
	if !exact {
		return 0, false
	}
	return i, true
}
