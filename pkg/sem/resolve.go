package sem

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/types/typeutil"
)

// TypeOf returns the type of expr as recorded by the checker.
func TypeOf(info *types.Info, expr ast.Expr) (types.Type, bool) {
	if info == nil || expr == nil {
		return nil, false
	}
	t := info.TypeOf(expr)
	if t == nil {
		return nil, false
	}
	return t, true
}

// ObjectOf returns the object an identifier denotes, whether the identifier
// defines it or uses it.
func ObjectOf(info *types.Info, id *ast.Ident) (types.Object, bool) {
	if info == nil || id == nil {
		return nil, false
	}
	obj := info.ObjectOf(id)
	if obj == nil {
		return nil, false
	}
	return obj, true
}

// Callee returns the named target of a call: a function, method, builtin, or
// func-valued variable. Type conversions report false.
func Callee(info *types.Info, call *ast.CallExpr) (types.Object, bool) {
	if info == nil || call == nil {
		return nil, false
	}
	obj := typeutil.Callee(info, call)
	if obj == nil {
		return nil, false
	}
	return obj, true
}

// CalleeFunc narrows Callee to *types.Func. Both statically dispatched and
// interface method calls qualify; builtins, conversions, and calls through
// func-valued variables report false.
func CalleeFunc(info *types.Info, call *ast.CallExpr) (*types.Func, bool) {
	obj, ok := Callee(info, call)
	if !ok {
		return nil, false
	}
	fn, ok := obj.(*types.Func)
	return fn, ok
}

// SignatureOf returns the signature a call invokes, including calls through
// func-valued variables. Type conversions report false.
func SignatureOf(info *types.Info, call *ast.CallExpr) (*types.Signature, bool) {
	if info == nil || call == nil {
		return nil, false
	}
	tv, ok := info.Types[call.Fun]
	if !ok || tv.IsType() {
		return nil, false
	}
	sig, ok := tv.Type.Underlying().(*types.Signature)
	return sig, ok
}

// AssignableTo reports whether the value of expr is assignable to a variable
// of type to.
func AssignableTo(info *types.Info, expr ast.Expr, to types.Type) bool {
	t, ok := TypeOf(info, expr)
	if !ok || to == nil {
		return false
	}
	return types.AssignableTo(t, to)
}

// ConvertibleTo reports whether the value of expr is convertible to type to.
func ConvertibleTo(info *types.Info, expr ast.Expr, to types.Type) bool {
	t, ok := TypeOf(info, expr)
	if !ok || to == nil {
		return false
	}
	return types.ConvertibleTo(t, to)
}

// Implements reports whether the type of expr implements iface.
func Implements(info *types.Info, expr ast.Expr, iface *types.Interface) bool {
	t, ok := TypeOf(info, expr)
	if !ok || iface == nil {
		return false
	}
	return types.Implements(t, iface)
}
