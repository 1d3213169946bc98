package sem

import (
	"go/ast"
	"go/types"
)

// ParamForArg returns the parameter that receives argument i of call. For a
// variadic signature every trailing argument, including a ...-spread slice,
// binds to the final parameter.
func ParamForArg(sig *types.Signature, call *ast.CallExpr, i int) (*types.Var, bool) {
	if sig == nil || call == nil || i < 0 || i >= len(call.Args) {
		return nil, false
	}
	params := sig.Params()
	if sig.Variadic() && i >= params.Len()-1 {
		return params.At(params.Len() - 1), true
	}
	if i >= params.Len() {
		return nil, false
	}
	return params.At(i), true
}

// ArgForParam returns the arguments bound to parameter j of call. A plain
// parameter binds exactly one argument; the variadic parameter binds every
// trailing argument, possibly none.
func ArgForParam(sig *types.Signature, call *ast.CallExpr, j int) ([]ast.Expr, bool) {
	if sig == nil || call == nil || j < 0 || j >= sig.Params().Len() {
		return nil, false
	}
	if sig.Variadic() && j == sig.Params().Len()-1 {
		if j >= len(call.Args) {
			return nil, true
		}
		return call.Args[j:], true
	}
	if j >= len(call.Args) {
		return nil, false
	}
	return []ast.Expr{call.Args[j]}, true
}

// FieldForElt returns the struct field a composite-literal element
// initializes. elt may be the whole keyed element or just its value; for a
// positional literal it is the element expression itself. Map, slice, and
// array literals report false.
func FieldForElt(info *types.Info, lit *ast.CompositeLit, elt ast.Expr) (*types.Var, bool) {
	if info == nil || lit == nil || elt == nil {
		return nil, false
	}
	tv, ok := info.Types[lit]
	if !ok {
		return nil, false
	}
	st, ok := tv.Type.Underlying().(*types.Struct)
	if !ok {
		return nil, false
	}

	for i, e := range lit.Elts {
		if kv, ok := e.(*ast.KeyValueExpr); ok {
			if kv != elt && kv.Value != elt {
				continue
			}
			key, ok := kv.Key.(*ast.Ident)
			if !ok {
				return nil, false
			}
			if v, ok := info.Uses[key].(*types.Var); ok {
				return v, true
			}
			return nil, false
		}
		if e == elt {
			if i >= st.NumFields() {
				return nil, false
			}
			return st.Field(i), true
		}
	}
	return nil, false
}
