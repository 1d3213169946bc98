package syntax

import "go/ast"

// EqualExprs reports whether two expressions are structurally identical,
// ignoring positions and comments. Parentheses are transparent: (x) equals x.
func EqualExprs(a, b ast.Expr) bool {
	return equalExpr(a, b)
}

// EqualStmts reports whether two statements are structurally identical,
// ignoring positions and comments.
func EqualStmts(a, b ast.Stmt) bool {
	return equalStmt(a, b)
}

func equalExpr(a, b ast.Expr) bool {
	if a != nil {
		a = Unparen(a)
	}
	if b != nil {
		b = Unparen(b)
	}
	if (a == nil) != (b == nil) {
		return false
	}
	if a == nil {
		return true
	}

	switch a := a.(type) {
	case *ast.Ident:
		b, ok := b.(*ast.Ident)
		return ok && a.Name == b.Name
	case *ast.BasicLit:
		b, ok := b.(*ast.BasicLit)
		return ok && a.Kind == b.Kind && a.Value == b.Value
	case *ast.Ellipsis:
		b, ok := b.(*ast.Ellipsis)
		return ok && equalExpr(a.Elt, b.Elt)
	case *ast.FuncLit:
		b, ok := b.(*ast.FuncLit)
		return ok && equalExpr(a.Type, b.Type) && equalStmt(a.Body, b.Body)
	case *ast.CompositeLit:
		b, ok := b.(*ast.CompositeLit)
		return ok && equalExpr(a.Type, b.Type) && equalExprList(a.Elts, b.Elts)
	case *ast.SelectorExpr:
		b, ok := b.(*ast.SelectorExpr)
		return ok && equalExpr(a.X, b.X) && a.Sel.Name == b.Sel.Name
	case *ast.IndexExpr:
		b, ok := b.(*ast.IndexExpr)
		return ok && equalExpr(a.X, b.X) && equalExpr(a.Index, b.Index)
	case *ast.IndexListExpr:
		b, ok := b.(*ast.IndexListExpr)
		return ok && equalExpr(a.X, b.X) && equalExprList(a.Indices, b.Indices)
	case *ast.SliceExpr:
		b, ok := b.(*ast.SliceExpr)
		return ok && equalExpr(a.X, b.X) &&
			equalExpr(a.Low, b.Low) && equalExpr(a.High, b.High) &&
			equalExpr(a.Max, b.Max) && a.Slice3 == b.Slice3
	case *ast.TypeAssertExpr:
		b, ok := b.(*ast.TypeAssertExpr)
		return ok && equalExpr(a.X, b.X) && equalExpr(a.Type, b.Type)
	case *ast.CallExpr:
		b, ok := b.(*ast.CallExpr)
		return ok && equalExpr(a.Fun, b.Fun) &&
			equalExprList(a.Args, b.Args) &&
			a.Ellipsis.IsValid() == b.Ellipsis.IsValid()
	case *ast.StarExpr:
		b, ok := b.(*ast.StarExpr)
		return ok && equalExpr(a.X, b.X)
	case *ast.UnaryExpr:
		b, ok := b.(*ast.UnaryExpr)
		return ok && a.Op == b.Op && equalExpr(a.X, b.X)
	case *ast.BinaryExpr:
		b, ok := b.(*ast.BinaryExpr)
		return ok && a.Op == b.Op && equalExpr(a.X, b.X) && equalExpr(a.Y, b.Y)
	case *ast.KeyValueExpr:
		b, ok := b.(*ast.KeyValueExpr)
		return ok && equalExpr(a.Key, b.Key) && equalExpr(a.Value, b.Value)
	case *ast.ArrayType:
		b, ok := b.(*ast.ArrayType)
		return ok && equalExpr(a.Len, b.Len) && equalExpr(a.Elt, b.Elt)
	case *ast.StructType:
		b, ok := b.(*ast.StructType)
		return ok && equalFieldList(a.Fields, b.Fields)
	case *ast.FuncType:
		b, ok := b.(*ast.FuncType)
		return ok && equalFieldList(a.TypeParams, b.TypeParams) &&
			equalFieldList(a.Params, b.Params) && equalFieldList(a.Results, b.Results)
	case *ast.InterfaceType:
		b, ok := b.(*ast.InterfaceType)
		return ok && equalFieldList(a.Methods, b.Methods)
	case *ast.MapType:
		b, ok := b.(*ast.MapType)
		return ok && equalExpr(a.Key, b.Key) && equalExpr(a.Value, b.Value)
	case *ast.ChanType:
		b, ok := b.(*ast.ChanType)
		return ok && a.Dir == b.Dir && equalExpr(a.Value, b.Value)
	}
	return false
}

func equalExprList(a, b []ast.Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalExpr(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalFieldList(a, b *ast.FieldList) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if a == nil {
		return true
	}
	if len(a.List) != len(b.List) {
		return false
	}
	for i, fa := range a.List {
		fb := b.List[i]
		if len(fa.Names) != len(fb.Names) {
			return false
		}
		for j := range fa.Names {
			if fa.Names[j].Name != fb.Names[j].Name {
				return false
			}
		}
		if !equalExpr(fa.Type, fb.Type) {
			return false
		}
	}
	return true
}

func equalStmt(a, b ast.Stmt) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if a == nil {
		return true
	}

	switch a := a.(type) {
	case *ast.DeclStmt:
		b, ok := b.(*ast.DeclStmt)
		return ok && equalDecl(a.Decl, b.Decl)
	case *ast.EmptyStmt:
		_, ok := b.(*ast.EmptyStmt)
		return ok
	case *ast.LabeledStmt:
		b, ok := b.(*ast.LabeledStmt)
		return ok && a.Label.Name == b.Label.Name && equalStmt(a.Stmt, b.Stmt)
	case *ast.ExprStmt:
		b, ok := b.(*ast.ExprStmt)
		return ok && equalExpr(a.X, b.X)
	case *ast.SendStmt:
		b, ok := b.(*ast.SendStmt)
		return ok && equalExpr(a.Chan, b.Chan) && equalExpr(a.Value, b.Value)
	case *ast.IncDecStmt:
		b, ok := b.(*ast.IncDecStmt)
		return ok && a.Tok == b.Tok && equalExpr(a.X, b.X)
	case *ast.AssignStmt:
		b, ok := b.(*ast.AssignStmt)
		return ok && a.Tok == b.Tok &&
			equalExprList(a.Lhs, b.Lhs) && equalExprList(a.Rhs, b.Rhs)
	case *ast.GoStmt:
		b, ok := b.(*ast.GoStmt)
		return ok && equalExpr(a.Call, b.Call)
	case *ast.DeferStmt:
		b, ok := b.(*ast.DeferStmt)
		return ok && equalExpr(a.Call, b.Call)
	case *ast.ReturnStmt:
		b, ok := b.(*ast.ReturnStmt)
		return ok && equalExprList(a.Results, b.Results)
	case *ast.BranchStmt:
		b, ok := b.(*ast.BranchStmt)
		if !ok || a.Tok != b.Tok {
			return false
		}
		if (a.Label == nil) != (b.Label == nil) {
			return false
		}
		return a.Label == nil || a.Label.Name == b.Label.Name
	case *ast.BlockStmt:
		b, ok := b.(*ast.BlockStmt)
		return ok && equalStmtList(a.List, b.List)
	case *ast.IfStmt:
		b, ok := b.(*ast.IfStmt)
		return ok && equalStmt(a.Init, b.Init) && equalExpr(a.Cond, b.Cond) &&
			equalStmt(a.Body, b.Body) && equalStmt(a.Else, b.Else)
	case *ast.CaseClause:
		b, ok := b.(*ast.CaseClause)
		return ok && equalExprList(a.List, b.List) && equalStmtList(a.Body, b.Body)
	case *ast.SwitchStmt:
		b, ok := b.(*ast.SwitchStmt)
		return ok && equalStmt(a.Init, b.Init) && equalExpr(a.Tag, b.Tag) &&
			equalStmt(a.Body, b.Body)
	case *ast.TypeSwitchStmt:
		b, ok := b.(*ast.TypeSwitchStmt)
		return ok && equalStmt(a.Init, b.Init) && equalStmt(a.Assign, b.Assign) &&
			equalStmt(a.Body, b.Body)
	case *ast.CommClause:
		b, ok := b.(*ast.CommClause)
		return ok && equalStmt(a.Comm, b.Comm) && equalStmtList(a.Body, b.Body)
	case *ast.SelectStmt:
		b, ok := b.(*ast.SelectStmt)
		return ok && equalStmt(a.Body, b.Body)
	case *ast.ForStmt:
		b, ok := b.(*ast.ForStmt)
		return ok && equalStmt(a.Init, b.Init) && equalExpr(a.Cond, b.Cond) &&
			equalStmt(a.Post, b.Post) && equalStmt(a.Body, b.Body)
	case *ast.RangeStmt:
		b, ok := b.(*ast.RangeStmt)
		return ok && equalExpr(a.Key, b.Key) && equalExpr(a.Value, b.Value) &&
			a.Tok == b.Tok && equalExpr(a.X, b.X) && equalStmt(a.Body, b.Body)
	}
	return false
}

func equalStmtList(a, b []ast.Stmt) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalStmt(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalDecl(a, b ast.Decl) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if a == nil {
		return true
	}
	ga, ok := a.(*ast.GenDecl)
	if !ok {
		return false
	}
	gb, ok := b.(*ast.GenDecl)
	if !ok || ga.Tok != gb.Tok || len(ga.Specs) != len(gb.Specs) {
		return false
	}
	for i := range ga.Specs {
		if !equalSpec(ga.Specs[i], gb.Specs[i]) {
			return false
		}
	}
	return true
}

func equalSpec(a, b ast.Spec) bool {
	switch a := a.(type) {
	case *ast.ValueSpec:
		b, ok := b.(*ast.ValueSpec)
		if !ok || len(a.Names) != len(b.Names) {
			return false
		}
		for i := range a.Names {
			if a.Names[i].Name != b.Names[i].Name {
				return false
			}
		}
		return equalExpr(a.Type, b.Type) && equalExprList(a.Values, b.Values)
	case *ast.TypeSpec:
		b, ok := b.(*ast.TypeSpec)
		return ok && a.Name.Name == b.Name.Name &&
			a.Assign.IsValid() == b.Assign.IsValid() &&
			equalFieldList(a.TypeParams, b.TypeParams) && equalExpr(a.Type, b.Type)
	case *ast.ImportSpec:
		b, ok := b.(*ast.ImportSpec)
		if !ok {
			return false
		}
		if (a.Name == nil) != (b.Name == nil) {
			return false
		}
		if a.Name != nil && a.Name.Name != b.Name.Name {
			return false
		}
		return a.Path.Value == b.Path.Value
	}
	return false
}
