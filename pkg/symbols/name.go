package symbols

import (
	"fmt"
	"go/types"
	"strings"
)

// Qualified is a parsed object pattern. Three forms exist:
//
//	path.Name          a package-level object
//	(path.Type).Name   a method with a value receiver
//	(*path.Type).Name  a method with a pointer receiver
//
// A bare Name with no dot matches universe objects such as error.
type Qualified struct {
	// Path is the import path of the declaring package.
	Path string
	// Type is the receiver type name; empty for package-level objects.
	Type string
	// Pointer marks a pointer receiver.
	Pointer bool
	// Name is the object or method name.
	Name string
}

// ParseQualified parses a pattern string.
func ParseQualified(s string) (Qualified, error) {
	if strings.ContainsAny(s, " \t") {
		return Qualified{}, fmt.Errorf("malformed pattern %q: contains whitespace", s)
	}
	if strings.HasPrefix(s, "(") {
		recv, name, ok := strings.Cut(s, ").")
		if !ok || name == "" {
			return Qualified{}, fmt.Errorf("malformed method pattern %q: want (path.Type).Name", s)
		}
		recv = recv[1:]
		q := Qualified{Name: name}
		if strings.HasPrefix(recv, "*") {
			q.Pointer = true
			recv = recv[1:]
		}
		dot := strings.LastIndexByte(recv, '.')
		if dot <= 0 || dot == len(recv)-1 {
			return Qualified{}, fmt.Errorf("malformed method pattern %q: receiver needs a package path", s)
		}
		q.Path, q.Type = recv[:dot], recv[dot+1:]
		return q, nil
	}
	if strings.ContainsAny(s, "()*") {
		return Qualified{}, fmt.Errorf("malformed pattern %q", s)
	}
	dot := strings.LastIndexByte(s, '.')
	if dot == -1 {
		if s == "" {
			return Qualified{}, fmt.Errorf("empty pattern")
		}
		return Qualified{Name: s}, nil
	}
	if dot == 0 || dot == len(s)-1 {
		return Qualified{}, fmt.Errorf("malformed pattern %q: want path.Name", s)
	}
	return Qualified{Path: s[:dot], Name: s[dot+1:]}, nil
}

// MustQualified is ParseQualified for compile-time-constant patterns. It
// panics on malformed input so a typo in a rule table fails at start-up, not
// silently at match time.
func MustQualified(s string) Qualified {
	q, err := ParseQualified(s)
	if err != nil {
		panic(err)
	}
	return q
}

// String renders the pattern back to its source form.
func (q Qualified) String() string {
	if q.Type != "" {
		star := ""
		if q.Pointer {
			star = "*"
		}
		return fmt.Sprintf("(%s%s.%s).%s", star, q.Path, q.Type, q.Name)
	}
	if q.Path == "" {
		return q.Name
	}
	return q.Path + "." + q.Name
}

// Match reports whether obj is the object the pattern names. Methods match
// receiver pointer-ness exactly; generic instantiations match through their
// origin.
func (q Qualified) Match(obj types.Object) bool {
	if obj == nil || obj.Name() != q.Name {
		return false
	}
	obj = origin(obj)

	if q.Type != "" {
		fn, ok := obj.(*types.Func)
		if !ok {
			return false
		}
		recv, ptr, hasRecv := receiver(fn)
		if !hasRecv || recv == nil || ptr != q.Pointer {
			return false
		}
		return recv.Name() == q.Type && pkgPath(fn) == q.Path
	}

	if fn, ok := obj.(*types.Func); ok {
		if _, _, hasRecv := receiver(fn); hasRecv {
			return false
		}
	}
	return pkgPath(obj) == q.Path
}

// Name renders an object in the pattern syntax that Match accepts, so
// Name(obj) round-trips through ParseQualified.
func Name(obj types.Object) string {
	if obj == nil {
		return ""
	}
	if fn, ok := obj.(*types.Func); ok {
		if recv, ptr, hasRecv := receiver(fn); hasRecv && recv != nil {
			star := ""
			if ptr {
				star = "*"
			}
			return fmt.Sprintf("(%s%s.%s).%s", star, pkgPath(recv), recv.Name(), fn.Name())
		}
	}
	if obj.Pkg() == nil {
		return obj.Name()
	}
	return obj.Pkg().Path() + "." + obj.Name()
}

// EqualByName reports whether a and b name the same thing: same object name,
// same package path, same receiver shape and kind. It never compares
// types.Object identity, so it holds across separate type-check universes.
func EqualByName(a, b types.Object) bool {
	if a == b {
		return a != nil
	}
	if a == nil || b == nil {
		return false
	}
	if a.Name() != b.Name() || pkgPath(a) != pkgPath(b) || !sameKind(a, b) {
		return false
	}
	fa, aIsFunc := a.(*types.Func)
	fb, _ := b.(*types.Func)
	if !aIsFunc {
		return true
	}
	ra, pa, oka := receiver(fa)
	rb, pb, okb := receiver(fb)
	if oka != okb || pa != pb {
		return false
	}
	if ra == nil || rb == nil {
		return ra == rb
	}
	return ra.Name() == rb.Name()
}

// Receiver returns the type a method is defined on. The second result is
// false for plain functions and for methods on unnamed receivers. Generic
// receivers resolve to their uninstantiated named type.
func Receiver(fn *types.Func) (*types.TypeName, bool) {
	if fn == nil {
		return nil, false
	}
	named, _, ok := receiver(fn)
	return named, ok && named != nil
}

// receiver returns the named receiver type of a method, whether the receiver
// is a pointer, and whether fn has a receiver at all. Generic receivers
// resolve to their uninstantiated named type.
func receiver(fn *types.Func) (named *types.TypeName, pointer, hasRecv bool) {
	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return nil, false, false
	}
	t := types.Unalias(sig.Recv().Type())
	if p, ok := t.(*types.Pointer); ok {
		pointer = true
		t = types.Unalias(p.Elem())
	}
	if n, ok := t.(*types.Named); ok {
		return n.Obj(), pointer, true
	}
	return nil, pointer, true
}

func sameKind(a, b types.Object) bool {
	switch a.(type) {
	case *types.Func:
		_, ok := b.(*types.Func)
		return ok
	case *types.Var:
		_, ok := b.(*types.Var)
		return ok
	case *types.Const:
		_, ok := b.(*types.Const)
		return ok
	case *types.TypeName:
		_, ok := b.(*types.TypeName)
		return ok
	default:
		return false
	}
}
