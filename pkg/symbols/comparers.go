package symbols

import (
	"go/types"
	"hash/fnv"
	"sync"

	"golang.org/x/tools/go/types/typeutil"
)

// Objects compares any two objects by origin identity.
var Objects ObjectComparer

// Types compares types structurally via types.Identical.
var Types = &TypeComparer{hasher: typeutil.MakeHasher()}

// Methods compares methods by name, receiver type, and package.
var Methods MethodComparer

// Fields compares struct fields by origin identity.
var Fields FieldComparer

// ObjectComparer reports two objects equal when they originate from the same
// declaration. Instantiations of a generic declaration collapse onto their
// origin, so Slice[int].Len and Slice[string].Len compare equal.
type ObjectComparer struct{}

// Equal reports whether x and y originate from the same declaration.
func (ObjectComparer) Equal(x, y types.Object) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	return origin(x) == origin(y)
}

// Hash returns a hash consistent with Equal.
func (ObjectComparer) Hash(x types.Object) uint32 {
	if x == nil {
		return 0
	}
	o := origin(x)
	return uint32(o.Pos()) ^ hashString(o.Name())
}

func origin(obj types.Object) types.Object {
	switch o := obj.(type) {
	case *types.Func:
		return o.Origin()
	case *types.Var:
		return o.Origin()
	}
	return obj
}

// TypeComparer reports two types equal when types.Identical does. Hashing
// delegates to a shared typeutil.Hasher under a lock, so one comparer
// instance may serve concurrent analyses.
type TypeComparer struct {
	mu     sync.Mutex
	hasher typeutil.Hasher
}

// Equal reports whether x and y are identical types.
func (*TypeComparer) Equal(x, y types.Type) bool {
	if x == nil || y == nil {
		return x == y
	}
	return types.Identical(x, y)
}

// Hash returns a hash consistent with Equal.
func (c *TypeComparer) Hash(x types.Type) uint32 {
	if x == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hasher.Hash(x)
}

// MethodComparer reports two methods equal when they share a name, a
// receiver named type, and a package. Unlike ObjectComparer it matches
// across type-check universes, so a method loaded twice still compares
// equal.
type MethodComparer struct{}

// Equal reports whether x and y name the same method.
func (MethodComparer) Equal(x, y *types.Func) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	if x.Name() != y.Name() || pkgPath(x) != pkgPath(y) {
		return false
	}
	rx, _, okx := receiver(x)
	ry, _, oky := receiver(y)
	if okx != oky {
		return false
	}
	if rx == nil || ry == nil {
		return rx == ry
	}
	return rx.Name() == ry.Name()
}

// Hash returns a hash consistent with Equal.
func (MethodComparer) Hash(x *types.Func) uint32 {
	if x == nil {
		return 0
	}
	return hashString(x.Name())
}

// FieldComparer reports two struct fields equal when they originate from the
// same field declaration.
type FieldComparer struct{}

// Equal reports whether x and y are the same field.
func (FieldComparer) Equal(x, y *types.Var) bool {
	if x == y {
		return true
	}
	if x == nil || y == nil {
		return false
	}
	return origin(x) == origin(y)
}

// Hash returns a hash consistent with Equal.
func (FieldComparer) Hash(x *types.Var) uint32 {
	if x == nil {
		return 0
	}
	o := origin(x)
	return uint32(o.Pos()) ^ hashString(o.Name())
}

func pkgPath(obj types.Object) string {
	if obj.Pkg() == nil {
		return ""
	}
	return obj.Pkg().Path()
}

func hashString(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}
