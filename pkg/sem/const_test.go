package sem_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/astkit-labs/astkit/internal/testutil"
	"github.com/astkit-labs/astkit/pkg/sem"
)

const constSrc = `package p

const (
	prefix  = "v"
	linted  = "hello" + ", " + "world"
	answer  = 40 + 2
	enabled = true
)

func f(s string) {}
func g(n int)    {}
func h(b bool)   {}
func u(n uint64) {}

func use(xs []int) {
	f("hello")
	f(linted)
	f(prefix + "!")
	g(1 << 10)
	h(true && false)
	u(1 << 63)
	n := "dynamic"
	f(n)
	g(len(xs))
}
`

func TestStringValue(t *testing.T) {
	s := testutil.TypeCheck(t, constSrc)

	tests := []struct {
		name string
		expr string
		want string
		ok   bool
	}{
		{name: "literal", expr: `"hello"`, want: "hello", ok: true},
		{name: "named constant", expr: "linted", want: "hello, world", ok: true},
		{name: "folded concatenation", expr: `prefix + "!"`, want: "v!", ok: true},
		{name: "variable", expr: "n", ok: false},
		{name: "integer constant", expr: "answer", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := sem.StringValue(s.Info, s.Expr(t, tt.expr))
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.want, got)
			}
		})
	}
}

func TestBoolValue(t *testing.T) {
	s := testutil.TypeCheck(t, constSrc)

	got, ok := sem.BoolValue(s.Info, s.Expr(t, "true && false"))
	require.True(t, ok)
	require.False(t, got)

	got, ok = sem.BoolValue(s.Info, s.Expr(t, "enabled"))
	require.True(t, ok)
	require.True(t, got)

	_, ok = sem.BoolValue(s.Info, s.Expr(t, "answer"))
	require.False(t, ok)
}

func TestIntValue(t *testing.T) {
	s := testutil.TypeCheck(t, constSrc)

	got, ok := sem.IntValue(s.Info, s.Expr(t, "1 << 10"))
	require.True(t, ok)
	require.EqualValues(t, 1024, got)

	got, ok = sem.IntValue(s.Info, s.Expr(t, "answer"))
	require.True(t, ok)
	require.EqualValues(t, 42, got)

	// Fits uint64 but not int64.
	_, ok = sem.IntValue(s.Info, s.Expr(t, "1 << 63"))
	require.False(t, ok)

	// len of a non-constant operand is not a constant.
	_, ok = sem.IntValue(s.Info, s.Expr(t, "len(xs)"))
	require.False(t, ok)
}

func TestConstValueNilInputs(t *testing.T) {
	s := testutil.TypeCheck(t, constSrc)

	_, ok := sem.ConstValue(nil, s.Expr(t, "answer"))
	require.False(t, ok)
	_, ok = sem.ConstValue(s.Info, nil)
	require.False(t, ok)
}
