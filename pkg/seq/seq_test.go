package seq_test

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astkit-labs/astkit/pkg/seq"
)

func TestFirstLast(t *testing.T) {
	tests := []struct {
		name      string
		input     []int
		wantFirst int
		wantLast  int
		ok        bool
	}{
		{name: "empty", input: nil, ok: false},
		{name: "one element", input: []int{7}, wantFirst: 7, wantLast: 7, ok: true},
		{name: "several", input: []int{1, 2, 3}, wantFirst: 1, wantLast: 3, ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, ok := seq.First(tt.input)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.wantFirst, first)
			}

			last, ok := seq.Last(tt.input)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.wantLast, last)
			}
		})
	}
}

func TestFirstFunc(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	got, ok := seq.FirstFunc([]int{1, 3, 4, 6}, even)
	require.True(t, ok)
	assert.Equal(t, 4, got)

	_, ok = seq.FirstFunc([]int{1, 3, 5}, even)
	assert.False(t, ok)
}

func TestLastFunc(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }

	got, ok := seq.LastFunc([]int{1, 4, 6, 7}, even)
	require.True(t, ok)
	assert.Equal(t, 6, got)

	_, ok = seq.LastFunc(nil, even)
	assert.False(t, ok)
}

func TestSingle(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  string
		ok    bool
	}{
		{name: "empty", input: nil, ok: false},
		{name: "exactly one", input: []string{"x"}, want: "x", ok: true},
		{name: "two", input: []string{"x", "y"}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := seq.Single(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestSingleFunc(t *testing.T) {
	short := func(s string) bool { return len(s) == 1 }

	got, ok := seq.SingleFunc([]string{"aa", "b", "cc"}, short)
	require.True(t, ok)
	assert.Equal(t, "b", got)

	_, ok = seq.SingleFunc([]string{"a", "b"}, short)
	assert.False(t, ok, "two matches is not single")

	_, ok = seq.SingleFunc([]string{"aa"}, short)
	assert.False(t, ok, "zero matches is not single")
}

func TestAt(t *testing.T) {
	s := []int{10, 20, 30}

	got, ok := seq.At(s, 1)
	require.True(t, ok)
	assert.Equal(t, 20, got)

	_, ok = seq.At(s, 3)
	assert.False(t, ok)

	_, ok = seq.At(s, -1)
	assert.False(t, ok)
}

func TestOfType(t *testing.T) {
	nodes := []ast.Node{
		&ast.Ident{Name: "a"},
		&ast.BasicLit{Value: "1"},
		&ast.Ident{Name: "b"},
	}

	idents := seq.OfType[*ast.Ident](nodes)
	require.Len(t, idents, 2)
	assert.Equal(t, "a", idents[0].Name)
	assert.Equal(t, "b", idents[1].Name)

	first, ok := seq.FirstOfType[*ast.BasicLit](nodes)
	require.True(t, ok)
	assert.Equal(t, "1", first.Value)

	last, ok := seq.LastOfType[*ast.Ident](nodes)
	require.True(t, ok)
	assert.Equal(t, "b", last.Name)

	lit, ok := seq.SingleOfType[*ast.BasicLit](nodes)
	require.True(t, ok)
	assert.Equal(t, "1", lit.Value)

	_, ok = seq.SingleOfType[*ast.Ident](nodes)
	assert.False(t, ok, "two idents is not single")

	_, ok = seq.FirstOfType[*ast.CallExpr](nodes)
	assert.False(t, ok)
}
