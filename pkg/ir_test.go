package tabula

import (
	"strings"
	"testing"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueLookup(t *testing.T) {
	vals := NewValueLookup()

	val1 := constant.NewInt(types.I32, 1)
	val2 := constant.NewInt(types.I32, 2)

	vals.Set("id1", val1)
	vals.Set("id2", val2)

	got, err := vals.Get("id1")
	require.NoError(t, err)
	assert.Equal(t, val1, got)

	got, err = vals.Get("id2")
	require.NoError(t, err)
	assert.Equal(t, val2, got)

	_, err = vals.Get("id3")
	var unbound *UnboundVariableError
	assert.ErrorAs(t, err, &unbound)
}

func compileIR(t *testing.T, data string, opts ...IROption) string {
	t.Helper()

	prog, err := Compile(data)
	require.NoError(t, err, data)

	mod, err := prog.IR(opts...)
	require.NoError(t, err, data)

	return mod.String()
}

func TestIR(t *testing.T) {
	cases := []struct {
		data   string
		expect []string
	}{
		{
			"1",
			[]string{"define i32 @expr()", "ret i32 1"},
		},
		{
			"x",
			[]string{"define i32 @expr(i32 %x)", "ret i32 %x"},
		},
		{
			"a ^ b",
			[]string{"define i32 @expr(i32 %a, i32 %b)", "xor i32 %a, %b"},
		},
		{
			"b & a",
			[]string{"define i32 @expr(i32 %a, i32 %b)", "and i32 %b, %a"},
		},
		{
			"a | 0",
			[]string{"or i32 %a, 0"},
		},
		{
			"~a",
			[]string{"xor i32 %a, 1"},
		},
		{
			"a <=> b",
			[]string{"xor i32 %a, %b", "and i32"},
		},
	}

	for _, c := range cases {
		out := compileIR(t, c.data)
		for _, want := range c.expect {
			assert.Contains(t, out, want, c.data)
		}
	}
}

func TestIRFuncName(t *testing.T) {
	out := compileIR(t, "p & q", WithFuncName("check"))
	assert.Contains(t, out, "define i32 @check(i32 %p, i32 %q)")
}

func TestIRDriver(t *testing.T) {
	out := compileIR(t, "a ^ b", WithDriver())

	assert.Contains(t, out, "define i32 @main()")
	assert.Contains(t, out, "@printf")
	assert.Contains(t, out, "@print_row")
	assert.Equal(t, 4, strings.Count(out, "call i32 @expr("))
	assert.Contains(t, out, "call i32 @expr(i32 1, i32 1)")
	assert.Contains(t, out, "call i32 @expr(i32 0, i32 0)")
	assert.Less(t, strings.Index(out, "@expr(i32 1, i32 1)"), strings.Index(out, "@expr(i32 0, i32 0)"))
}

func TestIRDriverLimits(t *testing.T) {
	prog, err := Compile("a & b & c & d & e & f & g & h & i & j & k")
	require.NoError(t, err)

	_, err = prog.IR(WithDriver())
	var tooMany *TooManyVariablesError
	assert.ErrorAs(t, err, &tooMany)

	_, err = prog.IR()
	assert.NoError(t, err)

	prog, err = Compile("a")
	require.NoError(t, err)

	_, err = prog.IR(WithDriver(), WithFuncName("main"))
	assert.Error(t, err)
}
