package tabula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evaluate(t *testing.T, data string, env Environment) int {
	t.Helper()

	expr, _, err := Parse(data)
	require.NoError(t, err, data)

	v, err := Evaluate(expr, env)
	require.NoError(t, err, data)

	return v
}

func TestEvaluateOperators(t *testing.T) {
	cases := []struct {
		a, b                    int
		and, or, xor, iff, notA int
	}{
		{0, 0, 0, 0, 0, 1, 1},
		{0, 1, 0, 1, 1, 0, 1},
		{1, 0, 0, 1, 1, 0, 0},
		{1, 1, 1, 1, 0, 1, 0},
	}

	for _, c := range cases {
		env := Environment{"a": c.a, "b": c.b}

		assert.Equal(t, c.and, evaluate(t, "a & b", env))
		assert.Equal(t, c.or, evaluate(t, "a | b", env))
		assert.Equal(t, c.xor, evaluate(t, "a ^ b", env))
		assert.Equal(t, c.iff, evaluate(t, "a <=> b", env))
		assert.Equal(t, c.notA, evaluate(t, "~a", env))
		assert.Equal(t, c.notA, evaluate(t, "!a", env))
	}
}

func TestEvaluateIffMatchesEquality(t *testing.T) {
	for a := 0; a <= 1; a++ {
		for b := 0; b <= 1; b++ {
			want := 0
			if a == b {
				want = 1
			}

			assert.Equal(t, want, evaluate(t, "a <===> b", Environment{"a": a, "b": b}))
		}
	}
}

func TestEvaluateDoubleNegation(t *testing.T) {
	for x := 0; x <= 1; x++ {
		env := Environment{"x": x}
		assert.Equal(t, evaluate(t, "x", env), evaluate(t, "~(~x)", env))
	}
}

func TestEvaluateLeftAssociative(t *testing.T) {
	env := Environment{"a": 1, "b": 0, "c": 1}

	assert.Equal(t, 1, evaluate(t, "a & b | c", env))
	assert.Equal(t, 1, evaluate(t, "(a & b) | c", env))
	assert.Equal(t, 0, evaluate(t, "a & (b | c)", Environment{"a": 0, "b": 0, "c": 1}))
	assert.Equal(t, 1, evaluate(t, "a & b | c", Environment{"a": 0, "b": 0, "c": 1}))
}

func TestEvaluateLiterals(t *testing.T) {
	assert.Equal(t, 1, evaluate(t, "1", nil))
	assert.Equal(t, 0, evaluate(t, "0", nil))
	assert.Equal(t, 1, evaluate(t, "~0", nil))
	assert.Equal(t, 1, evaluate(t, "1 <=> 1", nil))
	assert.Equal(t, 6, evaluate(t, "2 | 4", nil))
}

func TestEvaluateIsDeterministic(t *testing.T) {
	expr, _, err := Parse("(a ^ b) <=> ~c | a")
	require.NoError(t, err)

	env := Environment{"a": 1, "b": 0, "c": 1}
	first, err := Evaluate(expr, env)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		v, err := Evaluate(expr, env)
		require.NoError(t, err)
		assert.Equal(t, first, v)
	}
}

func TestEvaluateUnboundVariable(t *testing.T) {
	expr, _, err := Parse("a & missing")
	require.NoError(t, err)

	_, err = Evaluate(expr, Environment{"a": 1})

	var unbound *UnboundVariableError
	require.ErrorAs(t, err, &unbound)
	assert.Equal(t, "missing", unbound.Name)
	assert.Equal(t, "no value for variable: missing", err.Error())
}

func TestEnvironment(t *testing.T) {
	env := make(Environment)
	env.Set("p", 1)
	env.Set("q", 0)

	v, err := env.Get("p")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = env.Get("q")
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	_, err = env.Get("r")
	assert.Error(t, err)
}
