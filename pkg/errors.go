package tabula

import (
	"fmt"
	"strings"
)

// LexError rejects the whole expression: an unknown character or a
// malformed biconditional.
type LexError struct {
	Pos int
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %d: %s", e.Pos, e.Msg)
}

// ParseError is a token that does not fit the grammar at its position.
type ParseError struct {
	Expected []TokenType
	Found    Token
}

func (e *ParseError) Error() string {
	expected := make([]string, len(e.Expected))
	for i, typ := range e.Expected {
		expected[i] = typ.String()
	}

	return fmt.Sprintf("parse error at %d: expected %s, found %s",
		e.Found.Pos, strings.Join(expected, " or "), e.Found)
}

type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return "no value for variable: " + e.Name
}

type TooManyVariablesError struct {
	Count int
	Max   int
}

func (e *TooManyVariablesError) Error() string {
	return fmt.Sprintf("expression has %d variables, at most %d can be enumerated", e.Count, e.Max)
}
