package test

import (
	"math/rand"
	"strings"
)

var (
	operands  = []string{"a", "b", "c", "d", "e", "f", "x", "y", "z", "0", "1"}
	operators = []string{"&", "|", "^", "<=>", "<==>"}
	negations = []string{"", "", "~", "!"}
)

// GetRandomExpression returns a well-formed expression with size terms. Some
// terms are negated or wrapped in parentheses.
func GetRandomExpression(size int) string {
	return GetRandomExpressionWithSep(size, " ")
}

func GetRandomExpressionWithSep(size int, sep string) string {
	var parts []string
	for i := 0; i < size; i++ {
		if i > 0 {
			parts = append(parts, operators[rand.Intn(len(operators))])
		}

		parts = append(parts, randomTerm(sep))
	}

	return strings.Join(parts, sep)
}

func randomTerm(sep string) string {
	term := operands[rand.Intn(len(operands))]
	if rand.Intn(4) == 0 {
		term = "(" + term + sep + operators[rand.Intn(len(operators))] + sep + operands[rand.Intn(len(operands))] + ")"
	}

	return negations[rand.Intn(len(negations))] + term
}
