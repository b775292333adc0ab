package tabula

import "fmt"

// Environment assigns a bit to each variable for one evaluation.
type Environment map[string]int

func (env Environment) Get(name string) (int, error) {
	if v, ok := env[name]; ok {
		return v, nil
	}

	return 0, &UnboundVariableError{Name: name}
}

func (env Environment) Set(name string, v int) {
	env[name] = v
}

// Evaluate walks expr bottom-up. The left operand of a binary node is always
// evaluated before the right one.
func Evaluate(expr Expr, env Environment) (int, error) {
	switch e := expr.(type) {
	case *LiteralExpr:
		return e.Value, nil
	case *Identifier:
		return env.Get(e.Name)
	case *UnaryExpr:
		return evaluateUnary(e, env)
	case *BinaryExpr:
		return evaluateBinary(e, env)
	default:
		panic(fmt.Sprintf("unexpected expression node %T", expr))
	}
}

func evaluateUnary(e *UnaryExpr, env Environment) (int, error) {
	v, err := Evaluate(e.Operand, env)
	if err != nil {
		return 0, err
	}

	switch e.Operation {
	case UnaryNot:
		return v ^ 1, nil
	default:
		panic("unexpected unary op: " + e.Operation)
	}
}

func evaluateBinary(e *BinaryExpr, env Environment) (int, error) {
	v1, err := Evaluate(e.Op1, env)
	if err != nil {
		return 0, err
	}

	v2, err := Evaluate(e.Op2, env)
	if err != nil {
		return 0, err
	}

	switch e.Operation {
	case BinaryAnd:
		return v1 & v2, nil
	case BinaryOr:
		return v1 | v2, nil
	case BinaryXor:
		return v1 ^ v2, nil
	case BinaryIff:
		return ^(v1 ^ v2) & 1, nil
	default:
		panic("unexpected binary op: " + e.Operation)
	}
}
