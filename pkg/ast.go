package tabula

import (
	"sort"
	"strconv"
)

// Expr is one of *LiteralExpr, *Identifier, *UnaryExpr or *BinaryExpr.
// Size is the number of nodes in the subtree, the node itself included.
type Expr interface {
	Size() int
	String() string

	exprNode()
}

type LiteralExpr struct {
	Value int
}

func NewLiteral(v int) *LiteralExpr {
	return &LiteralExpr{Value: v}
}

func (e *LiteralExpr) Size() int      { return 1 }
func (e *LiteralExpr) String() string { return strconv.Itoa(e.Value) }
func (*LiteralExpr) exprNode()        {}

type Identifier struct {
	Name string
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{Name: name}
}

func (e *Identifier) Size() int      { return 1 }
func (e *Identifier) String() string { return e.Name }
func (*Identifier) exprNode()        {}

type UnaryOp string

const (
	UnaryNot UnaryOp = "~"
)

type UnaryExpr struct {
	Operation UnaryOp
	Operand   Expr

	size int
}

func NewUnary(op UnaryOp, operand Expr) *UnaryExpr {
	return &UnaryExpr{
		Operation: op,
		Operand:   operand,
		size:      1 + operand.Size(),
	}
}

func (e *UnaryExpr) Size() int      { return e.size }
func (e *UnaryExpr) String() string { return string(e.Operation) + e.Operand.String() }
func (*UnaryExpr) exprNode()        {}

type BinaryOp string

const (
	BinaryAnd BinaryOp = "&"
	BinaryOr  BinaryOp = "|"
	BinaryXor BinaryOp = "^"
	BinaryIff BinaryOp = "<=>"
)

var binaryOps = map[TokenType]BinaryOp{
	TokenAnd: BinaryAnd,
	TokenOr:  BinaryOr,
	TokenXor: BinaryXor,
	TokenIff: BinaryIff,
}

type BinaryExpr struct {
	Operation BinaryOp
	Op1       Expr
	Op2       Expr

	size int
}

func NewBinary(op BinaryOp, op1, op2 Expr) *BinaryExpr {
	return &BinaryExpr{
		Operation: op,
		Op1:       op1,
		Op2:       op2,
		size:      1 + op1.Size() + op2.Size(),
	}
}

func (e *BinaryExpr) Size() int { return e.size }

// String fully parenthesises the node, so the grouping chosen by the parser
// is visible.
func (e *BinaryExpr) String() string {
	return "(" + e.Op1.String() + " " + string(e.Operation) + " " + e.Op2.String() + ")"
}

func (*BinaryExpr) exprNode() {}

// VariableSet holds the distinct identifiers referenced by an expression.
type VariableSet map[string]struct{}

func (s VariableSet) Add(name string) {
	s[name] = struct{}{}
}

func (s VariableSet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

func (s VariableSet) Sorted() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
