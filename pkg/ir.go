package tabula

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// A driver calls the expression once per row, so keep it small.
const maxDriverVariables = 10

type ValueLookup struct {
	vals map[string]value.Value
}

func NewValueLookup() *ValueLookup {
	return &ValueLookup{
		vals: make(map[string]value.Value),
	}
}

func (l *ValueLookup) Get(id string) (value.Value, error) {
	if val, ok := l.vals[id]; ok {
		return val, nil
	}

	return nil, &UnboundVariableError{Name: id}
}

func (l *ValueLookup) Set(id string, val value.Value) {
	l.vals[id] = val
}

type IROption func(*irOptions)

type irOptions struct {
	name   string
	driver bool
}

// WithFuncName names the generated function. The default is "expr".
func WithFuncName(name string) IROption {
	return func(o *irOptions) {
		o.name = name
	}
}

// WithDriver adds a main function printing the whole table, one row per line.
func WithDriver() IROption {
	return func(o *irOptions) {
		o.driver = true
	}
}

// IR lowers the program to an LLVM module holding one function that takes an
// i32 per variable, in sorted order, and returns the result.
func (p *Program) IR(opts ...IROption) (*ir.Module, error) {
	o := irOptions{name: "expr"}
	for _, opt := range opts {
		opt(&o)
	}

	if o.driver {
		if len(p.Variables) > maxDriverVariables {
			return nil, &TooManyVariablesError{Count: len(p.Variables), Max: maxDriverVariables}
		}

		if _, reserved := builtinNames[o.name]; reserved {
			return nil, fmt.Errorf("function name %q is reserved when emitting a driver", o.name)
		}
	}

	b := NewLLVMIRBuilder()

	f, err := b.function(o.name, p)
	if err != nil {
		return nil, err
	}

	if o.driver {
		defineBuiltins(b, len(p.Variables)+1)
		b.driver(f, p)
	}

	return b.mod, nil
}

type LLVMIRBuilder struct {
	mod    *ir.Module
	values *ValueLookup
}

func NewLLVMIRBuilder() *LLVMIRBuilder {
	return &LLVMIRBuilder{
		mod:    ir.NewModule(),
		values: NewValueLookup(),
	}
}

func (b *LLVMIRBuilder) function(name string, p *Program) (*ir.Func, error) {
	params := make([]*ir.Param, len(p.Variables))
	for i, v := range p.Variables {
		params[i] = ir.NewParam(v, types.I32)
		b.values.Set(v, params[i])
	}

	f := b.mod.NewFunc(name, types.I32, params...)
	block := f.NewBlock("")

	v, ins, err := b.recursiveLoad(p.Root)
	if err != nil {
		return nil, err
	}

	block.Insts = append(block.Insts, ins...)
	block.NewRet(v)

	return f, nil
}

func (b *LLVMIRBuilder) recursiveLoad(expr Expr) (value.Value, []ir.Instruction, error) {
	switch e := expr.(type) {
	case *LiteralExpr:
		return constant.NewInt(types.I32, int64(e.Value)), nil, nil
	case *Identifier:
		v, err := b.values.Get(e.Name)
		return v, nil, err
	case *UnaryExpr:
		return b.unaryExpression(e)
	case *BinaryExpr:
		return b.binaryExpression(e)
	default:
		panic(fmt.Sprintf("unexpected expression node %T", expr))
	}
}

func (b *LLVMIRBuilder) unaryExpression(expr *UnaryExpr) (value.Value, []ir.Instruction, error) {
	v, ins, err := b.recursiveLoad(expr.Operand)
	if err != nil {
		return nil, nil, err
	}

	switch expr.Operation {
	case UnaryNot:
		op := ir.NewXor(v, constant.NewInt(types.I32, 1))
		return op, append(ins, op), nil
	default:
		panic("unexpected unary op: " + expr.Operation)
	}
}

func (b *LLVMIRBuilder) binaryExpression(expr *BinaryExpr) (value.Value, []ir.Instruction, error) {
	v1, i1, err := b.recursiveLoad(expr.Op1)
	if err != nil {
		return nil, nil, err
	}

	v2, i2, err := b.recursiveLoad(expr.Op2)
	if err != nil {
		return nil, nil, err
	}

	ins := append(i1, i2...)

	switch expr.Operation {
	case BinaryAnd:
		op := ir.NewAnd(v1, v2)
		return op, append(ins, op), nil
	case BinaryOr:
		op := ir.NewOr(v1, v2)
		return op, append(ins, op), nil
	case BinaryXor:
		op := ir.NewXor(v1, v2)
		return op, append(ins, op), nil
	case BinaryIff:
		one := constant.NewInt(types.I32, 1)
		diff := ir.NewXor(v1, v2)
		flip := ir.NewXor(diff, one)
		mask := ir.NewAnd(flip, one)
		return mask, append(ins, diff, flip, mask), nil
	default:
		panic("unexpected binary op: " + expr.Operation)
	}
}

// driver emits main, which walks the assignments in table order and prints
// each one followed by the result of f.
func (b *LLVMIRBuilder) driver(f *ir.Func, p *Program) {
	printRow, _ := b.values.Get(builtinPrintRowName)

	main := b.mod.NewFunc("main", types.I32)
	block := main.NewBlock("")

	n := len(p.Variables)
	for i := (1 << n) - 1; i >= 0; i-- {
		args := make([]value.Value, n)
		for k := range p.Variables {
			args[k] = constant.NewInt(types.I32, int64(i>>(n-1-k)&1))
		}

		res := block.NewCall(f, args...)
		block.NewCall(printRow, append(args, res)...)
	}

	block.NewRet(constant.NewInt(types.I32, 0))
}
