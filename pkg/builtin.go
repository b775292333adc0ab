package tabula

import (
	"strings"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

const builtinPrintRowName = "print_row"

var builtinNames = map[string]struct{}{
	"main":              {},
	"printf":            {},
	builtinPrintRowName: {},
}

func defineBuiltins(b *LLVMIRBuilder, columns int) {
	defineBuiltinFunc(b, builtinPrintRowName, func(mod *ir.Module) *ir.Func {
		return builtinPrintRow(mod, columns)
	})
}

type funcDefinition = func(mod *ir.Module) *ir.Func

func defineBuiltinFunc(b *LLVMIRBuilder, name string, definition funcDefinition) {
	f := definition(b.mod)
	f.SetName(name)
	b.values.Set(name, f)
}

// builtinPrintRow prints its i32 arguments separated by tabs.
func builtinPrintRow(mod *ir.Module, columns int) *ir.Func {
	params := make([]*ir.Param, columns)
	for i := range params {
		params[i] = ir.NewParam("", types.I32)
	}

	f := mod.NewFunc("", types.Void, params...)
	b := f.NewBlock("")

	printf := mod.NewFunc("printf", types.I32, ir.NewParam("format", types.I8Ptr))
	printf.Sig.Variadic = true

	zero := constant.NewInt(types.I32, 0)

	format := strings.TrimSuffix(strings.Repeat("%d\t", columns), "\t") + "\n\x00"
	formatGlob := mod.NewGlobalDef("._print_row_fmt", constant.NewCharArrayFromString(format))

	fmtAddr := constant.NewGetElementPtr(types.NewArray(uint64(len(format)), types.I8), formatGlob, zero, zero)

	args := []value.Value{fmtAddr}
	for _, param := range f.Params {
		args = append(args, param)
	}

	b.NewCall(printf, args...)

	b.NewRet(nil)

	return f
}
