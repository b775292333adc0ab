package tabula

import (
	"context"
	"fmt"
	"strconv"
)

// MaxVariables bounds enumeration so that 1<<n fits in a uint64 counter.
const MaxVariables = 62

type Row struct {
	Bits   []int
	Result int
}

func (r Row) Cells() []string {
	cells := make([]string, 0, len(r.Bits)+1)
	for _, b := range r.Bits {
		cells = append(cells, strconv.Itoa(b))
	}

	return append(cells, strconv.Itoa(r.Result))
}

func (r Row) String() string {
	return fmt.Sprint(r.Cells())
}

// Table is the result of evaluating an expression under every assignment of
// its variables. Rows run from the all-ones assignment down to all-zeros.
type Table struct {
	Expression string
	Variables  []string
	Size       int
	Rows       []Row
}

func (t *Table) Header() []string {
	header := make([]string, 0, len(t.Variables)+1)
	header = append(header, t.Variables...)

	return append(header, t.Expression)
}

// Cells returns the header followed by every row, all as text.
func (t *Table) Cells() [][]string {
	cells := make([][]string, 0, len(t.Rows)+1)
	cells = append(cells, t.Header())

	for _, row := range t.Rows {
		cells = append(cells, row.Cells())
	}

	return cells
}

// Satisfying returns the rows with a non-zero result, in table order.
func (t *Table) Satisfying() []Row {
	var rows []Row
	for _, row := range t.Rows {
		if row.Result != 0 {
			rows = append(rows, row)
		}
	}

	return rows
}

func (t *Table) String() string {
	return RenderText(t.Cells())
}

type TableOption func(*tableOptions)

type tableOptions struct {
	observer     func(Row)
	maxVariables int
}

// WithObserver registers fn to be called with each satisfying row as soon as
// it is computed.
func WithObserver(fn func(Row)) TableOption {
	return func(o *tableOptions) {
		o.observer = fn
	}
}

// WithMaxVariables rejects expressions with more than n distinct variables
// before any row is computed. Values outside 1..MaxVariables are ignored.
func WithMaxVariables(n int) TableOption {
	return func(o *tableOptions) {
		if n > 0 && n <= MaxVariables {
			o.maxVariables = n
		}
	}
}

// BuildTable compiles text and enumerates its truth table.
func BuildTable(ctx context.Context, text string, opts ...TableOption) (*Table, error) {
	prog, err := Compile(text)
	if err != nil {
		return nil, err
	}

	return prog.Table(ctx, opts...)
}

func (p *Program) Table(ctx context.Context, opts ...TableOption) (*Table, error) {
	o := tableOptions{maxVariables: MaxVariables}
	for _, opt := range opts {
		opt(&o)
	}

	n := len(p.Variables)
	if n > o.maxVariables {
		return nil, &TooManyVariablesError{Count: n, Max: o.maxVariables}
	}

	t := &Table{
		Expression: p.Source,
		Variables:  append([]string(nil), p.Variables...),
		Size:       p.Size(),
	}

	if n <= 16 {
		t.Rows = make([]Row, 0, 1<<n)
	}

	env := make(Environment, n)
	for i := uint64(1) << n; i > 0; {
		i--

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		bits := make([]int, n)
		for k, name := range p.Variables {
			bits[k] = int(i >> (n - 1 - k) & 1)
			env.Set(name, bits[k])
		}

		res, err := p.Eval(env)
		if err != nil {
			return nil, fmt.Errorf("evaluating %q: %w", p.Source, err)
		}

		row := Row{Bits: bits, Result: res}
		t.Rows = append(t.Rows, row)

		if res != 0 && o.observer != nil {
			o.observer(row)
		}
	}

	return t, nil
}
