package tabula

import (
	lru "github.com/hashicorp/golang-lru"
)

// Program is a parsed expression ready to be evaluated. It is never modified
// after Compile returns, so it can be shared freely.
type Program struct {
	Source    string
	Root      Expr
	Variables []string
}

func (p *Program) Size() int {
	return p.Root.Size()
}

func (p *Program) Eval(env Environment) (int, error) {
	return Evaluate(p.Root, env)
}

type Compiler struct {
	cache *lru.Cache
}

type CompilerOption func(*Compiler) error

// WithCacheSize keeps up to n compiled programs, keyed by source text.
func WithCacheSize(n int) CompilerOption {
	return func(c *Compiler) error {
		if n <= 0 {
			c.cache = nil
			return nil
		}

		cache, err := lru.New(n)
		if err != nil {
			return err
		}

		c.cache = cache
		return nil
	}
}

func NewCompiler(opts ...CompilerOption) (*Compiler, error) {
	c := &Compiler{}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Compile compiles text with a throwaway, uncached compiler.
func Compile(text string) (*Program, error) {
	return (&Compiler{}).Compile(text)
}

func (c *Compiler) Compile(text string) (*Program, error) {
	if c.cache != nil {
		if cached, ok := c.cache.Get(text); ok {
			return cached.(*Program), nil
		}
	}

	root, vars, err := Parse(text)
	if err != nil {
		return nil, err
	}

	prog := &Program{
		Source:    text,
		Root:      root,
		Variables: vars.Sorted(),
	}

	if c.cache != nil {
		c.cache.Add(text, prog)
	}

	return prog, nil
}

// Cached reports how many programs are currently held by the cache.
func (c *Compiler) Cached() int {
	if c.cache == nil {
		return 0
	}

	return c.cache.Len()
}
