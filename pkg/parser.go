package tabula

import "strconv"

type Tokenizer interface {
	Next() (Token, error)
}

// Parser is a recursive-descent parser for
//
//	prog   := expr EOF
//	expr   := term ( (AND|OR|XOR|IFF) term )*
//	term   := NOT? factor
//	factor := INTEGER | ID | LPAREN expr RPAREN
//
// All four binary operators share one tier and fold to the left.
type Parser struct {
	tokenizer Tokenizer
	buf       *Token
	vars      VariableSet
}

func NewParser(tokenizer Tokenizer) *Parser {
	return &Parser{
		tokenizer: tokenizer,
		vars:      make(VariableSet),
	}
}

// Parse parses text in a single pass and returns the tree along with every
// variable it references.
func Parse(text string) (Expr, VariableSet, error) {
	return NewParser(NewLexer(text)).Parse()
}

func (p *Parser) Parse() (Expr, VariableSet, error) {
	expr, err := p.expr()
	if err != nil {
		return nil, nil, err
	}

	if _, err := p.expect(TokenEOF); err != nil {
		return nil, nil, err
	}

	return expr, p.vars, nil
}

func (p *Parser) peek() (Token, error) {
	if p.buf == nil {
		tok, err := p.tokenizer.Next()
		if err != nil {
			return Token{}, err
		}

		p.buf = &tok
	}

	return *p.buf, nil
}

func (p *Parser) next() (Token, error) {
	tok, err := p.peek()
	if err != nil {
		return Token{}, err
	}

	if tok.Typ != TokenEOF {
		p.buf = nil
	}

	return tok, nil
}

func (p *Parser) expect(typ TokenType) (Token, error) {
	tok, err := p.next()
	if err != nil {
		return Token{}, err
	}

	if tok.Typ != typ {
		return Token{}, &ParseError{Expected: []TokenType{typ}, Found: tok}
	}

	return tok, nil
}

func (p *Parser) expr() (Expr, error) {
	lhs, err := p.term()
	if err != nil {
		return nil, err
	}

	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}

		op, ok := binaryOps[tok.Typ]
		if !ok {
			return lhs, nil
		}

		p.next() // Skip the operator

		rhs, err := p.term()
		if err != nil {
			return nil, err
		}

		lhs = NewBinary(op, lhs, rhs)
	}
}

func (p *Parser) term() (Expr, error) {
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}

	if tok.Typ != TokenNot {
		return p.factor()
	}

	p.next()

	operand, err := p.factor()
	if err != nil {
		return nil, err
	}

	return NewUnary(UnaryNot, operand), nil
}

func (p *Parser) factor() (Expr, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok.Typ {
	case TokenInteger:
		v, err := strconv.Atoi(tok.Value)
		if err != nil {
			return nil, &ParseError{Expected: []TokenType{TokenInteger}, Found: tok}
		}

		return NewLiteral(v), nil
	case TokenIdentifier:
		p.vars.Add(tok.Value)
		return NewIdentifier(tok.Value), nil
	case TokenOpenParentheses:
		return p.parenthesisedExpression()
	default:
		return nil, &ParseError{
			Expected: []TokenType{TokenInteger, TokenIdentifier, TokenOpenParentheses},
			Found:    tok,
		}
	}
}

func (p *Parser) parenthesisedExpression() (Expr, error) {
	exp, err := p.expr()
	if err != nil {
		return nil, err
	}

	if _, err := p.expect(TokenCloseParentheses); err != nil {
		return nil, err
	}

	return exp, nil
}
