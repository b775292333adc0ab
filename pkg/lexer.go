package tabula

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

type TokenType uint64
type stateFunc func(l *Lexer) stateFunc

const (
	eof rune = -1

	TokenEOF TokenType = iota
	TokenInteger
	TokenIdentifier

	TokenAnd
	TokenOr
	TokenXor
	TokenNot
	TokenIff
	TokenOpenParentheses
	TokenCloseParentheses
)

var tokenNames = map[TokenType]string{
	TokenEOF:              "EOF",
	TokenInteger:          "INTEGER",
	TokenIdentifier:       "ID",
	TokenAnd:              "AND",
	TokenOr:               "OR",
	TokenXor:              "XOR",
	TokenNot:              "NOT",
	TokenIff:              "IFF",
	TokenOpenParentheses:  "LPAREN",
	TokenCloseParentheses: "RPAREN",
}

func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}

	return "TokenType(" + strconv.FormatUint(uint64(t), 10) + ")"
}

var operatorTable = map[rune]TokenType{
	'&': TokenAnd,
	'|': TokenOr,
	'~': TokenNot,
	'!': TokenNot,
	'^': TokenXor,
	'(': TokenOpenParentheses,
	')': TokenCloseParentheses,
}

type Token struct {
	Typ   TokenType
	Value string
	Pos   int
}

func (t Token) String() string {
	if t.Typ == TokenEOF {
		return "EOF"
	}

	return fmt.Sprintf("%s(%q)", t.Typ, t.Value)
}

// Lexer turns expression text into tokens on demand. The cursor only moves
// forward; once EOF is reached every further call returns EOF again.
type Lexer struct {
	input string
	start int
	pos   int

	state stateFunc
	tok   *Token
	err   error
}

func NewLexer(input string) *Lexer {
	return &Lexer{
		input: input,
		state: defaultState,
	}
}

// Next runs the state machine until a token has been produced.
func (l *Lexer) Next() (Token, error) {
	for l.tok == nil && l.err == nil {
		l.state = l.state(l)
	}

	if l.err != nil {
		return Token{}, l.err
	}

	tok := *l.tok
	if tok.Typ != TokenEOF {
		l.tok = nil
	}

	return tok, nil
}

// Tokenize drains the lexer. The trailing EOF is not included.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, err
		}

		if tok.Typ == TokenEOF {
			return tokens, nil
		}

		tokens = append(tokens, tok)
	}
}

func defaultState(l *Lexer) stateFunc {
	for {
		l.start = l.pos

		switch r := l.peek(); {
		case r == eof:
			return l.emit(TokenEOF, "")
		case unicode.IsSpace(r):
			l.next()
			continue
		case '0' <= r && r <= '9':
			return numberState
		case unicode.IsLetter(r):
			return identifierState
		case r == '<':
			return iffState
		default:
			return operatorState
		}
	}
}

func numberState(l *Lexer) stateFunc {
	for r := l.peek(); '0' <= r && r <= '9'; r = l.peek() {
		l.next()
	}

	num := l.input[l.start:l.pos]
	if _, err := strconv.Atoi(num); err != nil {
		return l.errorf("integer literal %s out of range", num)
	}

	return l.emit(TokenInteger, num)
}

func identifierState(l *Lexer) stateFunc {
	for r := l.peek(); unicode.IsLetter(r); r = l.peek() {
		l.next()
	}

	return l.emit(TokenIdentifier, l.input[l.start:l.pos])
}

// iffState accepts '<', one or more '=', then '>'.
func iffState(l *Lexer) stateFunc {
	l.next() // Skip '<'

	if l.peek() != '=' {
		return l.errorf("malformed biconditional: expected '=' after '<'")
	}

	for l.peek() == '=' {
		l.next()
	}

	if l.peek() != '>' {
		return l.errorf("unclosed biconditional %q", l.input[l.start:l.pos])
	}

	l.next()
	return l.emit(TokenIff, l.input[l.start:l.pos])
}

func operatorState(l *Lexer) stateFunc {
	r := l.next()
	if tok, ok := operatorTable[r]; ok {
		return l.emit(tok, string(r))
	}

	return l.errorf("invalid symbol '%c'", r)
}

func (l *Lexer) errorf(format string, args ...interface{}) stateFunc {
	l.err = &LexError{
		Pos: l.start,
		Msg: fmt.Sprintf(format, args...),
	}

	return nil
}

func (l *Lexer) emit(t TokenType, val string) stateFunc {
	l.tok = &Token{
		Typ:   t,
		Value: val,
		Pos:   l.start,
	}

	return defaultState
}

func (l *Lexer) peek() rune {
	if l.pos >= len(l.input) {
		return eof
	}

	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		return eof
	}

	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += w

	return r
}
