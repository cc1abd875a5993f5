package compiler

import (
	"errors"
	"fmt"
)

// Syntax errors. Parse wraps one of these with the offending token, so callers
// test for them with errors.Is.
var (
	ErrUnexpectedToken   = errors.New("unexpected token")
	ErrUnexpectedEnd     = errors.New("unexpected end of input")
	ErrMissingCloseParen = errors.New("missing closing parenthesis")
	ErrTrailingInput     = errors.New("trailing input after expression")
)

// Parser builds an AST from the token stream of a Tokenizer.
//
// Grammar:
//
//	E  = T E'
//	E' = "+" T E' | ε
//	T  = F T'
//	T' = "*" F T' | ε
//	F  = D | "(" E ")"
//	D  = "0" | "1" | ... | "9"
//
// E' and T' fold their operators left to right in a loop, so long operator
// chains never grow the call stack.
type Parser struct {
	tok           *Tokenizer
	allowTrailing bool
}

// Option configures a Parser.
type Option func(*Parser)

// AllowTrailing makes the parser stop as soon as the grammar no longer
// applies and return what it has, ignoring any remaining tokens. By default
// the expression must be followed by the end of input.
func AllowTrailing() Option {
	return func(p *Parser) { p.allowTrailing = true }
}

func NewParser(input string, opts ...Option) *Parser {
	p := &Parser{tok: NewTokenizer(input)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse is shorthand for NewParser(input, opts...).Parse().
func Parse(input string, opts ...Option) (Expr, error) {
	return NewParser(input, opts...).Parse()
}

// Parse parses the whole input. On failure the tree is nil; no partial
// result is returned.
func (p *Parser) Parse() (Expr, error) {
	expr, err := p.parseE()
	if err != nil {
		return nil, err
	}
	if !p.allowTrailing && p.peek() != EOS {
		return nil, fmt.Errorf("%w: %s", ErrTrailingInput, p.peek())
	}
	return expr, nil
}

// peek returns the lookahead token.
func (p *Parser) peek() Token {
	return p.tok.Current()
}

// advance consumes the lookahead token and returns it.
func (p *Parser) advance() Token {
	tok := p.tok.Current()
	p.tok.Next()
	return tok
}

// parseE handles E = T E'.
func (p *Parser) parseE() (Expr, error) {
	left, err := p.parseT()
	if err != nil {
		return nil, err
	}
	for p.peek() == PLUS {
		p.advance()
		right, err := p.parseT()
		if err != nil {
			return nil, err
		}
		left = NewPlus(left, right)
	}
	return left, nil
}

// parseT handles T = F T'.
func (p *Parser) parseT() (Expr, error) {
	left, err := p.parseF()
	if err != nil {
		return nil, err
	}
	for p.peek() == MULT {
		p.advance()
		right, err := p.parseF()
		if err != nil {
			return nil, err
		}
		left = NewMultiply(left, right)
	}
	return left, nil
}

// parseF handles F = D | "(" E ")".
func (p *Parser) parseF() (Expr, error) {
	tok := p.peek()
	if v, ok := tok.Digit(); ok {
		p.advance()
		return NewInteger(v), nil
	}
	switch tok {
	case OPEN:
		p.advance()
		expr, err := p.parseE()
		if err != nil {
			return nil, err
		}
		if p.peek() != CLOSE {
			return nil, fmt.Errorf("%w: got %s", ErrMissingCloseParen, p.peek())
		}
		p.advance()
		return expr, nil
	case EOS:
		return nil, ErrUnexpectedEnd
	}
	return nil, fmt.Errorf("%w: expected digit or OPEN, got %s", ErrUnexpectedToken, tok)
}
