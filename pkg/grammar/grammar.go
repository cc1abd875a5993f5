// Package grammar declares the expression language with participle struct
// tags. It is an independent frontend to the hand-written parser in
// package compiler and builds the same trees.
package grammar

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"exprvm/pkg/compiler"
)

// Sum is E: products joined by "+".
type Sum struct {
	Head *Product   `@@`
	Tail []*Product `( "+" @@ )*`
}

// Product is T: factors joined by "*".
type Product struct {
	Head *Factor   `@@`
	Tail []*Factor `( "*" @@ )*`
}

// Factor is F: a single digit or a parenthesised sum.
type Factor struct {
	Digit *string `  @Digit`
	Group *Sum    `| "(" @@ ")"`
}

// Characters outside the language form Junk tokens, which are elided, so they
// are as invisible here as they are to compiler.Tokenizer.
var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Digit", Pattern: `[0-9]`},
	{Name: "Punct", Pattern: `[()+*]`},
	{Name: "Junk", Pattern: `[^0-9()+*]+`},
})

// With no lookahead a branch that has consumed a token is committed: a "+",
// "*" or "(" must be followed by the rest of its production, and is never
// backed out of and left over as trailing input.
var parser = participle.MustBuild[Sum](
	participle.Lexer(exprLexer),
	participle.Elide("Junk"),
	participle.UseLookahead(0),
)

// Parse parses input into a compiler.Expr. Unless allowTrailing is set the
// whole input must be consumed.
func Parse(input string, allowTrailing bool) (compiler.Expr, error) {
	sum, err := parser.ParseString("", input, participle.AllowTrailing(allowTrailing))
	if err != nil {
		return nil, err
	}
	return sum.Expr(), nil
}

// Expr folds the sum left to right.
func (s *Sum) Expr() compiler.Expr {
	e := s.Head.Expr()
	for _, p := range s.Tail {
		e = compiler.NewPlus(e, p.Expr())
	}
	return e
}

// Expr folds the product left to right.
func (p *Product) Expr() compiler.Expr {
	e := p.Head.Expr()
	for _, f := range p.Tail {
		e = compiler.NewMultiply(e, f.Expr())
	}
	return e
}

func (f *Factor) Expr() compiler.Expr {
	if f.Group != nil {
		return f.Group.Expr()
	}
	return compiler.NewInteger(int64((*f.Digit)[0] - '0'))
}

// String returns the participle EBNF of the grammar.
func String() string {
	return parser.String()
}
