package compiler

import (
	"fmt"
	"strconv"
)

// Expr is implemented by the three expression forms of the language:
// *Integer, *Plus and *Multiply. A nil Expr stands for "no result".
type Expr interface {
	exprNode()
	// Evaluate folds the tree to its value. Arithmetic is int64 and wraps on
	// overflow, the same way the VM does.
	Evaluate() int64
	// Pretty renders the tree with the fewest parentheses that still parse
	// back to the same tree.
	Pretty() string
	// String renders the tree fully parenthesised.
	String() string
}

// Integer is a literal leaf.
//
//	1 + 2
//	^  Integer{Value: 1}
type Integer struct {
	Value int64
}

// Plus is Left + Right.
type Plus struct {
	Left  Expr
	Right Expr
}

// Multiply is Left * Right.
type Multiply struct {
	Left  Expr
	Right Expr
}

func (*Integer) exprNode()  {}
func (*Plus) exprNode()     {}
func (*Multiply) exprNode() {}

func NewInteger(v int64) *Integer {
	return &Integer{Value: v}
}

func NewPlus(left, right Expr) *Plus {
	return &Plus{Left: left, Right: right}
}

func NewMultiply(left, right Expr) *Multiply {
	return &Multiply{Left: left, Right: right}
}

func (i *Integer) Evaluate() int64  { return i.Value }
func (p *Plus) Evaluate() int64     { return p.Left.Evaluate() + p.Right.Evaluate() }
func (m *Multiply) Evaluate() int64 { return m.Left.Evaluate() * m.Right.Evaluate() }

func (i *Integer) String() string { return strconv.FormatInt(i.Value, 10) }
func (p *Plus) String() string    { return fmt.Sprintf("(%s+%s)", p.Left, p.Right) }
func (m *Multiply) String() string {
	return fmt.Sprintf("(%s*%s)", m.Left, m.Right)
}

func (i *Integer) Pretty() string { return i.String() }

// Pretty leaves the left operand bare. A right operand that is itself a sum
// is grouped, otherwise the left-associative grammar would re-attach it.
func (p *Plus) Pretty() string {
	return p.Left.Pretty() + "+" + group(p.Right, IsPlus(p.Right))
}

// Pretty groups any sum operand, and a right operand that is a product.
func (m *Multiply) Pretty() string {
	left := group(m.Left, IsPlus(m.Left))
	right := group(m.Right, IsPlus(m.Right) || IsMultiply(m.Right))
	return left + "*" + right
}

func group(e Expr, paren bool) string {
	if paren {
		return "(" + e.Pretty() + ")"
	}
	return e.Pretty()
}

func IsInteger(e Expr) bool {
	_, ok := e.(*Integer)
	return ok
}

func IsPlus(e Expr) bool {
	_, ok := e.(*Plus)
	return ok
}

func IsMultiply(e Expr) bool {
	_, ok := e.(*Multiply)
	return ok
}

// Equal reports whether a and b have the same shape and the same leaf values.
// A nil Expr is only equal to another nil.
func Equal(a, b Expr) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case *Integer:
		y, ok := b.(*Integer)
		return ok && x.Value == y.Value
	case *Plus:
		y, ok := b.(*Plus)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	case *Multiply:
		y, ok := b.(*Multiply)
		return ok && Equal(x.Left, y.Left) && Equal(x.Right, y.Right)
	}
	return false
}

// Size counts the nodes of e.
func Size(e Expr) int {
	switch n := e.(type) {
	case *Integer:
		return 1
	case *Plus:
		return 1 + Size(n.Left) + Size(n.Right)
	case *Multiply:
		return 1 + Size(n.Left) + Size(n.Right)
	}
	return 0
}

// Depth is the length of the longest root-to-leaf path; a leaf has depth 1.
func Depth(e Expr) int {
	switch n := e.(type) {
	case *Integer:
		return 1
	case *Plus:
		return 1 + max(Depth(n.Left), Depth(n.Right))
	case *Multiply:
		return 1 + max(Depth(n.Left), Depth(n.Right))
	}
	return 0
}
