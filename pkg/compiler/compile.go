package compiler

import (
	"fmt"

	"exprvm/pkg/vm"
)

// Compile runs the syntax and semantics stages over src and returns both the
// tree and the lowered program.
func Compile(src string, opts ...Option) (Expr, vm.Program, error) {
	expr, err := Parse(src, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("parse error: %w", err)
	}
	return expr, Lower(expr), nil
}
