// Package demo runs the fixed showcase of the pipeline: a set of parser
// results followed by a set of VM results.
package demo

import (
	"fmt"
	"io"

	"exprvm/pkg/compiler"
	"exprvm/pkg/vm"
)

// ParserInputs are the source texts shown in the syntax section.
var ParserInputs = []string{
	"1",
	"1 + 0 ",
	"1 + (0) ",
	"1 + 2 * 0 ",
	"1 * 2 + 0 ",
	"(1 + 2) * 0 ",
	"(1 + 2) * 0 + 2",
	"3 * 2 + 1",
	"(5 + 3) * 2",
	"(5 + 3) * ((2 + 8) + 5)",
}

// LoweredInput is compiled and run in the semantics section.
const LoweredInput = "(5 + 3) * ((2 + 8) + 5)"

// Programs are the hand-written VM programs of the semantics section.
var Programs = []vm.Program{
	{vm.Push(1), vm.Push(2), vm.Push(3), vm.Mult(), vm.Plus()},
	{vm.Push(2), vm.Push(3), vm.Push(5), vm.Plus(), vm.Mult()},
}

// Run writes the showcase to w.
func Run(w io.Writer, opts ...compiler.Option) error {
	if _, err := fmt.Fprintln(w, "\nParser (SYNTAX):"); err != nil {
		return err
	}
	for _, input := range ParserInputs {
		expr, _ := compiler.Parse(input, opts...)
		if err := writeExpr(w, expr); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "\nVM (SEMANTIK):"); err != nil {
		return err
	}
	for _, p := range Programs {
		if err := writeRun(w, p); err != nil {
			return err
		}
	}

	expr, _ := compiler.Parse(LoweredInput, opts...)
	return writeRun(w, compiler.Lower(expr))
}

func writeExpr(w io.Writer, expr compiler.Expr) error {
	if expr == nil {
		_, err := fmt.Fprintln(w, "> nothing")
		return err
	}
	_, err := fmt.Fprintf(w, "> %-18s = %d\n", expr.Pretty(), expr.Evaluate())
	return err
}

func writeRun(w io.Writer, p vm.Program) error {
	v, ok, err := vm.Execute(p)
	if err != nil {
		return err
	}
	if !ok {
		_, err = fmt.Fprintln(w, "> VM stack (top): empty")
		return err
	}
	_, err = fmt.Fprintf(w, "> VM stack (top): %d\n", v)
	return err
}
