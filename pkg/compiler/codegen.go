package compiler

import "exprvm/pkg/vm"

// Lower translates e into a stack VM program by post-order traversal: both
// operands are emitted before their operator. A nil expression lowers to an
// empty program.
//
//	(1+2)*3  ->  PUSH 1, PUSH 2, PLUS, PUSH 3, MULT
//
// Running the result on an empty stack leaves exactly one value, equal to
// e.Evaluate().
func Lower(e Expr) vm.Program {
	cg := &CodeGen{out: vm.Program{}}
	if e != nil {
		cg.genExpr(e)
	}
	return cg.out
}

// CodeGen accumulates the instructions emitted for one expression.
type CodeGen struct {
	out vm.Program
}

func (cg *CodeGen) emit(instr vm.Instruction) {
	cg.out = append(cg.out, instr)
}

func (cg *CodeGen) genExpr(e Expr) {
	switch n := e.(type) {
	case *Integer:
		cg.emit(vm.Push(n.Value))
	case *Plus:
		cg.genExpr(n.Left)
		cg.genExpr(n.Right)
		cg.emit(vm.Plus())
	case *Multiply:
		cg.genExpr(n.Left)
		cg.genExpr(n.Right)
		cg.emit(vm.Mult())
	}
}
