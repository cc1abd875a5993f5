// Package compiler provides the syntax stage of the expression pipeline and
// its lowering onto the stack VM.
//
// Pipeline: source → Lex → Parse → Expr → Lower → vm.Program
//
// The language has single-digit literals, + and * (both left-associative,
// * binding tighter) and parentheses. Any other character is ignored.
package compiler
