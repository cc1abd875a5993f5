package asm

import (
	"strings"
	"testing"

	"exprvm/pkg/vm"
)

// smallProgram computes (1+2)*3.
const smallProgram = `
    PUSH 1
    PUSH 2
    PLUS
    PUSH 3
    MULT
`

// largeProgram sums 1000 pushes.
var largeProgram = "PUSH 0\n" + strings.Repeat("PUSH 1 ; one\nPLUS\n", 1000)

func BenchmarkAssemble_Small(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, _, err := Assemble(smallProgram); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAssemble_Large(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, _, err := Assemble(largeProgram); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAssembleAndRun_Large(b *testing.B) {
	for i := 0; i < b.N; i++ {
		p, _, err := Assemble(largeProgram)
		if err != nil {
			b.Fatal(err)
		}
		if _, _, err := vm.Execute(p); err != nil {
			b.Fatal(err)
		}
	}
}
