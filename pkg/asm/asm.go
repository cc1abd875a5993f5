// Package asm reads and writes the text form of VM programs:
//
//	; (1+2)*3
//	PUSH 1
//	PUSH 2
//	PLUS
//	PUSH 3
//	MULT
//
// Mnemonics are case-insensitive, comments start with ';' or '//'.
package asm

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"exprvm/pkg/vm"
)

var zeroOperandOps = map[string]vm.OpCode{
	"PLUS": vm.OpPLUS,
	"MULT": vm.OpMULT,
}

var immediateOps = map[string]vm.OpCode{
	"PUSH": vm.OpPUSH,
}

type parsedLine struct {
	lineNo   int
	mnemonic string
	operands []string
}

// Assemble translates assembly text into a program. The returned source map
// gives the 1-based source line of each instruction index.
func Assemble(code string) (vm.Program, map[int]int, error) {
	program := vm.Program{}
	sourceMap := make(map[int]int)

	for i, raw := range strings.Split(code, "\n") {
		lineNo := i + 1
		p := parseLine(raw, lineNo)
		if p.mnemonic == "" {
			continue
		}

		instr, err := encodeLine(p)
		if err != nil {
			return nil, nil, err
		}
		sourceMap[len(program)] = lineNo
		program = append(program, instr)
	}

	return program, sourceMap, nil
}

func encodeLine(p parsedLine) (vm.Instruction, error) {
	if op, ok := zeroOperandOps[p.mnemonic]; ok {
		if len(p.operands) != 0 {
			return vm.Instruction{}, fmt.Errorf("%s takes no operand on line %d", p.mnemonic, p.lineNo)
		}
		return vm.Instruction{Op: op}, nil
	}

	if op, ok := immediateOps[p.mnemonic]; ok {
		if len(p.operands) != 1 {
			return vm.Instruction{}, fmt.Errorf("%s expects exactly one operand on line %d", p.mnemonic, p.lineNo)
		}
		imm, err := parseImmediate(p.operands[0], p.lineNo)
		if err != nil {
			return vm.Instruction{}, err
		}
		return vm.Instruction{Op: op, Value: imm}, nil
	}

	return vm.Instruction{}, fmt.Errorf("unknown instruction on line %d: %s", p.lineNo, p.mnemonic)
}

func parseLine(raw string, lineNo int) parsedLine {
	p := parsedLine{lineNo: lineNo}

	line := strings.TrimSpace(stripComments(raw))
	if line == "" {
		return p
	}

	fields := strings.Fields(normalizeInstructionText(line))
	p.mnemonic = strings.ToUpper(fields[0])
	if len(fields) > 1 {
		p.operands = fields[1:]
	}
	return p
}

func stripComments(line string) string {
	semicolon := strings.Index(line, ";")
	doubleSlash := strings.Index(line, "//")

	cut := -1
	if semicolon >= 0 {
		cut = semicolon
	}
	if doubleSlash >= 0 && (cut == -1 || doubleSlash < cut) {
		cut = doubleSlash
	}
	if cut >= 0 {
		return line[:cut]
	}
	return line
}

func normalizeInstructionText(line string) string {
	return strings.ReplaceAll(line, ",", " ")
}

// parseImmediate accepts any Go integer literal syntax: 42, -7, 0x2A, 0b101.
func parseImmediate(token string, lineNo int) (int64, error) {
	value, err := strconv.ParseInt(token, 0, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("immediate out of range on line %d: %s", lineNo, token)
		}
		return 0, fmt.Errorf("invalid immediate '%s' on line %d", token, lineNo)
	}
	return value, nil
}

// Disassemble renders p one instruction per line. Assemble reads the result
// back to the same program.
func Disassemble(p vm.Program) string {
	var b strings.Builder
	for _, instr := range p {
		b.WriteString(instr.String())
		b.WriteByte('\n')
	}
	return b.String()
}
