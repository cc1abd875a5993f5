package vm

import "fmt"

// OpCode selects what an instruction does.
type OpCode uint8

const (
	OpPUSH OpCode = 0x01
	OpPLUS OpCode = 0x02
	OpMULT OpCode = 0x03
)

var opNames = map[OpCode]string{
	OpPUSH: "PUSH",
	OpPLUS: "PLUS",
	OpMULT: "MULT",
}

func (op OpCode) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("OpCode(0x%02X)", uint8(op))
}

// Valid reports whether op is part of the instruction set.
func (op OpCode) Valid() bool {
	_, ok := opNames[op]
	return ok
}

// OpCodeByName looks up an opcode by its mnemonic, e.g. "PUSH".
func OpCodeByName(name string) (OpCode, bool) {
	for op, n := range opNames {
		if n == name {
			return op, true
		}
	}
	return 0, false
}

// Instruction is a single VM operation. Value is only meaningful for PUSH.
type Instruction struct {
	Op    OpCode
	Value int64
}

func Push(v int64) Instruction { return Instruction{Op: OpPUSH, Value: v} }
func Plus() Instruction        { return Instruction{Op: OpPLUS} }
func Mult() Instruction        { return Instruction{Op: OpMULT} }

func (i Instruction) String() string {
	if i.Op == OpPUSH {
		return fmt.Sprintf("PUSH %d", i.Value)
	}
	return i.Op.String()
}

// Program is an instruction sequence executed front to back.
type Program []Instruction
