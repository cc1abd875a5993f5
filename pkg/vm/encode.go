package vm

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// Binary program layout:
//
//	"EXVM" version(1 byte) { opcode(1 byte) [value(8 bytes, little-endian) if PUSH] }*
const (
	magic   = "EXVM"
	version = 1

	headerSize = len(magic) + 1
	valueSize  = 8
)

var (
	ErrBadMagic   = errors.New("not an EXVM program")
	ErrBadVersion = errors.New("unsupported EXVM version")
	ErrTruncated  = errors.New("truncated program")
)

// Encode serialises p into the EXVM binary format.
func Encode(p Program) []byte {
	out := make([]byte, 0, headerSize+len(p)*(1+valueSize))
	out = append(out, magic...)
	out = append(out, version)
	for _, instr := range p {
		out = append(out, byte(instr.Op))
		if instr.Op == OpPUSH {
			out = binary.LittleEndian.AppendUint64(out, uint64(instr.Value))
		}
	}
	return out
}

// Decode parses an EXVM binary program.
func Decode(data []byte) (Program, error) {
	if len(data) < headerSize || !bytes.Equal(data[:len(magic)], []byte(magic)) {
		return nil, ErrBadMagic
	}
	if v := data[len(magic)]; v != version {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, v)
	}

	p := Program{}
	for off := headerSize; off < len(data); {
		op := OpCode(data[off])
		if !op.Valid() {
			return nil, fmt.Errorf("offset %d: %w 0x%02X", off, ErrUnknownOpcode, uint8(op))
		}
		off++

		instr := Instruction{Op: op}
		if op == OpPUSH {
			if off+valueSize > len(data) {
				return nil, fmt.Errorf("offset %d: %w", off, ErrTruncated)
			}
			instr.Value = int64(binary.LittleEndian.Uint64(data[off:]))
			off += valueSize
		}
		p = append(p, instr)
	}
	return p, nil
}
