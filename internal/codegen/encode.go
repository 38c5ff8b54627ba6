package codegen

import (
	"encoding/binary"

	"fortio.org/safecast"

	"github.com/HF-Foundation/HF-CLI/internal/diag"
	"github.com/HF-Foundation/HF-CLI/internal/ir"
)

// Bytecode opcodes. Each instruction is one opcode byte, followed by
// a little-endian int32 operand for the opcodes that carry one.
const (
	opHalt     byte = 0x00
	opAdd      byte = 0x01 // operand: amount
	opMove     byte = 0x02 // operand: offset
	opIn       byte = 0x03
	opOut      byte = 0x04
	opSet      byte = 0x05 // operand: value
	opTransfer byte = 0x06 // operand: destination offset
	opJz       byte = 0x07 // operand: address past the matching opJnz
	opJnz      byte = 0x08 // operand: address of the matching opJz
)

// encode flattens a module into bytecode. Loops become a jump-if-zero
// and jump-if-nonzero pair with absolute byte addresses; a halt
// terminates the program.
func encode(m *ir.Module) ([]byte, *diag.CodegenError) {
	var e encoder
	if err := e.block(m.Body); err != nil {
		return nil, err
	}
	e.buf = append(e.buf, opHalt)
	return e.buf, nil
}

type encoder struct {
	buf []byte
}

func (e *encoder) block(nodes []ir.Node) *diag.CodegenError {
	for _, n := range nodes {
		switch n := n.(type) {
		case ir.Instr:
			e.instr(n)
		case *ir.Loop:
			if err := e.loop(n); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *encoder) instr(instr ir.Instr) {
	switch instr.Op {
	case ir.Add:
		e.op(opAdd, instr.Arg)
	case ir.Move:
		e.op(opMove, instr.Arg)
	case ir.In:
		e.buf = append(e.buf, opIn)
	case ir.Out:
		e.buf = append(e.buf, opOut)
	case ir.Set:
		e.op(opSet, instr.Arg)
	case ir.Transfer:
		e.op(opTransfer, instr.Arg)
	}
}

func (e *encoder) loop(loop *ir.Loop) *diag.CodegenError {
	openAt := len(e.buf)
	e.op(opJz, 0) // patched after the body is encoded
	if err := e.block(loop.Body); err != nil {
		return err
	}
	back, err := address(openAt)
	if err != nil {
		return err
	}
	e.op(opJnz, back)
	exit, err := address(len(e.buf))
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(e.buf[openAt+1:openAt+5], uint32(exit))
	return nil
}

func (e *encoder) op(opcode byte, operand int32) {
	e.buf = append(e.buf, opcode)
	e.buf = binary.LittleEndian.AppendUint32(e.buf, uint32(operand))
}

func address(offset int) (int32, *diag.CodegenError) {
	addr, err := safecast.Conv[int32](offset)
	if err != nil {
		return 0, diag.Codegenf("program too large: jump target %d does not fit the bytecode format", offset)
	}
	return addr, nil
}
