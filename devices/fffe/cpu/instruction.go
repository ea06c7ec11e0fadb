package cpu

import (
	"fmt"

	"github.com/hexaflex/chip8/arch"
)

// Instruction defines decoded instruction data.
type Instruction struct {
	IP     uint16      // Instruction address.
	Word   arch.Word   // Raw instruction word.
	Opcode arch.Opcode // Instruction variant. arch.Invalid if unrecognized.
}

// Decode fetches the instruction word at ip from the given memory bank
// and classifies it. An unrecognized word is not an error here; it decodes
// to arch.Invalid and is rejected at dispatch.
func (i *Instruction) Decode(m *Memory, ip uint16) error {
	i.IP = ip
	i.Word = 0
	i.Opcode = arch.Invalid

	v, err := m.U16(int(ip))
	if err != nil {
		return NewError(i, err)
	}

	i.Word = arch.Word(v)
	i.Opcode = arch.Lookup(i.Word)
	return nil
}

func (i *Instruction) String() string {
	w := i.Word
	vx := arch.RegisterName(w.X())
	vy := arch.RegisterName(w.Y())

	switch i.Opcode {
	case arch.CLS, arch.RET:
		return i.Opcode.String()
	case arch.JP, arch.CALL:
		return fmt.Sprintf("%s %03x", i.Opcode, w.Address())
	case arch.JPV0:
		return fmt.Sprintf("%s V0, %03x", i.Opcode, w.Address())
	case arch.LDI:
		return fmt.Sprintf("%s I, %03x", i.Opcode, w.Address())
	case arch.SEB, arch.SNEB, arch.LDB, arch.ADDB, arch.RND:
		return fmt.Sprintf("%s %s, %02x", i.Opcode, vx, w.Byte())
	case arch.SE, arch.SNE, arch.MOV, arch.OR, arch.AND, arch.XOR,
		arch.ADD, arch.SUB, arch.SHR, arch.SUBN, arch.SHL:
		return fmt.Sprintf("%s %s, %s", i.Opcode, vx, vy)
	case arch.DRW:
		return fmt.Sprintf("%s %s, %s, %x", i.Opcode, vx, vy, w.N())
	case arch.SKP, arch.SKNP:
		return fmt.Sprintf("%s %s", i.Opcode, vx)
	case arch.LDVDT:
		return fmt.Sprintf("%s %s, DT", i.Opcode, vx)
	case arch.LDK:
		return fmt.Sprintf("%s %s, K", i.Opcode, vx)
	case arch.LDDT:
		return fmt.Sprintf("%s DT, %s", i.Opcode, vx)
	case arch.LDST:
		return fmt.Sprintf("%s ST, %s", i.Opcode, vx)
	case arch.ADDI:
		return fmt.Sprintf("%s I, %s", i.Opcode, vx)
	case arch.LDF:
		return fmt.Sprintf("%s F, %s", i.Opcode, vx)
	case arch.LDBCD:
		return fmt.Sprintf("%s B, %s", i.Opcode, vx)
	case arch.STORE:
		return fmt.Sprintf("%s [I], %s", i.Opcode, vx)
	case arch.LOAD:
		return fmt.Sprintf("%s %s, [I]", i.Opcode, vx)
	}

	return fmt.Sprintf("%s %04x", i.Opcode, uint16(w))
}
