package cpu

import (
	"github.com/hexaflex/chip8/arch"
)

// execute fetches the instruction at the program counter and runs it.
// Every handler sets the next program counter itself.
func (c *CPU) execute() error {
	instr := &c.instr
	if err := instr.Decode(&c.memory, c.pc); err != nil {
		return err
	}

	w := instr.Word
	x, y := w.X(), w.Y()

	switch instr.Opcode {
	case arch.CLS:
		c.fb.clear()
		c.pc += 2
	case arch.RET:
		addr, err := c.stack.Pop()
		if err != nil {
			return NewError(instr, err)
		}
		// The stack holds the address of the CALL itself.
		c.pc = addr + 2
	case arch.JP:
		c.pc = w.Address()
	case arch.CALL:
		if err := c.stack.Push(c.pc); err != nil {
			return NewError(instr, err)
		}
		c.pc = w.Address()
	case arch.JPV0:
		addr := int(w.Address()) + int(c.v[0])
		if err := checkRange(addr, 2); err != nil {
			return NewError(instr, err)
		}
		c.pc = uint16(addr)

	case arch.SEB:
		c.skipIf(c.v[x] == w.Byte())
	case arch.SNEB:
		c.skipIf(c.v[x] != w.Byte())
	case arch.SE:
		c.skipIf(c.v[x] == c.v[y])
	case arch.SNE:
		c.skipIf(c.v[x] != c.v[y])
	case arch.SKP:
		c.skipIf(c.keys.Pressed(c.v[x]))
	case arch.SKNP:
		c.skipIf(!c.keys.Pressed(c.v[x]))

	case arch.LDB:
		c.v[x] = w.Byte()
		c.pc += 2
	case arch.ADDB:
		c.v[x] += w.Byte()
		c.pc += 2
	case arch.RND:
		c.v[x] = byte(c.rng.Intn(256)) & w.Byte()
		c.pc += 2

	case arch.MOV, arch.OR, arch.AND, arch.XOR, arch.ADD, arch.SUB, arch.SHR, arch.SUBN, arch.SHL:
		c.alu(instr.Opcode, x, y)
		c.pc += 2

	case arch.LDI:
		c.i = w.Address()
		c.pc += 2
	case arch.ADDI:
		c.i += uint16(c.v[x])
		c.pc += 2
	case arch.LDF:
		c.i = arch.FontAddress + arch.GlyphSize*uint16(c.v[x]&0xf)
		c.pc += 2

	case arch.DRW:
		if err := c.draw(x, y, w.N()); err != nil {
			return NewError(instr, err)
		}
		c.pc += 2

	case arch.LDVDT:
		c.v[x] = c.delay
		c.pc += 2
	case arch.LDDT:
		c.delay = c.v[x]
		c.pc += 2
	case arch.LDST:
		c.sound = c.v[x]
		c.pc += 2
	case arch.LDK:
		// Without a key press the program counter stays put and the
		// instruction runs again next cycle.
		if key, ok := c.keys.Lowest(); ok {
			c.v[x] = key
			c.pc += 2
		}

	case arch.LDBCD:
		v := c.v[x]
		if err := c.memory.Write(int(c.i), []byte{v / 100, v / 10 % 10, v % 10}); err != nil {
			return NewError(instr, err)
		}
		c.pc += 2
	case arch.STORE:
		if err := c.memory.Write(int(c.i), c.v[:x+1]); err != nil {
			return NewError(instr, err)
		}
		c.pc += 2
	case arch.LOAD:
		if err := c.memory.Read(int(c.i), c.v[:x+1]); err != nil {
			return NewError(instr, err)
		}
		c.pc += 2

	default:
		return NewError(instr, ErrInvalidOpcode)
	}

	return nil
}

// skipIf skips the next instruction if cond holds.
func (c *CPU) skipIf(cond bool) {
	if cond {
		c.pc += 4
	} else {
		c.pc += 2
	}
}

// alu runs one of the register-to-register operations on Vx and Vy.
// Arithmetic wraps modulo 256. The flag is written after the result,
// so it wins when x is VF.
func (c *CPU) alu(op arch.Opcode, x, y int) {
	vx, vy := c.v[x], c.v[y]

	switch op {
	case arch.MOV:
		c.v[x] = vy
	case arch.OR:
		c.v[x] = vx | vy
	case arch.AND:
		c.v[x] = vx & vy
	case arch.XOR:
		c.v[x] = vx ^ vy
	case arch.ADD:
		sum := vx + vy
		c.v[x] = sum
		c.v[arch.FlagRegister] = flag(sum < vx)
	case arch.SUB:
		c.v[x] = vx - vy
		c.v[arch.FlagRegister] = flag(vx > vy)
	case arch.SUBN:
		c.v[x] = vy - vx
		c.v[arch.FlagRegister] = flag(vy > vx)
	case arch.SHR:
		c.v[x] = vx >> 1
		c.v[arch.FlagRegister] = vx & 1
	case arch.SHL:
		c.v[x] = vx << 1
		c.v[arch.FlagRegister] = vx >> 7
	}
}

// draw XORs the n-byte sprite at I onto the framebuffer at (Vx, Vy).
//
// The origin wraps around the display once; pixels that then fall past
// the right or bottom edge are clipped. Every set bit that lands on the
// display toggles its pixel and sets VF to 1. VF is left alone if no
// such bit exists.
func (c *CPU) draw(x, y, n int) error {
	if err := checkRange(int(c.i), n); err != nil {
		return err
	}

	ox := int(c.v[x]) % arch.DisplayWidth
	oy := int(c.v[y]) % arch.DisplayHeight
	sprite := c.memory[int(c.i) : int(c.i)+n]

	var drawn bool
	for row, bits := range sprite {
		for col := 0; col < 8; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}
			if c.fb.toggle(ox+col, oy+row) {
				drawn = true
			}
		}
	}

	if drawn {
		c.v[arch.FlagRegister] = 1
	}
	return nil
}

func flag(v bool) byte {
	if v {
		return 1
	}
	return 0
}
