// Package cpu implements the CHIP-8 interpreter core: machine state,
// instruction decoding and the fetch-decode-execute cycle.
//
// A CPU is not safe for concurrent use. Run one instance per program.
package cpu

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/arch"
	"github.com/hexaflex/chip8/devices"
)

// CPU implements the runtime.
type CPU struct {
	memory Memory                   // System memory.
	v      [arch.RegisterCount]byte // General purpose registers V0..VF.
	i      uint16                   // Index register.
	pc     uint16                   // Program counter.
	stack  Stack                    // Call stack.
	fb     Framebuffer              // Display contents.
	delay  byte                     // Delay timer.
	sound  byte                     // Sound timer.
	keys   arch.KeySet              // Keys pressed during the current cycle.
	instr  Instruction              // Decoded instruction data.
	image  []byte                   // Loaded program image.
	rng    *rand.Rand               // Random number generator.
	halted error                    // Fatal error that stopped execution.
}

// New creates a new CPU with the given program image loaded at
// arch.ProgramAddress. Images larger than arch.MaxImageSize are rejected.
func New(image []byte) (*CPU, error) {
	if len(image) > arch.MaxImageSize {
		return nil, errors.Wrapf(ErrImageTooLarge, "%d bytes, limit is %d", len(image), arch.MaxImageSize)
	}

	c := &CPU{
		image: append([]byte(nil), image...),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	c.Reset()
	return c, nil
}

// ID returns the cpu's device Id.
func (c *CPU) ID() devices.ID {
	return devices.NewID(0xfffe, 0x0001)
}

// Reset restores the power-on state and reloads the program image.
// It also clears a halted state.
func (c *CPU) Reset() {
	c.memory.clear()
	copy(c.memory[arch.FontAddress:], arch.Font[:])
	copy(c.memory[arch.ProgramAddress:], c.image)

	c.v = [arch.RegisterCount]byte{}
	c.i = 0
	c.pc = arch.ProgramAddress
	c.stack.reset()
	c.fb.clear()
	c.delay = 0
	c.sound = 0
	c.keys = 0
	c.instr = Instruction{}
	c.halted = nil
}

// Seed reseeds the random number generator used by RND.
func (c *CPU) Seed(v int64) {
	c.rng = rand.New(rand.NewSource(v))
}

// SetKeys sets the keys held down for the next Step.
// The set is discarded once that step completes.
func (c *CPU) SetKeys(k arch.KeySet) {
	c.keys = k
}

// Step performs a single execution cycle: both timers count down,
// then one instruction is fetched, decoded and executed.
//
// Any error is fatal. The CPU halts and every further call returns the
// same error until Reset is called.
func (c *CPU) Step() error {
	if c.halted != nil {
		return c.halted
	}

	if c.delay > 0 {
		c.delay--
	}
	if c.sound > 0 {
		c.sound--
	}

	err := c.execute()
	c.keys = 0

	if err != nil {
		c.halted = err
	}
	return err
}

// Halted returns the error that stopped execution, or nil if the
// CPU is still able to run.
func (c *CPU) Halted() error {
	return c.halted
}

// Screen returns a snapshot of the framebuffer.
func (c *CPU) Screen() *Framebuffer {
	fb := c.fb
	return &fb
}

// Memory returns a copy of the cpu's memory bank.
func (c *CPU) Memory() Memory {
	return c.memory
}

// DelayTimer returns the current delay timer value.
func (c *CPU) DelayTimer() byte { return c.delay }

// SoundTimer returns the current sound timer value.
func (c *CPU) SoundTimer() byte { return c.sound }

// PC returns the program counter.
func (c *CPU) PC() uint16 { return c.pc }

// I returns the index register.
func (c *CPU) I() uint16 { return c.i }

// V returns the value of register Vx. Only the low nibble of x is used.
func (c *CPU) V(x int) byte { return c.v[x&0xf] }

// SP returns the number of return addresses on the call stack.
func (c *CPU) SP() int { return c.stack.Len() }
