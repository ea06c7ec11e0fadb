package cpu

import (
	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/arch"
)

// Memory defines the system's memory bank.
type Memory [arch.MemoryCapacity]byte

// U16 returns the big-endian 16-bit value at the given address.
func (m *Memory) U16(addr int) (uint16, error) {
	if err := checkRange(addr, 2); err != nil {
		return 0, err
	}
	return uint16(m[addr])<<8 | uint16(m[addr+1]), nil
}

// Write writes len(p) bytes from p into memory, starting at the given address.
// Nothing is written if p does not fit.
func (m *Memory) Write(address int, p []byte) error {
	if err := checkRange(address, len(p)); err != nil {
		return err
	}
	copy(m[address:], p)
	return nil
}

// Read reads len(p) bytes from memory into p, starting at the given address.
func (m *Memory) Read(address int, p []byte) error {
	if err := checkRange(address, len(p)); err != nil {
		return err
	}
	copy(p, m[address:])
	return nil
}

// clear zeroes the whole memory bank.
func (m *Memory) clear() {
	*m = Memory{}
}

// checkRange returns ErrMemoryRange if [addr, addr+n) is not entirely
// inside memory.
func checkRange(addr, n int) error {
	if addr < 0 || n < 0 || addr+n > arch.MemoryCapacity {
		return errors.Wrapf(ErrMemoryRange, "%d bytes at %04x", n, addr)
	}
	return nil
}
