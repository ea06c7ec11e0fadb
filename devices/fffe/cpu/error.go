package cpu

import (
	"fmt"

	"github.com/pkg/errors"
)

// Runtime fault causes. Test for them with errors.Is or errors.Cause.
var (
	ErrInvalidOpcode  = errors.New("invalid opcode")
	ErrStackOverflow  = errors.New("stack overflow")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrMemoryRange    = errors.New("memory access out of range")
	ErrImageTooLarge  = errors.New("program image too large")
)

// Error defines a fatal runtime error. It records the instruction
// during which the fault occurred.
type Error struct {
	Instruction
	Err error
}

// NewError creates a new runtime error for the given instruction.
func NewError(instr *Instruction, cause error) *Error {
	return &Error{
		Instruction: *instr,
		Err:         cause,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%04x: %04x: %v", e.IP, uint16(e.Word), e.Err)
}

// Cause returns the underlying fault, for errors.Cause.
func (e *Error) Cause() error { return e.Err }

// Unwrap returns the underlying fault, for errors.Is.
func (e *Error) Unwrap() error { return e.Err }
