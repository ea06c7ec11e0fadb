package cpu

import "github.com/hexaflex/chip8/arch"

// Stack is the fixed-size call stack.
type Stack struct {
	slots [arch.StackCapacity]uint16
	sp    int
}

// Len returns the number of occupied slots.
func (s *Stack) Len() int {
	return s.sp
}

// Push stores v in the next free slot.
// Returns ErrStackOverflow if the stack is full.
func (s *Stack) Push(v uint16) error {
	if s.sp >= len(s.slots) {
		return ErrStackOverflow
	}
	s.slots[s.sp] = v
	s.sp++
	return nil
}

// Pop removes and returns the most recently pushed value.
// Returns ErrStackUnderflow if the stack is empty.
func (s *Stack) Pop() (uint16, error) {
	if s.sp == 0 {
		return 0, ErrStackUnderflow
	}
	s.sp--
	v := s.slots[s.sp]
	s.slots[s.sp] = 0
	return v, nil
}

func (s *Stack) reset() {
	*s = Stack{}
}
