package arch

// Word is a raw 16-bit instruction word. Its methods extract the
// individual bit fields; none of them fail.
type Word uint16

// Family returns the leading nibble (bits 12-15).
func (w Word) Family() int { return int(w>>12) & 0xf }

// Address returns the 12-bit address/immediate field (bits 0-11).
func (w Word) Address() uint16 { return uint16(w) & 0xfff }

// Byte returns the trailing byte (bits 0-7).
func (w Word) Byte() byte { return byte(w) }

// X returns the register index in bits 8-11.
func (w Word) X() int { return int(w>>8) & 0xf }

// Y returns the register index in bits 4-7.
func (w Word) Y() int { return int(w>>4) & 0xf }

// N returns the final nibble (bits 0-3).
func (w Word) N() int { return int(w) & 0xf }
