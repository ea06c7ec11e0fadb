package arch

import (
	"math/bits"
	"strings"
)

// KeyCount is the number of keys on the hex keypad.
const KeyCount = 16

// KeyNames lists the physical key for each key symbol, indexed by symbol.
const KeyNames = "0123456789ABCDEF"

// KeySymbol returns the key symbol for the given physical key name.
// Keys "0"-"9" map to 0x0-0x9 and "A"-"F" to 0xA-0xF, case insensitive.
// Returns false for any other key.
func KeySymbol(name string) (byte, bool) {
	if len(name) != 1 {
		return 0, false
	}

	n := strings.IndexByte(KeyNames, strings.ToUpper(name)[0])
	if n < 0 {
		return 0, false
	}
	return byte(n), true
}

// KeySet holds the pressed state of all keypad symbols, one bit per symbol.
// The zero value means nothing is pressed.
type KeySet uint16

// Keys returns a set with the given symbols pressed.
func Keys(syms ...byte) KeySet {
	var k KeySet
	for _, s := range syms {
		k = k.Press(s)
	}
	return k
}

// Press returns a copy of k with the given symbol pressed.
// Only the low nibble of sym is used.
func (k KeySet) Press(sym byte) KeySet {
	return k | 1<<(sym&0xf)
}

// Pressed returns true if the given symbol is pressed.
// Only the low nibble of sym is used.
func (k KeySet) Pressed(sym byte) bool {
	return k&(1<<(sym&0xf)) != 0
}

// Empty returns true if no key is pressed.
func (k KeySet) Empty() bool {
	return k == 0
}

// Lowest returns the lowest pressed symbol.
// Returns false if the set is empty.
func (k KeySet) Lowest() (byte, bool) {
	if k == 0 {
		return 0, false
	}
	return byte(bits.TrailingZeros16(uint16(k))), true
}

func (k KeySet) String() string {
	var sb strings.Builder
	for i := 0; i < KeyCount; i++ {
		if k.Pressed(byte(i)) {
			sb.WriteByte(KeyNames[i])
		}
	}
	return sb.String()
}
