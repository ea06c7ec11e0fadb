// Package arch defines the system's instruction set along with
// some related helper functions.
package arch

// Opcode identifies a decoded instruction variant.
//
// The set is closed: every 16-bit word maps to exactly one of these through
// Lookup, with Invalid covering everything the machine does not implement.
type Opcode byte

// Known opcodes.
const (
	Invalid Opcode = iota

	CLS  // 00E0  clear the screen
	RET  // 00EE  return from subroutine
	JP   // 1nnn  jump to nnn
	CALL // 2nnn  call subroutine at nnn
	SEB  // 3xnn  skip if Vx == nn
	SNEB // 4xnn  skip if Vx != nn
	SE   // 5xy0  skip if Vx == Vy
	LDB  // 6xnn  Vx = nn
	ADDB // 7xnn  Vx += nn

	MOV  // 8xy0  Vx = Vy
	OR   // 8xy1  Vx |= Vy
	AND  // 8xy2  Vx &= Vy
	XOR  // 8xy3  Vx ^= Vy
	ADD  // 8xy4  Vx += Vy, VF = carry
	SUB  // 8xy5  Vx -= Vy, VF = no borrow
	SHR  // 8xy6  Vx >>= 1, VF = bit shifted out
	SUBN // 8xy7  Vx = Vy - Vx, VF = no borrow
	SHL  // 8xyE  Vx <<= 1, VF = bit shifted out

	SNE  // 9xy0  skip if Vx != Vy
	LDI  // Annn  I = nnn
	JPV0 // Bnnn  jump to nnn + V0
	RND  // Cxnn  Vx = random & nn
	DRW  // Dxyn  draw n-byte sprite at (Vx, Vy)
	SKP  // Ex9E  skip if key Vx is pressed
	SKNP // ExA1  skip if key Vx is not pressed

	LDVDT // Fx07  Vx = delay timer
	LDK   // Fx0A  wait for a key press, Vx = key
	LDDT  // Fx15  delay timer = Vx
	LDST  // Fx18  sound timer = Vx
	ADDI  // Fx1E  I += Vx
	LDF   // Fx29  I = glyph address for digit Vx
	LDBCD // Fx33  store BCD of Vx at I, I+1, I+2
	STORE // Fx55  store V0..Vx at I
	LOAD  // Fx65  load V0..Vx from I

	OpcodeCount // Number of known opcodes, including Invalid.
)

var names = [OpcodeCount]string{
	Invalid: "???",
	CLS:     "CLS",
	RET:     "RET",
	JP:      "JP",
	CALL:    "CALL",
	SEB:     "SE",
	SNEB:    "SNE",
	SE:      "SE",
	LDB:     "LD",
	ADDB:    "ADD",
	MOV:     "LD",
	OR:      "OR",
	AND:     "AND",
	XOR:     "XOR",
	ADD:     "ADD",
	SUB:     "SUB",
	SHR:     "SHR",
	SUBN:    "SUBN",
	SHL:     "SHL",
	SNE:     "SNE",
	LDI:     "LD",
	JPV0:    "JP",
	RND:     "RND",
	DRW:     "DRW",
	SKP:     "SKP",
	SKNP:    "SKNP",
	LDVDT:   "LD",
	LDK:     "LD",
	LDDT:    "LD",
	LDST:    "LD",
	ADDI:    "ADD",
	LDF:     "LD",
	LDBCD:   "LD",
	STORE:   "LD",
	LOAD:    "LD",
}

// Name returns the mnemonic for the given opcode.
// Returns false if the opcode is not recognized.
func Name(op Opcode) (string, bool) {
	if op == Invalid || op >= OpcodeCount {
		return "", false
	}
	return names[op], true
}

func (op Opcode) String() string {
	if name, ok := Name(op); ok {
		return name
	}
	return names[Invalid]
}

// Lookup returns the opcode variant encoded by w.
// Returns Invalid if w matches no known instruction pattern.
func Lookup(w Word) Opcode {
	switch w.Family() {
	case 0x0:
		switch w {
		case 0x00e0:
			return CLS
		case 0x00ee:
			return RET
		}
	case 0x1:
		return JP
	case 0x2:
		return CALL
	case 0x3:
		return SEB
	case 0x4:
		return SNEB
	case 0x5:
		if w.N() == 0 {
			return SE
		}
	case 0x6:
		return LDB
	case 0x7:
		return ADDB
	case 0x8:
		switch w.N() {
		case 0x0:
			return MOV
		case 0x1:
			return OR
		case 0x2:
			return AND
		case 0x3:
			return XOR
		case 0x4:
			return ADD
		case 0x5:
			return SUB
		case 0x6:
			return SHR
		case 0x7:
			return SUBN
		case 0xe:
			return SHL
		}
	case 0x9:
		if w.N() == 0 {
			return SNE
		}
	case 0xa:
		return LDI
	case 0xb:
		return JPV0
	case 0xc:
		return RND
	case 0xd:
		return DRW
	case 0xe:
		switch w.Byte() {
		case 0x9e:
			return SKP
		case 0xa1:
			return SKNP
		}
	case 0xf:
		switch w.Byte() {
		case 0x07:
			return LDVDT
		case 0x0a:
			return LDK
		case 0x15:
			return LDDT
		case 0x18:
			return LDST
		case 0x1e:
			return ADDI
		case 0x29:
			return LDF
		case 0x33:
			return LDBCD
		case 0x55:
			return STORE
		case 0x65:
			return LOAD
		}
	}
	return Invalid
}
