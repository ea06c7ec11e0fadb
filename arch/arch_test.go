package arch

import "testing"

func TestWordFields(t *testing.T) {
	w := Word(0xd4a7)

	if have := w.Family(); have != 0xd {
		t.Fatalf("Family: want 0xd, have %x", have)
	}
	if have := w.Address(); have != 0x4a7 {
		t.Fatalf("Address: want 0x4a7, have %x", have)
	}
	if have := w.Byte(); have != 0xa7 {
		t.Fatalf("Byte: want 0xa7, have %x", have)
	}
	if have := w.X(); have != 0x4 {
		t.Fatalf("X: want 0x4, have %x", have)
	}
	if have := w.Y(); have != 0xa {
		t.Fatalf("Y: want 0xa, have %x", have)
	}
	if have := w.N(); have != 0x7 {
		t.Fatalf("N: want 0x7, have %x", have)
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		word Word
		want Opcode
	}{
		{0x00e0, CLS},
		{0x00ee, RET},
		{0x0123, Invalid},
		{0x1abc, JP},
		{0x2abc, CALL},
		{0x3a05, SEB},
		{0x4a05, SNEB},
		{0x5ab0, SE},
		{0x5ab1, Invalid},
		{0x6a05, LDB},
		{0x7a05, ADDB},
		{0x8ab0, MOV},
		{0x8ab1, OR},
		{0x8ab2, AND},
		{0x8ab3, XOR},
		{0x8ab4, ADD},
		{0x8ab5, SUB},
		{0x8ab6, SHR},
		{0x8ab7, SUBN},
		{0x8abe, SHL},
		{0x8ab8, Invalid},
		{0x9ab0, SNE},
		{0x9ab4, Invalid},
		{0xa123, LDI},
		{0xb123, JPV0},
		{0xc1ff, RND},
		{0xd125, DRW},
		{0xe19e, SKP},
		{0xe1a1, SKNP},
		{0xe100, Invalid},
		{0xf107, LDVDT},
		{0xf10a, LDK},
		{0xf115, LDDT},
		{0xf118, LDST},
		{0xf11e, ADDI},
		{0xf129, LDF},
		{0xf133, LDBCD},
		{0xf155, STORE},
		{0xf165, LOAD},
		{0xf1ff, Invalid},
	}

	for _, tt := range tests {
		if have := Lookup(tt.word); have != tt.want {
			t.Errorf("Lookup(%04x): want %v, have %v", uint16(tt.word), tt.want, have)
		}
	}
}

func TestName(t *testing.T) {
	for op := Opcode(1); op < OpcodeCount; op++ {
		if name, ok := Name(op); !ok || name == "" {
			t.Errorf("opcode %d has no name", op)
		}
	}

	if _, ok := Name(Invalid); ok {
		t.Fatal("Invalid should not have a name")
	}
}

func TestKeySymbol(t *testing.T) {
	for i := 0; i < KeyCount; i++ {
		name := KeyNames[i : i+1]
		sym, ok := KeySymbol(name)
		if !ok || int(sym) != i {
			t.Fatalf("KeySymbol(%q): want %x, have %x (%v)", name, i, sym, ok)
		}
	}

	if sym, ok := KeySymbol("c"); !ok || sym != 0xc {
		t.Fatalf("KeySymbol(\"c\"): want c, have %x (%v)", sym, ok)
	}

	for _, name := range []string{"", "G", "10", " ", "z"} {
		if _, ok := KeySymbol(name); ok {
			t.Fatalf("KeySymbol(%q) should not be recognized", name)
		}
	}
}

func TestKeySet(t *testing.T) {
	var k KeySet
	if !k.Empty() {
		t.Fatal("zero KeySet should be empty")
	}

	if _, ok := k.Lowest(); ok {
		t.Fatal("Lowest of an empty set should fail")
	}

	k = Keys(0xe, 0x3, 0x13)
	if !k.Pressed(0x3) || !k.Pressed(0xe) {
		t.Fatalf("want 3 and E pressed, have %s", k)
	}
	if k.Pressed(0x4) {
		t.Fatal("4 should not be pressed")
	}
	if low, ok := k.Lowest(); !ok || low != 0x3 {
		t.Fatalf("Lowest: want 3, have %x", low)
	}
	if have := k.String(); have != "3E" {
		t.Fatalf("String: want 3E, have %s", have)
	}
}

func TestRegisterName(t *testing.T) {
	if have := RegisterName(0xa); have != "VA" {
		t.Fatalf("want VA, have %s", have)
	}
	if have := RegisterName(0); have != "V0" {
		t.Fatalf("want V0, have %s", have)
	}
	if RegisterName(16) != "" {
		t.Fatal("want empty name for index 16")
	}
}
