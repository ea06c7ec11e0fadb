package arch

// Memory map.
const (
	MemoryCapacity = 0x1000                          // Addressable memory in bytes.
	FontAddress    = 0x050                           // Start of the built-in glyph font.
	GlyphSize      = 5                               // Bytes per font glyph.
	ProgramAddress = 0x200                           // Load address and entry point of the program image.
	MaxImageSize   = MemoryCapacity - ProgramAddress // Largest program image that fits in memory.
)

// Register file and call stack.
const (
	RegisterCount = 16  // Number of general purpose registers V0..VF.
	FlagRegister  = 0xf // VF receives carry, borrow, shift and collision flags.
	StackCapacity = 16  // Maximum call depth.
)

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// Font holds the 4x5 glyphs for the hex digits 0-F, GlyphSize bytes each.
// It is copied to FontAddress when a machine is initialized.
var Font = [16 * GlyphSize]byte{
	0xf0, 0x90, 0x90, 0x90, 0xf0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xf0, 0x10, 0xf0, 0x80, 0xf0, // 2
	0xf0, 0x10, 0xf0, 0x10, 0xf0, // 3
	0x90, 0x90, 0xf0, 0x10, 0x10, // 4
	0xf0, 0x80, 0xf0, 0x10, 0xf0, // 5
	0xf0, 0x80, 0xf0, 0x90, 0xf0, // 6
	0xf0, 0x10, 0x20, 0x40, 0x40, // 7
	0xf0, 0x90, 0xf0, 0x90, 0xf0, // 8
	0xf0, 0x90, 0xf0, 0x10, 0xf0, // 9
	0xf0, 0x90, 0xf0, 0x90, 0x90, // A
	0xe0, 0x90, 0xe0, 0x90, 0xe0, // B
	0xf0, 0x80, 0x80, 0x80, 0xf0, // C
	0xe0, 0x90, 0x90, 0x90, 0xe0, // D
	0xf0, 0x80, 0xf0, 0x80, 0xf0, // E
	0xf0, 0x80, 0xf0, 0x80, 0x80, // F
}
