package devices

import "github.com/hexaflex/chip8/arch"

// Screen is a read-only view of a monochrome framebuffer.
type Screen interface {
	// Width and Height yield the framebuffer dimensions in pixels.
	Width() int
	Height() int

	// Pixel returns true if the pixel at (x, y) is lit.
	// Coordinates outside the framebuffer yield false.
	Pixel(x, y int) bool
}

// Display is a peripheral that presents a Screen to the user.
type Display interface {
	Device

	// Draw presents the current contents of s.
	Draw(s Screen)
}

// Keypad is a peripheral that reports which keypad symbols are held down.
type Keypad interface {
	Device

	// Keys returns the set of currently pressed key symbols.
	Keys() arch.KeySet
}
