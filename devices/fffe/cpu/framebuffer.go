package cpu

import (
	"github.com/hexaflex/chip8/arch"
	"github.com/hexaflex/chip8/devices"
)

// Framebuffer holds the monochrome display contents, row by row.
type Framebuffer [arch.DisplayWidth * arch.DisplayHeight]bool

var _ devices.Screen = &Framebuffer{}

// Width returns the framebuffer width in pixels.
func (fb *Framebuffer) Width() int { return arch.DisplayWidth }

// Height returns the framebuffer height in pixels.
func (fb *Framebuffer) Height() int { return arch.DisplayHeight }

// Pixel returns true if the pixel at (x, y) is lit.
// Coordinates outside the framebuffer yield false.
func (fb *Framebuffer) Pixel(x, y int) bool {
	if !inside(x, y) {
		return false
	}
	return fb[y*arch.DisplayWidth+x]
}

func (fb *Framebuffer) clear() {
	*fb = Framebuffer{}
}

// toggle flips the pixel at (x, y). Returns false without changing anything
// if the coordinate falls outside the framebuffer.
func (fb *Framebuffer) toggle(x, y int) bool {
	if !inside(x, y) {
		return false
	}
	fb[y*arch.DisplayWidth+x] = !fb[y*arch.DisplayWidth+x]
	return true
}

func inside(x, y int) bool {
	return x >= 0 && x < arch.DisplayWidth && y >= 0 && y < arch.DisplayHeight
}
