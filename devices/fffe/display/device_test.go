package display

import (
	"testing"

	"github.com/hexaflex/chip8/arch"
)

// litScreen is a full size screen with a set of lit pixels.
type litScreen map[int]bool

func (s litScreen) Width() int          { return arch.DisplayWidth }
func (s litScreen) Height() int         { return arch.DisplayHeight }
func (s litScreen) Pixel(x, y int) bool { return s[y*arch.DisplayWidth+x] }

func TestRasterize(t *testing.T) {
	var dst [arch.DisplayWidth * arch.DisplayHeight]byte

	s := litScreen{0: true, 65: true, len(dst) - 1: true}
	if !rasterize(dst[:], s) {
		t.Fatal("first rasterize reported no change")
	}

	for i, v := range dst {
		want := byte(0)
		if s[i] {
			want = 0xff
		}
		if v != want {
			t.Fatalf("pixel %d: want %02x, have %02x", i, want, v)
		}
	}

	if rasterize(dst[:], s) {
		t.Fatal("unchanged screen reported a change")
	}

	delete(s, 65)
	if !rasterize(dst[:], s) || dst[65] != 0 {
		t.Fatal("cleared pixel not rasterized")
	}
}
