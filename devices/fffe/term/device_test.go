package term

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/hexaflex/chip8/arch"
)

// testScreen is a 4x4 screen with the given pixels lit.
type testScreen map[[2]int]bool

func (s testScreen) Width() int          { return 4 }
func (s testScreen) Height() int         { return 4 }
func (s testScreen) Pixel(x, y int) bool { return s[[2]int{x, y}] }

func TestRender(t *testing.T) {
	s := testScreen{
		{0, 0}: true, {0, 1}: true, // full block
		{1, 0}: true, // upper half
		{2, 1}: true, // lower half
		{3, 3}: true,
	}

	var sb strings.Builder
	Render(&sb, s)

	want := "█▀▄ \r\n   ▄\r\n"
	if have := sb.String(); have != want {
		t.Fatalf("render mismatch:\nwant: %q\nhave: %q", want, have)
	}
}

func TestDrawSkipsUnchangedFrames(t *testing.T) {
	var out bytes.Buffer
	d := New(os.Stdin, &out)

	s := testScreen{{1, 1}: true}
	d.Draw(s)
	n := out.Len()
	if n == 0 {
		t.Fatal("nothing drawn")
	}

	d.Draw(s)
	if out.Len() != n {
		t.Fatal("unchanged frame drawn twice")
	}

	d.Draw(testScreen{})
	if out.Len() == n {
		t.Fatal("changed frame not drawn")
	}
}

func TestKeysAreHeld(t *testing.T) {
	now := time.Unix(1000, 0)

	d := New(os.Stdin, &bytes.Buffer{})
	d.now = func() time.Time { return now }

	d.press('a')
	d.press('7')
	d.press('x')

	if have := d.Keys(); have != arch.Keys(0xa, 0x7) {
		t.Fatalf("want keys 7A, have %s", have)
	}

	now = now.Add(HoldTime / 2)
	d.press('1')

	now = now.Add(HoldTime/2 + time.Millisecond)
	if have := d.Keys(); have != arch.Keys(0x1) {
		t.Fatalf("want key 1 only, have %s", have)
	}

	now = now.Add(HoldTime)
	if have := d.Keys(); !have.Empty() {
		t.Fatalf("want no keys, have %s", have)
	}
}

func TestQuit(t *testing.T) {
	d := New(os.Stdin, &bytes.Buffer{})

	select {
	case <-d.Quit():
		t.Fatal("quit before any input")
	default:
	}

	d.press(0x03)
	d.press(0x1b)

	select {
	case <-d.Quit():
	default:
		t.Fatal("Ctrl-C did not signal quit")
	}
}

func TestReadStopsAfterShutdown(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	d := New(r, &bytes.Buffer{})
	d.reading.Add(1)
	go d.read()

	w.Write([]byte("b"))

	deadline := time.Now().Add(2 * time.Second)
	for !d.Keys().Pressed(0xb) {
		if time.Now().After(deadline) {
			t.Fatal("typed key never registered")
		}
		time.Sleep(time.Millisecond)
	}

	if err := d.Shutdown(); err != nil {
		t.Fatal(err)
	}

	w.Write([]byte("c"))
	w.Close()
	d.reading.Wait()

	if d.Keys().Pressed(0xc) {
		t.Fatal("key registered after shutdown")
	}
}
