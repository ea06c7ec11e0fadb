// Package term implements a display and keypad on a text terminal.
//
// The framebuffer is drawn with half block characters, two pixel rows per
// text line. Typed hex digits act as key presses. Terminals do not report
// key releases, so a typed key counts as held for HoldTime.
package term

import (
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/hexaflex/chip8/arch"
	"github.com/hexaflex/chip8/devices"
)

// HoldTime defines how long a typed key counts as pressed.
const HoldTime = 150 * time.Millisecond

// ANSI control sequences.
const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
)

// Device defines the terminal display and keyboard.
type Device struct {
	in       *os.File
	out      io.Writer
	now      func() time.Time
	state    *term.State
	mu       sync.Mutex
	held     [arch.KeyCount]time.Time
	quit     chan struct{}
	quitOnce sync.Once
	done     chan struct{}
	doneOnce sync.Once
	reading  sync.WaitGroup
	last     string
}

var (
	_ devices.Display = &Device{}
	_ devices.Keypad  = &Device{}
)

// New creates a device reading keys from in and drawing to out.
func New(in *os.File, out io.Writer) *Device {
	return &Device{
		in:   in,
		out:  out,
		now:  time.Now,
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// ID returns the device id.
func (d *Device) ID() devices.ID {
	return devices.NewID(0xfffe, 0x0004)
}

// Startup switches the input terminal to raw mode and starts reading keys.
func (d *Device) Startup() error {
	fd := int(d.in.Fd())
	if !term.IsTerminal(fd) {
		return errors.Errorf("%s is not a terminal", d.in.Name())
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return errors.Wrapf(err, "failed to set raw mode")
	}
	d.state = state

	if w, h, err := term.GetSize(fd); err == nil {
		if w < arch.DisplayWidth || h < arch.DisplayHeight/2 {
			log.Println(d.ID(), "terminal is", w, "x", h, "- the display needs",
				arch.DisplayWidth, "x", arch.DisplayHeight/2)
		}
	}

	io.WriteString(d.out, clearScreen+hideCursor)
	d.reading.Add(1)
	go d.read()
	return nil
}

// Shutdown restores the terminal and stops key input.
func (d *Device) Shutdown() error {
	d.doneOnce.Do(func() { close(d.done) })
	io.WriteString(d.out, showCursor+"\r\n")

	if d.state == nil {
		return nil
	}

	err := term.Restore(int(d.in.Fd()), d.state)
	d.state = nil
	return errors.Wrapf(err, "failed to restore terminal")
}

// Quit is closed once the user types ESC or Ctrl-C.
func (d *Device) Quit() <-chan struct{} {
	return d.quit
}

// Keys returns the keys typed within the last HoldTime.
func (d *Device) Keys() arch.KeySet {
	now := d.now()

	d.mu.Lock()
	defer d.mu.Unlock()

	var keys arch.KeySet
	for sym, until := range d.held {
		if until.After(now) {
			keys = keys.Press(byte(sym))
		}
	}
	return keys
}

// Draw renders s to the output, unless it is unchanged since the last call.
func (d *Device) Draw(s devices.Screen) {
	var sb strings.Builder
	sb.WriteString(cursorHome)
	Render(&sb, s)

	frame := sb.String()
	if frame == d.last {
		return
	}

	d.last = frame
	io.WriteString(d.out, frame)
}

// Render writes s as text, two pixel rows per line.
// Lines end in "\r\n" since raw mode disables output translation.
func Render(sb *strings.Builder, s devices.Screen) {
	for y := 0; y < s.Height(); y += 2 {
		for x := 0; x < s.Width(); x++ {
			top := s.Pixel(x, y)
			bottom := s.Pixel(x, y+1)

			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("\r\n")
	}
}

// read consumes terminal input until it fails or the device is shut down.
// A pending Read can not be interrupted, so after Shutdown the goroutine
// exits once the next input arrives, discarding it.
func (d *Device) read() {
	defer d.reading.Done()
	buf := make([]byte, 16)

	for {
		n, err := d.in.Read(buf)

		select {
		case <-d.done:
			return
		default:
		}

		for _, b := range buf[:n] {
			d.press(b)
		}
		if err != nil {
			return
		}
	}
}

// press handles a single typed byte.
func (d *Device) press(b byte) {
	switch b {
	case 0x1b, 0x03: // ESC, Ctrl-C
		d.quitOnce.Do(func() { close(d.quit) })
		return
	}

	sym, ok := arch.KeySymbol(string(b))
	if !ok {
		return
	}

	d.mu.Lock()
	d.held[sym] = d.now().Add(HoldTime)
	d.mu.Unlock()
}
