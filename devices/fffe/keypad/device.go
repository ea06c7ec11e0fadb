// Package keypad implements the hex keypad on top of a GLFW window's keyboard.
package keypad

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/arch"
	"github.com/hexaflex/chip8/devices"
)

// keyMap holds the physical key for each key symbol. GLFW key codes
// for digits and letters equal their ASCII values.
var keyMap = func() [arch.KeyCount]glfw.Key {
	var m [arch.KeyCount]glfw.Key
	for i := 0; i < len(arch.KeyNames); i++ {
		name := arch.KeyNames[i : i+1]
		sym, _ := arch.KeySymbol(name)
		m[sym] = glfw.Key(name[0])
	}
	return m
}()

// Device polls the keyboard of a window.
type Device struct {
	window *glfw.Window
	keys   arch.KeySet
}

var _ devices.Keypad = &Device{}

// New creates a new device.
func New() *Device {
	return &Device{}
}

// Attach sets the window to read keyboard state from.
func (d *Device) Attach(w *glfw.Window) {
	d.window = w
}

// ID returns the device id.
func (d *Device) ID() devices.ID {
	return devices.NewID(0xfffe, 0x0003)
}

// Startup initializes device resources.
func (d *Device) Startup() error {
	if d.window == nil {
		return errors.New("no window attached")
	}
	d.keys = 0
	return nil
}

// Shutdown clears up device resources.
func (d *Device) Shutdown() error {
	d.keys = 0
	return nil
}

// Update samples the current key state. Call it once per cycle,
// after glfw.PollEvents.
func (d *Device) Update() {
	if d.window == nil {
		return
	}

	var keys arch.KeySet
	for sym, key := range keyMap {
		if d.window.GetKey(key) == glfw.Press {
			keys = keys.Press(byte(sym))
		}
	}
	d.keys = keys
}

// Keys returns the keys held down at the last Update.
func (d *Device) Keys() arch.KeySet {
	return d.keys
}
