// Package clock implements the cycle clock which paces program execution.
package clock

import (
	"time"

	"github.com/hexaflex/chip8/devices"
)

// Rate is the number of cycles per second. Timers count down once per
// cycle, so this also defines the timer frequency.
const Rate = 60

// MaxBacklog caps the number of cycles reported as due at once.
// A stalled host catches up this far and drops the rest.
const MaxBacklog = 4

// Device tracks when the next cycle is due.
type Device struct {
	now    func() time.Time // Time source.
	period time.Duration    // Time between cycles.
	start  time.Time        // Time at which counting started.
	next   time.Time        // Time at which the next cycle is due.
	cycles uint64           // Cycles handed out since start.
}

var _ devices.Device = &Device{}

// New creates a clock running at Rate.
func New() *Device {
	return &Device{
		now:    time.Now,
		period: time.Second / Rate,
	}
}

// ID returns the device id.
func (d *Device) ID() devices.ID {
	return devices.NewID(0xfffe, 0x0005)
}

// Startup starts counting from the current time.
func (d *Device) Startup() error {
	d.Restart()
	return nil
}

// Shutdown clears up device resources.
func (d *Device) Shutdown() error {
	return nil
}

// Restart resets the cycle counter. The first cycle is due immediately.
func (d *Device) Restart() {
	d.start = d.now()
	d.next = d.start
	d.cycles = 0
}

// Due returns the number of cycles that elapsed since the previous call,
// at most MaxBacklog.
func (d *Device) Due() int {
	now := d.now()

	var n int
	for !d.next.After(now) {
		d.next = d.next.Add(d.period)
		n++
	}

	if n > MaxBacklog {
		d.next = now.Add(d.period)
		n = MaxBacklog
	}

	d.cycles += uint64(n)
	return n
}

// Until returns the time left before the next cycle is due.
func (d *Device) Until() time.Duration {
	if v := d.next.Sub(d.now()); v > 0 {
		return v
	}
	return 0
}

// Frequency returns the measured cycle frequency in herz.
func (d *Device) Frequency() float64 {
	elapsed := d.now().Sub(d.start).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(d.cycles) / elapsed
}
