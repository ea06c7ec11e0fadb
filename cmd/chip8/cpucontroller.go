package main

import (
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/devices"
	"github.com/hexaflex/chip8/devices/fffe/clock"
	"github.com/hexaflex/chip8/devices/fffe/cpu"
)

// CPUController controls the execution of a CPU and its peripherals.
type CPUController struct {
	cpu     *cpu.CPU
	clock   *clock.Device
	keypad  devices.Keypad
	devices devices.Map
	running bool
}

// NewCPUController creates a new CPU controller. Key state is read from
// keypad at every cycle.
func NewCPUController(keypad devices.Keypad, peripherals ...devices.Device) *CPUController {
	c := &CPUController{
		clock:  clock.New(),
		keypad: keypad,
	}

	c.devices.Connect(c.clock)
	c.devices.Connect(keypad)

	for _, dev := range peripherals {
		c.devices.Connect(dev)
	}

	return c
}

// Load replaces the current program with image and stops execution.
// A non-zero seed makes RND deterministic.
func (c *CPUController) Load(image []byte, seed int64) error {
	core, err := cpu.New(image)
	if err != nil {
		return errors.Wrapf(err, "failed to load program")
	}

	if seed != 0 {
		core.Seed(seed)
	}

	c.cpu = core
	c.setRunning(false)
	return nil
}

// CPU returns the current cpu. It is nil until a program is loaded.
func (c *CPUController) CPU() *cpu.CPU {
	return c.cpu
}

// Running returns true if the CPU is currently running.
func (c *CPUController) Running() bool {
	return c.running
}

// Frequency returns the current cycle frequency in herz.
func (c *CPUController) Frequency() float64 {
	if c.running {
		return c.clock.Frequency()
	}
	return 0
}

// ToggleRun starts or stops program execution.
func (c *CPUController) ToggleRun() {
	c.setRunning(!c.running)
}

// Start begins execution of the program.
func (c *CPUController) Start() {
	c.setRunning(c.cpu != nil)
}

// Stop pauses execution of the program.
func (c *CPUController) Stop() {
	c.setRunning(false)
}

// Step performs the execution cycles which are currently due.
// Execution stops at the first error, which is also logged with the
// faulting instruction.
func (c *CPUController) Step() error {
	if !c.running {
		return nil
	}

	for n := c.clock.Due(); n > 0; n-- {
		c.cpu.SetKeys(c.keypad.Keys())

		if err := c.cpu.Step(); err != nil {
			c.setRunning(false)

			var fault *cpu.Error
			if errors.As(err, &fault) {
				log.Printf("halted at %04x: %s", fault.IP, &fault.Instruction)
			}
			return err
		}
	}

	return nil
}

// Until returns how long the host can idle before the next cycle is due.
// A stopped controller reports one cycle period.
func (c *CPUController) Until() time.Duration {
	if !c.running {
		return time.Second / clock.Rate
	}
	return c.clock.Until()
}

// Startup initializes all connected peripherals.
func (c *CPUController) Startup() error {
	return c.devices.Startup()
}

// Shutdown disposes of peripheral resources.
func (c *CPUController) Shutdown() error {
	c.setRunning(false)
	return c.devices.Shutdown()
}

// setRunning determines if the CPU is running or is paused.
func (c *CPUController) setRunning(v bool) {
	c.running = v && c.cpu != nil
	c.clock.Restart()
}
