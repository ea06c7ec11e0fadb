package main

import (
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/arch"
	"github.com/hexaflex/chip8/devices"
	"github.com/hexaflex/chip8/devices/fffe/clock"
	"github.com/hexaflex/chip8/devices/fffe/cpu"
)

// testKeypad reports a fixed key set and counts how often it was read.
type testKeypad struct {
	keys  arch.KeySet
	reads int
}

func (k *testKeypad) ID() devices.ID    { return devices.NewID(0xfffe, 0x00ff) }
func (k *testKeypad) Startup() error    { return nil }
func (k *testKeypad) Shutdown() error   { return nil }
func (k *testKeypad) Keys() arch.KeySet { k.reads++; return k.keys }

func program(words ...uint16) []byte {
	out := make([]byte, 0, len(words)*2)
	for _, w := range words {
		out = append(out, byte(w>>8), byte(w))
	}
	return out
}

func TestControllerNotLoaded(t *testing.T) {
	c := NewCPUController(&testKeypad{})
	c.Start()

	if c.Running() {
		t.Fatal("running without a program")
	}

	if err := c.Step(); err != nil {
		t.Fatal(err)
	}
}

func TestControllerStep(t *testing.T) {
	keypad := &testKeypad{keys: arch.Keys(0x5)}
	c := NewCPUController(keypad)

	// LD V0, 05; SKP V0; JP 0x200; LD V1, 01; JP 0x208
	err := c.Load(program(0x6005, 0xe09e, 0x1200, 0x6101, 0x1208), 0)
	if err != nil {
		t.Fatal(err)
	}

	if c.Running() {
		t.Fatal("running after load")
	}

	if err := c.Step(); err != nil || c.CPU().PC() != arch.ProgramAddress {
		t.Fatalf("stopped controller executed: pc=%04x err=%v", c.CPU().PC(), err)
	}

	c.Start()
	if err := c.Step(); err != nil {
		t.Fatal(err)
	}

	if keypad.reads == 0 {
		t.Fatal("keypad was not read")
	}

	if have := c.CPU().V(0); have != 5 {
		t.Fatalf("want V0=5, have %d", have)
	}

	c.ToggleRun()
	if c.Running() || c.Frequency() != 0 {
		t.Fatal("controller still running after toggle")
	}
}

func TestControllerStopsOnError(t *testing.T) {
	c := NewCPUController(&testKeypad{})

	if err := c.Load(program(0x0123), 0); err != nil {
		t.Fatal(err)
	}

	c.Start()
	err := c.Step()

	if !errors.Is(err, cpu.ErrInvalidOpcode) {
		t.Fatalf("want invalid opcode error, have %v", err)
	}

	if c.Running() {
		t.Fatal("controller still running after a fatal error")
	}
}

func TestControllerLoadRejectsLargeImage(t *testing.T) {
	c := NewCPUController(&testKeypad{})

	err := c.Load(make([]byte, arch.MaxImageSize+1), 0)
	if !errors.Is(err, cpu.ErrImageTooLarge) {
		t.Fatalf("want image too large error, have %v", err)
	}

	if c.CPU() != nil {
		t.Fatal("cpu replaced by a failed load")
	}
}

func TestControllerStartupOrder(t *testing.T) {
	c := NewCPUController(&testKeypad{})

	if err := c.Startup(); err != nil {
		t.Fatal(err)
	}

	if len(c.devices) != 2 {
		t.Fatalf("want clock and keypad connected, have %d devices", len(c.devices))
	}

	if err := c.Shutdown(); err != nil {
		t.Fatal(err)
	}
}

func TestControllerUntil(t *testing.T) {
	period := time.Second / clock.Rate
	c := NewCPUController(&testKeypad{})

	if have := c.Until(); have != period {
		t.Fatalf("stopped: want %v, have %v", period, have)
	}

	// JP 0x200
	if err := c.Load(program(0x1200), 0); err != nil {
		t.Fatal(err)
	}

	c.Start()
	if err := c.Step(); err != nil {
		t.Fatal(err)
	}

	if have := c.Until(); have < 0 || have > period {
		t.Fatalf("running: want [0, %v], have %v", period, have)
	}
}
