package main

import (
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/devices/fffe/clock"
	"github.com/hexaflex/chip8/devices/fffe/term"
)

// TermApp runs a program in the controlling terminal.
type TermApp struct {
	config *Config
	term   *term.Device
	cpu    *CPUController
}

// NewTermApp creates a new terminal application using the given configuration.
func NewTermApp(config *Config) *TermApp {
	var a TermApp
	a.config = config
	a.term = term.New(os.Stdin, os.Stdout)
	a.cpu = NewCPUController(a.term)
	return &a
}

// Run runs the program until it fails or the user quits with ESC or Ctrl-C.
func (a *TermApp) Run() error {
	log.Println(Version())

	image, err := os.ReadFile(a.config.Image)
	if err != nil {
		return errors.Wrapf(err, "failed to read program")
	}

	if err := a.cpu.Load(image, a.config.Seed); err != nil {
		return err
	}

	if err := a.cpu.Startup(); err != nil {
		a.cpu.Shutdown()
		return err
	}

	err = a.loop()

	if serr := a.cpu.Shutdown(); serr != nil && err == nil {
		err = serr
	}
	return err
}

// loop executes and renders at the cycle rate.
func (a *TermApp) loop() error {
	ticker := time.NewTicker(time.Second / clock.Rate)
	defer ticker.Stop()

	a.cpu.Start()

	for {
		select {
		case <-a.term.Quit():
			return nil
		case <-ticker.C:
			err := a.cpu.Step()
			a.term.Draw(a.cpu.CPU().Screen())
			if err != nil {
				return err
			}
		}
	}
}
