package main

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/go-gl/gl/v4.2-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/arch"
	"github.com/hexaflex/chip8/devices/fffe/clock"
	"github.com/hexaflex/chip8/devices/fffe/display"
	"github.com/hexaflex/chip8/devices/fffe/keypad"
)

// App defines application context.
type App struct {
	config       *Config         // Application configuration.
	window       *glfw.Window    // OpenGL/GLFW context.
	cpu          *CPUController  // CPU with program to be run.
	display      *display.Device // Window display peripheral.
	keypad       *keypad.Device  // Window keyboard peripheral.
	titleUpdated time.Time       // Value used to periodically update window title.
	lastRendered time.Time       // Last time a frame was rendered.
}

// NewApp creates a new application instance using the given configuration.
func NewApp(config *Config) *App {
	var a App
	a.config = config
	a.display = display.New()
	a.keypad = keypad.New()
	a.cpu = NewCPUController(a.keypad, a.display)
	return &a
}

// Run runs the application and does not return until it is finished
// or an error occured during initialization.
func (a *App) Run() error {
	if err := a.initGL(); err != nil {
		return err
	}

	defer a.dispose()

	log.Println(Version())

	a.keypad.Attach(a.window)
	a.display.SetColors(a.config.Foreground, a.config.Background)
	if err := a.cpu.Startup(); err != nil {
		return err
	}

	printHelp()

	if err := a.loadProgram(); err != nil {
		return err
	}

	for !a.window.ShouldClose() {
		a.mainLoop()
	}

	return nil
}

// mainLoop performs all main loop operations.
func (a *App) mainLoop() {
	glfw.PollEvents()
	a.keypad.Update()

	if err := a.cpu.Step(); err != nil {
		log.Println(err)
	}

	// Render display contents at the cycle rate.
	if time.Since(a.lastRendered) >= time.Second/clock.Rate {
		a.lastRendered = time.Now()
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if cpu := a.cpu.CPU(); cpu != nil {
			a.display.Draw(cpu.Screen())
		}

		a.window.SwapBuffers()
	}

	// Periodically update the window title with the cycle frequency and sound state.
	if time.Since(a.titleUpdated) >= time.Second/4 {
		a.titleUpdated = time.Now()
		a.window.SetTitle(a.title())
	}

	// The loop has nothing to do until the next cycle or frame.
	time.Sleep(a.cpu.Until())
}

// title returns the window title for the current machine state.
func (a *App) title() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s - %s", AppName, AppVersion, prettyFrequency(a.cpu.Frequency()))

	cpu := a.cpu.CPU()
	if cpu == nil {
		return sb.String()
	}

	if cpu.SoundTimer() > 0 {
		sb.WriteString(" ♪")
	}

	if cpu.Halted() != nil {
		sb.WriteString(" - halted")
	} else if !a.cpu.Running() {
		sb.WriteString(" - paused")
	}

	return sb.String()
}

// dispose ensures openGL/GLFW and other resources are cleaned up.
func (a *App) dispose() {
	if err := a.cpu.Shutdown(); err != nil {
		log.Println(err)
	}

	if a.window != nil {
		a.window.Destroy()
		a.window = nil
	}

	glfw.Terminate()
}

func (a *App) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action != glfw.Press {
		return
	}

	var err error

	switch key {
	case glfw.KeyEscape:
		a.window.SetShouldClose(true)
	case glfw.KeyF1:
		printHelp()
	case glfw.KeyF5:
		err = a.loadProgram()
	case glfw.KeyF6:
		a.cpu.ToggleRun()
	}

	if err != nil {
		log.Println(err)
	}
}

// initGL initializes GLFW and openGL.
func (a *App) initGL() error {
	err := glfw.Init()
	if err != nil {
		return errors.Wrapf(err, "glfw.Init failed")
	}

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.True)
	glfw.WindowHint(glfw.Focused, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	var monitor *glfw.Monitor

	width := arch.DisplayWidth * a.config.ScaleFactor
	height := arch.DisplayHeight * a.config.ScaleFactor

	if a.config.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()

		width = mode.Width
		height = mode.Height

		glfw.WindowHint(glfw.Decorated, glfw.False)
	}

	a.window, err = glfw.CreateWindow(width, height, AppName, monitor, nil)
	if err != nil {
		glfw.Terminate()
		return errors.Wrapf(err, "glfw.CreateWindow failed")
	}

	a.window.MakeContextCurrent()
	a.window.SetKeyCallback(a.keyCallback)

	glfw.SwapInterval(0)

	err = gl.Init()
	if err != nil {
		a.window.Destroy()
		a.window = nil
		glfw.Terminate()
		return errors.Wrapf(err, "gl.Init failed")
	}

	gl.ClearColor(0, 0, 0, 1.0)
	return nil
}

// loadProgram loads the program from disk, resets the cpu and starts execution.
func (a *App) loadProgram() error {
	log.Println("loading", a.config.Image)

	image, err := os.ReadFile(a.config.Image)
	if err != nil {
		return errors.Wrapf(err, "failed to read program")
	}

	if err := a.cpu.Load(image, a.config.Seed); err != nil {
		return err
	}

	a.cpu.Start()
	return nil
}

// printHelp writes a short overview of supported shortcut keys to stdout.
func printHelp() {
	var sb strings.Builder
	sb.WriteString("shortcut keys:\n")
	sb.WriteString(" ESC      Exit the program.\n")
	sb.WriteString(" F1       Display this help.\n")
	sb.WriteString(" F5       (re)load the program from disk and reset the cpu.\n")
	sb.WriteString(" F6       Pause/Resume program execution.\n")
	sb.WriteString(" 0-9 A-F  Keypad keys.")
	log.Println(sb.String())
}

// prettyFrequency returns a human-readable version of the given clock frequency in herz.
func prettyFrequency(v float64) string {
	switch {
	case v >= 1e3:
		return fmt.Sprintf("%.2f KHz", v/1e3)
	default:
		return fmt.Sprintf("%.2f Hz", v)
	}
}
