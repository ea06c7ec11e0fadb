package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/devices/fffe/display"
)

// Config defines program configuration.
type Config struct {
	Image       string     // Path to the program image to load.
	ScaleFactor int        // Amount by which each pixel is scaled.
	Fullscreen  bool       // Run in fullscreen?
	Terminal    bool       // Run in the terminal instead of a window?
	Seed        int64      // Random number seed. Zero seeds from the clock.
	Foreground  [4]float32 // Color of lit pixels.
	Background  [4]float32 // Color of unlit pixels.
}

// parseArgs parses command line arguments as applicable.
//
// If an error occurred, this exits the program with an appropriate message.
// When version information is requested, it is printed to stdout and the program ends cleanly.
func parseArgs() *Config {
	var c Config
	c.ScaleFactor = 12
	c.Foreground = display.DefaultForeground
	c.Background = display.DefaultBackground

	flag.Usage = func() {
		fmt.Printf("%s [options] <program file>\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.IntVar(&c.ScaleFactor, "scale-factor", c.ScaleFactor, "Pixel scale factor for the display.")
	flag.BoolVar(&c.Fullscreen, "fullscreen", c.Fullscreen, "Run the display in fullscreen or windowed mode.")
	flag.BoolVar(&c.Terminal, "term", c.Terminal, "Run in the terminal instead of opening a window.")
	flag.Var(colorValue{&c.Foreground}, "foreground", "Color of lit pixels as RRGGBB.")
	flag.Var(colorValue{&c.Background}, "background", "Color of unlit pixels as RRGGBB.")
	flag.Int64Var(&c.Seed, "seed", c.Seed, "Seed for the random number generator. 0 picks one from the clock.")

	version := flag.Bool("version", false, "Display version information.")
	flag.Parse()

	if *version {
		fmt.Println(Version())
		os.Exit(0)
	}

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	if c.ScaleFactor < 1 {
		c.ScaleFactor = 1
	}

	c.Image = flag.Arg(0)
	return &c
}

// colorValue is a flag.Value holding an RRGGBB color.
type colorValue struct {
	c *[4]float32
}

func (v colorValue) String() string {
	if v.c == nil {
		return ""
	}
	return fmt.Sprintf("%02x%02x%02x", int(v.c[0]*255+0.5), int(v.c[1]*255+0.5), int(v.c[2]*255+0.5))
}

func (v colorValue) Set(s string) error {
	c, err := parseColor(s)
	if err != nil {
		return err
	}
	*v.c = c
	return nil
}

// parseColor parses an opaque RRGGBB color, with an optional leading '#'.
func parseColor(s string) ([4]float32, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}

	if len(s) != 6 {
		return [4]float32{}, errors.Errorf("invalid color %q; expected RRGGBB", s)
	}

	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return [4]float32{}, errors.Wrapf(err, "invalid color %q", s)
	}

	return [4]float32{
		float32(n>>16&0xff) / 255,
		float32(n>>8&0xff) / 255,
		float32(n&0xff) / 255,
		1,
	}, nil
}
