package main

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
)

// SpriteWidth is the fixed width of a sprite: one byte per row.
const SpriteWidth = 8

// MaxSpriteHeight is the largest row count a draw instruction accepts.
const MaxSpriteHeight = 15

func main() {
	config := parseArgs()
	img := loadImage(config)

	sprites := translate(img, config.Height)

	out, close := makeWriter(config)
	defer close()

	var err error
	if config.Format == FormatRaw {
		err = writeRaw(out, sprites)
	} else {
		err = writeHex(out, sprites)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// translate cuts img into SpriteWidth x height tiles, left to right and
// top to bottom. Each tile yields one byte per row with the leftmost pixel
// in the most significant bit. Pixels with a red component of at least
// half intensity are lit. Partial tiles at the right and bottom edges are
// ignored.
func translate(img image.Image, height int) [][]byte {
	r := img.Bounds()
	w := r.Dx() / SpriteWidth
	h := r.Dy() / height

	sprites := make([][]byte, 0, w*h)

	for y := 0; y < h; y++ {
		sy := r.Min.Y + y*height

		for x := 0; x < w; x++ {
			sx := r.Min.X + x*SpriteWidth
			sprite := make([]byte, height)

			for py := 0; py < height; py++ {
				for px := 0; px < SpriteWidth; px++ {
					r, _, _, _ := img.At(sx+px, sy+py).RGBA()
					if r >= 0x8000 {
						sprite[py] |= 0x80 >> px
					}
				}
			}

			sprites = append(sprites, sprite)
		}
	}

	return sprites
}

// writeHex writes one line of comma separated hex bytes per sprite.
func writeHex(w io.Writer, sprites [][]byte) error {
	for i, sprite := range sprites {
		if _, err := fmt.Fprintf(w, "; sprite %d\n", i); err != nil {
			return err
		}

		for j, b := range sprite {
			sep := ", "
			if j == len(sprite)-1 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(w, "0x%02x%s", b, sep); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeRaw writes all sprites back to back as plain bytes, ready to be
// appended to a program image.
func writeRaw(w io.Writer, sprites [][]byte) error {
	for _, sprite := range sprites {
		if _, err := w.Write(sprite); err != nil {
			return err
		}
	}
	return nil
}

// loadImage loads an image from the input file.
func loadImage(c *Config) image.Image {
	fd, err := os.Open(c.Input)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	defer fd.Close()

	img, _, err := image.Decode(fd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	r := img.Bounds()
	if r.Dx() < SpriteWidth || r.Dy() < c.Height {
		fmt.Fprintf(os.Stderr, "source image is too small; expected at least %d x %d pixels\n", SpriteWidth, c.Height)
		os.Exit(1)
	}

	return img
}

// makeWriter creates an output writer and a cleanup function for it.
func makeWriter(c *Config) (io.Writer, func()) {
	if c.Output == "" {
		return os.Stdout, func() {}
	}

	dir, _ := filepath.Split(c.Output)
	if dir != "" {
		if err := os.MkdirAll(dir, 0744); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	fd, err := os.Create(c.Output)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return fd, func() { fd.Close() }
}
