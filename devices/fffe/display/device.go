// Package display implements an OpenGL presentation of the 64x32 framebuffer.
package display

import (
	"github.com/go-gl/gl/v4.2-core/gl"
	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/arch"
	"github.com/hexaflex/chip8/devices"
)

// Default colors, RGBA.
var (
	DefaultForeground = [4]float32{0.85, 0.95, 0.85, 1}
	DefaultBackground = [4]float32{0.05, 0.08, 0.05, 1}
)

// Device defines all internal doodads for the display.
type Device struct {
	pixels      [arch.DisplayWidth * arch.DisplayHeight]byte
	foreground  [4]float32
	background  [4]float32
	shader      uint32
	vao         uint32
	vbo         uint32
	tex         uint32
	dirty       bool
	initialized bool
}

var _ devices.Display = &Device{}

// New creates a new device with the default colors.
func New() *Device {
	return &Device{
		foreground: DefaultForeground,
		background: DefaultBackground,
	}
}

// ID returns the device identifier.
func (d *Device) ID() devices.ID {
	return devices.NewID(0xfffe, 0x0002)
}

// SetColors changes the colors used for lit and unlit pixels.
// Takes effect on the next Draw.
func (d *Device) SetColors(fg, bg [4]float32) {
	d.foreground = fg
	d.background = bg
	if d.initialized {
		d.uploadColors()
	}
}

// Startup initializes device resources.
// It requires a current OpenGL context.
func (d *Device) Startup() error {
	var err error

	d.shader, err = compileProgram(vertex, fragment)
	if err != nil {
		return errors.Wrapf(err, "failed to compile shaders")
	}

	gl.UseProgram(d.shader)

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)

	vertAttrib := uint32(gl.GetAttribLocation(d.shader, glStr("vertPos")))
	texCoordAttrib := uint32(gl.GetAttribLocation(d.shader, glStr("vertTexCoord")))

	gl.EnableVertexAttribArray(vertAttrib)
	gl.VertexAttribPointer(vertAttrib, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(0))

	gl.EnableVertexAttribArray(texCoordAttrib)
	gl.VertexAttribPointer(texCoordAttrib, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(3*4))

	d.tex = makeTexture()
	d.uploadColors()

	d.dirty = true
	d.initialized = true
	return nil
}

// Shutdown clears up device resources.
func (d *Device) Shutdown() error {
	if !d.initialized {
		return nil
	}

	d.initialized = false
	gl.DeleteTextures(1, &d.tex)
	gl.DeleteBuffers(1, &d.vbo)
	gl.DeleteVertexArrays(1, &d.vao)
	gl.DeleteProgram(d.shader)
	return nil
}

// Draw renders the contents of s, scaled to the current viewport.
func (d *Device) Draw(s devices.Screen) {
	if !d.initialized {
		return
	}

	if rasterize(d.pixels[:], s) || d.dirty {
		uploadTexture(d.tex, arch.DisplayWidth, arch.DisplayHeight, d.pixels[:])
		d.dirty = false
	}

	gl.UseProgram(d.shader)
	gl.BindVertexArray(d.vao)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, d.tex)

	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

func (d *Device) uploadColors() {
	gl.UseProgram(d.shader)
	gl.Uniform4fv(gl.GetUniformLocation(d.shader, glStr("foreground")), 1, &d.foreground[0])
	gl.Uniform4fv(gl.GetUniformLocation(d.shader, glStr("background")), 1, &d.background[0])
}

// rasterize writes s into dst as one byte per pixel: 0xff when lit, 0 when not.
// Returns true if any byte changed.
func rasterize(dst []byte, s devices.Screen) bool {
	var changed bool

	for y := 0; y < arch.DisplayHeight; y++ {
		row := dst[y*arch.DisplayWidth:]
		for x := 0; x < arch.DisplayWidth; x++ {
			var v byte
			if s.Pixel(x, y) {
				v = 0xff
			}
			if row[x] != v {
				row[x] = v
				changed = true
			}
		}
	}

	return changed
}

var quadVertices = []float32{
	//  X, Y, Z, U, V
	-1.0, -1.0, 0.0, 0.0, 1.0,
	1.0, -1.0, 0.0, 1.0, 1.0,
	-1.0, 1.0, 0.0, 0.0, 0.0,
	1.0, -1.0, 0.0, 1.0, 1.0,
	1.0, 1.0, 0.0, 1.0, 0.0,
	-1.0, 1.0, 0.0, 0.0, 0.0,
}
