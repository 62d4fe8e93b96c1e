package viewer

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"fractal/hal"
)

var (
	hudFont  = &proggy.TinySZ8pt7b
	hudColor = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

// drawHUD writes the iteration readout into the bottom-left corner of the
// framebuffer. It runs after the kernel, so it survives until the next
// render.
func (a *App) drawHUD() {
	d := &fbDisplayer{fb: a.fb}
	label := fmt.Sprintf("iter: %d", a.st.iter)
	tinyfont.WriteLine(d, hudFont, 6, int16(a.fb.Height()-6), label, hudColor)
}

// fbDisplayer adapts the ARGB8888 framebuffer to the displayer interface
// tinyfont draws on.
type fbDisplayer struct {
	fb hal.Framebuffer
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

func (d *fbDisplayer) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}
	buf := d.fb.Buffer()
	off := iy*d.fb.StrideBytes() + ix*4
	buf[off] = c.B
	buf[off+1] = c.G
	buf[off+2] = c.R
}

func (d *fbDisplayer) Display() error { return nil }
