// Package plane maps between viewport pixel coordinates and complex-plane
// coordinates and holds the pan/zoom state of the visible window.
package plane

import "math"

// Zoom constants: one wheel tick scales the window by 0.95 and shifts the
// origin toward the wheel direction by 2.5% of the window. The keyboard
// zoom-out step is 1.05, not 1/0.95.
const (
	zoomFactorIn  = 0.95
	zoomFactorOut = 1.05
	focalShift    = 0.025
)

// Viewport is the rectangular region of the complex plane mapped onto the
// pixel grid. Left is the real coordinate of the left edge and Top the
// imaginary coordinate of the top edge; the imaginary axis grows upward on
// screen, so the row index increases downward.
//
// Invariant: UnitH == UnitW * PixH / PixW, so pixels stay square in the
// complex plane.
type Viewport struct {
	Left  float64
	Top   float64
	UnitW float64
	UnitH float64

	PixW int
	PixH int
}

// New returns a viewport over a pixW x pixH pixel grid. UnitH is derived
// from unitW to keep pixels square.
func New(left, top, unitW float64, pixW, pixH int) Viewport {
	v := Viewport{Left: left, Top: top, UnitW: unitW, PixW: pixW, PixH: pixH}
	v.fixAspect()
	return v
}

func (v *Viewport) fixAspect() {
	v.UnitH = v.UnitW * float64(v.PixH) / float64(v.PixW)
}

// Unit is the complex-plane size of one pixel.
func (v Viewport) Unit() float64 {
	return v.UnitW / float64(v.PixW)
}

// PixX projects a real coordinate onto the horizontal pixel axis.
func (v Viewport) PixX(x float64) float64 {
	return (x - v.Left) / v.UnitW * float64(v.PixW)
}

// PixY projects an imaginary coordinate onto the vertical pixel axis.
func (v Viewport) PixY(y float64) float64 {
	return (v.Top - y) / v.UnitH * float64(v.PixH)
}

// CoordX is the inverse of PixX.
func (v Viewport) CoordX(px float64) float64 {
	return px/float64(v.PixW)*v.UnitW + v.Left
}

// CoordY is the inverse of PixY.
func (v Viewport) CoordY(py float64) float64 {
	return v.Top - py/float64(v.PixH)*v.UnitH
}

// Pan moves the window by a pointer motion of (xrel, yrel) pixels: dragging
// the plane right moves the window left, and downward on-screen motion
// decreases Top.
func (v *Viewport) Pan(xrel, yrel float64) {
	v.Left -= xrel * v.UnitW / float64(v.PixW)
	v.Top += yrel * v.UnitH / float64(v.PixH)
}

// Zoom applies k wheel ticks (positive = in). The window scales by 0.95^k
// while the focal shift stays linear in k.
func (v *Viewport) Zoom(k int) {
	v.Top -= v.UnitH * float64(k) * focalShift
	v.Left += v.UnitW * float64(k) * focalShift
	v.UnitW *= math.Pow(zoomFactorIn, float64(k))
	v.fixAspect()
}

// ZoomInStep is one keyboard zoom-in step.
func (v *Viewport) ZoomInStep() {
	v.Top -= v.UnitH * focalShift
	v.Left += v.UnitW * focalShift
	v.UnitW *= zoomFactorIn
	v.fixAspect()
}

// ZoomOutStep is one keyboard zoom-out step.
func (v *Viewport) ZoomOutStep() {
	v.Top += v.UnitH * focalShift
	v.Left -= v.UnitW * focalShift
	v.UnitW *= zoomFactorOut
	v.fixAspect()
}
