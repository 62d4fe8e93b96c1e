// Package viewer drives the interactive Newton-basin view: it owns the
// roots, viewport and iteration count, turns input events into state
// mutations, and re-renders through the kernel when the state is dirty.
package viewer

import (
	"fmt"
	"math"

	"fractal/hal"
	"fractal/plane"
)

const (
	// Width and Height are the pixel dimensions of the render target.
	Width  = 1024
	Height = 768

	markerSize = 10
	hitRadius  = 5.0
	panStep    = 0.01
)

type mode uint8

const (
	modeIdle mode = iota
	modeDragRoot
	modePan
)

type markerPos struct {
	x, y float64
}

// State holds everything the kernel input depends on, plus the interaction
// mode. The dirty flag is set by every mutation and cleared only after a
// render.
type State struct {
	roots [3]complex128
	vp    plane.Viewport
	iter  int
	dirty bool

	m       mode
	dragIdx int

	// markers are the projected pixel centers of the roots, recomputed
	// only after a render so hit testing matches what is on screen.
	markers [3]markerPos

	log hal.Logger
}

func newState(pixW, pixH int, log hal.Logger) *State {
	s := &State{log: log}
	s.vp.PixW = pixW
	s.vp.PixH = pixH
	s.reset()
	return s
}

// reset restores the canonical session: roots -2+1i, 2+2i, -1-2i over the
// window left=-5, top=4, width 10, at 20 iterations.
func (s *State) reset() {
	s.roots = [3]complex128{complex(-2, 1), complex(2, 2), complex(-1, -2)}
	s.vp = plane.New(-5, 4, 10, s.vp.PixW, s.vp.PixH)
	s.iter = 20
	s.m = modeIdle
	s.dirty = true
}

// HandleEvent applies one input event. It returns hal.ErrQuit when the
// event asks the frame loop to stop.
func (s *State) HandleEvent(ev hal.Event) error {
	switch ev.Kind {
	case hal.EventQuit:
		return hal.ErrQuit

	case hal.EventResize:
		s.dirty = true

	case hal.EventMouseDown:
		// The first pressed button wins until it is released.
		if s.m != modeIdle {
			break
		}
		switch ev.Button {
		case hal.MouseLeft:
			if i, ok := s.hitMarker(float64(ev.X), float64(ev.Y)); ok {
				s.m = modeDragRoot
				s.dragIdx = i
				s.dirty = true
			}
		case hal.MouseRight:
			s.m = modePan
		}

	case hal.EventMouseUp:
		switch ev.Button {
		case hal.MouseLeft:
			if s.m == modeDragRoot {
				s.m = modeIdle
			}
			s.logRoots()
		case hal.MouseRight:
			if s.m == modePan {
				s.m = modeIdle
			}
		}

	case hal.EventMouseMove:
		switch s.m {
		case modeDragRoot:
			x := s.vp.CoordX(float64(ev.X))
			y := s.vp.CoordY(float64(ev.Y))
			s.roots[s.dragIdx] = complex(x, y)
			s.dirty = true
		case modePan:
			s.vp.Pan(float64(ev.RelX), float64(ev.RelY))
			s.dirty = true
		}

	case hal.EventWheel:
		if ev.WheelY != 0 {
			s.vp.Zoom(ev.WheelY)
			s.dirty = true
		}

	case hal.EventKeyDown:
		switch ev.Key {
		case hal.KeyR:
			s.reset()
			s.logf("Reset")
		case hal.KeyUp:
			s.iter++
			s.dirty = true
			s.logf("Iterations: %d", s.iter)
		case hal.KeyDown:
			if s.iter > 0 {
				s.iter--
				s.dirty = true
				s.logf("Iterations: %d", s.iter)
			}
		}
	}
	return nil
}

// ApplyHeld applies the continuously sampled keys for one frame. Opposing
// pairs cancel. Vertical key pans step by UnitW, matching the horizontal
// step size rather than the window height.
func (s *State) ApplyHeld(k hal.Held) {
	switch {
	case k.A && k.D:
	case k.A:
		s.vp.Left -= s.vp.UnitW * panStep
		s.dirty = true
	case k.D:
		s.vp.Left += s.vp.UnitW * panStep
		s.dirty = true
	}

	switch {
	case k.W && k.S:
	case k.S:
		s.vp.Top -= s.vp.UnitW * panStep
		s.dirty = true
	case k.W:
		s.vp.Top += s.vp.UnitW * panStep
		s.dirty = true
	}

	switch {
	case k.Shift && k.Space:
	case k.Shift:
		s.vp.ZoomInStep()
		s.dirty = true
	case k.Space:
		s.vp.ZoomOutStep()
		s.dirty = true
	}
}

func (s *State) hitMarker(ex, ey float64) (int, bool) {
	for i, m := range s.markers {
		if math.Abs(m.x-ex) < hitRadius && math.Abs(m.y-ey) < hitRadius {
			return i, true
		}
	}
	return 0, false
}

func (s *State) updateMarkers() {
	for i, r := range s.roots {
		s.markers[i] = markerPos{
			x: s.vp.PixX(real(r)),
			y: s.vp.PixY(imag(r)),
		}
	}
}

func (s *State) logRoots() {
	s.logf("a: (%g,%g)", real(s.roots[0]), imag(s.roots[0]))
	s.logf("b: (%g,%g)", real(s.roots[1]), imag(s.roots[1]))
	s.logf("c: (%g,%g)", real(s.roots[2]), imag(s.roots[2]))
}

func (s *State) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
