package viewer

import (
	"fractal/hal"
	"fractal/render"
)

const fpsWindowMillis = 5000

// App owns the pixel and work buffers and runs one frame per Step call:
// drain events, sample held keys, render when dirty, present.
type App struct {
	h  hal.HAL
	fb hal.Framebuffer
	st *State
	q  *render.Queue

	work []complex64
	pix  []byte

	frames  int
	fpsMark uint32
}

// New builds an app over the HAL's framebuffer. workers <= 0 sizes the
// render queue to the CPU count.
func New(h hal.HAL, workers int) *App {
	fb := h.Display().Framebuffer()
	w, ht := fb.Width(), fb.Height()
	return &App{
		h:       h,
		fb:      fb,
		st:      newState(w, ht, h.Logger()),
		q:       render.NewQueue(workers, h.Logger()),
		work:    make([]complex64, w*ht),
		pix:     make([]byte, w*ht*4),
		fpsMark: h.Time().Millis(),
	}
}

// Step runs one frame. It returns hal.ErrQuit when the app should stop.
func (a *App) Step() error {
	in := a.h.Input()
	for _, ev := range in.Drain() {
		if err := a.st.HandleEvent(ev); err != nil {
			return err
		}
	}
	a.st.ApplyHeld(in.Held())

	if a.st.dirty {
		a.renderFrame()
		a.st.dirty = false
	}

	a.tickFPS()
	return nil
}

func (a *App) renderFrame() {
	st := a.st
	vp := st.vp

	render.Newton(a.q,
		complex64(st.roots[0]), complex64(st.roots[1]), complex64(st.roots[2]),
		a.work, a.pix,
		vp.PixW, vp.PixH,
		vp.Unit(), vp.Left, vp.Top,
		st.iter)

	copy(a.fb.Buffer(), a.pix)

	st.updateMarkers()
	for _, m := range st.markers {
		a.strokeRect(int(m.x)-markerSize/2, int(m.y)-markerSize/2, markerSize, markerSize)
	}
	a.drawHUD()

	if err := a.fb.Present(); err != nil {
		a.st.logf("present: %v", err)
	}
}

// strokeRect outlines an axis-aligned rectangle in white, clipped to the
// framebuffer.
func (a *App) strokeRect(x, y, w, h int) {
	buf := a.fb.Buffer()
	fbW, fbH := a.fb.Width(), a.fb.Height()
	stride := a.fb.StrideBytes()

	set := func(px, py int) {
		if px < 0 || px >= fbW || py < 0 || py >= fbH {
			return
		}
		off := py*stride + px*4
		buf[off] = render.FillIntensity
		buf[off+1] = render.FillIntensity
		buf[off+2] = render.FillIntensity
	}

	for px := x; px < x+w; px++ {
		set(px, y)
		set(px, y+h-1)
	}
	for py := y; py < y+h; py++ {
		set(x, py)
		set(x+w-1, py)
	}
}

func (a *App) tickFPS() {
	a.frames++
	now := a.h.Time().Millis()
	if now-a.fpsMark >= fpsWindowMillis {
		a.fpsMark = now
		a.st.logf("FPS: %d", a.frames/5)
		a.frames = 0
	}
}
