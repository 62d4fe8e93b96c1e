package hal

import (
	"errors"

	"fractal/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window that displays the framebuffer and feeds
// input to the app. It blocks until the window closes or the app step
// returns ErrQuit.
func RunWindow(width, height int, newApp func(HAL) func() error) error {
	h := New(width, height).(*hostHAL)
	step := newApp(h)

	g := &hostGame{h: h, step: step}
	ebiten.SetWindowTitle("Fractal (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h       *hostHAL
	fbImg   *ebiten.Image
	scratch []byte
	rgba    []byte
	step    func() error

	outsideW int
	outsideH int
}

func (g *hostGame) Update() error {
	g.h.in.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrQuit) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
		g.scratch = make([]byte, len(fb.buf))
		g.rgba = make([]byte, len(fb.buf))
	}

	fb.snapshotARGB(g.scratch)
	argbToRGBA(g.scratch, g.rgba)

	g.fbImg.WritePixels(g.rgba)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.outsideW != 0 && (outsideWidth != g.outsideW || outsideHeight != g.outsideH) {
		g.h.in.noteResize()
	}
	g.outsideW, g.outsideH = outsideWidth, outsideHeight
	return g.h.fb.width, g.h.fb.height
}
