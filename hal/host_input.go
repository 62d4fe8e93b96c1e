package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostInput struct {
	events []Event

	lastX   int
	lastY   int
	havePos bool

	wheelAcc float64
}

func newHostInput() *hostInput {
	return &hostInput{}
}

func (in *hostInput) Drain() []Event {
	evs := in.events
	in.events = nil
	return evs
}

func (in *hostInput) Held() Held {
	return Held{
		A:     ebiten.IsKeyPressed(ebiten.KeyA),
		D:     ebiten.IsKeyPressed(ebiten.KeyD),
		W:     ebiten.IsKeyPressed(ebiten.KeyW),
		S:     ebiten.IsKeyPressed(ebiten.KeyS),
		Shift: ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight),
		Space: ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

func (in *hostInput) noteResize() {
	in.events = append(in.events, Event{Kind: EventResize})
}

// poll translates ebiten's per-frame input state into discrete events.
// Order within one frame: button down, motion, button up, wheel, key down.
func (in *hostInput) poll() {
	emit := func(ev Event) {
		in.events = append(in.events, ev)
	}

	x, y := ebiten.CursorPosition()
	if !in.havePos {
		in.lastX, in.lastY = x, y
		in.havePos = true
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		emit(Event{Kind: EventMouseDown, Button: MouseLeft, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		emit(Event{Kind: EventMouseDown, Button: MouseRight, X: x, Y: y})
	}

	if x != in.lastX || y != in.lastY {
		emit(Event{Kind: EventMouseMove, X: x, Y: y, RelX: x - in.lastX, RelY: y - in.lastY})
		in.lastX, in.lastY = x, y
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		emit(Event{Kind: EventMouseUp, Button: MouseLeft, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		emit(Event{Kind: EventMouseUp, Button: MouseRight, X: x, Y: y})
	}

	// Trackpads report fractional wheel offsets; accumulate and emit whole
	// ticks so a slow scroll still zooms eventually.
	_, wy := ebiten.Wheel()
	in.wheelAcc += wy
	if ticks := int(in.wheelAcc); ticks != 0 {
		in.wheelAcc -= float64(ticks)
		emit(Event{Kind: EventWheel, WheelY: ticks})
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		emit(Event{Kind: EventKeyDown, Key: KeyR})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		emit(Event{Kind: EventKeyDown, Key: KeyUp})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		emit(Event{Kind: EventKeyDown, Key: KeyDown})
	}
}
