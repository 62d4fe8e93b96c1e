package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrQuit is returned by an app step to request a clean shutdown.
var ErrQuit = errors.New("quit")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatARGB8888 is 32bpp, stored little-endian: byte 0 = blue,
	// byte 1 = green, byte 2 = red, byte 3 = alpha.
	PixelFormatARGB8888 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota + 1
	MouseRight
)

// Key is a minimal key identifier for discrete key-down events.
type Key uint8

const (
	KeyNone Key = iota
	KeyR
	KeyUp
	KeyDown
)

// EventKind tags an Event.
type EventKind uint8

const (
	EventQuit EventKind = iota + 1
	EventResize
	EventMouseDown
	EventMouseUp
	EventMouseMove
	EventWheel
	EventKeyDown
)

// Event is a single input event. Fields beyond Kind are populated per kind:
// mouse events carry Button and X/Y, motion additionally RelX/RelY, wheel
// carries WheelY, key-down carries Key.
type Event struct {
	Kind   EventKind
	Button MouseButton
	X, Y   int
	RelX   int
	RelY   int
	WheelY int
	Key    Key
}

// Held is a snapshot of the continuously sampled keys.
type Held struct {
	A     bool
	D     bool
	W     bool
	S     bool
	Shift bool
	Space bool
}

// Input provides the per-frame event queue and the held-keys query.
type Input interface {
	// Drain returns the events received since the previous call, in order.
	Drain() []Event
	Held() Held
}

// Display provides access to the framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Time is a monotonic millisecond clock.
type Time interface {
	Millis() uint32
}

// HAL aggregates the platform collaborators an app needs.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
