package hal

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Enabled bool
	Width   int
	Height  int
	Hz      int
	Ticks   uint64
}

// RunHeadless runs the app without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}

	h := NewHeadless(cfg.Width, cfg.Height)
	h.log.echo = os.Stdout
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					if err == ErrQuit {
						return nil
					}
					return err
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

// HeadlessHAL is an offscreen HAL used by tests and the headless run mode.
// Events are injected with PushEvent; the clock is advanced manually with
// AdvanceMillis when a test needs deterministic timing.
type HeadlessHAL struct {
	log *captureLogger
	fb  *hostFramebuffer
	in  *scriptedInput
	t   *headlessTime
}

// NewHeadless returns a HAL with a width x height ARGB8888 framebuffer and
// no window behind it.
func NewHeadless(width, height int) *HeadlessHAL {
	return &HeadlessHAL{
		log: &captureLogger{},
		fb:  newHostFramebuffer(width, height),
		in:  &scriptedInput{},
		t:   &headlessTime{start: time.Now()},
	}
}

func (h *HeadlessHAL) Logger() Logger   { return h.log }
func (h *HeadlessHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *HeadlessHAL) Input() Input     { return h.in }
func (h *HeadlessHAL) Time() Time       { return h.t }

// PushEvent queues an event for the next Drain.
func (h *HeadlessHAL) PushEvent(ev Event) { h.in.push(ev) }

// SetHeld fixes the held-keys snapshot returned by Input().Held().
func (h *HeadlessHAL) SetHeld(held Held) { h.in.setHeld(held) }

// AdvanceMillis switches the clock to manual mode and moves it forward.
func (h *HeadlessHAL) AdvanceMillis(ms uint32) { h.t.advance(ms) }

// Lines returns all log lines written so far.
func (h *HeadlessHAL) Lines() []string { return h.log.lines() }

type scriptedInput struct {
	mu     sync.Mutex
	events []Event
	held   Held
}

func (in *scriptedInput) push(ev Event) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.events = append(in.events, ev)
}

func (in *scriptedInput) setHeld(h Held) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.held = h
}

func (in *scriptedInput) Drain() []Event {
	in.mu.Lock()
	defer in.mu.Unlock()
	evs := in.events
	in.events = nil
	return evs
}

func (in *scriptedInput) Held() Held {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.held
}

type captureLogger struct {
	mu   sync.Mutex
	buf  []string
	echo *os.File
}

func (l *captureLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buf = append(l.buf, s)
	if l.echo != nil {
		fmt.Fprintln(l.echo, s)
	}
}

func (l *captureLogger) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}

func (l *captureLogger) lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, len(l.buf))
	copy(out, l.buf)
	return out
}

type headlessTime struct {
	mu     sync.Mutex
	start  time.Time
	manual bool
	now    uint32
}

func (t *headlessTime) advance(ms uint32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.manual = true
	t.now += ms
}

func (t *headlessTime) Millis() uint32 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.manual {
		return t.now
	}
	return uint32(time.Since(t.start) / time.Millisecond)
}
