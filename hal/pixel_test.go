package hal

import "testing"

func TestARGBToRGBA(t *testing.T) {
	src := []byte{
		0x10, 0x20, 0x30, 0x00, // B G R A
		0xFF, 0x00, 0x00, 0x00,
	}
	dst := make([]byte, len(src))
	argbToRGBA(src, dst)

	want := []byte{
		0x30, 0x20, 0x10, 0xFF,
		0x00, 0x00, 0xFF, 0xFF,
	}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("byte %d = %#x, want %#x", i, dst[i], want[i])
		}
	}
}

func TestHeadlessFramebuffer(t *testing.T) {
	h := NewHeadless(8, 4)
	fb := h.Display().Framebuffer()

	if fb.Width() != 8 || fb.Height() != 4 {
		t.Fatalf("size = %dx%d", fb.Width(), fb.Height())
	}
	if fb.Format() != PixelFormatARGB8888 {
		t.Fatalf("format = %d", fb.Format())
	}
	if fb.StrideBytes() != 32 {
		t.Fatalf("stride = %d", fb.StrideBytes())
	}
	if len(fb.Buffer()) != 8*4*4 {
		t.Fatalf("buffer len = %d", len(fb.Buffer()))
	}

	fb.ClearRGB(1, 2, 3)
	buf := fb.Buffer()
	if buf[0] != 3 || buf[1] != 2 || buf[2] != 1 || buf[3] != 0 {
		t.Fatalf("cleared pixel = %v", buf[:4])
	}
}

func TestScriptedInput(t *testing.T) {
	h := NewHeadless(8, 4)

	h.PushEvent(Event{Kind: EventWheel, WheelY: 1})
	h.PushEvent(Event{Kind: EventKeyDown, Key: KeyR})

	evs := h.Input().Drain()
	if len(evs) != 2 || evs[0].Kind != EventWheel || evs[1].Key != KeyR {
		t.Fatalf("events = %v", evs)
	}
	if len(h.Input().Drain()) != 0 {
		t.Fatal("drain must empty the queue")
	}

	h.SetHeld(Held{A: true, Space: true})
	held := h.Input().Held()
	if !held.A || !held.Space || held.D {
		t.Fatalf("held = %+v", held)
	}
}

func TestHeadlessClock(t *testing.T) {
	h := NewHeadless(1, 1)
	h.AdvanceMillis(1500)
	h.AdvanceMillis(500)
	if got := h.Time().Millis(); got != 2000 {
		t.Fatalf("millis = %d, want 2000", got)
	}
}
