package render

import (
	"bytes"
	"testing"
)

func testBuffers(w, h int) ([]complex64, []byte) {
	return make([]complex64, w*h), make([]byte, w*h*4)
}

func TestNewtonSeedsAtRootsStayPut(t *testing.T) {
	// A 3x1 render whose three seeds land exactly on the roots. The roots
	// and their symmetric functions are small integers, so the Newton step
	// is exact in single precision and each pixel must keep its root for
	// any iteration count.
	q := NewQueue(2, nil)
	a := complex64(complex(-2, 1))
	b := complex64(complex(0, 1))
	c := complex64(complex(2, 1))

	for _, iters := range []int{0, 1, 20, 50} {
		work, out := testBuffers(3, 1)
		Newton(q, a, b, c, work, out, 3, 1, 2.0, -2.0, 1.0, iters)

		wantChannel := []int{0, 1, 2}
		for px := 0; px < 3; px++ {
			for ch := 0; ch < 4; ch++ {
				got := out[px*4+ch]
				want := byte(0)
				if ch == wantChannel[px] {
					want = FillIntensity
				}
				if got != want {
					t.Fatalf("iters=%d pixel %d channel %d = %d, want %d", iters, px, ch, got, want)
				}
			}
		}
	}
}

func TestNewtonDeterministic(t *testing.T) {
	const w, h = 64, 48
	q1 := NewQueue(1, nil)
	q8 := NewQueue(8, nil)
	a := complex64(complex(-2, 1))
	b := complex64(complex(2, 2))
	c := complex64(complex(-1, -2))

	work1, out1 := testBuffers(w, h)
	work2, out2 := testBuffers(w, h)
	work3, out3 := testBuffers(w, h)

	Newton(q1, a, b, c, work1, out1, w, h, 10.0/w, -5, 4, 20)
	Newton(q8, a, b, c, work2, out2, w, h, 10.0/w, -5, 4, 20)
	Newton(q8, a, b, c, work3, out3, w, h, 10.0/w, -5, 4, 20)

	if !bytes.Equal(out1, out2) {
		t.Fatal("worker count changed the output")
	}
	if !bytes.Equal(out2, out3) {
		t.Fatal("repeated render changed the output")
	}
}

func TestNewtonColorExclusivity(t *testing.T) {
	const w, h = 32, 24
	q := NewQueue(4, nil)
	work, out := testBuffers(w, h)
	Newton(q,
		complex64(complex(-2, 1)), complex64(complex(2, 2)), complex64(complex(-1, -2)),
		work, out, w, h, 10.0/w, -5, 4, 20)

	for p := 0; p < w*h; p++ {
		px := out[p*4 : p*4+4]
		set := 0
		for ch := 0; ch < 3; ch++ {
			switch px[ch] {
			case FillIntensity:
				set++
			case 0:
			default:
				t.Fatalf("pixel %d channel %d = %d", p, ch, px[ch])
			}
		}
		if set != 1 {
			t.Fatalf("pixel %d has %d channels set", p, set)
		}
		if px[3] != 0 {
			t.Fatalf("pixel %d alpha = %d", p, px[3])
		}
	}
}

func TestNewtonCanonicalViewShowsAllBasins(t *testing.T) {
	// The reset view (left=-5, top=4, width 10) must show all three basins.
	const w, h = 128, 96
	q := NewQueue(4, nil)
	work, out := testBuffers(w, h)
	Newton(q,
		complex64(complex(-2, 1)), complex64(complex(2, 2)), complex64(complex(-1, -2)),
		work, out, w, h, 10.0/w, -5, 4, 20)

	var totals [3]int
	for p := 0; p < w*h; p++ {
		for ch := 0; ch < 3; ch++ {
			totals[ch] += int(out[p*4+ch])
		}
	}
	for ch, sum := range totals {
		if sum == 0 {
			t.Fatalf("channel %d empty; totals %v", ch, totals)
		}
	}
}

func TestNewtonCoincidentRootsDefined(t *testing.T) {
	// All roots equal: the derivative vanishes at the seed z=0 and the
	// division yields NaN, which must still classify to exactly one
	// channel.
	const w, h = 16, 16
	q := NewQueue(2, nil)
	work, out := testBuffers(w, h)
	Newton(q, 0, 0, 0, work, out, w, h, 4.0/w, -2, 2, 10)

	for p := 0; p < w*h; p++ {
		set := 0
		for ch := 0; ch < 3; ch++ {
			if out[p*4+ch] == FillIntensity {
				set++
			}
		}
		if set != 1 {
			t.Fatalf("pixel %d has %d channels set", p, set)
		}
	}
}

func TestNewtonZeroIterationsClassifiesSeeds(t *testing.T) {
	// With N=0 every pixel is colored by whichever root is nearest to its
	// seed point.
	const w, h = 8, 8
	q := NewQueue(2, nil)
	work, out := testBuffers(w, h)
	a := complex64(complex(-1, 0))
	b := complex64(complex(1, 0))
	c := complex64(complex(0, 100))
	Newton(q, a, b, c, work, out, w, h, 2.0/w, -1, 1, 0)

	// Left half of the grid is nearer a, right half nearer b.
	for row := 0; row < h; row++ {
		leftPix := (row*w + 0) * 4
		rightPix := (row*w + w - 1) * 4
		if out[leftPix] != FillIntensity {
			t.Fatalf("row %d: left pixel not in basin a", row)
		}
		if out[rightPix+1] != FillIntensity {
			t.Fatalf("row %d: right pixel not in basin b", row)
		}
	}
}
