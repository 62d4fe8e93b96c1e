package render

// FillIntensity is the channel value written for the winning root.
const FillIntensity = 0xFF

// Newton renders the basin image of the monic cubic with roots a, b and c
// into out, which holds w*h 4-byte pixels: byte 0 is set for root a, byte 1
// for root b, byte 2 for root c, byte 3 stays zero. work is the per-pixel
// iterate buffer (len >= w*h) and is left in an unspecified state.
//
// unit is the complex-plane size of one pixel; left and top locate the top
// left pixel corner. The iterate arithmetic runs in single precision; the
// viewport doubles narrow at the seed step.
//
// Three passes on q: seed, iterate, classify. Non-finite iterates fall
// through the comparison chain and still color the pixel.
func Newton(
	q *Queue,
	a, b, c complex64,
	work []complex64, out []byte,
	w, h int,
	unit, left, top float64,
	iterations int,
) {
	for i := range out {
		out[i] = 0
	}

	// Symmetric functions of the roots, once per frame:
	// p(z)  = z^3 - sum*z^2 + prodSum*z - prod
	// p'(z) = 3z^2 - 2*sum*z + prodSum
	sum := a + b + c
	prodSum := a*b + a*c + b*c
	prod := a * b * c

	q.Run2D(h, w, func(row, col int) {
		y := top - unit*float64(row)
		x := left + unit*float64(col)
		work[row*w+col] = complex(float32(x), float32(y))
	})

	q.Run2D(h, w, func(row, col int) {
		z := work[row*w+col]
		for i := 0; i < iterations; i++ {
			sqr := z * z
			v := sqr*z - sum*sqr + prodSum*z - prod
			d := 3*sqr - 2*sum*z + prodSum
			z -= v / d
		}
		work[row*w+col] = z
	})

	q.Run2D(h, w, func(row, col int) {
		z := work[row*w+col]
		da := z - a
		db := z - b
		dc := z - c
		daHyp := float64(real(da))*float64(real(da)) + float64(imag(da))*float64(imag(da))
		dbHyp := float64(real(db))*float64(real(db)) + float64(imag(db))*float64(imag(db))
		dcHyp := float64(real(dc))*float64(real(dc)) + float64(imag(dc))*float64(imag(dc))

		idx := (row*w + col) * 4
		switch {
		case daHyp <= dbHyp && daHyp <= dcHyp:
			out[idx] = FillIntensity
		case dbHyp <= daHyp && dbHyp <= dcHyp:
			out[idx+1] = FillIntensity
		default:
			out[idx+2] = FillIntensity
		}
	})
}
