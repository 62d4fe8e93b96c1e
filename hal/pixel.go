package hal

// argbToRGBA converts one ARGB8888 little-endian pixel (B,G,R,A byte order)
// into the R,G,B,A byte order ebiten expects. The alpha byte in the source
// buffer is ignored; the display is opaque.
func argbToRGBA(src, dst []byte) {
	for i := 0; i+3 < len(src) && i+3 < len(dst); i += 4 {
		dst[i] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i]
		dst[i+3] = 0xFF
	}
}
