package tensor

// ToNCHW permutes an NHWC image tensor into channel-first order.
// This is a copy, not a view; the input is never modified.
//
// Converting forward and back with ToNHWC reproduces the original
// tensor exactly: same shape, same float32 values.
func ToNCHW(t *Image) *NCHW {
	out := &NCHW{
		Data: make([]float32, len(t.Data)),
		N:    t.N, C: t.C, H: t.H, W: t.W,
	}
	for n := 0; n < t.N; n++ {
		for h := 0; h < t.H; h++ {
			for w := 0; w < t.W; w++ {
				for c := 0; c < t.C; c++ {
					out.Data[((n*t.C+c)*t.H+h)*t.W+w] = t.Data[((n*t.H+h)*t.W+w)*t.C+c]
				}
			}
		}
	}
	return out
}

// ToNHWC permutes a channel-first tensor back into NHWC order.
// This is the exact inverse of ToNCHW.
func ToNHWC(t *NCHW) *Image {
	out := &Image{
		Data: make([]float32, len(t.Data)),
		N:    t.N, H: t.H, W: t.W, C: t.C,
	}
	for n := 0; n < t.N; n++ {
		for c := 0; c < t.C; c++ {
			for h := 0; h < t.H; h++ {
				for w := 0; w < t.W; w++ {
					out.Data[((n*t.H+h)*t.W+w)*t.C+c] = t.Data[((n*t.C+c)*t.H+h)*t.W+w]
				}
			}
		}
	}
	return out
}
