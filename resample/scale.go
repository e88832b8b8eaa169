package resample

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"imagenodes/tensor"
)

// ScaleImage resizes every image in the batch to (height, width) pixels.
// Batch size and channel count are preserved. The tensor is permuted to
// channel-first order, each (H,W) plane is scaled independently, and the
// result is permuted back.
//
// Returns ErrBadTarget if height or width is not positive; a degenerate
// target never silently produces a wrong-sized result.
func ScaleImage(img *tensor.Image, height, width int, k Kernel) (*tensor.Image, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrBadTarget, height, width)
	}
	if img.H <= 0 || img.W <= 0 {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrBadSource, img.H, img.W)
	}

	src := tensor.ToNCHW(img)
	dst := &tensor.NCHW{
		Data: make([]float32, src.N*src.C*height*width),
		N:    src.N, C: src.C, H: height, W: width,
	}
	for n := 0; n < src.N; n++ {
		for c := 0; c < src.C; c++ {
			scalePlane(dst.Plane(n, c), src.Plane(n, c), src.H, src.W, height, width, k)
		}
	}
	return tensor.ToNHWC(dst), nil
}

// ScaleMask resizes a (N,H,W) mask to (height, width). The mask gains a
// temporary leading size-1 dimension so its batch items scale as planes,
// then loses it again.
func ScaleMask(m *tensor.Mask, height, width int, k Kernel) (*tensor.Mask, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrBadTarget, height, width)
	}
	if m.H <= 0 || m.W <= 0 {
		return nil, fmt.Errorf("%w: (%d,%d)", ErrBadSource, m.H, m.W)
	}

	// (N,H,W) viewed as channel planes of a single batch item.
	src := &tensor.NCHW{Data: m.Data, N: 1, C: m.N, H: m.H, W: m.W}
	dst := &tensor.NCHW{
		Data: make([]float32, m.N*height*width),
		N:    1, C: m.N, H: height, W: width,
	}
	for c := 0; c < src.C; c++ {
		scalePlane(dst.Plane(0, c), src.Plane(0, c), src.H, src.W, height, width, k)
	}
	return &tensor.Mask{Data: dst.Data, N: m.N, H: height, W: width}, nil
}

// scalePlane resizes one (H,W) float plane through a 16-bit grayscale
// intermediate. Values are clamped to [0,1] for the conversion;
// quantization error is at most 1/65535 per sample.
func scalePlane(dst, src []float32, srcH, srcW, dstH, dstW int, k Kernel) {
	gray := image.NewGray16(image.Rect(0, 0, srcW, srcH))
	for y := 0; y < srcH; y++ {
		for x := 0; x < srcW; x++ {
			v := src[y*srcW+x]
			if v < 0 {
				v = 0
			} else if v > 1 {
				v = 1
			}
			u := uint16(v*65535 + 0.5)
			i := gray.PixOffset(x, y)
			gray.Pix[i] = uint8(u >> 8)
			gray.Pix[i+1] = uint8(u)
		}
	}

	out := image.NewGray16(image.Rect(0, 0, dstW, dstH))
	k.scaler().Scale(out, out.Bounds(), gray, gray.Bounds(), draw.Src, nil)

	for y := 0; y < dstH; y++ {
		for x := 0; x < dstW; x++ {
			i := out.PixOffset(x, y)
			u := uint16(out.Pix[i])<<8 | uint16(out.Pix[i+1])
			dst[y*dstW+x] = float32(u) / 65535
		}
	}
}
