// Package tensor provides the float32 image and mask tensors passed
// between graph nodes, along with conversion between the channel-last
// layout used on the node wire and the channel-first layout expected by
// the resampling primitives.
package tensor

import (
	"errors"
	"fmt"
)

// Tensor validation errors
var (
	ErrNegativeDim = errors.New("tensor: dimensions must not be negative")
	ErrDataLength  = errors.New("tensor: data length does not match shape")
)

// Image is a batch of full-color images in NHWC (channel-last) order.
// Data is contiguous row-major: index = ((n*H+h)*W+w)*C + c.
// Values are conceptually in [0,1]; the range is not enforced here.
type Image struct {
	Data []float32
	N    int // batch size
	H    int // height in pixels
	W    int // width in pixels
	C    int // channels, 3 for full color
}

// NewImage allocates a zero-filled NHWC image tensor.
func NewImage(n, h, w, c int) (*Image, error) {
	if n < 0 || h < 0 || w < 0 || c < 0 {
		return nil, fmt.Errorf("%w: (%d,%d,%d,%d)", ErrNegativeDim, n, h, w, c)
	}
	return &Image{
		Data: make([]float32, n*h*w*c),
		N:    n, H: h, W: w, C: c,
	}, nil
}

// WrapImage builds an NHWC image tensor around existing data.
// The data length must match the shape exactly.
func WrapImage(data []float32, n, h, w, c int) (*Image, error) {
	if n < 0 || h < 0 || w < 0 || c < 0 {
		return nil, fmt.Errorf("%w: (%d,%d,%d,%d)", ErrNegativeDim, n, h, w, c)
	}
	if len(data) != n*h*w*c {
		return nil, fmt.Errorf("%w: got %d values for shape (%d,%d,%d,%d)",
			ErrDataLength, len(data), n, h, w, c)
	}
	return &Image{Data: data, N: n, H: h, W: w, C: c}, nil
}

// At returns the value at (n,h,w,c). Bounds are not checked.
func (t *Image) At(n, h, w, c int) float32 {
	return t.Data[((n*t.H+h)*t.W+w)*t.C+c]
}

// Set stores a value at (n,h,w,c). Bounds are not checked.
func (t *Image) Set(n, h, w, c int, v float32) {
	t.Data[((n*t.H+h)*t.W+w)*t.C+c] = v
}

// Shape returns the (N,H,W,C) dimensions.
func (t *Image) Shape() (n, h, w, c int) {
	return t.N, t.H, t.W, t.C
}

// Item returns a view of the i-th image in the batch as a batch of one.
// The returned tensor shares the underlying data.
func (t *Image) Item(i int) (*Image, error) {
	if i < 0 || i >= t.N {
		return nil, fmt.Errorf("tensor: batch index %d out of range [0,%d)", i, t.N)
	}
	per := t.H * t.W * t.C
	return &Image{
		Data: t.Data[i*per : (i+1)*per],
		N:    1, H: t.H, W: t.W, C: t.C,
	}, nil
}

// NCHW is a batch of images in channel-first order.
// Data is contiguous: index = ((n*C+c)*H+h)*W + w.
type NCHW struct {
	Data []float32
	N    int
	C    int
	H    int
	W    int
}

// At returns the value at (n,c,h,w). Bounds are not checked.
func (t *NCHW) At(n, c, h, w int) float32 {
	return t.Data[((n*t.C+c)*t.H+h)*t.W+w]
}

// Plane returns the contiguous (H,W) plane for batch item n, channel c.
// The slice shares the underlying data.
func (t *NCHW) Plane(n, c int) []float32 {
	base := (n*t.C + c) * t.H * t.W
	return t.Data[base : base+t.H*t.W]
}

// Mask is a batch of single-channel per-pixel weights in (N,H,W) order.
// Values are in [0,1], 1 meaning fully masked.
type Mask struct {
	Data []float32
	N    int
	H    int
	W    int
}

// NewMask allocates a zero-filled mask tensor.
func NewMask(n, h, w int) (*Mask, error) {
	if n < 0 || h < 0 || w < 0 {
		return nil, fmt.Errorf("%w: (%d,%d,%d)", ErrNegativeDim, n, h, w)
	}
	return &Mask{Data: make([]float32, n*h*w), N: n, H: h, W: w}, nil
}

// At returns the value at (n,h,w). Bounds are not checked.
func (m *Mask) At(n, h, w int) float32 {
	return m.Data[(n*m.H+h)*m.W+w]
}

// Set stores a value at (n,h,w). Bounds are not checked.
func (m *Mask) Set(n, h, w int, v float32) {
	m.Data[(n*m.H+h)*m.W+w] = v
}
