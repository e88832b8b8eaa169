package node

import (
	"imagenodes/resample"
)

// Widget range shared by the resize dimension inputs.
const (
	dimDefault = 512
	dimMin     = 0
	dimMax     = 99999
	dimStep    = 1
)

// kernelInput reads and parses the interpolation_mode choice. An
// unrecognized choice is a contract violation, not a silent default.
func kernelInput(in Inputs) (resample.Kernel, error) {
	s, err := in.String("interpolation_mode")
	if err != nil {
		return 0, err
	}
	return resample.ParseKernel(s)
}

func interpolationSlot() Slot {
	return ChoiceSlot("interpolation_mode", resample.Choices())
}

// Resize scales an image batch to an explicit (height, width).
type Resize struct{}

func (Resize) Spec() Spec {
	return Spec{
		Category: categoryImage,
		Required: []Slot{
			ImageSlot("image"),
			IntSlot("height", dimDefault, dimMin, dimMax, dimStep),
			IntSlot("width", dimDefault, dimMin, dimMax, dimStep),
			interpolationSlot(),
		},
		ReturnNames: []string{"IMAGE"},
		ReturnTypes: []Type{TypeImage},
	}
}

func (Resize) Execute(in Inputs) (Outputs, error) {
	img, err := in.Image("image")
	if err != nil {
		return nil, err
	}
	height, err := in.Int("height")
	if err != nil {
		return nil, err
	}
	width, err := in.Int("width")
	if err != nil {
		return nil, err
	}
	k, err := kernelInput(in)
	if err != nil {
		return nil, err
	}

	out, err := resample.ScaleImage(img, height, width, k)
	if err != nil {
		return nil, err
	}
	return Outputs{out}, nil
}

// MaskResize scales a mask batch to an explicit (height, width).
type MaskResize struct{}

func (MaskResize) Spec() Spec {
	return Spec{
		Category: categoryImage,
		Required: []Slot{
			MaskSlot("mask"),
			IntSlot("height", dimDefault, dimMin, dimMax, dimStep),
			IntSlot("width", dimDefault, dimMin, dimMax, dimStep),
			interpolationSlot(),
		},
		ReturnNames: []string{"MASK"},
		ReturnTypes: []Type{TypeMask},
	}
}

func (MaskResize) Execute(in Inputs) (Outputs, error) {
	mask, err := in.Mask("mask")
	if err != nil {
		return nil, err
	}
	height, err := in.Int("height")
	if err != nil {
		return nil, err
	}
	width, err := in.Int("width")
	if err != nil {
		return nil, err
	}
	k, err := kernelInput(in)
	if err != nil {
		return nil, err
	}

	out, err := resample.ScaleMask(mask, height, width, k)
	if err != nil {
		return nil, err
	}
	return Outputs{out}, nil
}

// ResizeToSquare scales an image batch so both sides equal size.
type ResizeToSquare struct{}

func (ResizeToSquare) Spec() Spec {
	return Spec{
		Category: categoryImage,
		Required: []Slot{
			ImageSlot("image"),
			IntSlot("size", dimDefault, dimMin, dimMax, dimStep),
			interpolationSlot(),
		},
		ReturnNames: []string{"IMAGE"},
		ReturnTypes: []Type{TypeImage},
	}
}

func (ResizeToSquare) Execute(in Inputs) (Outputs, error) {
	img, err := in.Image("image")
	if err != nil {
		return nil, err
	}
	size, err := in.Int("size")
	if err != nil {
		return nil, err
	}
	k, err := kernelInput(in)
	if err != nil {
		return nil, err
	}

	out, err := resample.ScaleImage(img, size, size, k)
	if err != nil {
		return nil, err
	}
	return Outputs{out}, nil
}

// ResizeByFactor scales both spatial dimensions by the same factor,
// rounding to the nearest pixel.
type ResizeByFactor struct{}

func (ResizeByFactor) Spec() Spec {
	return Spec{
		Category: categoryImage,
		Required: []Slot{
			ImageSlot("image"),
			FloatSlot("factor", 1, 0, 99999, 0.01),
			interpolationSlot(),
		},
		ReturnNames: []string{"IMAGE"},
		ReturnTypes: []Type{TypeImage},
	}
}

func (ResizeByFactor) Execute(in Inputs) (Outputs, error) {
	img, err := in.Image("image")
	if err != nil {
		return nil, err
	}
	factor, err := in.Float("factor")
	if err != nil {
		return nil, err
	}
	k, err := kernelInput(in)
	if err != nil {
		return nil, err
	}

	height, width := resample.TargetByFactor(img.H, img.W, factor)
	out, err := resample.ScaleImage(img, height, width, k)
	if err != nil {
		return nil, err
	}
	return Outputs{out}, nil
}

// ResizeByShorterSide scales the shorter side to size, preserving
// aspect ratio.
type ResizeByShorterSide struct{}

func (ResizeByShorterSide) Spec() Spec {
	return Spec{
		Category: categoryImage,
		Required: []Slot{
			ImageSlot("image"),
			IntSlot("size", dimDefault, dimMin, dimMax, dimStep),
			interpolationSlot(),
		},
		ReturnNames: []string{"IMAGE"},
		ReturnTypes: []Type{TypeImage},
	}
}

func (ResizeByShorterSide) Execute(in Inputs) (Outputs, error) {
	img, err := in.Image("image")
	if err != nil {
		return nil, err
	}
	size, err := in.Int("size")
	if err != nil {
		return nil, err
	}
	k, err := kernelInput(in)
	if err != nil {
		return nil, err
	}

	height, width, err := resample.TargetShorterSide(img.H, img.W, size)
	if err != nil {
		return nil, err
	}
	out, err := resample.ScaleImage(img, height, width, k)
	if err != nil {
		return nil, err
	}
	return Outputs{out}, nil
}

// ResizeByLongerSide scales the longer side to size, preserving aspect
// ratio. Both aspect-preserving variants pass (height, width) in the
// same order.
type ResizeByLongerSide struct{}

func (ResizeByLongerSide) Spec() Spec {
	return Spec{
		Category: categoryImage,
		Required: []Slot{
			ImageSlot("image"),
			IntSlot("size", dimDefault, dimMin, dimMax, dimStep),
			interpolationSlot(),
		},
		ReturnNames: []string{"IMAGE"},
		ReturnTypes: []Type{TypeImage},
	}
}

func (ResizeByLongerSide) Execute(in Inputs) (Outputs, error) {
	img, err := in.Image("image")
	if err != nil {
		return nil, err
	}
	size, err := in.Int("size")
	if err != nil {
		return nil, err
	}
	k, err := kernelInput(in)
	if err != nil {
		return nil, err
	}

	height, width, err := resample.TargetLongerSide(img.H, img.W, size)
	if err != nil {
		return nil, err
	}
	out, err := resample.ScaleImage(img, height, width, k)
	if err != nil {
		return nil, err
	}
	return Outputs{out}, nil
}
