package node

import (
	"imagenodes/imageio"
)

// categoryImage groups all builtin nodes in the host UI.
const categoryImage = "image"

// defaultImagePath is the default for path inputs on load and save nodes.
const defaultImagePath = "./image.png"

// LoadRGB decodes a file into a full-color image tensor.
type LoadRGB struct{}

func (LoadRGB) Spec() Spec {
	return Spec{
		Category: categoryImage,
		Required: []Slot{
			StringSlot("path", defaultImagePath),
		},
		ReturnNames: []string{"IMAGE"},
		ReturnTypes: []Type{TypeImage},
	}
}

func (LoadRGB) Execute(in Inputs) (Outputs, error) {
	path, err := in.String("path")
	if err != nil {
		return nil, err
	}
	img, err := imageio.LoadRGB(path)
	if err != nil {
		return nil, err
	}
	return Outputs{img}, nil
}

// LoadRGBA decodes a file into a color tensor plus an inverted alpha
// mask: transparent regions carry mask value 1.
type LoadRGBA struct{}

func (LoadRGBA) Spec() Spec {
	return Spec{
		Category: categoryImage,
		Required: []Slot{
			StringSlot("path", defaultImagePath),
		},
		ReturnNames: []string{"IMAGE", "MASK"},
		ReturnTypes: []Type{TypeImage, TypeMask},
	}
}

func (LoadRGBA) Execute(in Inputs) (Outputs, error) {
	path, err := in.String("path")
	if err != nil {
		return nil, err
	}
	img, mask, err := imageio.LoadRGBA(path)
	if err != nil {
		return nil, err
	}
	return Outputs{img, mask}, nil
}
