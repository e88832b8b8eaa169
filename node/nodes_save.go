package node

import (
	"fmt"

	"imagenodes/imageio"
)

// SaveToPath writes an image batch to the file system as PNG with
// embedded metadata. It is a terminal output node: it produces no graph
// values.
//
// The host binds two hidden inputs: "prompt", the originating prompt
// graph embedded for provenance, and "extra_pnginfo", additional
// key/value metadata. Both may be absent.
type SaveToPath struct{}

func (SaveToPath) Spec() Spec {
	return Spec{
		Category: categoryImage,
		Required: []Slot{
			StringSlot("path", defaultImagePath),
			ImageSlot("image"),
		},
		Hidden: []Slot{
			{Name: "prompt", Type: TypeString},
			{Name: "extra_pnginfo", Type: TypeString},
		},
		OutputNode: true,
	}
}

func (SaveToPath) Execute(in Inputs) (Outputs, error) {
	path, err := in.String("path")
	if err != nil {
		return nil, err
	}
	img, err := in.Image("image")
	if err != nil {
		return nil, err
	}

	prompt := in.Any("prompt")
	extra, err := metadataInput(in.Any("extra_pnginfo"))
	if err != nil {
		return nil, err
	}

	if _, err := imageio.Save(img, path, prompt, extra); err != nil {
		return nil, err
	}
	return Outputs{}, nil
}

// metadataInput coerces the hidden extra_pnginfo value into a metadata
// record. The host binds it as a generic string-keyed map.
func metadataInput(v any) (imageio.Metadata, error) {
	switch m := v.(type) {
	case nil:
		return nil, nil
	case imageio.Metadata:
		return m, nil
	case map[string]any:
		return imageio.Metadata(m), nil
	}
	return nil, fmt.Errorf("%w: %q is %T, want string-keyed map", ErrInputType, "extra_pnginfo", v)
}
