// Package imageio loads files into normalized image tensors and writes
// tensors back out as PNG files with embedded text metadata.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"imagenodes/tensor"
)

// Load errors
var (
	ErrDecode = errors.New("imageio: failed to decode image")
)

// LoadRGB decodes the file at path into a (1,H,W,3) float32 tensor with
// values in [0,1] (pixel / 255). Any alpha channel is discarded.
//
// Missing or undecodable files fail here and propagate to the caller;
// there is no retry or recovery.
func LoadRGB(path string) (*tensor.Image, error) {
	src, err := decodeFile(path)
	if err != nil {
		return nil, err
	}

	h := src.Bounds().Dy()
	w := src.Bounds().Dx()
	img, err := tensor.NewImage(1, h, w, 3)
	if err != nil {
		return nil, err
	}
	i := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := src.PixOffset(x+src.Bounds().Min.X, y+src.Bounds().Min.Y)
			img.Data[i] = float32(src.Pix[off]) / 255
			img.Data[i+1] = float32(src.Pix[off+1]) / 255
			img.Data[i+2] = float32(src.Pix[off+2]) / 255
			i += 3
		}
	}
	return img, nil
}

// LoadRGBA decodes the file at path into a (1,H,W,3) color tensor plus
// a (1,H,W) mask built from the alpha channel. The mask is inverted:
// fully transparent pixels become mask value 1, opaque pixels 0.
func LoadRGBA(path string) (*tensor.Image, *tensor.Mask, error) {
	src, err := decodeFile(path)
	if err != nil {
		return nil, nil, err
	}

	h := src.Bounds().Dy()
	w := src.Bounds().Dx()
	img, err := tensor.NewImage(1, h, w, 3)
	if err != nil {
		return nil, nil, err
	}
	mask, err := tensor.NewMask(1, h, w)
	if err != nil {
		return nil, nil, err
	}
	ci, mi := 0, 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			off := src.PixOffset(x+src.Bounds().Min.X, y+src.Bounds().Min.Y)
			img.Data[ci] = float32(src.Pix[off]) / 255
			img.Data[ci+1] = float32(src.Pix[off+1]) / 255
			img.Data[ci+2] = float32(src.Pix[off+2]) / 255
			mask.Data[mi] = 1 - float32(src.Pix[off+3])/255
			ci += 3
			mi++
		}
	}
	return img, mask, nil
}

// decodeFile opens and decodes an image file into non-premultiplied
// RGBA pixels. PNG, JPEG and GIF decoders are registered.
func decodeFile(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}

	if nrgba, ok := src.(*image.NRGBA); ok {
		return nrgba, nil
	}
	nrgba := image.NewNRGBA(src.Bounds())
	draw.Draw(nrgba, nrgba.Bounds(), src, src.Bounds().Min, draw.Src)
	return nrgba, nil
}
