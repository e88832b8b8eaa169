package imageio

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"imagenodes/tensor"
)

// Save errors
var (
	ErrBadChannels = errors.New("imageio: image must have 3 channels")
	ErrEmptyBatch  = errors.New("imageio: image batch is empty")
)

// Metadata maps text chunk keywords to JSON-serializable values. Each
// entry becomes its own tEXt chunk in the written file.
type Metadata map[string]any

// SaveResult describes one file written by Save.
type SaveResult struct {
	// Filename is the base name of the written file.
	Filename string
	// Subfolder is the directory containing the file.
	Subfolder string
	// Type is the fixed classification tag, always "output".
	Type string
}

// Save writes an image batch to the file system as 8-bit RGB PNG files.
//
// A batch of one image is written to path as-is. A batch of N > 1
// images is written to N files, each named by inserting "-{index}"
// before the extension of path (zero-based batch position). An empty
// batch is an invalid-input error; nothing is written.
//
// Values are clamped to [0,1] before quantization. Every image must
// have exactly 3 channels; any other count fails with ErrBadChannels
// naming the count found, and no file is written.
//
// prompt, when non-nil, is JSON-encoded into a "prompt" tEXt chunk.
// Each extra entry is JSON-encoded into its own tEXt chunk, keyed by
// map key (keys are written in sorted order after the prompt chunk).
//
// The immediate parent directory is created if missing; deeper missing
// ancestors are not, and fail the write.
func Save(img *tensor.Image, path string, prompt any, extra Metadata) ([]SaveResult, error) {
	if img.N == 0 {
		return nil, fmt.Errorf("%w: refusing to write zero files to %s", ErrEmptyBatch, path)
	}

	texts, err := metadataChunks(prompt, extra)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.Mkdir(dir, 0o755); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, err
		}
	}

	if img.N == 1 {
		res, err := saveOne(img, path, texts)
		if err != nil {
			return nil, err
		}
		return []SaveResult{res}, nil
	}

	results := make([]SaveResult, 0, img.N)
	for i := 0; i < img.N; i++ {
		item, err := img.Item(i)
		if err != nil {
			return nil, err
		}
		res, err := saveOne(item, batchPath(path, i), texts)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// saveOne writes a single (1,H,W,3) image to path.
func saveOne(img *tensor.Image, path string, texts []TextChunk) (SaveResult, error) {
	if img.C != 3 {
		return SaveResult{}, fmt.Errorf("%w: got %d channels", ErrBadChannels, img.C)
	}

	out := image.NewNRGBA(image.Rect(0, 0, img.W, img.H))
	src := 0
	for y := 0; y < img.H; y++ {
		for x := 0; x < img.W; x++ {
			off := out.PixOffset(x, y)
			out.Pix[off] = quantize(img.Data[src])
			out.Pix[off+1] = quantize(img.Data[src+1])
			out.Pix[off+2] = quantize(img.Data[src+2])
			out.Pix[off+3] = 255 // fully opaque, encodes as 24-bit RGB
			src += 3
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return SaveResult{}, err
	}
	if err := EncodePNG(f, out, texts); err != nil {
		f.Close()
		return SaveResult{}, err
	}
	if err := f.Close(); err != nil {
		return SaveResult{}, err
	}

	dir, name := filepath.Split(path)
	return SaveResult{
		Filename:  name,
		Subfolder: filepath.Clean(dir),
		Type:      "output",
	}, nil
}

// quantize clamps a value to [0,1] and converts it to 8 bits.
func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// batchPath derives the file name for batch position i by inserting
// "-{i}" before the extension: out.png -> out-1.png.
func batchPath(path string, i int) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s-%d%s", stem, i, ext)
}

// metadataChunks builds the ordered text chunk list: the prompt chunk
// first when present, then the extra entries in sorted key order. Every
// value is JSON-encoded.
func metadataChunks(prompt any, extra Metadata) ([]TextChunk, error) {
	var texts []TextChunk
	if prompt != nil {
		enc, err := json.Marshal(prompt)
		if err != nil {
			return nil, fmt.Errorf("imageio: encode prompt: %w", err)
		}
		texts = append(texts, TextChunk{Keyword: "prompt", Text: string(enc)})
	}

	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		enc, err := json.Marshal(extra[k])
		if err != nil {
			return nil, fmt.Errorf("imageio: encode metadata %q: %w", k, err)
		}
		texts = append(texts, TextChunk{Keyword: k, Text: string(enc)})
	}
	return texts, nil
}
