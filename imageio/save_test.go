package imageio

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"imagenodes/tensor"
)

func gradientImage(t *testing.T, n, h, w int) *tensor.Image {
	t.Helper()
	img, err := tensor.NewImage(n, h, w, 3)
	if err != nil {
		t.Fatalf("NewImage: %v", err)
	}
	for i := range img.Data {
		img.Data[i] = float32(i%255) / 255
	}
	return img
}

func TestSave_SingleImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	results, err := Save(gradientImage(t, 1, 8, 8), path, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Filename != "out.png" || results[0].Type != "output" {
		t.Errorf("unexpected result: %+v", results[0])
	}
	if results[0].Subfolder != dir {
		t.Errorf("expected subfolder %s, got %s", dir, results[0].Subfolder)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file at %s: %v", path, err)
	}
}

func TestSave_Batch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	results, err := Save(gradientImage(t, 3, 4, 4), path, nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	got := map[string]bool{}
	for _, e := range entries {
		got[e.Name()] = true
	}
	for _, want := range []string{"out-0.png", "out-1.png", "out-2.png"} {
		if !got[want] {
			t.Errorf("expected file %s, directory has %v", want, got)
		}
	}
	if len(entries) != 3 {
		t.Errorf("expected exactly 3 files, got %d", len(entries))
	}
}

func TestSave_EmptyBatch(t *testing.T) {
	dir := t.TempDir()
	img := &tensor.Image{Data: nil, N: 0, H: 4, W: 4, C: 3}

	_, err := Save(img, filepath.Join(dir, "out.png"), nil, nil)
	if !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("expected ErrEmptyBatch, got: %v", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("expected no files written, got %d", len(entries))
	}
}

func TestSave_WrongChannelCount(t *testing.T) {
	dir := t.TempDir()
	img, err := tensor.NewImage(1, 4, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "out.png")

	_, err = Save(img, path, nil, nil)
	if !errors.Is(err, ErrBadChannels) {
		t.Fatalf("expected ErrBadChannels, got: %v", err)
	}
	if _, statErr := os.Stat(path); !errors.Is(statErr, os.ErrNotExist) {
		t.Error("expected no file written for 4-channel image")
	}
}

func TestSave_CreatesImmediateParent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "out.png")

	if _, err := Save(gradientImage(t, 1, 2, 2), path, nil, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file at %s: %v", path, err)
	}
}

func TestSave_DoesNotCreateDeepAncestors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "out.png")

	if _, err := Save(gradientImage(t, 1, 2, 2), path, nil, nil); err == nil {
		t.Error("expected error when two ancestor directories are missing")
	}
}

func TestSave_LoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rt.png")
	orig := gradientImage(t, 1, 6, 9)

	if _, err := Save(orig, path, nil, nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := LoadRGB(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.H != orig.H || loaded.W != orig.W || loaded.C != 3 {
		t.Fatalf("round trip changed shape to (%d,%d,%d)", loaded.H, loaded.W, loaded.C)
	}
	for i := range orig.Data {
		if diff := math.Abs(float64(orig.Data[i] - loaded.Data[i])); diff > 1.0/255 {
			t.Fatalf("value %d drifted by %v, more than one quantization step", i, diff)
		}
	}
}

func TestSave_ClampsOutOfRange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clamp.png")
	img, _ := tensor.NewImage(1, 1, 2, 3)
	for i := 0; i < 3; i++ {
		img.Data[i] = -0.5 // below range
	}
	for i := 3; i < 6; i++ {
		img.Data[i] = 1.5 // above range
	}

	if _, err := Save(img, path, nil, nil); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := LoadRGB(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.At(0, 0, 0, 0) != 0 {
		t.Errorf("expected negative values clamped to 0, got %v", loaded.At(0, 0, 0, 0))
	}
	if loaded.At(0, 0, 1, 0) != 1 {
		t.Errorf("expected values above 1 clamped to 1, got %v", loaded.At(0, 0, 1, 0))
	}
}

func TestSave_EmbedsMetadata(t *testing.T) {
	path := filepath.Join(t.TempDir(), "meta.png")
	prompt := map[string]any{"seed": 42}
	extra := Metadata{"workflow": []string{"load", "save"}, "app": "imagenodes"}

	if _, err := Save(gradientImage(t, 1, 2, 2), path, prompt, extra); err != nil {
		t.Fatalf("save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	chunks, err := ReadTextChunks(data)
	if err != nil {
		t.Fatalf("read chunks: %v", err)
	}
	byKey := map[string]string{}
	for _, c := range chunks {
		byKey[c.Keyword] = c.Text
	}
	if byKey["prompt"] != `{"seed":42}` {
		t.Errorf("unexpected prompt chunk: %q", byKey["prompt"])
	}
	if byKey["app"] != `"imagenodes"` {
		t.Errorf("unexpected app chunk: %q", byKey["app"])
	}
	if byKey["workflow"] != `["load","save"]` {
		t.Errorf("unexpected workflow chunk: %q", byKey["workflow"])
	}

	// The file must still load as a normal image.
	if _, err := LoadRGB(path); err != nil {
		t.Errorf("file with metadata no longer decodes: %v", err)
	}
}

func TestBatchPath(t *testing.T) {
	tests := []struct {
		path string
		i    int
		want string
	}{
		{"out.png", 0, "out-0.png"},
		{"out.png", 12, "out-12.png"},
		{"dir/out.png", 1, "dir/out-1.png"},
		{"noext", 2, "noext-2"},
		{"a.b.png", 0, "a.b-0.png"},
	}

	for _, tt := range tests {
		if got := batchPath(tt.path, tt.i); got != tt.want {
			t.Errorf("batchPath(%q, %d) = %q, want %q", tt.path, tt.i, got, tt.want)
		}
	}
}
