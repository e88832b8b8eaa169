package tensor

import (
	"math/rand"
	"testing"
)

func TestToNCHW_KnownValues(t *testing.T) {
	// 1x2x2x3 image with distinct values per position
	img, _ := NewImage(1, 2, 2, 3)
	v := float32(0)
	for h := 0; h < 2; h++ {
		for w := 0; w < 2; w++ {
			for c := 0; c < 3; c++ {
				img.Set(0, h, w, c, v)
				v++
			}
		}
	}

	p := ToNCHW(img)
	if p.N != 1 || p.C != 3 || p.H != 2 || p.W != 2 {
		t.Fatalf("unexpected NCHW shape (%d,%d,%d,%d)", p.N, p.C, p.H, p.W)
	}
	for h := 0; h < 2; h++ {
		for w := 0; w < 2; w++ {
			for c := 0; c < 3; c++ {
				if p.At(0, c, h, w) != img.At(0, h, w, c) {
					t.Errorf("value mismatch at h=%d w=%d c=%d", h, w, c)
				}
			}
		}
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	shapes := []struct {
		n, h, w, c int
	}{
		{1, 1, 1, 1},
		{1, 4, 7, 3},
		{3, 5, 2, 3},
		{2, 8, 8, 4},
	}

	rng := rand.New(rand.NewSource(42))
	for _, s := range shapes {
		img, err := NewImage(s.n, s.h, s.w, s.c)
		if err != nil {
			t.Fatalf("NewImage: %v", err)
		}
		for i := range img.Data {
			img.Data[i] = rng.Float32()
		}

		back := ToNHWC(ToNCHW(img))
		if back.N != img.N || back.H != img.H || back.W != img.W || back.C != img.C {
			t.Errorf("shape (%d,%d,%d,%d): round trip changed shape", s.n, s.h, s.w, s.c)
			continue
		}
		for i := range img.Data {
			if back.Data[i] != img.Data[i] {
				t.Errorf("shape (%d,%d,%d,%d): value %d changed in round trip", s.n, s.h, s.w, s.c, i)
				break
			}
		}
	}
}

func TestConvert_DoesNotAliasInput(t *testing.T) {
	img, _ := NewImage(1, 2, 2, 3)
	p := ToNCHW(img)
	p.Data[0] = 99
	if img.Data[0] == 99 {
		t.Error("ToNCHW returned a view aliasing the input")
	}
}
