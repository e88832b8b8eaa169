package node

import (
	"errors"
	"testing"
)

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("A", "Node A", LoadRGB{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n, ok := r.Get("A")
	if !ok || n == nil {
		t.Fatal("expected to find registered node")
	}
	name, ok := r.DisplayName("A")
	if !ok || name != "Node A" {
		t.Errorf("expected display name %q, got %q", "Node A", name)
	}
}

func TestRegistry_DuplicateID(t *testing.T) {
	r := NewRegistry()
	if err := r.Register("A", "first", LoadRGB{}); err != nil {
		t.Fatal(err)
	}
	err := r.Register("A", "second", LoadRGBA{})
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got: %v", err)
	}
}

func TestRegistry_FrozenRejectsRegister(t *testing.T) {
	r := NewRegistry()
	r.Freeze()
	err := r.Register("A", "late", LoadRGB{})
	if !errors.Is(err, ErrFrozen) {
		t.Errorf("expected ErrFrozen, got: %v", err)
	}
}

func TestRegistry_NilNode(t *testing.T) {
	r := NewRegistry()
	err := r.Register("A", "nil", nil)
	if !errors.Is(err, ErrNilNode) {
		t.Errorf("expected ErrNilNode, got: %v", err)
	}
}

func TestRegistry_IDsPreserveOrder(t *testing.T) {
	r := NewRegistry()
	for _, id := range []string{"C", "A", "B"} {
		if err := r.Register(id, id, LoadRGB{}); err != nil {
			t.Fatal(err)
		}
	}
	ids := r.IDs()
	want := []string{"C", "A", "B"}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, ids)
		}
	}
}

func TestBuiltins_Complete(t *testing.T) {
	r, err := Builtins()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"ImageLoadRGB",
		"ImageLoadRGBA",
		"ImageSaveToPath",
		"ImageResize",
		"MaskResize",
		"ImageResizeToSquare",
		"ImageResizeByFactor",
		"ImageResizeByShorterSide",
		"ImageResizeByLongerSide",
	}
	if r.Len() != len(want) {
		t.Fatalf("expected %d builtin nodes, got %d", len(want), r.Len())
	}
	for _, id := range want {
		n, ok := r.Get(id)
		if !ok {
			t.Errorf("missing builtin node %q", id)
			continue
		}
		if _, ok := r.DisplayName(id); !ok {
			t.Errorf("missing display name for %q", id)
		}
		spec := n.Spec()
		if spec.Category != "image" {
			t.Errorf("%s: expected category image, got %q", id, spec.Category)
		}
	}

	// Only the save node is terminal.
	for _, id := range want {
		n, _ := r.Get(id)
		isOutput := n.Spec().OutputNode
		if id == "ImageSaveToPath" && !isOutput {
			t.Error("ImageSaveToPath must be an output node")
		}
		if id != "ImageSaveToPath" && isOutput {
			t.Errorf("%s must not be an output node", id)
		}
	}
}

func TestBuiltins_Frozen(t *testing.T) {
	r, err := Builtins()
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Register("Extra", "extra", LoadRGB{}); !errors.Is(err, ErrFrozen) {
		t.Errorf("expected ErrFrozen after Builtins, got: %v", err)
	}
}

func TestBuiltins_IndependentInstances(t *testing.T) {
	a, _ := Builtins()
	b, _ := Builtins()
	if a == b {
		t.Error("expected each Builtins call to return a fresh registry")
	}
}
