package node

// builtinEntry is one row of the static registration table.
type builtinEntry struct {
	id          string
	displayName string
	node        Node
}

// builtins is the complete registration list, evaluated once by
// Builtins. Order here is the order the host sees.
var builtins = []builtinEntry{
	{"ImageLoadRGB", "Image Load RGB", LoadRGB{}},
	{"ImageLoadRGBA", "Image Load RGBA", LoadRGBA{}},
	{"ImageSaveToPath", "Image Save To Path", SaveToPath{}},
	{"ImageResize", "Image Resize", Resize{}},
	{"MaskResize", "Mask Resize", MaskResize{}},
	{"ImageResizeToSquare", "Image Resize to Square", ResizeToSquare{}},
	{"ImageResizeByFactor", "Image Resize by Factor", ResizeByFactor{}},
	{"ImageResizeByShorterSide", "Image Resize by Shorter Side", ResizeByShorterSide{}},
	{"ImageResizeByLongerSide", "Image Resize by Longer Side", ResizeByLongerSide{}},
}

// Builtins returns a frozen registry holding every builtin node. Each
// call builds a fresh registry, so call sites never share mutable
// state.
func Builtins() (*Registry, error) {
	r := NewRegistry()
	for _, e := range builtins {
		if err := r.Register(e.id, e.displayName, e.node); err != nil {
			return nil, err
		}
	}
	r.Freeze()
	return r, nil
}
