package node

import (
	"errors"
	"fmt"
	"math"

	"imagenodes/tensor"
)

// Input binding errors
var (
	ErrMissingInput = errors.New("node: missing required input")
	ErrInputType    = errors.New("node: input has wrong type")
)

// Inputs holds the keyword-bound values for one node invocation.
// The typed accessors validate presence and dynamic type; wrong rank or
// type is an invalid-input error, never a silent coercion.
type Inputs map[string]any

// Outputs is the ordered list of values a node produced, matching the
// node's declared return names.
type Outputs []any

// Image returns the image tensor bound to name.
func (in Inputs) Image(name string) (*tensor.Image, error) {
	v, ok := in[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingInput, name)
	}
	img, ok := v.(*tensor.Image)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T, want image", ErrInputType, name, v)
	}
	return img, nil
}

// Mask returns the mask tensor bound to name.
func (in Inputs) Mask(name string) (*tensor.Mask, error) {
	v, ok := in[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingInput, name)
	}
	m, ok := v.(*tensor.Mask)
	if !ok {
		return nil, fmt.Errorf("%w: %q is %T, want mask", ErrInputType, name, v)
	}
	return m, nil
}

// String returns the string bound to name.
func (in Inputs) String(name string) (string, error) {
	v, ok := in[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingInput, name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q is %T, want string", ErrInputType, name, v)
	}
	return s, nil
}

// Int returns the integer bound to name. Whole-valued floats are
// accepted since host documents often carry numbers untyped.
func (in Inputs) Int(name string) (int, error) {
	v, ok := in[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingInput, name)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == math.Trunc(n) {
			return int(n), nil
		}
	}
	return 0, fmt.Errorf("%w: %q is %T, want int", ErrInputType, name, v)
}

// Float returns the float bound to name. Integers are widened.
func (in Inputs) Float(name string) (float64, error) {
	v, ok := in[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingInput, name)
	}
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	}
	return 0, fmt.Errorf("%w: %q is %T, want float", ErrInputType, name, v)
}

// Any returns the raw value bound to name, or nil when absent. Used for
// hidden inputs whose shape is opaque to the node.
func (in Inputs) Any(name string) any {
	return in[name]
}
