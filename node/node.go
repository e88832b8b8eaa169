// Package node defines the plugin contract exposed to a node-graph
// host: typed input/output slot descriptors, an explicit registry, and
// the builtin image nodes.
package node

// Type identifies what a slot carries on the graph wire.
type Type string

const (
	// TypeImage is a full-color NHWC float32 tensor.
	TypeImage Type = "IMAGE"
	// TypeMask is a (N,H,W) float32 mask tensor.
	TypeMask Type = "MASK"
	// TypeString is a plain string value.
	TypeString Type = "STRING"
	// TypeInt is an integer value.
	TypeInt Type = "INT"
	// TypeFloat is a floating-point value.
	TypeFloat Type = "FLOAT"
	// TypeChoice is a string restricted to a closed choice list.
	TypeChoice Type = "CHOICE"
)

// Slot describes one typed input or output of a node. Default, Min,
// Max and Step are widget metadata for the host UI; they are not
// enforced at execution time.
type Slot struct {
	Name    string
	Type    Type
	Default any
	Min     float64
	Max     float64
	Step    float64
	Choices []string
}

// ImageSlot returns an image input slot.
func ImageSlot(name string) Slot {
	return Slot{Name: name, Type: TypeImage}
}

// MaskSlot returns a mask input slot.
func MaskSlot(name string) Slot {
	return Slot{Name: name, Type: TypeMask}
}

// StringSlot returns a string input slot with a default value.
func StringSlot(name, def string) Slot {
	return Slot{Name: name, Type: TypeString, Default: def}
}

// IntSlot returns an integer input slot with widget range metadata.
func IntSlot(name string, def, min, max, step int) Slot {
	return Slot{
		Name: name, Type: TypeInt, Default: def,
		Min: float64(min), Max: float64(max), Step: float64(step),
	}
}

// FloatSlot returns a float input slot with widget range metadata.
func FloatSlot(name string, def, min, max, step float64) Slot {
	return Slot{Name: name, Type: TypeFloat, Default: def, Min: min, Max: max, Step: step}
}

// ChoiceSlot returns a choice input slot over a closed value set.
func ChoiceSlot(name string, choices []string) Slot {
	return Slot{Name: name, Type: TypeChoice, Choices: choices}
}

// Spec is the static descriptor a node publishes to the host: UI
// category, input slots by kind, ordered outputs, and whether the node
// is a terminal side-effecting output with no graph values.
type Spec struct {
	// Category groups the node in the host UI.
	Category string
	// Required inputs must be connected or set by the host.
	Required []Slot
	// Optional inputs may be omitted.
	Optional []Slot
	// Hidden inputs are bound by the host, not the user; save nodes
	// receive the originating prompt graph and extra metadata here.
	Hidden []Slot
	// ReturnNames and ReturnTypes describe the outputs in order.
	ReturnNames []string
	ReturnTypes []Type
	// OutputNode marks a terminal node whose effect is a file write.
	OutputNode bool
}

// Node is a stateless unit of graph computation. Execute is a pure
// function from bound inputs to ordered outputs, invoked once per graph
// execution step; any error aborts that step without retry.
type Node interface {
	Spec() Spec
	Execute(in Inputs) (Outputs, error)
}
