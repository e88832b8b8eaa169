// Package resample resizes image and mask tensors through the
// golang.org/x/image/draw scalers. Scaling operates on channel-first
// planes so the same path serves full-color images and masks.
package resample

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/image/draw"
)

// Resample errors
var (
	ErrUnknownKernel = errors.New("resample: unknown interpolation kernel")
	ErrBadTarget     = errors.New("resample: target dimensions must be positive")
	ErrBadSource     = errors.New("resample: source dimensions must be positive")
)

// Kernel selects the interpolation used when resizing.
type Kernel int

const (
	// KernelBicubic is Catmull-Rom cubic interpolation.
	KernelBicubic Kernel = iota
	// KernelBilinear is linear interpolation in both axes.
	KernelBilinear
	// KernelNearest is nearest-neighbor sampling.
	KernelNearest
	// KernelNearestExact is nearest-neighbor with center-of-pixel
	// mapping. The draw package's nearest scaler already maps pixel
	// centers, so it backs both nearest variants.
	KernelNearestExact
)

// kernelNames maps normalized choice strings to kernels. The choice set
// is closed; anything else is a contract violation.
var kernelNames = map[string]Kernel{
	"BICUBIC":       KernelBicubic,
	"BILINEAR":      KernelBilinear,
	"NEAREST":       KernelNearest,
	"NEAREST_EXACT": KernelNearestExact,
}

// ParseKernel parses an interpolation choice string. Matching is
// case-insensitive and spaces are treated as underscores, so both
// "nearest exact" and "NEAREST_EXACT" are accepted.
//
// Returns ErrUnknownKernel for anything outside the closed choice set;
// there is no silent default.
func ParseKernel(s string) (Kernel, error) {
	normalized := strings.ReplaceAll(strings.ToUpper(s), " ", "_")
	k, ok := kernelNames[normalized]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownKernel, s)
	}
	return k, nil
}

// String returns the canonical choice name for the kernel.
func (k Kernel) String() string {
	switch k {
	case KernelBicubic:
		return "bicubic"
	case KernelBilinear:
		return "bilinear"
	case KernelNearest:
		return "nearest"
	case KernelNearestExact:
		return "nearest exact"
	default:
		return fmt.Sprintf("Kernel(%d)", int(k))
	}
}

// Choices returns the accepted choice strings in declaration order,
// for node input descriptors.
func Choices() []string {
	return []string{"bicubic", "bilinear", "nearest", "nearest exact"}
}

// scaler returns the draw interpolator backing the kernel. The kernel
// scalers integrate over the full source footprint on downscale, which
// provides the anti-aliased resampling this package promises.
func (k Kernel) scaler() draw.Interpolator {
	switch k {
	case KernelBicubic:
		return draw.CatmullRom
	case KernelBilinear:
		return draw.BiLinear
	default:
		return draw.NearestNeighbor
	}
}
