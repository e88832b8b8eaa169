package resample

import (
	"fmt"
	"math"
)

// TargetByFactor returns the target (height, width) for scaling both
// spatial dimensions by the same factor, rounded to the nearest pixel.
func TargetByFactor(srcH, srcW int, factor float64) (height, width int) {
	return int(math.Round(float64(srcH) * factor)), int(math.Round(float64(srcW) * factor))
}

// TargetShorterSide returns the target (height, width) that scales the
// shorter of the two source sides to size while preserving aspect ratio.
// On a square source both sides become size.
func TargetShorterSide(srcH, srcW, size int) (height, width int, err error) {
	if srcH <= 0 || srcW <= 0 {
		return 0, 0, fmt.Errorf("%w: (%d,%d)", ErrBadSource, srcH, srcW)
	}
	if srcH <= srcW {
		return size, roundRatio(srcW, size, srcH), nil
	}
	return roundRatio(srcH, size, srcW), size, nil
}

// TargetLongerSide returns the target (height, width) that scales the
// longer of the two source sides to size while preserving aspect ratio.
func TargetLongerSide(srcH, srcW, size int) (height, width int, err error) {
	if srcH <= 0 || srcW <= 0 {
		return 0, 0, fmt.Errorf("%w: (%d,%d)", ErrBadSource, srcH, srcW)
	}
	if srcH >= srcW {
		return size, roundRatio(srcW, size, srcH), nil
	}
	return roundRatio(srcH, size, srcW), size, nil
}

// roundRatio computes round(side * size / ref) in float to avoid
// integer-overflow surprises on large dimensions.
func roundRatio(side, size, ref int) int {
	return int(math.Round(float64(side) * float64(size) / float64(ref)))
}
