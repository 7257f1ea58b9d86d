package css

import (
	"fmt"
	"math"
)

// maxThreshold caps container-query thresholds, in logical pixels.
const maxThreshold = math.MaxUint32

// MinWidth converts a length to a container-query threshold in whole logical
// pixels. Fractional pixel values are rounded up, so a container never
// matches a threshold it has not reached. Thresholds above math.MaxUint32
// are rejected.
func MinWidth(d DimenT, rootFontSize float64) (uint, error) {
	px, ok := d.Pixels(rootFontSize)
	if !ok {
		return 0, fmt.Errorf("%w: %s has no definite size", ErrBadLength, d)
	}
	if px < 0 || math.IsNaN(px) || math.IsInf(px, 0) {
		return 0, fmt.Errorf("%w: %s is not a valid width", ErrBadLength, d)
	}
	if px > maxThreshold {
		return 0, fmt.Errorf("%w: %s exceeds the largest threshold", ErrBadLength, d)
	}
	return uint(math.Ceil(px)), nil
}
