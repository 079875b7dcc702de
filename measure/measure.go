package measure

import "math"

// Size is the rendered extent of a piece of text.
type Size struct {
	Width  float64
	Height float64
}

// Measurer reports the size text would occupy when rendered with at most
// maxWidth horizontal space and unlimited height. Implementations must not
// have side effects.
type Measurer interface {
	Measure(text string, maxWidth float64) Size
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(text string, maxWidth float64) Size

// Measure calls f.
func (f MeasureFunc) Measure(text string, maxWidth float64) Size {
	return f(text, maxWidth)
}

// Unbounded is the maxWidth that disables wrapping.
var Unbounded = math.Inf(1)

func wraps(maxWidth float64) bool {
	return maxWidth > 0 && !math.IsInf(maxWidth, 1)
}
