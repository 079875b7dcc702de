package fit

import "github.com/randalmurphal/labelkit/measure"

// Bounds is the display area a label must fit in.
type Bounds struct {
	Width  float64
	Height float64
}

// Fits reports whether size satisfies the bounds: width strictly less than
// Width, height at most Height.
func (b Bounds) Fits(size measure.Size) bool {
	return size.Width < b.Width && size.Height <= b.Height
}
