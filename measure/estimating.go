package measure

import "unicode/utf8"

// DefaultCharWidth is the default average glyph width in points.
const DefaultCharWidth = 8.0

// DefaultLineHeight is the default line height in points.
const DefaultLineHeight = 16.0

// Estimating measures text assuming every character has the same width.
type Estimating struct {
	// CharWidth is the width of one character.
	// Default is 8.
	CharWidth float64

	// LineHeight is the height of one line.
	// Default is 16.
	LineHeight float64
}

// NewEstimating creates an estimating measurer with default metrics.
func NewEstimating() *Estimating {
	return &Estimating{
		CharWidth:  DefaultCharWidth,
		LineHeight: DefaultLineHeight,
	}
}

// NewEstimatingWithMetrics creates an estimating measurer with custom
// metrics. Values <= 0 fall back to the defaults.
func NewEstimatingWithMetrics(charWidth, lineHeight float64) *Estimating {
	if charWidth <= 0 {
		charWidth = DefaultCharWidth
	}
	if lineHeight <= 0 {
		lineHeight = DefaultLineHeight
	}
	return &Estimating{
		CharWidth:  charWidth,
		LineHeight: lineHeight,
	}
}

// Measure implements Measurer.
func (e *Estimating) Measure(text string, maxWidth float64) Size {
	width, lines := layout(text, maxWidth, e.width)
	return Size{
		Width:  width,
		Height: float64(lines) * e.LineHeight,
	}
}

// Count runes rather than bytes so multi-byte characters count once.
func (e *Estimating) width(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * e.CharWidth
}
