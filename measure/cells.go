package measure

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cells measures text in terminal cells: width in columns, height in lines.
type Cells struct {
	// EastAsian treats ambiguous-width characters as double width, as East
	// Asian terminals render them.
	EastAsian bool
}

// NewCells creates a cell measurer.
func NewCells(eastAsian bool) *Cells {
	return &Cells{EastAsian: eastAsian}
}

// Measure implements Measurer.
func (c *Cells) Measure(text string, maxWidth float64) Size {
	width, lines := layout(text, maxWidth, c.width)
	return Size{
		Width:  width,
		Height: float64(lines),
	}
}

// Width returns the cell width of s without wrapping.
func (c *Cells) Width(s string) int {
	if c.EastAsian {
		cond := runewidth.NewCondition()
		cond.EastAsianWidth = true
		return cond.StringWidth(s)
	}
	return uniseg.StringWidth(s)
}

func (c *Cells) width(s string) float64 {
	return float64(c.Width(s))
}
