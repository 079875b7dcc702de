package fit

import (
	"github.com/randalmurphal/labelkit/abbrev"
	"github.com/randalmurphal/labelkit/measure"
)

// String fits text to bounds using the embedded default table.
func String(text string, bounds Bounds, m measure.Measurer) string {
	return NewFitter(abbrev.New(abbrev.Default()), m).FitString(text, bounds)
}

// Styled fits e to bounds in place using the embedded default table.
func Styled(e abbrev.Editable, bounds Bounds, m measure.Measurer) error {
	_, err := NewFitter(abbrev.New(abbrev.Default()), m).FitStyled(e, bounds)
	return err
}

// Cells fits text to a terminal area of at most width columns and height
// lines. The extra column turns the strict width check into "at most width".
func Cells(text string, width, height int) string {
	return String(text, Bounds{Width: float64(width + 1), Height: float64(height)}, measure.NewCells(false))
}
