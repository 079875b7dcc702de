// Package measure reports the rendered size of a label.
//
// Rendering is platform specific, so callers normally plug in their own
// Measurer backed by the real font engine. The package also ships two
// self-contained measurers that are good enough for tests, terminals and
// server-side layout estimates:
//
//   - Estimating: every character has the same width (proportional fonts,
//     roughly)
//   - Cells: terminal cell widths, grapheme aware, with optional East Asian
//     ambiguous-width handling
//
// Both wrap text greedily at word boundaries when a maximum width is given,
// so the reported height grows with the number of lines.
//
// # Custom Measurers
//
// Any function can be used as a Measurer:
//
//	m := measure.MeasureFunc(func(text string, maxWidth float64) measure.Size {
//	    return myFontEngine.Bounds(text, maxWidth)
//	})
package measure
