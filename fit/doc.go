// Package fit abbreviates labels only as much as needed to fit a display
// area.
//
// A Fitter escalates through three tiers, each adding one category of
// substitutions to the current text:
//
//  1. classifications (road suffixes: "Boulevard" -> "Blvd")
//  2. directions ("Northwest" -> "NW")
//  3. abbreviations (common words: "Saint" -> "St")
//
// It re-measures after each tier and stops at the first tier whose output
// fits. When nothing fits, the fully abbreviated text is returned; that is a
// normal outcome, not an error.
//
// # Fit Predicate
//
// Text fits when its measured width is strictly less than the bounds width
// and its measured height is at most the bounds height.
//
// # Basic Usage
//
//	f := fit.NewFitter(abbrev.New(abbrev.Default()), measure.NewEstimating())
//	res := f.Fit("Northwest Boulevard", fit.Bounds{Width: 120, Height: 16})
//	fmt.Println(res.Text, res.Tier, res.Fits)
//
// Styled text is rewritten in place:
//
//	res, err := f.FitStyled(label, bounds)
//
// # Legacy Measurement
//
// WithLegacyMeasurement reproduces an older behavior where the size was
// measured once from the original text and reused for every tier check, so
// any label that did not fit initially was always fully abbreviated. It
// exists for output compatibility only.
package fit
