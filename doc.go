// Package labelkit shortens map and navigation labels so they fit a display
// area.
//
// Each subpackage can be used independently:
//
//   - abbrev: abbreviation tables and word-by-word substitution
//   - fit: escalate through substitution tiers until a label fits
//   - measure: pluggable text measurement (estimating and terminal cells)
//   - styled: attributed text with in-place range replacement
//   - watch: hot-reloading table source
//   - config: settings file for hosts and the labelfit CLI
//
// # Quick Start
//
// Fit a label with the embedded US English table:
//
//	import (
//	    "github.com/randalmurphal/labelkit/abbrev"
//	    "github.com/randalmurphal/labelkit/fit"
//	    "github.com/randalmurphal/labelkit/measure"
//	)
//
//	f := fit.NewFitter(abbrev.New(abbrev.Default()), measure.NewEstimating())
//	label := f.FitString("Northwest Boulevard", fit.Bounds{Width: 120, Height: 16})
//	// label == "Northwest Blvd"
//
// Load your own table once at startup:
//
//	table := abbrev.MustLoadFile("abbreviations.yaml")
//	ab := abbrev.New(table)
//
// # Design Philosophy
//
//   - Tables are immutable and shared by reference
//   - Measurement is injected, so fitting is platform independent
//   - Lookup misses and labels that never fit are normal outcomes, not errors
//   - Each package usable independently
package labelkit
