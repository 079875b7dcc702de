// Package abbrev shortens labels by replacing whole words with standard
// abbreviations.
//
// A Table holds three categories of word -> abbreviation mappings:
//
//   - Abbreviation: ordinary words with common short forms ("saint" -> "St")
//   - Direction: compass directions ("northwest" -> "NW")
//   - Classification: road type suffixes ("boulevard" -> "Blvd")
//
// Tables are immutable once built and may be shared freely between
// goroutines.
//
// # Basic Usage
//
// Load a table once at startup and build an Abbreviator around it:
//
//	table := abbrev.MustLoadFile("abbreviations.yaml")
//	ab := abbrev.New(table)
//	short := ab.Abbreviate("North Main Street", abbrev.AllCategories)
//	// short == "N Main St"
//
// Or use the embedded US English table:
//
//	ab := abbrev.New(abbrev.Default())
//
// # Precedence
//
// Each word is matched independently. When a word appears in more than one
// enabled category, Abbreviation wins over Direction, which wins over
// Classification. Words with no match keep their original casing.
//
// # Styled Text
//
// AbbreviateInPlace rewrites any Editable value (see package styled) by
// replacing only the matched word ranges, leaving everything else,
// including styling, untouched.
//
// # Table Files
//
// Table files are YAML, TOML or JSON documents with exactly three top-level
// keys: abbreviations, directions and classifications. Schema returns the
// JSON Schema for the format.
package abbrev
