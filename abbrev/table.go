package abbrev

import (
	"fmt"
	"maps"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Source supplies the table an Abbreviator consults. A *Table is its own
// Source; watch.Reloader is a Source that swaps tables when the backing file
// changes.
type Source interface {
	Table() *Table
}

// Table maps lowercase words to abbreviations for each category.
// A Table is immutable after construction.
type Table struct {
	entries [numCategories]map[string]string
}

// NewTable builds a table from per-category mappings. Keys are lowercased;
// values are kept verbatim. Every category must be present (an empty mapping
// is fine).
func NewTable(m map[Category]map[string]string) (*Table, error) {
	t := &Table{}
	lower := cases.Lower(language.Und)

	for c, words := range m {
		if !c.valid() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, c)
		}
		entries := make(map[string]string, len(words))
		for word, abbreviation := range words {
			key := lower.String(word)
			if key == "" {
				return nil, fmt.Errorf("%w %s", ErrEmptyKey, c)
			}
			entries[key] = abbreviation
		}
		t.entries[c] = entries
	}

	for _, c := range precedence {
		if t.entries[c] == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingCategory, c)
		}
	}

	return t, nil
}

// Table returns t, making *Table a Source.
func (t *Table) Table() *Table {
	return t
}

// Lookup returns the abbreviation for word in the given category.
// The word is lowercased before lookup.
func (t *Table) Lookup(c Category, word string) (string, bool) {
	return t.lookup(c, cases.Lower(language.Und).String(word))
}

// lookup expects an already lowercased word.
func (t *Table) lookup(c Category, lower string) (string, bool) {
	if !c.valid() {
		return "", false
	}
	abbreviation, ok := t.entries[c][lower]
	return abbreviation, ok
}

// Len returns the number of words in a category.
func (t *Table) Len(c Category) int {
	if !c.valid() {
		return 0
	}
	return len(t.entries[c])
}

// Entries returns a copy of a category's mapping.
func (t *Table) Entries(c Category) map[string]string {
	if !c.valid() {
		return nil
	}
	return maps.Clone(t.entries[c])
}
