package abbrev

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Editable is text that can be rewritten in place over byte ranges, such as
// *styled.Text.
type Editable interface {
	// String returns the current content.
	String() string

	// Replace replaces the bytes in [start, end) with s.
	Replace(start, end int, s string) error
}

// Abbreviator rewrites text word by word using a table.
// It is safe for concurrent use.
type Abbreviator struct {
	src Source
}

// New creates an abbreviator backed by src.
func New(src Source) *Abbreviator {
	if src == nil {
		panic("abbrev.New: source cannot be nil")
	}
	return &Abbreviator{src: src}
}

// Table returns the table currently in use.
func (a *Abbreviator) Table() *Table {
	return a.src.Table()
}

// Match returns the abbreviation for a single word and the category it came
// from. Categories are consulted in precedence order and only if enabled.
func (a *Abbreviator) Match(word string, set CategorySet) (string, Category, bool) {
	return match(a.src.Table(), cases.Lower(language.Und), word, set)
}

// Abbreviate returns text with every matching word replaced. Words are
// rejoined with single spaces; empty or whitespace-only text yields "".
func (a *Abbreviator) Abbreviate(text string, set CategorySet) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}
	if set.Empty() {
		return strings.Join(fields, " ")
	}

	table := a.src.Table()
	lower := cases.Lower(language.Und)

	for i, word := range fields {
		if abbreviation, _, ok := match(table, lower, word, set); ok {
			fields[i] = abbreviation
		}
	}

	return strings.Join(fields, " ")
}

type replacement struct {
	start, end int
	text       string
}

// AbbreviateInPlace replaces each matching word of e within its own range,
// leaving every other byte of e untouched. It returns the number of words
// replaced.
func (a *Abbreviator) AbbreviateInPlace(e Editable, set CategorySet) (int, error) {
	if set.Empty() {
		return 0, nil
	}

	words := Words(e.String())
	if len(words) == 0 {
		return 0, nil
	}

	table := a.src.Table()
	lower := cases.Lower(language.Und)

	var pending []replacement
	for _, w := range words {
		if abbreviation, _, ok := match(table, lower, w.Text, set); ok {
			pending = append(pending, replacement{start: w.Start, end: w.End, text: abbreviation})
		}
	}

	// Apply back to front so earlier offsets stay valid.
	for i := len(pending) - 1; i >= 0; i-- {
		r := pending[i]
		if err := e.Replace(r.start, r.end, r.text); err != nil {
			return len(pending) - 1 - i, err
		}
	}

	return len(pending), nil
}

// match is shared by the plain and in-place paths. lower is not safe for
// concurrent use, so callers pass one per call.
func match(table *Table, lower cases.Caser, word string, set CategorySet) (string, Category, bool) {
	if set.Empty() || word == "" {
		return "", 0, false
	}

	key := lower.String(word)
	for _, c := range precedence {
		if !set.Has(c) {
			continue
		}
		if abbreviation, ok := table.lookup(c, key); ok {
			return abbreviation, c, true
		}
	}

	return "", 0, false
}
