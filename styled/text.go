package styled

import (
	"errors"
	"fmt"
	"maps"
)

// ErrOutOfRange indicates a byte range outside the text.
var ErrOutOfRange = errors.New("range out of bounds")

// Attributes are the styling properties of a run, such as "font" or "color".
type Attributes map[string]string

// Equal reports whether a and b hold the same properties.
func (a Attributes) Equal(b Attributes) bool {
	return maps.Equal(a, b)
}

// Run is a span of Len bytes sharing one set of attributes.
type Run struct {
	Len   int
	Attrs Attributes
}

// Text is an attributed string. The zero value is an empty text.
// Text is not safe for concurrent mutation.
type Text struct {
	s    string
	runs []Run
}

// New creates a text with a single run.
func New(s string, attrs Attributes) *Text {
	t := &Text{}
	t.Append(s, attrs)
	return t
}

// Append adds s with the given attributes to the end of the text.
func (t *Text) Append(s string, attrs Attributes) *Text {
	if s == "" {
		return t
	}
	t.s += s
	t.runs = appendRun(t.runs, Run{Len: len(s), Attrs: maps.Clone(attrs)})
	return t
}

// String returns the plain content.
func (t *Text) String() string {
	return t.s
}

// Len returns the content length in bytes.
func (t *Text) Len() int {
	return len(t.s)
}

// Runs returns a copy of the attribute runs in order.
func (t *Text) Runs() []Run {
	out := make([]Run, len(t.runs))
	for i, r := range t.runs {
		out[i] = Run{Len: r.Len, Attrs: maps.Clone(r.Attrs)}
	}
	return out
}

// AttributesAt returns the attributes of the byte at offset. An offset equal
// to Len reports the last run's attributes; nil is returned for an empty
// text or an offset out of range.
func (t *Text) AttributesAt(offset int) Attributes {
	if offset < 0 || offset > len(t.s) || len(t.runs) == 0 {
		return nil
	}
	pos := 0
	for _, r := range t.runs {
		if offset < pos+r.Len {
			return maps.Clone(r.Attrs)
		}
		pos += r.Len
	}
	return maps.Clone(t.runs[len(t.runs)-1].Attrs)
}

// Replace replaces the bytes in [start, end) with s. The replacement takes
// the attributes in effect at start.
func (t *Text) Replace(start, end int, s string) error {
	if start < 0 || end < start || end > len(t.s) {
		return fmt.Errorf("%w: [%d, %d) in text of length %d", ErrOutOfRange, start, end, len(t.s))
	}

	attrs := t.attrsAt(start)

	runs := t.slice(0, start)
	if s != "" {
		runs = appendRun(runs, Run{Len: len(s), Attrs: attrs})
	}
	for _, r := range t.slice(end, len(t.s)) {
		runs = appendRun(runs, r)
	}

	t.s = t.s[:start] + s + t.s[end:]
	t.runs = runs
	return nil
}

// attrsAt is AttributesAt without the copy.
func (t *Text) attrsAt(offset int) Attributes {
	pos := 0
	for _, r := range t.runs {
		if offset < pos+r.Len {
			return r.Attrs
		}
		pos += r.Len
	}
	if len(t.runs) > 0 {
		return t.runs[len(t.runs)-1].Attrs
	}
	return nil
}

// slice returns the runs covering [from, to), trimmed to that range.
func (t *Text) slice(from, to int) []Run {
	var out []Run
	pos := 0
	for _, r := range t.runs {
		rs, re := pos, pos+r.Len
		pos = re
		lo, hi := max(rs, from), min(re, to)
		if hi > lo {
			out = append(out, Run{Len: hi - lo, Attrs: r.Attrs})
		}
	}
	return out
}

// appendRun merges r into the last run when their attributes match.
func appendRun(runs []Run, r Run) []Run {
	if r.Len == 0 {
		return runs
	}
	if n := len(runs); n > 0 && runs[n-1].Attrs.Equal(r.Attrs) {
		runs[n-1].Len += r.Len
		return runs
	}
	return append(runs, r)
}
