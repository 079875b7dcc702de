package abbrev

import (
	"unicode"
	"unicode/utf8"
)

// Word is a maximal run of non-whitespace characters with its byte span in
// the text it came from.
type Word struct {
	Text  string
	Start int
	End   int
}

// Words splits s on Unicode whitespace and returns the words in document
// order.
func Words(s string) []Word {
	var words []Word
	start := -1

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			if start >= 0 {
				words = append(words, Word{Text: s[start:i], Start: start, End: i})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
		i += size
	}

	if start >= 0 {
		words = append(words, Word{Text: s[start:], Start: start, End: len(s)})
	}

	return words
}
