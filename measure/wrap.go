package measure

import "strings"

// layout wraps the whitespace-separated words of text greedily into lines no
// wider than maxWidth and returns the widest line and the line count. A word
// wider than maxWidth gets a line to itself. Explicit newlines always break.
func layout(text string, maxWidth float64, width func(string) float64) (float64, int) {
	if text == "" {
		return 0, 0
	}

	spaceWidth := width(" ")
	var widest float64
	lines := 0

	for _, paragraph := range strings.Split(text, "\n") {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines++
			continue
		}

		if !wraps(maxWidth) {
			w := width(strings.Join(words, " "))
			widest = max(widest, w)
			lines++
			continue
		}

		var line float64
		lines++
		for i, word := range words {
			w := width(word)
			switch {
			case i == 0:
				line = w
			case line+spaceWidth+w <= maxWidth:
				line += spaceWidth + w
			default:
				widest = max(widest, line)
				lines++
				line = w
			}
		}
		widest = max(widest, line)
	}

	return widest, lines
}
