package layout

import "strings"

// placeholder rendered for empty or whitespace-only cells.
const placeholder = "-"

// wrapText splits text into the fewest lines whose measured width stays
// within the column width. Words that alone exceed the width are split at
// rune granularity; a fragment is only forced out whole when even a single
// rune does not fit, which keeps the function total under any width.
func wrapText(text string, width float64, bold bool, measure MeasureFunc) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{placeholder}
	}

	var lines []string
	var current string
	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if measure(candidate, bold) <= width {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
		if measure(word, bold) <= width {
			current = word
			continue
		}
		// Oversized word: split by runes.
		var chunk []rune
		for _, r := range word {
			next := append(chunk, r)
			if len(chunk) > 0 && measure(string(next), bold) > width {
				lines = append(lines, string(chunk))
				chunk = []rune{r}
				continue
			}
			chunk = next
		}
		current = string(chunk)
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
