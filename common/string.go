package common

import "strings"

// WrapString breaks s into lines no wider than width runes, splitting at
// the last space before the limit when one exists. Used to keep chat
// output readable in a terminal. Operates on runes so multibyte text is
// never split mid-character.
func WrapString(s string, width int) string {
	if width <= 0 {
		return s
	}

	runes := []rune(s)

	var lines []string
	for len(runes) > width {
		splitAt := width
		// Try to split at the last space before the specified width
		for i := width; i > 0; i-- {
			if runes[i] == ' ' {
				splitAt = i
				break
			}
		}
		lines = append(lines, string(runes[:splitAt]))
		runes = runes[splitAt:]
		// Remove leading spaces
		for len(runes) > 0 && runes[0] == ' ' {
			runes = runes[1:]
		}
	}
	if len(runes) > 0 {
		lines = append(lines, string(runes))
	}
	return strings.Join(lines, "\n")
}
