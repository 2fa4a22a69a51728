package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrap breaks line into pieces no wider than width display columns,
// splitting on spaces and cutting words that do not fit on their own.
// Leading indentation is kept on the first piece.
func wrap(line string, width int) []string {
	if width <= 0 || textWidth(line) <= width {
		return []string{line}
	}

	var out []string
	cur, started := "", false
	for _, word := range strings.Split(line, " ") {
		next := word
		if started {
			next = cur + " " + word
			if textWidth(next) > width {
				out = append(out, cur)
				next = word
			}
		}
		for textWidth(next) > width {
			head := runewidth.Truncate(next, width, "")
			if head == "" {
				break
			}
			out = append(out, head)
			next = next[len(head):]
		}
		cur, started = next, true
	}
	return append(out, cur)
}
