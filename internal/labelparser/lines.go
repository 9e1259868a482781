package labelparser

import (
	"slices"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// OrderLines sorts blocks top to bottom and flattens them into trimmed,
// non-blank lines. Blocks without a position count as position 0; the sort
// is stable so ties (and position-less input) keep their input order.
func OrderLines(blocks []Block) []string {
	sorted := slices.Clone(blocks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return position(sorted[i]) < position(sorted[j])
	})

	var lines []string
	for _, b := range sorted {
		lines = append(lines, SplitLines(b.Text)...)
	}
	return lines
}

// SplitLines breaks a text blob into trimmed, non-blank lines.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = normalizeLine(l); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// normalizeLine composes Hangul jamo and accented letters that some
// recognizers emit decomposed, then trims.
func normalizeLine(l string) string {
	return strings.TrimSpace(norm.NFC.String(l))
}

func position(b Block) float64 {
	if b.VerticalPosition == nil {
		return 0
	}
	return *b.VerticalPosition
}
