package labelparser

import (
	"strings"
	"unicode/utf8"
)

const notesSeparator = ", "

// aggregateNotes prefers an explicit notes section and falls back to
// scoring lines by flavor vocabulary and list punctuation.
func (p *Parser) aggregateNotes(lines []string, info ParsedCoffeeInfo) string {
	if notes := p.labeledNotes(lines); SanitizeValue(notes, p.punctuation) != "" {
		return notes
	}
	return p.scoredNotes(lines, assignedValues(info))
}

func (p *Parser) labeledNotes(lines []string) string {
	start := -1
	var pieces []string
	for i, line := range lines {
		t, rest, ok := p.labels.match(line)
		if ok && t.notes {
			start = i
			if rest != "" {
				pieces = append(pieces, rest)
			}
			break
		}
	}
	if start < 0 {
		return ""
	}
	for _, line := range lines[start+1:] {
		if _, _, ok := p.labels.match(line); ok {
			break
		}
		pieces = append(pieces, line)
	}
	return joinNotes(pieces)
}

func (p *Parser) scoredNotes(lines []string, taken map[string]struct{}) string {
	var pieces []string
	for _, line := range lines {
		if _, ok := taken[line]; ok {
			continue
		}
		if _, _, ok := p.labels.match(line); ok {
			continue
		}
		commas := countCommas(line)
		hits := p.flavorHits(line)
		if (commas >= 2 && utf8.RuneCountInString(line) > 10) || hits >= 2 || (commas >= 1 && hits >= 1) {
			pieces = append(pieces, line)
		}
	}
	return joinNotes(pieces)
}

// flavorHits counts distinct vocabulary terms contained in line.
func (p *Parser) flavorHits(line string) int {
	lower := strings.ToLower(line)
	n := 0
	for _, kw := range p.flavors {
		if strings.Contains(lower, kw) {
			n++
		}
	}
	return n
}

func countCommas(s string) int {
	return strings.Count(s, ",") + strings.Count(s, "，") + strings.Count(s, "、")
}

func joinNotes(pieces []string) string {
	cleaned := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		piece = strings.Trim(piece, " \t,;，、")
		if piece != "" {
			cleaned = append(cleaned, piece)
		}
	}
	return strings.Join(cleaned, notesSeparator)
}
