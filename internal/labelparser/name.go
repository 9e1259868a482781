package labelparser

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	reDigitsOnly   = regexp.MustCompile(`^\d+$`)
	reAltitudeHead = regexp.MustCompile(`(?i)^\d{3,4}\s*(?:m|masl)`)
	reYearHead     = regexp.MustCompile(`^(?:20\d{2}|\d{4})`)
	reLatinRun     = regexp.MustCompile(`\p{Latin}{3,}`)
	reCJKRun       = regexp.MustCompile(`[\p{Hangul}\p{Han}\p{Hiragana}\p{Katakana}]{2,}`)
)

// resolveName picks the first name-like line near the top of the label.
// Label lines and lines inside a notes section are never names.
func (p *Parser) resolveName(lines []string, info ParsedCoffeeInfo, notesSection []bool) string {
	taken := assignedValues(info)
	for i := 0; i < len(lines) && i < p.nameScanLines; i++ {
		line := lines[i]
		if i < len(notesSection) && notesSection[i] {
			continue
		}
		if _, ok := taken[line]; ok {
			continue
		}
		if _, _, ok := p.labels.match(line); ok {
			continue
		}
		if p.startsWithExclusion(line) {
			continue
		}
		if reDigitsOnly.MatchString(line) || reAltitudeHead.MatchString(line) || reYearHead.MatchString(line) {
			continue
		}
		// Length is judged on what the sanitizer will keep.
		clean := SanitizeValue(line, p.punctuation)
		if !p.nameLength.Contains(utf8.RuneCountInString(clean)) {
			continue
		}
		if !reLatinRun.MatchString(clean) && !reCJKRun.MatchString(clean) {
			continue
		}
		return line
	}
	return ""
}

func (p *Parser) startsWithExclusion(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range p.nameExclusions {
		if strings.HasPrefix(lower, kw) {
			return true
		}
	}
	return false
}

func assignedValues(info ParsedCoffeeInfo) map[string]struct{} {
	taken := make(map[string]struct{})
	for _, v := range info.Map() {
		taken[v] = struct{}{}
	}
	return taken
}
