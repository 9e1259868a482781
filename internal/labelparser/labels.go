package labelparser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type labelTarget struct {
	field     Field
	secondary bool
	notes     bool
}

// labelMatcher recognizes header words such as "Process", "Tasting Notes:"
// or "가공", alone on a line or as "Label: value".
type labelMatcher struct {
	names map[string]labelTarget
}

func newLabelMatcher(groups []LabelGroup, notes []string) labelMatcher {
	m := labelMatcher{names: make(map[string]labelTarget)}
	for _, g := range groups {
		for _, n := range g.Names {
			m.names[foldLabel(n)] = labelTarget{field: g.Field, secondary: g.Secondary}
		}
	}
	for _, n := range notes {
		m.names[foldLabel(n)] = labelTarget{notes: true}
	}
	return m
}

// match reports whether line is a label. rest holds the inline value, if any.
func (m labelMatcher) match(line string) (t labelTarget, rest string, ok bool) {
	if t, ok = m.names[foldLabel(line)]; ok {
		return t, "", true
	}
	i := strings.IndexAny(line, ":：")
	if i <= 0 {
		return labelTarget{}, "", false
	}
	if t, ok = m.names[foldLabel(line[:i])]; !ok {
		return labelTarget{}, "", false
	}
	_, size := utf8.DecodeRuneInString(line[i:])
	return t, strings.TrimSpace(line[i+size:]), true
}

// foldLabel lower-cases s, drops all whitespace and a trailing colon, so
// "Tasting  Notes:" and "tastingnotes" compare equal.
func foldLabel(s string) string {
	s = strings.TrimRight(strings.TrimSpace(s), ":：")
	var b strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
