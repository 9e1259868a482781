package labelparser

import (
	"fmt"
	"regexp"
	"strings"
)

// Source ranks how a field value was found. Lower ranks win.
type Source int

const (
	SourceLabel     Source = iota // "Process" / "Process: Washed"
	SourceLookup                  // country or known roastery table
	SourceSecondary               // weak headers such as "Region"
	SourceShape                   // the line's own pattern
)

func (s Source) String() string {
	switch s {
	case SourceLabel:
		return "label"
	case SourceLookup:
		return "lookup"
	case SourceSecondary:
		return "secondary"
	case SourceShape:
		return "shape"
	}
	return fmt.Sprintf("source(%d)", int(s))
}

// Assignment is one candidate value for a field, found on line Line.
type Assignment struct {
	Field  Field
	Value  string
	Line   int
	Source Source
}

type compiledShape struct {
	field Field
	re    *regexp.Regexp
}

// extract collects every candidate assignment in three passes: labels first
// over the whole line set, then lookup tables, then value shapes. It also
// reports which lines belong to a notes section.
func (p *Parser) extract(lines []string) ([]Assignment, []bool) {
	var out []Assignment
	skip := make([]bool, len(lines))
	notes := make([]bool, len(lines))

	for i := 0; i < len(lines); i++ {
		t, rest, ok := p.labels.match(lines[i])
		if !ok {
			continue
		}
		skip[i] = true
		src := SourceLabel
		if t.secondary {
			src = SourceSecondary
		}

		if t.notes {
			// The whole notes section belongs to the aggregator.
			for j := i + 1; j < len(lines); j++ {
				if _, _, next := p.labels.match(lines[j]); next {
					break
				}
				skip[j] = true
				notes[j] = true
			}
			continue
		}

		if rest != "" {
			out = append(out, Assignment{Field: t.field, Value: rest, Line: i, Source: src})
			continue
		}
		if i+1 >= len(lines) {
			continue
		}
		if _, _, next := p.labels.match(lines[i+1]); next {
			continue
		}
		skip[i+1] = true
		out = append(out, Assignment{Field: t.field, Value: lines[i+1], Line: i + 1, Source: src})
	}

	for i, line := range lines {
		if skip[i] {
			continue
		}
		upper := strings.ToUpper(line)
		if _, ok := p.countries[upper]; ok {
			out = append(out, Assignment{Field: FieldOrigin, Value: line, Line: i, Source: SourceLookup})
			skip[i] = true
		}
		if _, ok := p.roasteries[upper]; ok {
			out = append(out, Assignment{Field: FieldRoastery, Value: line, Line: i, Source: SourceLookup})
			skip[i] = true
		}
	}

	for i, line := range lines {
		if skip[i] {
			continue
		}
		for _, s := range p.shapes {
			if s.re.MatchString(line) {
				out = append(out, Assignment{Field: s.field, Value: line, Line: i, Source: SourceShape})
				break
			}
		}
	}

	return out, notes
}

// fold keeps, per field, the best-ranked assignment and among equals the
// earliest line. Values that sanitize to nothing never compete.
func (p *Parser) fold(assignments []Assignment) ParsedCoffeeInfo {
	best := make(map[Field]Assignment)
	for _, a := range assignments {
		if SanitizeValue(a.Value, p.punctuation) == "" {
			continue
		}
		cur, ok := best[a.Field]
		if !ok || a.Source < cur.Source || (a.Source == cur.Source && a.Line < cur.Line) {
			best[a.Field] = a
		}
	}

	var info ParsedCoffeeInfo
	for _, f := range Fields {
		if a, ok := best[f]; ok {
			info = info.With(f, a.Value)
		}
	}
	return info
}
