// Package labelparser turns noisy text recognized from a coffee bag into a
// structured ParsedCoffeeInfo record.
//
// The pipeline runs strictly forward: blocks are ordered into lines, each
// line is corrected, fields are extracted as ranked assignments and folded
// into a record, a coffee name and tasting notes are filled in when missing,
// and the result is sanitized. A Parser holds only compiled tables and is
// safe for concurrent use.
package labelparser

import (
	"fmt"
	"regexp"
	"strings"
)

// Parser is an immutable, compiled set of tables.
type Parser struct {
	corrector      *Corrector
	labels         labelMatcher
	shapes         []compiledShape
	countries      map[string]struct{}
	roasteries     map[string]struct{}
	flavors        []string
	nameExclusions []string
	nameLength     Bound
	nameScanLines  int
	punctuation    string
}

// Analysis exposes the intermediate state of one parse.
type Analysis struct {
	Lines       []string
	Assignments []Assignment
	Info        ParsedCoffeeInfo
}

// New compiles t into a Parser.
func New(t Tables) (*Parser, error) {
	corrector, err := NewCorrector(t.Corrections)
	if err != nil {
		return nil, err
	}

	p := &Parser{
		corrector:     corrector,
		labels:        newLabelMatcher(t.Labels, t.NotesLabels),
		countries:     upperSet(t.Countries),
		roasteries:    upperSet(t.Roasteries),
		nameLength:    t.NameLength,
		nameScanLines: t.NameScanLines,
		punctuation:   t.Punctuation,
	}
	for _, g := range t.Labels {
		if !g.Field.Valid() {
			return nil, fmt.Errorf("label group %v: unknown field %q", g.Names, g.Field)
		}
	}
	for i, s := range t.Shapes {
		if !s.Field.Valid() {
			return nil, fmt.Errorf("shape rule %d: unknown field %q", i, s.Field)
		}
		re, err := regexp.Compile(s.Pattern)
		if err != nil {
			return nil, fmt.Errorf("shape rule %d (%s): %w", i, s.Field, err)
		}
		p.shapes = append(p.shapes, compiledShape{field: s.Field, re: re})
	}
	for _, kw := range t.FlavorKeywords {
		p.flavors = append(p.flavors, strings.ToLower(kw))
	}
	for _, kw := range t.NameExclusions {
		p.nameExclusions = append(p.nameExclusions, strings.ToLower(kw))
	}
	return p, nil
}

// Default returns a Parser over DefaultTables.
func Default() *Parser {
	p, err := New(DefaultTables())
	if err != nil {
		panic(fmt.Sprintf("labelparser: default tables: %v", err))
	}
	return p
}

// Parse orders recognized blocks and parses the resulting lines.
func (p *Parser) Parse(blocks []Block) ParsedCoffeeInfo {
	return p.ParseLines(OrderLines(blocks))
}

// ParseText parses a newline-joined text blob.
func (p *Parser) ParseText(text string) ParsedCoffeeInfo {
	return p.ParseLines(SplitLines(text))
}

// ParseLines parses lines that are already in reading order.
func (p *Parser) ParseLines(lines []string) ParsedCoffeeInfo {
	return p.Analyze(lines).Info
}

// Analyze runs the full pipeline and keeps the intermediate results.
func (p *Parser) Analyze(lines []string) Analysis {
	corrected := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(p.corrector.Correct(normalizeLine(l))); l != "" {
			corrected = append(corrected, l)
		}
	}

	assignments, notesSection := p.extract(corrected)
	info := p.fold(assignments)
	if info.CoffeeName == "" {
		info = info.With(FieldCoffeeName, p.resolveName(corrected, info, notesSection))
	}
	if info.RoasterNotes == "" {
		info = info.With(FieldRoasterNotes, p.aggregateNotes(corrected, info))
	}

	return Analysis{
		Lines:       corrected,
		Assignments: assignments,
		Info:        p.sanitize(info),
	}
}

// Correct exposes the parser's corrector for a single line.
func (p *Parser) Correct(line string) string {
	return p.corrector.Correct(line)
}

func upperSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToUpper(normalizeLine(v))] = struct{}{}
	}
	return set
}
