package ocr

import (
	"maps"
	"unicode/utf8"

	"mspro-labs/cupnote/internal/labelparser"
)

// Bounds holds the accepted rune length for each field.
type Bounds map[labelparser.Field]labelparser.Bound

// DefaultBounds returns the length limits applied before a scan is stored.
func DefaultBounds() Bounds {
	return Bounds{
		labelparser.FieldCoffeeName:   {Min: 3, Max: 100},
		labelparser.FieldRoastery:     {Min: 3, Max: 50},
		labelparser.FieldOrigin:       {Min: 3, Max: 30},
		labelparser.FieldVariety:      {Min: 3, Max: 30},
		labelparser.FieldProcess:      {Min: 3, Max: 30},
		labelparser.FieldAltitude:     {Min: 2, Max: 20},
		labelparser.FieldFarm:         {Min: 2, Max: 60},
		labelparser.FieldProducer:     {Min: 2, Max: 60},
		labelparser.FieldHarvest:      {Min: 4, Max: 20},
		labelparser.FieldRoasterNotes: {Min: 3, Max: 300},
	}
}

// Merge returns a copy of b with the entries of o replacing its own.
func (b Bounds) Merge(o map[labelparser.Field]labelparser.Bound) Bounds {
	out := maps.Clone(b)
	if out == nil {
		out = Bounds{}
	}
	maps.Copy(out, o)
	return out
}

// Validate drops every field whose length falls outside its bound. Fields
// without a bound are kept.
func (b Bounds) Validate(info labelparser.ParsedCoffeeInfo) labelparser.ParsedCoffeeInfo {
	var out labelparser.ParsedCoffeeInfo
	for _, f := range labelparser.Fields {
		v := info.Get(f)
		if v == "" {
			continue
		}
		if bound, ok := b[f]; ok && !bound.Contains(utf8.RuneCountInString(v)) {
			logger.Printf("Dropping %s (%d runes, allowed %d-%d): %q", f, utf8.RuneCountInString(v), bound.Min, bound.Max, v)
			continue
		}
		out = out.With(f, v)
	}
	return out
}
