package ocr

import (
	"strings"
	"testing"
	"unicode/utf8"

	"mspro-labs/cupnote/internal/labelparser"
)

func TestValidate(t *testing.T) {
	b := DefaultBounds()
	in := labelparser.ParsedCoffeeInfo{
		CoffeeName:   "Guava Candy",
		Roastery:     "ST",
		Origin:       strings.Repeat("x", 31),
		Altitude:     "1950-2100m",
		Harvest:      "2024",
		RoasterNotes: strings.Repeat("plum, ", 60),
	}
	expected := labelparser.ParsedCoffeeInfo{
		CoffeeName: "Guava Candy",
		Altitude:   "1950-2100m",
		Harvest:    "2024",
	}
	if got := b.Validate(in); got != expected {
		t.Errorf("expected %+v, got %+v", expected, got)
	}
}

func TestValidate_EveryFieldWithinBounds(t *testing.T) {
	b := DefaultBounds()
	p := labelparser.Default()
	inputs := []string{
		"STEREOSCOPE\nGuava Candy\nCOLOMBIA\nRegion\nPlanadas, Tolima\nProcess\nWashed",
		"A\nB\nC",
		strings.Repeat("Tasting notes ", 40),
		"코페아\n에티오피아\n가공\n워시드",
		"Varietal\n" + strings.Repeat("SL28, ", 20),
	}
	for _, in := range inputs {
		got := b.Validate(p.ParseText(in))
		for f, v := range got.Map() {
			bound, ok := b[f]
			if !ok {
				t.Fatalf("field %s has no bound", f)
			}
			if n := utf8.RuneCountInString(v); !bound.Contains(n) {
				t.Errorf("%s=%q has %d runes, outside %d-%d", f, v, n, bound.Min, bound.Max)
			}
		}
	}
}

func TestBoundsMerge(t *testing.T) {
	b := DefaultBounds().Merge(map[labelparser.Field]labelparser.Bound{
		labelparser.FieldCoffeeName: {Min: 1, Max: 10},
	})
	if b[labelparser.FieldCoffeeName].Max != 10 {
		t.Errorf("override not applied: %+v", b[labelparser.FieldCoffeeName])
	}
	if b[labelparser.FieldRoastery].Max != 50 {
		t.Errorf("defaults lost: %+v", b[labelparser.FieldRoastery])
	}
	if DefaultBounds()[labelparser.FieldCoffeeName].Max != 100 {
		t.Error("Merge must not modify the receiver")
	}
}
