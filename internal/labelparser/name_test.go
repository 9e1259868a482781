package labelparser

import (
	"strings"
	"testing"
)

func TestResolveName(t *testing.T) {
	p := Default()
	testCases := []struct {
		name     string
		lines    []string
		info     ParsedCoffeeInfo
		expected string
	}{
		{"first plain line", []string{"Guava Candy", "Other"}, ParsedCoffeeInfo{}, "Guava Candy"},
		{"skips roastery", []string{"STEREOSCOPE", "Guava Candy"}, ParsedCoffeeInfo{Roastery: "STEREOSCOPE"}, "Guava Candy"},
		{"skips label keywords", []string{"Process", "Origin: Kenya", "Gachatha AA"}, ParsedCoffeeInfo{}, "Gachatha AA"},
		{"skips numbers", []string{"12345", "Gachatha AA"}, ParsedCoffeeInfo{}, "Gachatha AA"},
		{"skips altitude", []string{"1800 masl", "1800m Peaberry", "Gachatha AA"}, ParsedCoffeeInfo{}, "Gachatha AA"},
		{"skips years", []string{"2024 Harvest", "Gachatha AA"}, ParsedCoffeeInfo{}, "Gachatha AA"},
		{"needs three letters", []string{"AB 12", "Gachatha AA"}, ParsedCoffeeInfo{}, "Gachatha AA"},
		{"accepts hangul", []string{"에티오피아 구지"}, ParsedCoffeeInfo{}, "에티오피아 구지"},
		{"only first five lines", []string{"1", "2", "3", "4", "5", "Late Name"}, ParsedCoffeeInfo{}, ""},
		{"nothing qualifies", []string{"##", "12"}, ParsedCoffeeInfo{}, ""},
		{"length after cleanup", []string{"가나!", "Region", "Huila"}, ParsedCoffeeInfo{Origin: "Huila"}, ""},
		{"symbols only", []string{"***", "Guava Candy"}, ParsedCoffeeInfo{}, "Guava Candy"},
	}

	for _, tc := range testCases {
		if got := p.resolveName(tc.lines, tc.info, nil); got != tc.expected {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.expected, got)
		}
	}
}

func TestResolveName_LengthBoundary(t *testing.T) {
	p := Default()
	testCases := []struct {
		line   string
		chosen bool
	}{
		{"가나", false},
		{"Abc", true},
		{strings.Repeat("a", 100), true},
		{strings.Repeat("a", 101), false},
		{strings.Repeat("b", 150), false},
	}
	for _, tc := range testCases {
		got := p.resolveName([]string{tc.line}, ParsedCoffeeInfo{}, nil)
		if (got != "") != tc.chosen {
			t.Errorf("line of %d runes: chosen=%v, got %q", len([]rune(tc.line)), tc.chosen, got)
		}
	}
}

func TestParseLines_NameNeverOutOfBounds(t *testing.T) {
	p := Default()
	for _, line := range []string{"Ab", strings.Repeat("Long name ", 11)} {
		got := p.ParseLines([]string{line})
		if got.CoffeeName != "" {
			t.Errorf("candidate %q must not be chosen, got %q", line, got.CoffeeName)
		}
	}
}

func TestResolveName_SkipsNotesSection(t *testing.T) {
	p := Default()
	lines := []string{"Notes", "***", "Cherry, plum, chocolate"}
	notes := []bool{false, true, true}
	if got := p.resolveName(lines, ParsedCoffeeInfo{}, notes); got != "" {
		t.Errorf("expected no name from a notes section, got %q", got)
	}
}

func TestParseLines_ShortNameAfterCleanup(t *testing.T) {
	got := Default().ParseLines([]string{"가나!", "Region", "Huila"})
	if got.CoffeeName != "" {
		t.Errorf("coffeeName: expected none, got %q", got.CoffeeName)
	}
	if got.Origin != "Huila" {
		t.Errorf("origin: got %q", got.Origin)
	}
}
