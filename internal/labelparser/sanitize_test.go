package labelparser

import "testing"

func TestSanitizeValue(t *testing.T) {
	punct := DefaultTables().Punctuation
	testCases := []struct {
		input    string
		expected string
	}{
		{"1950-2100m", "1950-2100m"},
		{"2023/2024", "2023/2024"},
		{"SL28, SL34", "SL28, SL34"},
		{"Nariño", "Nariño"},
		{"에티오피아 구지", "에티오피아 구지"},
		{"★ Guava Candy ★", "Guava Candy"},
		{"info@roastery", "info roastery"},
		{"Washed·Natural", "Washed Natural"},
		{"Planadas|Tolima", "Planadas Tolima"},
		{"Pink–Bourbon", "Pink Bourbon"},
		{"Washed   \t Process", "Washed Process"},
		{"Tropical fruit, guava,", "Tropical fruit, guava"},
		{"- Kenya -", "Kenya"},
		{"Planadas, Tolima;", "Planadas, Tolima"},
		{"#7 Lot (A)", "#7 Lot (A)"},
		{"★★★", ""},
	}

	for _, tc := range testCases {
		if got := SanitizeValue(tc.input, punct); got != tc.expected {
			t.Errorf("SanitizeValue(%q): expected %q, got %q", tc.input, tc.expected, got)
		}
	}
}

func TestSanitize_DropsEmptyFields(t *testing.T) {
	p := Default()
	got := p.sanitize(ParsedCoffeeInfo{CoffeeName: "★★", Origin: " KENYA ", Farm: "@@"})
	expected := ParsedCoffeeInfo{Origin: "KENYA"}
	if got != expected {
		t.Errorf("expected %+v, got %+v", expected, got)
	}
}
