package labelparser

import (
	"reflect"
	"testing"
)

func TestOrderLines(t *testing.T) {
	testCases := []struct {
		name     string
		blocks   []Block
		expected []string
	}{
		{
			name: "sorted by position",
			blocks: []Block{
				{Text: "bottom", VerticalPosition: pos(90)},
				{Text: "top", VerticalPosition: pos(5)},
				{Text: "middle", VerticalPosition: pos(40)},
			},
			expected: []string{"top", "middle", "bottom"},
		},
		{
			name: "ties keep input order",
			blocks: []Block{
				{Text: "first", VerticalPosition: pos(10)},
				{Text: "second", VerticalPosition: pos(10)},
				{Text: "above", VerticalPosition: pos(1)},
			},
			expected: []string{"above", "first", "second"},
		},
		{
			name: "no positions keeps input order",
			blocks: []Block{
				{Text: "one"},
				{Text: "two"},
				{Text: "three"},
			},
			expected: []string{"one", "two", "three"},
		},
		{
			name: "multi-line blocks are flattened and trimmed",
			blocks: []Block{
				{Text: "  KENYA \n\n Region: Nyeri\r\nProcess: Washed  ", VerticalPosition: pos(50)},
				{Text: "Kenya Gachatha", VerticalPosition: pos(30)},
			},
			expected: []string{"Kenya Gachatha", "KENYA", "Region: Nyeri", "Process: Washed"},
		},
		{
			name:     "blank blocks vanish",
			blocks:   []Block{{Text: "   "}, {Text: "\n\t\n"}},
			expected: nil,
		},
	}

	for _, tc := range testCases {
		got := OrderLines(tc.blocks)
		if !reflect.DeepEqual(got, tc.expected) {
			t.Errorf("%s: expected %q, got %q", tc.name, tc.expected, got)
		}
	}
}

func TestOrderLines_DoesNotMutateInput(t *testing.T) {
	blocks := []Block{
		{Text: "b", VerticalPosition: pos(2)},
		{Text: "a", VerticalPosition: pos(1)},
	}
	OrderLines(blocks)
	if blocks[0].Text != "b" || blocks[1].Text != "a" {
		t.Errorf("input blocks were reordered: %+v", blocks)
	}
}

func TestSplitLines_ComposesDecomposedHangul(t *testing.T) {
	// "가공" written as conjoining jamo.
	decomposed := "\u1100\u1161\u1100\u1169\u11bc"
	got := SplitLines(decomposed)
	if len(got) != 1 || got[0] != "\uac00\uacf5" {
		t.Errorf("expected composed 가공, got %q", got)
	}
}
