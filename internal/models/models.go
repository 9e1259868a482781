package models

import (
	"time"

	"mspro-labs/cupnote/internal/labelparser"
)

// Scan is one parsed label, as kept in the journal.
type Scan struct {
	ID        int64
	Source    string // image path, page URL or "stdin"
	RawText   string
	Info      labelparser.ParsedCoffeeInfo
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Title is what lists show for a scan.
func (s Scan) Title() string {
	if s.Info.CoffeeName != "" {
		return s.Info.CoffeeName
	}
	return s.Source
}
