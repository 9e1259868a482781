package labelparser

// Field names one slot of a parsed coffee label.
type Field string

const (
	FieldRoastery     Field = "roastery"
	FieldCoffeeName   Field = "coffeeName"
	FieldOrigin       Field = "origin"
	FieldVariety      Field = "variety"
	FieldProcess      Field = "process"
	FieldAltitude     Field = "altitude"
	FieldRoasterNotes Field = "roasterNotes"
	FieldFarm         Field = "farm"
	FieldProducer     Field = "producer"
	FieldHarvest      Field = "harvest"
)

// Fields lists every field in record order.
var Fields = []Field{
	FieldRoastery,
	FieldCoffeeName,
	FieldOrigin,
	FieldVariety,
	FieldProcess,
	FieldAltitude,
	FieldRoasterNotes,
	FieldFarm,
	FieldProducer,
	FieldHarvest,
}

// Valid reports whether f is one of the ten known fields.
func (f Field) Valid() bool {
	for _, known := range Fields {
		if f == known {
			return true
		}
	}
	return false
}

// Block is one unit of recognized text. VerticalPosition is nil when the
// recognizer gives no layout information.
type Block struct {
	Text             string   `json:"text" yaml:"text"`
	VerticalPosition *float64 `json:"verticalPosition,omitempty" yaml:"verticalPosition,omitempty"`
}

// ParsedCoffeeInfo is the structured result of parsing a label. An empty
// string means the field is absent.
type ParsedCoffeeInfo struct {
	Roastery     string `json:"roastery,omitempty" yaml:"roastery,omitempty"`
	CoffeeName   string `json:"coffeeName,omitempty" yaml:"coffeeName,omitempty"`
	Origin       string `json:"origin,omitempty" yaml:"origin,omitempty"`
	Variety      string `json:"variety,omitempty" yaml:"variety,omitempty"`
	Process      string `json:"process,omitempty" yaml:"process,omitempty"`
	Altitude     string `json:"altitude,omitempty" yaml:"altitude,omitempty"`
	RoasterNotes string `json:"roasterNotes,omitempty" yaml:"roasterNotes,omitempty"`
	Farm         string `json:"farm,omitempty" yaml:"farm,omitempty"`
	Producer     string `json:"producer,omitempty" yaml:"producer,omitempty"`
	Harvest      string `json:"harvest,omitempty" yaml:"harvest,omitempty"`
}

// Get returns the value of f, or "" when absent.
func (p ParsedCoffeeInfo) Get(f Field) string {
	switch f {
	case FieldRoastery:
		return p.Roastery
	case FieldCoffeeName:
		return p.CoffeeName
	case FieldOrigin:
		return p.Origin
	case FieldVariety:
		return p.Variety
	case FieldProcess:
		return p.Process
	case FieldAltitude:
		return p.Altitude
	case FieldRoasterNotes:
		return p.RoasterNotes
	case FieldFarm:
		return p.Farm
	case FieldProducer:
		return p.Producer
	case FieldHarvest:
		return p.Harvest
	}
	return ""
}

// With returns a copy of p with f set to v.
func (p ParsedCoffeeInfo) With(f Field, v string) ParsedCoffeeInfo {
	switch f {
	case FieldRoastery:
		p.Roastery = v
	case FieldCoffeeName:
		p.CoffeeName = v
	case FieldOrigin:
		p.Origin = v
	case FieldVariety:
		p.Variety = v
	case FieldProcess:
		p.Process = v
	case FieldAltitude:
		p.Altitude = v
	case FieldRoasterNotes:
		p.RoasterNotes = v
	case FieldFarm:
		p.Farm = v
	case FieldProducer:
		p.Producer = v
	case FieldHarvest:
		p.Harvest = v
	}
	return p
}

// Map returns the present fields only.
func (p ParsedCoffeeInfo) Map() map[Field]string {
	m := make(map[Field]string)
	for _, f := range Fields {
		if v := p.Get(f); v != "" {
			m[f] = v
		}
	}
	return m
}

// IsEmpty reports whether no field is present.
func (p ParsedCoffeeInfo) IsEmpty() bool {
	return p == ParsedCoffeeInfo{}
}
