package labelparser

// Rule is one pattern->replacement substitution applied by the Corrector.
// Pattern is RE2 syntax; Replace may reference groups as ${1}.
type Rule struct {
	Name    string `yaml:"name"`
	Pattern string `yaml:"pattern"`
	Replace string `yaml:"replace"`
}

// LabelGroup maps header words printed on a bag to the field they introduce.
// Secondary labels lose to lookup-table matches (a "Region" header must not
// override a country printed elsewhere on the label).
type LabelGroup struct {
	Field     Field    `yaml:"field"`
	Names     []string `yaml:"names"`
	Secondary bool     `yaml:"secondary"`
}

// ShapeRule lets a line claim a field by its own shape, without a label.
type ShapeRule struct {
	Field   Field  `yaml:"field"`
	Pattern string `yaml:"pattern"`
}

// Bound is an inclusive rune-length range. Max 0 means unbounded.
type Bound struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Contains reports whether n lies within b.
func (b Bound) Contains(n int) bool {
	return n >= b.Min && (b.Max == 0 || n <= b.Max)
}

// Tables holds every data table the parser runs on. Load overrides from YAML
// and combine with DefaultTables via Merge.
type Tables struct {
	Corrections    []Rule       `yaml:"corrections"`
	Labels         []LabelGroup `yaml:"labels"`
	NotesLabels    []string     `yaml:"notes_labels"`
	Shapes         []ShapeRule  `yaml:"shapes"`
	Countries      []string     `yaml:"countries"`
	Roasteries     []string     `yaml:"roasteries"`
	FlavorKeywords []string     `yaml:"flavor_keywords"`
	NameExclusions []string     `yaml:"name_exclusions"`
	NameLength     Bound        `yaml:"name_length"`
	NameScanLines  int          `yaml:"name_scan_lines"`
	Punctuation    string       `yaml:"punctuation"`
}

// Merge returns t with every table that is set in o replaced by o's version.
func (t Tables) Merge(o Tables) Tables {
	if o.Corrections != nil {
		t.Corrections = o.Corrections
	}
	if o.Labels != nil {
		t.Labels = o.Labels
	}
	if o.NotesLabels != nil {
		t.NotesLabels = o.NotesLabels
	}
	if o.Shapes != nil {
		t.Shapes = o.Shapes
	}
	if o.Countries != nil {
		t.Countries = o.Countries
	}
	if o.Roasteries != nil {
		t.Roasteries = o.Roasteries
	}
	if o.FlavorKeywords != nil {
		t.FlavorKeywords = o.FlavorKeywords
	}
	if o.NameExclusions != nil {
		t.NameExclusions = o.NameExclusions
	}
	if o.NameLength.Max > 0 {
		t.NameLength = o.NameLength
	}
	if o.NameScanLines > 0 {
		t.NameScanLines = o.NameScanLines
	}
	if o.Punctuation != "" {
		t.Punctuation = o.Punctuation
	}
	return t
}

// DefaultTables returns the built-in tables. Each call returns fresh slices.
func DefaultTables() Tables {
	return Tables{
		Corrections:    defaultCorrections(),
		Labels:         defaultLabels(),
		NotesLabels:    []string{"notes", "note", "tasting notes", "tasting note", "cup notes", "cup note", "flavor", "flavors", "flavour", "flavours", "flavor notes", "컵노트", "테이스팅노트", "노트", "향미"},
		Shapes:         defaultShapes(),
		Countries:      defaultCountries(),
		Roasteries:     defaultRoasteries(),
		FlavorKeywords: defaultFlavorKeywords(),
		NameExclusions: []string{
			"region", "process", "varietal", "variety", "origin", "altitude", "farm", "producer",
			"harvest", "roastery", "from", "country", "elevation", "height", "notes", "tasting",
			"flavor", "flavour",
			"생산지", "원산지", "지역", "가공", "품종", "고도", "농장", "생산자", "수확", "로스터리", "컵노트", "향미",
		},
		NameLength:    Bound{Min: 3, Max: 100},
		NameScanLines: 5,
		Punctuation:   ",.-/&'()+#",
	}
}

// The order of this table is part of the parser's contract: term fixes run
// before the generic digit/letter fixes, and spacing fixes run last.
func defaultCorrections() []Rule {
	return []Rule{
		// variety codes
		{Name: "variety-sl", Pattern: `(?i)\bs[il](\d{1,3})\b`, Replace: "SL${1}"},
		{Name: "variety-ruiru", Pattern: `(?i)\bruiru\s*[1il]{2}\b`, Replace: "Ruiru 11"},

		// roasteries
		{Name: "roastery-stereoscope", Pattern: `(?i)\bste[reo0]{1,4}sc[o0]pe\b`, Replace: "STEREOSCOPE"},
		{Name: "roastery-coffee-collective", Pattern: `(?i)\bcoff[e3]{1,2}\s*c[o0]llective\b`, Replace: "Coffee Collective"},
		{Name: "roastery-blue-bottle", Pattern: `\b[Bb]lue\s*[Bb]ottle\b`, Replace: "Blue Bottle"},

		// processing
		{Name: "process-washed", Pattern: `(?i)\bwash[e3]d\b`, Replace: "Washed"},
		{Name: "process-naturally", Pattern: `(?i)\bnatura[l1]{2}y\b`, Replace: "Naturally"},
		{Name: "process-honey", Pattern: `(?i)\bh0ney\b`, Replace: "Honey"},
		{Name: "process-anaerobic", Pattern: `(?i)\ban[ae]{1,3}r[o0]bic\b`, Replace: "Anaerobic"},
		{Name: "process-carbonic", Pattern: `(?i)\bcarb[o0]nic\b`, Replace: "Carbonic"},

		// regions
		{Name: "region-yirgacheffe", Pattern: `(?i)\byirg[ae]ch[ae]ff[ae]\b`, Replace: "Yirgacheffe"},
		{Name: "region-guji", Pattern: `(?i)\bg[ue]ji\b`, Replace: "Guji"},
		{Name: "region-sidama", Pattern: `(?i)\bsidamo\b`, Replace: "Sidama"},
		{Name: "region-huila", Pattern: `(?i)\bhuil[ae]\b`, Replace: "Huila"},
		{Name: "region-narino", Pattern: `(?i)\bnari[nñ]o\b`, Replace: "Nariño"},

		// digit/letter confusion, only next to digits
		{Name: "digit-o-leading", Pattern: `(^|[^\p{L}\p{N}])O(\d)`, Replace: "${1}0${2}"},
		{Name: "digit-o-trailing", Pattern: `(\d)O([^\p{L}]|$)`, Replace: "${1}0${2}"},
		{Name: "digit-l-leading", Pattern: `(^|[^\p{L}\p{N}])[lI](\d)`, Replace: "${1}1${2}"},
		{Name: "digit-l-inner", Pattern: `(\d)[lI](\d)`, Replace: "${1}1${2}"},

		// altitude spacing
		{Name: "altitude-range", Pattern: `(\d{3,4})\s*[-~–]\s*(\d{3,4})`, Replace: "${1}-${2}"},
		{Name: "altitude-meters", Pattern: `(?i)(\d)\s*m([^\p{L}\p{N}_]|$)`, Replace: "${1}m${2}"},
		{Name: "altitude-masl", Pattern: `(?i)(\d)\s*masl\b`, Replace: "${1} masl"},
	}
}

func defaultLabels() []LabelGroup {
	return []LabelGroup{
		{Field: FieldProcess, Names: []string{"process", "processing", "processing method", "가공", "가공방식", "프로세스"}},
		{Field: FieldVariety, Names: []string{"varietal", "varietals", "variety", "varieties", "품종"}},
		{Field: FieldOrigin, Names: []string{"origin", "from", "country", "원산지", "생산지", "생산국", "산지"}},
		{Field: FieldOrigin, Names: []string{"region", "지역"}, Secondary: true},
		{Field: FieldFarm, Names: []string{"farm", "finca", "estate", "농장"}},
		{Field: FieldProducer, Names: []string{"producer", "producers", "생산자"}},
		{Field: FieldAltitude, Names: []string{"altitude", "elevation", "height", "고도"}},
		{Field: FieldHarvest, Names: []string{"harvest", "harvested", "수확", "수확년도"}},
		{Field: FieldRoastery, Names: []string{"roastery", "roaster", "roasteries", "로스터리"}},
		{Field: FieldCoffeeName, Names: []string{"coffee name", "name", "커피명", "상품명"}},
	}
}

func defaultShapes() []ShapeRule {
	return []ShapeRule{
		{Field: FieldVariety, Pattern: `(?i)^(?:SL\d+|Bourbon|Typica|Caturra|Catuai|Geisha|Gesha|Heirloom|Pacamara|Castillo|Pink Bourbon|Ruiru|Batian|Sidra|Maragogipe|Mundo Novo|Wush Wush|Villa Sarchi|74\d{3})`},
		{Field: FieldProcess, Pattern: `(?i)^(?:Washed|Natural|Honey|Anaerobic|Carbonic|Semi[- ]?Washed|Wet[- ]Hulled|Fully Washed|워시드|내추럴|허니|무산소)[^,，、]*$`},
		{Field: FieldAltitude, Pattern: `(?i)^\d{3,4}\s*(?:(?:-|~|to)\s*\d{3,4}\s*)?(?:masl|meters|metres|m|ft)\b`},
		{Field: FieldHarvest, Pattern: `^(?:19|20)\d{2}\s*(?:-|~|to|/)\s*(?:(?:19|20)\d{2})?$`},
		{Field: FieldRoastery, Pattern: `(?i)\b(?:coffee|roasters?|roastery|collective|lab|co\.|company)$`},
		{Field: FieldRoastery, Pattern: `(?:커피|로스터스|로스터리)$`},
	}
}

func defaultCountries() []string {
	return []string{
		"ETHIOPIA", "KENYA", "COLOMBIA", "BRAZIL", "GUATEMALA", "COSTA RICA", "PANAMA", "PERU",
		"BOLIVIA", "HONDURAS", "NICARAGUA", "EL SALVADOR", "RWANDA", "BURUNDI", "YEMEN",
		"MEXICO", "ECUADOR", "INDONESIA", "PAPUA NEW GUINEA", "TANZANIA", "UGANDA", "CONGO",
		"DR CONGO", "MALAWI", "ZAMBIA", "INDIA", "VIETNAM", "CHINA", "MYANMAR", "THAILAND",
		"LAOS", "TIMOR-LESTE", "EAST TIMOR", "JAMAICA", "HAITI", "DOMINICAN REPUBLIC",
		"에티오피아", "케냐", "콜롬비아", "브라질", "과테말라", "코스타리카", "파나마", "페루",
		"볼리비아", "온두라스", "니카라과", "엘살바도르", "르완다", "부룬디", "예멘", "멕시코",
		"에콰도르", "인도네시아", "탄자니아", "우간다",
	}
}

func defaultRoasteries() []string {
	return []string{
		"STEREOSCOPE", "스테레오스코프", "BLUE BOTTLE", "블루보틀", "TERAROSA", "테라로사",
		"BEAN BROTHERS", "빈브라더스", "ANTHRACITE", "앤트러사이트", "FRITZ", "프릳츠",
		"COFFEE LIBRE", "커피리브레", "KIHEI", "키헤이", "EL CAFE", "엘카페", "콩볶는사람들",
		"ONYX", "SQUARE MILE", "TIM WENDELBOE", "LA CABRA", "APRIL",
	}
}

func defaultFlavorKeywords() []string {
	return []string{
		// fruit
		"fruit", "berry", "cherry", "apple", "pear", "peach", "apricot", "plum",
		"grape", "raisin", "fig", "date", "prune", "blackberry", "blueberry",
		"raspberry", "strawberry", "cranberry", "currant", "citrus", "orange",
		"lemon", "lime", "grapefruit", "tangerine", "pineapple", "mango", "papaya",
		"passion", "lychee", "melon", "watermelon", "banana", "coconut", "guava",
		// chocolate and nuts
		"chocolate", "cocoa", "cacao", "nutty", "almond", "hazelnut", "walnut",
		"peanut", "cashew", "pecan",
		// floral and herbal
		"floral", "jasmine", "rose", "lavender", "hibiscus", "chamomile", "tea",
		"herbal", "mint", "basil", "sage",
		// sweetness
		"sweet", "sugar", "honey", "caramel", "toffee", "butterscotch", "vanilla",
		"maple", "molasses", "brown sugar",
		// body and other
		"creamy", "buttery", "silky", "smooth", "clean", "bright", "crisp",
		"juicy", "wine", "winey", "fermented", "funky", "earthy", "woody",
		"spicy", "cinnamon", "clove", "pepper", "tobacco", "leather",
		// korean
		"베리", "체리", "사과", "복숭아", "자두", "포도", "오렌지", "레몬", "자몽", "망고",
		"초콜릿", "초콜렛", "카카오", "견과", "아몬드", "헤이즐넛", "꽃", "자스민", "홍차",
		"꿀", "캐러멜", "카라멜", "바닐라", "흑설탕", "와인", "시나몬",
	}
}
