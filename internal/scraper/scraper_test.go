package scraper

import (
	"reflect"
	"testing"

	"mspro-labs/cupnote/internal/config"
	"mspro-labs/cupnote/internal/labelparser"
)

const listingHTML = `
<html>
<body>
  <ul class="products">
    <li class="product"><a class="title" href="/products/guava-candy">Guava Candy</a></li>
    <li class="product"><a class="title" href="https://shop.example.com/products/house-blend">House Blend</a></li>
    <li class="product"><a class="title" href="products/gachatha">Kenya Gachatha</a></li>
    <li class="product"><a class="title" href="/products/guava-candy">Guava Candy (again)</a></li>
    <li class="product"><a class="title">No Link</a></li>
    <li class="product"><a class="title" href="/products/el-paraiso">El Paraiso</a></li>
  </ul>
</body>
</html>`

const detailHTML = `
<html>
<body>
  <h1 class="product-title">  Guava Candy </h1>
  <table class="specs">
    <tr><th>Origin</th><td>COLOMBIA</td></tr>
    <tr><th>Region</th><td>Planadas, Tolima</td></tr>
    <tr><th>Process</th><td>Washed</td></tr>
    <tr><th>Altitude</th><td>1,950 - 2,100 m</td></tr>
  </table>
  <div class="description">
    <p>Tasting notes</p>
    <p>Tropical fruit, guava,<br>passionfruit, creamy</p>
  </div>
</body>
</html>`

func testSite() *config.SiteConfig {
	return &config.SiteConfig{
		Roastery:    "STEREOSCOPE",
		CategoryURL: "https://shop.example.com/collections/coffee",
		Selectors: config.Selectors{
			ProductRow:  "li.product",
			Link:        "a.title",
			Title:       "h1.product-title",
			SpecRow:     "table.specs tr",
			Description: "div.description",
		},
		DisallowedKeywords: []string{"blend"},
	}
}

func TestParseProductLinks(t *testing.T) {
	links, err := parseProductLinks(listingHTML, testSite())
	if err != nil {
		t.Fatalf("parseProductLinks: %v", err)
	}
	expected := []string{
		"https://shop.example.com/products/guava-candy",
		"https://shop.example.com/collections/products/gachatha",
		"https://shop.example.com/products/el-paraiso",
	}
	if !reflect.DeepEqual(links, expected) {
		t.Errorf("expected %v, got %v", expected, links)
	}
}

func TestParseProductLinks_MaxProducts(t *testing.T) {
	cfg := testSite()
	cfg.MaxProducts = 2
	links, err := parseProductLinks(listingHTML, cfg)
	if err != nil {
		t.Fatalf("parseProductLinks: %v", err)
	}
	if len(links) != 2 {
		t.Errorf("expected 2 links, got %v", links)
	}
}

func TestExtractLines(t *testing.T) {
	lines, err := extractLines(detailHTML, testSite().Selectors)
	if err != nil {
		t.Fatalf("extractLines: %v", err)
	}
	expected := []string{
		"Guava Candy",
		"Origin", "COLOMBIA",
		"Region", "Planadas, Tolima",
		"Process", "Washed",
		"Altitude", "1,950 - 2,100 m",
		"Tasting notes",
		"Tropical fruit, guava,",
		"passionfruit, creamy",
	}
	if !reflect.DeepEqual(lines, expected) {
		t.Errorf("expected %q, got %q", expected, lines)
	}
}

func TestExtractLines_ParsesAsLabel(t *testing.T) {
	lines, err := extractLines(detailHTML, testSite().Selectors)
	if err != nil {
		t.Fatal(err)
	}
	info := labelparser.Default().ParseLines(lines)
	if info.CoffeeName != "Guava Candy" || info.Origin != "COLOMBIA" || info.Process != "Washed" {
		t.Errorf("unexpected parse: %+v", info)
	}
	if info.RoasterNotes != "Tropical fruit, guava, passionfruit, creamy" {
		t.Errorf("unexpected notes %q", info.RoasterNotes)
	}
}
