package match

import (
	"reflect"
	"testing"

	"github.com/vshtohryn/assetserve/pkg/catalog"
)

// small controlled catalog for ordering/scoring checks
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.ManufacturerSpec{
		{
			Name: "Dell",
			Categories: []catalog.CategorySpec{
				{
					ID:       "laptops",
					Keywords: []string{"Latitude", "Latitude 5420", "XPS"},
				},
				{
					ID:       "systems",
					Keywords: []string{"OptiPlex", "OptiPlex 7090"},
					Types: []catalog.TypeSpec{
						{Name: "Tower", Substrings: []string{"Tower", "MT"}},
						{Name: "SFF", Substrings: []string{"SFF"}},
					},
				},
			},
		},
		{
			Name: "Apple",
			Categories: []catalog.CategorySpec{
				{
					ID:       "laptops",
					Keywords: []string{"MacBook", "Booklet"},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("building test catalog: %v", err)
	}
	return c
}

func TestRankPrefixBeatsSubstring(t *testing.T) {
	c := testCatalog(t)

	// "Book" is a prefix of "Booklet" but only a substring of "MacBook"
	got := Rank("Book", c, 0)
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d: %v", len(got), got)
	}
	if got[0].Text != "Booklet" || got[0].Score != 3 {
		t.Errorf("expected Booklet with score 3 first, got %+v", got[0])
	}
	if got[1].Text != "MacBook" || got[1].Score != 1 {
		t.Errorf("expected MacBook with score 1 second, got %+v", got[1])
	}
}

func TestRankOrdering(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		name  string
		query string
		limit int
		want  []string
	}{
		{
			// shorter keyword surfaces before the longer one on equal score
			name:  "shorter first on equal score",
			query: "Lat",
			want:  []string{"Latitude", "Latitude 5420"},
		},
		{
			name:  "case insensitive",
			query: "opti",
			want:  []string{"OptiPlex", "OptiPlex 7090"},
		},
		{
			name:  "limit truncates",
			query: "Opti",
			limit: 1,
			want:  []string{"OptiPlex"},
		},
		{
			name:  "no match",
			query: "Chromebook",
			want:  nil,
		},
		{
			name:  "empty query",
			query: "",
			want:  nil,
		},
		{
			name:  "blank query",
			query: "   ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Rank(tt.query, c, tt.limit)
			texts := make([]string, 0, len(got))
			for _, cand := range got {
				texts = append(texts, cand.Text)
			}
			if len(tt.want) == 0 && len(texts) == 0 {
				return
			}
			if !reflect.DeepEqual(texts, tt.want) {
				t.Errorf("Rank(%q) = %v, want %v", tt.query, texts, tt.want)
			}
		})
	}
}

func TestRankDeterminism(t *testing.T) {
	c := testCatalog(t)

	first := Rank("a", c, 0)
	for i := 0; i < 10; i++ {
		again := Rank("a", c, 0)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Rank not deterministic: run %d gave %v, first run gave %v", i, again, first)
		}
	}
}

func TestRankDeduplicatesRepeatedKeywords(t *testing.T) {
	c, err := catalog.New([]catalog.ManufacturerSpec{
		{Name: "HP", Categories: []catalog.CategorySpec{{ID: "systems", Keywords: []string{"All-in-One"}}}},
		{Name: "Acer", Categories: []catalog.CategorySpec{{ID: "systems", Keywords: []string{"All-in-One"}}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	got := Rank("All", c, 0)
	if len(got) != 1 {
		t.Fatalf("expected repeated keyword collapsed to one candidate, got %v", got)
	}
}

func TestClassify(t *testing.T) {
	c := testCatalog(t)

	tests := []struct {
		name     string
		input    string
		wantMfr  string
		wantCat  catalog.Category
		wantType string
		wantOK   bool
	}{
		{
			name:    "unambiguous prefix with trailing detail",
			input:   "Latitude 5420 i7",
			wantMfr: "Dell",
			wantCat: catalog.Laptops,
			wantOK:  true,
		},
		{
			name:     "typed classification",
			input:    "OptiPlex 7090 Tower",
			wantMfr:  "Dell",
			wantCat:  catalog.Systems,
			wantType: "Tower",
			wantOK:   true,
		},
		{
			name:     "type rule order picks first match",
			input:    "OptiPlex 5090 MT",
			wantMfr:  "Dell",
			wantCat:  catalog.Systems,
			wantType: "Tower",
			wantOK:   true,
		},
		{
			name:    "substring match mid-string",
			input:   "Apple MacBook 2021",
			wantMfr: "Apple",
			wantCat: catalog.Laptops,
			wantOK:  true,
		},
		{
			name:   "no match",
			input:  "Unbranded Widget 9000",
			wantOK: false,
		},
		{
			name:   "empty input",
			input:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Classify(tt.input, c)
			if ok != tt.wantOK {
				t.Fatalf("Classify(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got.Manufacturer != tt.wantMfr || got.Category != tt.wantCat || got.Type != tt.wantType {
				t.Errorf("Classify(%q) = %+v, want %s/%s/%s", tt.input, got, tt.wantMfr, tt.wantCat, tt.wantType)
			}
		})
	}
}

// Longer, more specific keywords must outrank a short generic keyword they
// contain once the length bonus applies.
func TestClassifyLengthBonus(t *testing.T) {
	c, err := catalog.New([]catalog.ManufacturerSpec{
		{Name: "Generic", Categories: []catalog.CategorySpec{{ID: "laptops", Keywords: []string{"Book"}}}},
		{Name: "Apple", Categories: []catalog.CategorySpec{{ID: "laptops", Keywords: []string{"MacBook Pro 16"}}}},
	})
	if err != nil {
		t.Fatal(err)
	}

	// "Book" scores 1 (substring, no bonus); "MacBook Pro 16" scores
	// 3 (prefix) + 1 (length) = 4.
	got, ok := Classify("MacBook Pro 16 M3", c)
	if !ok {
		t.Fatal("expected a classification")
	}
	if got.Manufacturer != "Apple" {
		t.Errorf("expected the specific keyword to win, got %+v", got)
	}
}

func TestClassifyTieKeepsCatalogOrder(t *testing.T) {
	// identical keyword under two manufacturers: declaration order decides
	c, err := catalog.New([]catalog.ManufacturerSpec{
		{Name: "HP", Categories: []catalog.CategorySpec{{ID: "systems", Keywords: []string{"All-in-One"}}}},
		{Name: "Acer", Categories: []catalog.CategorySpec{{ID: "systems", Keywords: []string{"All-in-One"}}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	got, ok := Classify("All-in-One 24", c)
	if !ok {
		t.Fatal("expected a classification")
	}
	if got.Manufacturer != "HP" {
		t.Errorf("tie should keep first-declared entry, got %q", got.Manufacturer)
	}
}

// Re-classifying the winning keyword itself lands on the same entry.
func TestClassifyIdempotent(t *testing.T) {
	c := testCatalog(t)

	inputs := []string{"Latitude 5420 i7", "OptiPlex 7090 Tower", "XPS 15"}
	for _, input := range inputs {
		first, ok := Classify(input, c)
		if !ok {
			t.Fatalf("no classification for %q", input)
		}
		// find the winning keyword: classify its own text again
		for _, e := range c.AllEntries() {
			if e.Manufacturer == first.Manufacturer && e.Category == first.Category {
				second, ok := Classify(e.Keyword, c)
				if !ok {
					t.Fatalf("no classification for winning keyword %q", e.Keyword)
				}
				if second.Manufacturer != first.Manufacturer || second.Category != first.Category {
					t.Errorf("re-classifying %q gave %s/%s, original %q gave %s/%s",
						e.Keyword, second.Manufacturer, second.Category,
						input, first.Manufacturer, first.Category)
				}
				break
			}
		}
	}
}

func TestBuiltinCatalogScenarios(t *testing.T) {
	c := catalog.Builtin()

	got := Rank("Lat", c, 8)
	found := false
	for _, cand := range got {
		if cand.Text == "Latitude 5420" && cand.Score == 3 {
			found = true
		}
	}
	if !found {
		t.Errorf("expected 'Latitude 5420' with score 3 in top candidates, got %v", got)
	}

	cls, ok := Classify("Latitude 5420 i7", c)
	if !ok || cls.Manufacturer != "Dell" || cls.Category != catalog.Laptops {
		t.Errorf("Classify(Latitude 5420 i7) = %+v ok=%v, want Dell/laptops", cls, ok)
	}

	cls, ok = Classify("OptiPlex 7090 Tower", c)
	if !ok || cls.Manufacturer != "Dell" || cls.Category != catalog.Systems || cls.Type != "Tower" {
		t.Errorf("Classify(OptiPlex 7090 Tower) = %+v ok=%v, want Dell/systems/Tower", cls, ok)
	}

	cls, ok = Classify("PowerEdge R750 rack unit", c)
	if !ok || cls.Manufacturer != "Dell" || cls.Category != catalog.Servers || cls.Type != "Rack" {
		t.Errorf("Classify(PowerEdge R750) = %+v ok=%v, want Dell/servers/Rack", cls, ok)
	}

	if _, ok := Classify("Unbranded Widget 9000", c); ok {
		t.Error("expected no classification for unknown hardware")
	}
}
