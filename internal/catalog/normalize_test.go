package catalog

import (
	"encoding/json"
	"testing"
)

func TestNormalizeFoldsBothMenuSpellings(t *testing.T) {
	camel := []byte(`{
		"id": "p1",
		"name": "Biryani",
		"price": "120",
		"stock": 8,
		"menuVariants": [
			{"typeId": "veg", "label": "Veg", "sizes": [
				{"sizeId": "half", "name": "Half", "price": "90"},
				{"id": "full", "label": "Full", "price": 160}
			]}
		]
	}`)
	snake := []byte(`{
		"id": "p1",
		"name": "Biryani",
		"price": 120,
		"stock": 8,
		"menu_variants": [
			{"id": "veg", "name": "Veg", "sizes": [
				{"id": "half", "label": "Half", "price": 90},
				{"id": "full", "label": "Full", "price": "160"}
			]}
		]
	}`)

	for _, raw := range [][]byte{camel, snake} {
		var src ProductSource
		if err := json.Unmarshal(raw, &src); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}

		p := src.Normalize(CategoryRestaurant)
		if p.Price != 120 {
			t.Fatalf("expected price 120, got %v", p.Price)
		}

		dim, ok := p.Dimension.(*MenuDimension)
		if !ok {
			t.Fatalf("expected MenuDimension, got %T", p.Dimension)
		}
		if len(dim.Types) != 1 || dim.Types[0].ID != "veg" || dim.Types[0].Name != "Veg" {
			t.Fatalf("unexpected types: %+v", dim.Types)
		}
		sizes := dim.Types[0].Sizes
		if len(sizes) != 2 {
			t.Fatalf("expected 2 sizes, got %d", len(sizes))
		}
		if sizes[0].ID != "half" || sizes[0].Price != 90 {
			t.Fatalf("unexpected first size: %+v", sizes[0])
		}
		if sizes[1].ID != "full" || sizes[1].Price != 160 {
			t.Fatalf("unexpected second size: %+v", sizes[1])
		}
	}
}

func TestNormalizeFashionSizes(t *testing.T) {
	raw := []byte(`{
		"id": "s1",
		"name": "Shirt",
		"price": 250,
		"colors": [{"value": "#000", "name": "Black"}, {"value": "  "}],
		"sizes": [
			{"label": "M"},
			{"label": "XL", "price": "320"},
			{"label": "XXL", "price": null},
			{"label": ""}
		]
	}`)

	var src ProductSource
	if err := json.Unmarshal(raw, &src); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	p := src.Normalize(CategoryFashion)
	dim, ok := p.Dimension.(*FashionDimension)
	if !ok {
		t.Fatalf("expected FashionDimension, got %T", p.Dimension)
	}

	if len(dim.Colors) != 1 {
		t.Fatalf("blank color must be dropped, got %+v", dim.Colors)
	}
	if len(dim.Sizes) != 3 {
		t.Fatalf("blank label must be dropped, got %+v", dim.Sizes)
	}
	if dim.Sizes[0].Price != nil {
		t.Fatal("unpriced size must stay unpriced")
	}
	if dim.Sizes[1].Price == nil || *dim.Sizes[1].Price != 320 {
		t.Fatalf("expected XL price 320, got %+v", dim.Sizes[1].Price)
	}
	if dim.Sizes[2].Price != nil {
		t.Fatal("null price must stay unpriced")
	}
}

func TestNormalizePacksByDefault(t *testing.T) {
	raw := []byte(`{
		"id": "r1",
		"name": "Rice",
		"price": 60,
		"pack_options": [
			{"id": "1kg", "qty": 1, "price": 60},
			{"id": "", "qty": 5, "price": 275}
		]
	}`)

	var src ProductSource
	if err := json.Unmarshal(raw, &src); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	p := src.Normalize(CategoryRetail)
	dim, ok := p.Dimension.(*PackDimension)
	if !ok {
		t.Fatalf("expected PackDimension, got %T", p.Dimension)
	}
	if len(dim.Packs) != 1 {
		t.Fatalf("pack without id must be dropped, got %+v", dim.Packs)
	}
}

func TestNormalizeNoDimension(t *testing.T) {
	raw := []byte(`{"id": "w1", "name": "Water", "price": 12, "stock": 30}`)

	var src ProductSource
	if err := json.Unmarshal(raw, &src); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	p := src.Normalize(CategoryFood)
	if p.Dimension != nil {
		t.Fatalf("expected no dimension, got %T", p.Dimension)
	}
}

func TestNormalizeAddonGroups(t *testing.T) {
	raw := []byte(`[
		{
			"name": "Extras",
			"id": "g1",
			"options": [
				{
					"id": "opt-cheese",
					"title": "Extra Cheese",
					"variants": [
						{"id": "single", "label": "Single", "price": "20"},
						{"id": "", "label": "Broken", "price": 5}
					]
				},
				{"id": "", "name": "orphan"}
			]
		}
	]`)

	groups, err := NormalizeAddonGroups(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}

	g := groups[0]
	if g.Title != "Extras" {
		t.Fatalf("name must feed title, got %q", g.Title)
	}
	if len(g.Options) != 1 {
		t.Fatalf("option without id must be dropped, got %+v", g.Options)
	}

	opt := g.Options[0]
	if opt.Name != "Extra Cheese" {
		t.Fatalf("title must feed name, got %q", opt.Name)
	}
	if len(opt.Variants) != 1 || opt.Variants[0].Price != 20 {
		t.Fatalf("unexpected variants: %+v", opt.Variants)
	}
}

func TestFlexFloatTolerance(t *testing.T) {
	cases := map[string]float64{
		`{"price": 10.5}`:   10.5,
		`{"price": "10.5"}`: 10.5,
		`{"price": null}`:   0,
		`{"price": ""}`:     0,
		`{"price": "junk"}`: 0,
	}

	for raw, want := range cases {
		var src ProductSource
		if err := json.Unmarshal([]byte(raw), &src); err != nil {
			t.Fatalf("%s: %v", raw, err)
		}
		if float64(src.Price) != want {
			t.Fatalf("%s: expected %v, got %v", raw, want, float64(src.Price))
		}
	}
}
