package configurator

import (
	"testing"

	"github.com/Sayedtaha55/ray-eg/internal/catalog"
)

// --------------------------------------------------
// Fixtures
// --------------------------------------------------

func menuSnapshot() *catalog.Snapshot {
	return &catalog.Snapshot{
		Product: catalog.Product{
			ID:       "pizza-1",
			Name:     "Margherita",
			Price:    80,
			Stock:    10,
			Category: catalog.CategoryRestaurant,
			Dimension: &catalog.MenuDimension{
				Types: []catalog.MenuType{
					{
						ID:   "thin",
						Name: "Thin Crust",
						Sizes: []catalog.MenuSize{
							{ID: "s", Label: "Small", Price: 90},
							{ID: "l", Label: "Large", Price: 150},
						},
					},
					{
						ID:   "pan",
						Name: "Pan",
						Sizes: []catalog.MenuSize{
							{ID: "l", Label: "Large", Price: 170},
						},
					},
				},
			},
		},
		BasePrice: 80,
		AddonGroups: []catalog.AddonGroup{
			{
				ID: "g1",
				Options: []catalog.AddonOption{
					{
						ID:   "opt-cheese",
						Name: "Extra Cheese",
						Variants: []catalog.AddonVariant{
							{ID: "single", Label: "Single", Price: 20},
							{ID: "double", Label: "Double", Price: 35},
						},
					},
					{
						ID:   "opt-olives",
						Name: "Olives",
						Variants: []catalog.AddonVariant{
							{ID: "reg", Label: "Regular", Price: 15},
						},
					},
				},
			},
		},
	}
}

func fashionSnapshot() *catalog.Snapshot {
	xl := 320.0
	return &catalog.Snapshot{
		Product: catalog.Product{
			ID:       "shirt-1",
			Name:     "Linen Shirt",
			Price:    250,
			Stock:    5,
			Category: catalog.CategoryFashion,
			Dimension: &catalog.FashionDimension{
				Colors: []catalog.Color{
					{Value: "#000", Name: "Black"},
					{Value: "#fff", Name: "White"},
				},
				Sizes: []catalog.FashionSize{
					{Label: "M"},
					{Label: "XL", Price: &xl},
				},
			},
		},
		BasePrice: 250,
	}
}

func packSnapshot() *catalog.Snapshot {
	return &catalog.Snapshot{
		Product: catalog.Product{
			ID:       "rice-1",
			Name:     "Basmati Rice",
			Price:    60,
			Stock:    40,
			Category: catalog.CategoryRetail,
			Dimension: &catalog.PackDimension{
				Packs: []catalog.PackOption{
					{ID: "1kg", Quantity: 1, Price: 60},
					{ID: "5kg", Quantity: 5, Price: 275},
				},
			},
		},
		BasePrice: 60,
	}
}

// --------------------------------------------------
// Variant pricing
// --------------------------------------------------

func TestMenuSizeReplacesBasePrice(t *testing.T) {
	snap := menuSnapshot()
	state := &SelectionState{Choice: MenuSelection{TypeID: "thin", SizeID: "l"}}

	if got := EffectivePrice(snap, state); got != 150 {
		t.Fatalf("expected size price 150, got %v", got)
	}

	// the base price must not leak into the result
	snap.BasePrice = 9999
	if got := EffectivePrice(snap, state); got != 150 {
		t.Fatalf("size price must replace base entirely, got %v", got)
	}
}

func TestStaleMenuSelectionFallsBackToBase(t *testing.T) {
	snap := menuSnapshot()
	state := &SelectionState{Choice: MenuSelection{TypeID: "thin", SizeID: "gone"}}

	if got := EffectivePrice(snap, state); got != snap.BasePrice {
		t.Fatalf("stale size id should fall back to base %v, got %v", snap.BasePrice, got)
	}
	if rv := ResolveVariant(snap, state); rv != nil {
		t.Fatal("stale menu selection must not resolve")
	}
}

func TestFashionPricedSizeOverrides(t *testing.T) {
	snap := fashionSnapshot()
	state := &SelectionState{Choice: FashionSelection{ColorValue: "#000", SizeLabel: "XL"}}

	if got := EffectivePrice(snap, state); got != 320 {
		t.Fatalf("expected XL price 320, got %v", got)
	}

	rv := ResolveVariant(snap, state)
	if rv == nil || !rv.Overrides {
		t.Fatal("priced fashion size must override")
	}
	if rv.ColorName != "Black" {
		t.Fatalf("expected color name Black, got %q", rv.ColorName)
	}
}

func TestFashionUnpricedSizeKeepsBase(t *testing.T) {
	snap := fashionSnapshot()
	state := &SelectionState{Choice: FashionSelection{ColorValue: "#fff", SizeLabel: "M"}}

	if got := EffectivePrice(snap, state); got != 250 {
		t.Fatalf("unpriced size keeps base 250, got %v", got)
	}

	rv := ResolveVariant(snap, state)
	if rv == nil {
		t.Fatal("fashion selection should still resolve for display")
	}
	if rv.Overrides {
		t.Fatal("unpriced size must not override")
	}
	if rv.SizeLabel != "M" {
		t.Fatalf("expected size label M, got %q", rv.SizeLabel)
	}
}

func TestPackPriceReplacesBase(t *testing.T) {
	snap := packSnapshot()
	state := &SelectionState{Choice: PackSelection{PackID: "5kg"}}

	if got := EffectivePrice(snap, state); got != 275 {
		t.Fatalf("expected pack price 275, got %v", got)
	}
}

// --------------------------------------------------
// Add-on pricing
// --------------------------------------------------

func TestAddonsNeverDecreasePrice(t *testing.T) {
	snap := menuSnapshot()
	state := &SelectionState{Choice: MenuSelection{TypeID: "thin", SizeID: "s"}}

	base := EffectivePrice(snap, state)

	state.Toggle("opt-cheese", "double")
	withCheese := EffectivePrice(snap, state)
	if withCheese < base {
		t.Fatalf("add-on decreased price: %v -> %v", base, withCheese)
	}
	if withCheese != base+35 {
		t.Fatalf("expected %v, got %v", base+35, withCheese)
	}

	state.Toggle("opt-olives", "reg")
	if got := EffectivePrice(snap, state); got != base+35+15 {
		t.Fatalf("expected %v, got %v", base+35+15, got)
	}
}

func TestVanishedAddonIsSkipped(t *testing.T) {
	snap := menuSnapshot()
	state := &SelectionState{Choice: MenuSelection{TypeID: "thin", SizeID: "s"}}
	state.Toggle("opt-gone", "whatever")
	state.Toggle("opt-cheese", "single")

	resolved := ResolveAddons(snap, state)
	if len(resolved) != 1 {
		t.Fatalf("expected 1 resolvable add-on, got %d", len(resolved))
	}
	if resolved[0].OptionID != "opt-cheese" {
		t.Fatalf("expected opt-cheese, got %s", resolved[0].OptionID)
	}

	if got := EffectivePrice(snap, state); got != 90+20 {
		t.Fatalf("vanished pick must contribute nothing, got %v", got)
	}
}

// --------------------------------------------------
// Defaults
// --------------------------------------------------

func TestDefaultSelectionMenu(t *testing.T) {
	state := DefaultSelection(menuSnapshot())

	sel, ok := state.Choice.(MenuSelection)
	if !ok {
		t.Fatalf("expected MenuSelection, got %T", state.Choice)
	}
	if sel.TypeID != "thin" || sel.SizeID != "s" {
		t.Fatalf("expected first type + first size, got %+v", sel)
	}
}

func TestDefaultSelectionFashion(t *testing.T) {
	state := DefaultSelection(fashionSnapshot())

	sel, ok := state.Choice.(FashionSelection)
	if !ok {
		t.Fatalf("expected FashionSelection, got %T", state.Choice)
	}
	if sel.ColorValue != "#000" || sel.SizeLabel != "M" {
		t.Fatalf("expected first color + first size, got %+v", sel)
	}
}

func TestDefaultSelectionEmptyDimension(t *testing.T) {
	snap := &catalog.Snapshot{
		Product:   catalog.Product{ID: "plain-1", Price: 10},
		BasePrice: 10,
	}

	state := DefaultSelection(snap)
	if state.Choice != nil {
		t.Fatalf("no dimension should leave choice unset, got %+v", state.Choice)
	}
	if EffectivePrice(snap, &state) != 10 {
		t.Fatal("empty selection must price at base")
	}
}

func TestHasVariants(t *testing.T) {
	if !HasVariants(menuSnapshot()) {
		t.Fatal("menu product has variants")
	}

	plain := &catalog.Snapshot{Product: catalog.Product{ID: "plain-1"}}
	if HasVariants(plain) {
		t.Fatal("dimensionless product has no variants")
	}

	addonsOnly := &catalog.Snapshot{
		Product:     catalog.Product{ID: "tea-1", Category: catalog.CategoryRestaurant},
		AddonGroups: menuSnapshot().AddonGroups,
	}
	if !HasVariants(addonsOnly) {
		t.Fatal("add-on groups alone still require configuration")
	}
}
