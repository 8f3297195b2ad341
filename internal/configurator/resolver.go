package configurator

import "github.com/Sayedtaha55/ray-eg/internal/catalog"

// HasVariants reports whether adding this product requires an open
// configurator session: a non-empty variant dimension, or applicable
// shop add-on groups.
func HasVariants(snap *catalog.Snapshot) bool {
	if snap.Product.Dimension != nil && !snap.Product.Dimension.Empty() {
		return true
	}
	return len(snap.AddonGroups) > 0
}

// DefaultSelection computes the initial picks for a fresh session: first
// type and that type's first size, first color and first size label, or
// first pack. An empty dimension array leaves the corresponding part
// unset; pricing then falls back to the base price for that axis.
func DefaultSelection(snap *catalog.Snapshot) SelectionState {
	var state SelectionState

	switch dim := snap.Product.Dimension.(type) {
	case *catalog.MenuDimension:
		if len(dim.Types) == 0 {
			break
		}
		sel := MenuSelection{TypeID: dim.Types[0].ID}
		if len(dim.Types[0].Sizes) > 0 {
			sel.SizeID = dim.Types[0].Sizes[0].ID
		}
		state.Choice = sel

	case *catalog.FashionDimension:
		if len(dim.Colors) == 0 && len(dim.Sizes) == 0 {
			break
		}
		sel := FashionSelection{}
		if len(dim.Colors) > 0 {
			sel.ColorValue = dim.Colors[0].Value
		}
		if len(dim.Sizes) > 0 {
			sel.SizeLabel = dim.Sizes[0].Label
		}
		state.Choice = sel

	case *catalog.PackDimension:
		if len(dim.Packs) == 0 {
			break
		}
		state.Choice = PackSelection{PackID: dim.Packs[0].ID}
	}

	return state
}

// SizesForType returns the size list of a menu type, used when the user
// switches types and the prior size id no longer applies.
func SizesForType(snap *catalog.Snapshot, typeID string) []catalog.MenuSize {
	dim, ok := snap.Product.Dimension.(*catalog.MenuDimension)
	if !ok {
		return nil
	}
	for _, t := range dim.Types {
		if t.ID == typeID {
			return t.Sizes
		}
	}
	return nil
}
