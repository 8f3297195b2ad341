package configurator

import "github.com/Sayedtaha55/ray-eg/internal/catalog"

// ResolvedVariant is the commit-time record of a variant pick, resolved
// against the catalog snapshot. Overrides reports whether Price replaces
// the base price; fashion sizes without a defined price resolve with
// Overrides false (color never affects price).
type ResolvedVariant struct {
	Kind string `json:"kind"`

	// menu
	TypeID   string `json:"type_id,omitempty"`
	TypeName string `json:"type_name,omitempty"`
	SizeID   string `json:"size_id,omitempty"`

	// menu + fashion
	SizeLabel string `json:"size_label,omitempty"`

	// fashion
	ColorValue string `json:"color_value,omitempty"`
	ColorName  string `json:"color_name,omitempty"`

	// pack
	PackID   string  `json:"pack_id,omitempty"`
	Quantity float64 `json:"qty,omitempty"`

	Price     float64 `json:"price,omitempty"`
	Overrides bool    `json:"-"`
}

// ResolvedAddon is the commit-time record of one resolvable add-on pick.
type ResolvedAddon struct {
	OptionID     string  `json:"option_id"`
	OptionName   string  `json:"option_name"`
	VariantID    string  `json:"variant_id"`
	VariantLabel string  `json:"variant_label"`
	Price        float64 `json:"price"`
}

// EffectivePrice computes the unit price for a selection: the base price,
// replaced by the variant override when one resolves, plus every
// resolvable add-on. Stale ids simply contribute nothing. Display
// rounding is not done here.
func EffectivePrice(snap *catalog.Snapshot, state *SelectionState) float64 {
	price := snap.BasePrice

	if rv := ResolveVariant(snap, state); rv != nil && rv.Overrides {
		price = rv.Price
	}

	for _, a := range ResolveAddons(snap, state) {
		price += a.Price
	}

	return price
}

// ResolveVariant looks the variant pick up in the snapshot. It returns
// nil when nothing is selected, or when a menu/pack id has gone stale;
// a fashion pick always resolves for display, overriding the price only
// when the matched size carries one.
func ResolveVariant(snap *catalog.Snapshot, state *SelectionState) *ResolvedVariant {
	if state == nil || state.Choice == nil {
		return nil
	}

	switch sel := state.Choice.(type) {
	case MenuSelection:
		dim, ok := snap.Product.Dimension.(*catalog.MenuDimension)
		if !ok {
			return nil
		}
		for _, t := range dim.Types {
			if t.ID != sel.TypeID {
				continue
			}
			for _, s := range t.Sizes {
				if s.ID != sel.SizeID {
					continue
				}
				return &ResolvedVariant{
					Kind:      "menu",
					TypeID:    t.ID,
					TypeName:  t.Name,
					SizeID:    s.ID,
					SizeLabel: s.Label,
					Price:     s.Price,
					Overrides: true,
				}
			}
		}
		return nil

	case FashionSelection:
		rv := &ResolvedVariant{
			Kind:       "fashion",
			ColorValue: sel.ColorValue,
			SizeLabel:  sel.SizeLabel,
		}
		dim, ok := snap.Product.Dimension.(*catalog.FashionDimension)
		if !ok {
			return rv
		}
		for _, c := range dim.Colors {
			if c.Value == sel.ColorValue {
				rv.ColorName = c.Name
				break
			}
		}
		for _, s := range dim.Sizes {
			if s.Label != sel.SizeLabel {
				continue
			}
			if s.Price != nil {
				rv.Price = *s.Price
				rv.Overrides = true
			}
			break
		}
		return rv

	case PackSelection:
		dim, ok := snap.Product.Dimension.(*catalog.PackDimension)
		if !ok {
			return nil
		}
		for _, p := range dim.Packs {
			if p.ID == sel.PackID {
				return &ResolvedVariant{
					Kind:      "pack",
					PackID:    p.ID,
					Quantity:  p.Quantity,
					Price:     p.Price,
					Overrides: true,
				}
			}
		}
		return nil
	}

	return nil
}

// ResolveAddons resolves each picked (option, variant) pair against the
// snapshot's add-on groups, in pick order. Pairs whose option or variant
// vanished from the catalog are skipped silently.
func ResolveAddons(snap *catalog.Snapshot, state *SelectionState) []ResolvedAddon {
	if state == nil || len(state.Addons) == 0 {
		return nil
	}

	var resolved []ResolvedAddon
	for _, pick := range state.Addons {
		opt, variant := findAddonVariant(snap.AddonGroups, pick.OptionID, pick.VariantID)
		if variant == nil {
			continue
		}
		resolved = append(resolved, ResolvedAddon{
			OptionID:     opt.ID,
			OptionName:   opt.Name,
			VariantID:    variant.ID,
			VariantLabel: variant.Label,
			Price:        variant.Price,
		})
	}
	return resolved
}

func findAddonVariant(
	groups []catalog.AddonGroup,
	optionID string,
	variantID string,
) (*catalog.AddonOption, *catalog.AddonVariant) {

	for gi := range groups {
		for oi := range groups[gi].Options {
			opt := &groups[gi].Options[oi]
			if opt.ID != optionID {
				continue
			}
			for vi := range opt.Variants {
				if opt.Variants[vi].ID == variantID {
					return opt, &opt.Variants[vi]
				}
			}
			return nil, nil
		}
	}
	return nil, nil
}
