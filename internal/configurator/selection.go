package configurator

// VariantChoice is the closed set of variant picks, one kind per
// dimension. A nil choice means no variant axis is selected.
type VariantChoice interface {
	variantChoice()
}

type MenuSelection struct {
	TypeID string `json:"type_id"`
	SizeID string `json:"size_id"`
}

type FashionSelection struct {
	ColorValue string `json:"color_value"`
	SizeLabel  string `json:"size_label"`
}

type PackSelection struct {
	PackID string `json:"pack_id"`
}

func (MenuSelection) variantChoice()    {}
func (FashionSelection) variantChoice() {}
func (PackSelection) variantChoice()    {}

// AddonPick is one chosen (option, variant) pair.
type AddonPick struct {
	OptionID  string `json:"option_id"`
	VariantID string `json:"variant_id"`
}

// SelectionState is the mutable state of one open configurator session.
// Addons keeps insertion order so commit-time summation and snapshots
// are deterministic.
type SelectionState struct {
	Choice VariantChoice `json:"choice,omitempty"`
	Addons []AddonPick   `json:"addons,omitempty"`
}

// Configured reports whether committing this state should produce a
// dedicated cart line (any variant pick or any add-on).
func (s *SelectionState) Configured() bool {
	if s == nil {
		return false
	}
	return s.Choice != nil || len(s.Addons) > 0
}

// Toggle flips the (optionID, variantID) pair. Selecting the exact pair
// again removes it; selecting a different variant of an already-chosen
// option replaces the prior pick, so each option holds at most one
// variant. Toggling the same pair twice is a no-op overall.
func (s *SelectionState) Toggle(optionID, variantID string) {
	kept := s.Addons[:0]
	removed := false
	for _, a := range s.Addons {
		if a.OptionID != optionID {
			kept = append(kept, a)
			continue
		}
		if a.VariantID == variantID {
			removed = true
		}
		// other variant of the same option: drop it either way
	}
	s.Addons = kept
	if !removed {
		s.Addons = append(s.Addons, AddonPick{OptionID: optionID, VariantID: variantID})
	}
}
