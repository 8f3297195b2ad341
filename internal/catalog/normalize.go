package catalog

import (
	"encoding/json"
	"strconv"
	"strings"
)

// The merchant dashboard wrote catalog records under two spellings over
// time (menuVariants / menu_variants, id / typeId, label / name, ...).
// Everything is folded into the canonical model HERE, once, at ingestion.
// No component past this file branches on field spelling.

// flexFloat accepts a JSON number or a numeric string.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// --------------------------------------------------
// Raw source shapes (both spellings)
// --------------------------------------------------

type menuSizeSource struct {
	ID     string    `json:"id"`
	SizeID string    `json:"sizeId"`
	Label  string    `json:"label"`
	Name   string    `json:"name"`
	Price  flexFloat `json:"price"`
}

type menuTypeSource struct {
	ID        string           `json:"id"`
	TypeID    string           `json:"typeId"`
	VariantID string           `json:"variantId"`
	Name      string           `json:"name"`
	Label     string           `json:"label"`
	Sizes     []menuSizeSource `json:"sizes"`
}

type fashionSizeSource struct {
	Label string           `json:"label"`
	Price *json.RawMessage `json:"price"`
}

type packSource struct {
	ID       string    `json:"id"`
	Quantity flexFloat `json:"qty"`
	Price    flexFloat `json:"price"`
}

// ProductSource is the raw product record as stored. Call Normalize to
// obtain the canonical Product.
type ProductSource struct {
	ID       string    `json:"id"`
	ShopID   string    `json:"shop_id"`
	Name     string    `json:"name"`
	Price    flexFloat `json:"price"`
	Stock    int       `json:"stock"`
	ImageURL string    `json:"image_url"`
	ImageAlt string    `json:"imageUrl"`
	Unit     string    `json:"unit"`

	MenuVariants    []menuTypeSource `json:"menuVariants"`
	MenuVariantsAlt []menuTypeSource `json:"menu_variants"`

	Colors []Color             `json:"colors"`
	Sizes  []fashionSizeSource `json:"sizes"`

	PackOptions    []packSource `json:"packOptions"`
	PackOptionsAlt []packSource `json:"pack_options"`
}

// Normalize folds the raw record into the canonical Product for a shop of
// the given category. At most one dimension kind survives, chosen by the
// category; the rest of the raw fields are ignored.
func (src *ProductSource) Normalize(category string) Product {
	p := Product{
		ID:       strings.TrimSpace(src.ID),
		ShopID:   strings.TrimSpace(src.ShopID),
		Name:     strings.TrimSpace(src.Name),
		Price:    float64(src.Price),
		Stock:    src.Stock,
		ImageURL: firstNonEmpty(src.ImageURL, src.ImageAlt),
		Unit:     strings.TrimSpace(src.Unit),
		Category: category,
	}

	switch category {
	case CategoryRestaurant:
		types := src.MenuVariants
		if len(types) == 0 {
			types = src.MenuVariantsAlt
		}
		if dim := normalizeMenu(types); !dim.Empty() {
			p.Dimension = dim
		}

	case CategoryFashion:
		if dim := normalizeFashion(src.Colors, src.Sizes); !dim.Empty() {
			p.Dimension = dim
		}

	default:
		packs := src.PackOptions
		if len(packs) == 0 {
			packs = src.PackOptionsAlt
		}
		if dim := normalizePacks(packs); !dim.Empty() {
			p.Dimension = dim
		}
	}

	return p
}

func normalizeMenu(types []menuTypeSource) *MenuDimension {
	dim := &MenuDimension{}
	for _, t := range types {
		id := firstNonEmpty(t.ID, t.TypeID, t.VariantID)
		if id == "" {
			continue
		}
		mt := MenuType{
			ID:   id,
			Name: firstNonEmpty(t.Name, t.Label, id),
		}
		for _, s := range t.Sizes {
			sid := firstNonEmpty(s.ID, s.SizeID)
			if sid == "" {
				continue
			}
			mt.Sizes = append(mt.Sizes, MenuSize{
				ID:    sid,
				Label: firstNonEmpty(s.Label, s.Name, sid),
				Price: float64(s.Price),
			})
		}
		dim.Types = append(dim.Types, mt)
	}
	return dim
}

func normalizeFashion(colors []Color, sizes []fashionSizeSource) *FashionDimension {
	dim := &FashionDimension{}
	for _, c := range colors {
		val := strings.TrimSpace(c.Value)
		if val == "" {
			continue
		}
		dim.Colors = append(dim.Colors, Color{
			Value: val,
			Name:  strings.TrimSpace(c.Name),
		})
	}
	for _, s := range sizes {
		label := strings.TrimSpace(s.Label)
		if label == "" {
			continue
		}
		fs := FashionSize{Label: label}
		if s.Price != nil {
			var p flexFloat
			if err := json.Unmarshal(*s.Price, &p); err == nil && p > 0 {
				v := float64(p)
				fs.Price = &v
			}
		}
		dim.Sizes = append(dim.Sizes, fs)
	}
	return dim
}

func normalizePacks(packs []packSource) *PackDimension {
	dim := &PackDimension{}
	for _, p := range packs {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			continue
		}
		dim.Packs = append(dim.Packs, PackOption{
			ID:       id,
			Quantity: float64(p.Quantity),
			Price:    float64(p.Price),
		})
	}
	return dim
}

// --------------------------------------------------
// Add-on groups
// --------------------------------------------------

type addonVariantSource struct {
	ID    string    `json:"id"`
	Label string    `json:"label"`
	Name  string    `json:"name"`
	Price flexFloat `json:"price"`
}

type addonOptionSource struct {
	ID       string               `json:"id"`
	Name     string               `json:"name"`
	Title    string               `json:"title"`
	ImageURL string               `json:"imageUrl"`
	ImageAlt string               `json:"image_url"`
	Variants []addonVariantSource `json:"variants"`
}

type addonGroupSource struct {
	ID      string              `json:"id"`
	Title   string              `json:"title"`
	Name    string              `json:"name"`
	Options []addonOptionSource `json:"options"`
}

// NormalizeAddonGroups folds raw shop-level add-on groups into the
// canonical schema. Options without an id and variants without an id are
// dropped; labels fall back to the id.
func NormalizeAddonGroups(raw []byte) ([]AddonGroup, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var sources []addonGroupSource
	if err := json.Unmarshal(raw, &sources); err != nil {
		return nil, err
	}

	var groups []AddonGroup
	for _, g := range sources {
		group := AddonGroup{
			ID:    strings.TrimSpace(g.ID),
			Title: firstNonEmpty(g.Title, g.Name),
		}
		for _, opt := range g.Options {
			optID := strings.TrimSpace(opt.ID)
			if optID == "" {
				continue
			}
			option := AddonOption{
				ID:       optID,
				Name:     firstNonEmpty(opt.Name, opt.Title, optID),
				ImageURL: firstNonEmpty(opt.ImageURL, opt.ImageAlt),
			}
			for _, v := range opt.Variants {
				vid := strings.TrimSpace(v.ID)
				if vid == "" {
					continue
				}
				option.Variants = append(option.Variants, AddonVariant{
					ID:    vid,
					Label: firstNonEmpty(v.Label, v.Name, vid),
					Price: float64(v.Price),
				})
			}
			group.Options = append(group.Options, option)
		}
		if len(group.Options) > 0 {
			groups = append(groups, group)
		}
	}

	return groups, nil
}
